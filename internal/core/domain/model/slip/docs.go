// Package slip models the hand-off documents produced when returned orders
// change custody: a DriverSlip when a driver hands returns to the branch and a
// MerchantSlip when the branch batches returns for their merchant.
//
// A slip freezes a printable snapshot (Entry) of every order it lists. Apart
// from a merchant slip's delivery status, slips are immutable once created.
package slip
