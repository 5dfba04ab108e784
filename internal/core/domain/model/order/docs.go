// Package order contains the Order aggregate: the unit whose status moves
// through the delivery lifecycle and whose money fields feed every financial
// total.
//
// The aggregate guards only its own consistency (known codes, previous status
// bookkeeping, non-negative money, branch hand-off preconditions). Whether a
// caller may request a particular transition is decided beforehand by
// services.TransitionValidator.
//
// Mutating methods record domain events (Created, StatusChanged) that the unit
// of work hands to the event publisher after a successful commit.
package order
