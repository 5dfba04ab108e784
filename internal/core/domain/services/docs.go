// Package services holds the domain services of the order lifecycle, the
// rules that do not belong to a single aggregate:
//   - TransitionValidator decides whether a requested status change is allowed;
//   - ComputeTotals reconciles the money fields of any set of orders or slip entries;
//   - BuildSlipSheet lays out the printable table of a slip.
//
// All three are pure functions of their inputs.
package services
