// Package kernel holds the value objects shared by every aggregate of the
// order lifecycle: identifiers (UUID) and money amounts (Amount).
//
// Values in this package are immutable and safe for concurrent use. Their
// zero values are either invalid (UUID) or a well-defined zero (Amount).
package kernel
