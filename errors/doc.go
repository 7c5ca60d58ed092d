// Package errors provides structured failure types for the ABI checker.
//
// Failures are categorized by Phase (which verification stage observed the
// mismatch) and Kind (what kind of drift it is). The Error type carries the
// entity and field under check plus the expected and actual values, so one
// aggregated slice of errors names every drifted piece of the contract.
//
// Use the Builder for structured construction:
//
//	err := errors.New(errors.PhaseLayout, errors.KindSizeMismatch).
//		Entity("log").
//		Expected(uint32(536)).
//		Actual(uint32(544)).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.SizeMismatch("log", 536, 544)
//	err := errors.OffsetMismatch("connection", "rule", 322, 328)
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
