// Package errors provides structured error types for the TVM code generator.
//
// Errors are categorized by Phase (which generation stage failed) and Kind
// (error category). The Error type carries the contract path, the type and
// selector involved, and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseRoute, errors.KindMissingHeader).
//		Path("Counter").
//		Type("Increment").
//		Detail("message type has no allocated header").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.MissingHeader(errors.PhaseRoute, "Counter", "Increment")
//	err := errors.NotFound(errors.PhaseWrite, "contract", "Counter")
//
// Every generation fault is reported through this type. A fault always
// means an earlier compiler phase produced inconsistent input; none of them
// are recoverable. All errors implement the standard error interface and
// support errors.Is/As.
package errors
