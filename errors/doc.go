// Package errors provides structured error types for splice.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes rich context: field path, Go type name, source line and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseParse, errors.KindInvalidInput).
//		Path("Pair", "Key").
//		Line(3).
//		Detail("expected ':' after field name").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Toolchain(errors.PhaseCompile, "exit status 1", cause)
//	err := errors.InvalidUTF8(errors.PhaseOutput, nil, stdout)
//
// Nothing in splice recovers from an error: every failure aborts the
// expansion that produced it. All errors implement the standard error
// interface and support errors.Is/As.
package errors
