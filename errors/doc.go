// Package errors provides structured error types for the idna library.
//
// Errors are categorized by Phase (which conversion was running) and Kind
// (error category). The codec layer (punycode) and the framer layer (idna)
// each use their own set of Kinds; the two taxonomies never mix except where
// the framer deliberately wraps a codec failure into KindPunycode.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindBadInput).
//		Label("xn--invalid!!!").
//		Detail("invalid digit %q at position %d", '!', 3).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Overflow(errors.PhaseEncode, "delta accumulation")
//	err := errors.EmptyLabel(errors.PhaseToASCII)
//
// All errors implement the standard error interface and support errors.Is/As.
// Two *Error values match under errors.Is when Phase and Kind are equal.
package errors
