package errors

import (
	"fmt"
	"strings"
)

// Phase indicates which conversion was running when the error occurred
type Phase string

const (
	PhaseEncode    Phase = "encode"     // code points to Bootstring
	PhaseDecode    Phase = "decode"     // Bootstring to code points
	PhaseToASCII   Phase = "to_ascii"   // domain to A-label form
	PhaseToUnicode Phase = "to_unicode" // domain to U-label form
	PhaseValidate  Phase = "validate"   // per-label validation
)

// Kind categorizes the error
type Kind string

// Codec-layer kinds.
const (
	KindOverflow        Kind = "overflow"         // checked arithmetic would exceed int32
	KindBadInput        Kind = "bad_input"        // malformed digit, basic prefix, or scalar
	KindInvalidEncoding Kind = "invalid_encoding" // well-formed digits in non-canonical form
)

// Framer-layer kinds.
const (
	KindEmptyLabel       Kind = "empty_label"
	KindLabelTooLong     Kind = "label_too_long"
	KindInvalidLabel     Kind = "invalid_label"
	KindPunycode         Kind = "punycode"           // codec failure during label decoding
	KindInvalidACEPrefix Kind = "invalid_ace_prefix" // malformed or fake xn-- label
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause  error
	Phase  Phase
	Kind   Kind
	Label  string
	Detail string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Label != "" {
		b.WriteString(" in label ")
		b.WriteString(fmt.Sprintf("%q", e.Label))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Label sets the offending label
func (b *Builder) Label(label string) *Builder {
	b.err.Label = label
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// Overflow creates a checked-arithmetic overflow error
func Overflow(phase Phase, where string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindOverflow,
		Detail: fmt.Sprintf("wider integers needed: %s", where),
	}
}

// BadDigit creates a bad-input error for an invalid base-36 digit
func BadDigit(phase Phase, b byte, pos int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadInput,
		Detail: fmt.Sprintf("invalid digit %q at position %d", b, pos),
	}
}

// BadInput creates a bad-input error
func BadInput(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBadInput,
		Detail: detail,
	}
}

// InvalidEncoding creates a non-canonical encoding error
func InvalidEncoding(phase Phase, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidEncoding,
		Detail: detail,
	}
}

// EmptyLabel creates an empty-label error
func EmptyLabel(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindEmptyLabel,
		Detail: "label is empty",
	}
}

// LabelTooLong creates a length-limit error
func LabelTooLong(phase Phase, label string, got, limit int, unit string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindLabelTooLong,
		Label:  label,
		Detail: fmt.Sprintf("%d %s exceeds limit of %d", got, unit, limit),
	}
}

// InvalidLabel creates a character-repertoire violation error
func InvalidLabel(phase Phase, label, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidLabel,
		Label:  label,
		Detail: detail,
	}
}

// InvalidACEPrefix creates a malformed ACE prefix error
func InvalidACEPrefix(phase Phase, label, detail string) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidACEPrefix,
		Label:  label,
		Detail: detail,
	}
}

// Punycode wraps a codec failure at the framer boundary
func Punycode(phase Phase, label string, cause error) *Error {
	return &Error{
		Phase: phase,
		Kind:  KindPunycode,
		Label: label,
		Cause: cause,
	}
}
