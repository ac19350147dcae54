package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:  PhaseToUnicode,
				Kind:   KindPunycode,
				Label:  "xn--bogus",
				Detail: "decoding failed",
			},
			contains: []string{"[to_unicode]", "punycode", `"xn--bogus"`, "decoding failed"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseDecode,
				Kind:  KindBadInput,
			},
			contains: []string{"[decode]", "bad_input"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseToUnicode,
				Kind:   KindPunycode,
				Detail: "label decoding",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[to_unicode]", "punycode", "label decoding", "caused by", "underlying error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseToUnicode,
		Kind:  KindPunycode,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}

	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:  PhaseEncode,
		Kind:   KindOverflow,
		Detail: "delta accumulation",
	}

	// Same phase and kind match regardless of detail
	if !errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindOverflow}) {
		t.Error("expected match on phase and kind")
	}

	// Different kind does not match
	if errors.Is(err, &Error{Phase: PhaseEncode, Kind: KindBadInput}) {
		t.Error("unexpected match on different kind")
	}

	// Different phase does not match
	if errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindOverflow}) {
		t.Error("unexpected match on different phase")
	}

	// Non-Error targets never match
	if errors.Is(err, errors.New("overflow")) {
		t.Error("unexpected match on plain error")
	}
}

func TestError_As(t *testing.T) {
	var target *Error
	err := Punycode(PhaseToUnicode, "xn--bogus", BadDigit(PhaseDecode, '!', 3))

	if !errors.As(err, &target) {
		t.Fatal("errors.As failed")
	}
	if target.Kind != KindPunycode {
		t.Errorf("got kind %q, want %q", target.Kind, KindPunycode)
	}

	// The wrapped codec error is still reachable through the chain
	if !errors.Is(err, &Error{Phase: PhaseDecode, Kind: KindBadInput}) {
		t.Error("wrapped codec error not found in chain")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("boom")
	err := New(PhaseDecode, KindBadInput).
		Label("xn--test").
		Detail("digit %d of %d", 2, 5).
		Cause(cause).
		Build()

	if err.Phase != PhaseDecode {
		t.Errorf("got phase %q, want %q", err.Phase, PhaseDecode)
	}
	if err.Kind != KindBadInput {
		t.Errorf("got kind %q, want %q", err.Kind, KindBadInput)
	}
	if err.Label != "xn--test" {
		t.Errorf("got label %q, want %q", err.Label, "xn--test")
	}
	if err.Detail != "digit 2 of 5" {
		t.Errorf("got detail %q, want %q", err.Detail, "digit 2 of 5")
	}
	if !errors.Is(err.Cause, cause) {
		t.Error("cause not set")
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name  string
		err   *Error
		phase Phase
		kind  Kind
	}{
		{"overflow", Overflow(PhaseEncode, "delta"), PhaseEncode, KindOverflow},
		{"bad digit", BadDigit(PhaseDecode, 'z'+1, 0), PhaseDecode, KindBadInput},
		{"bad input", BadInput(PhaseDecode, "empty input"), PhaseDecode, KindBadInput},
		{"invalid encoding", InvalidEncoding(PhaseDecode, "trailing delimiter"), PhaseDecode, KindInvalidEncoding},
		{"empty label", EmptyLabel(PhaseToASCII), PhaseToASCII, KindEmptyLabel},
		{"label too long", LabelTooLong(PhaseToASCII, "aaa", 64, 63, "octets"), PhaseToASCII, KindLabelTooLong},
		{"invalid label", InvalidLabel(PhaseValidate, "a_b", "underscore"), PhaseValidate, KindInvalidLabel},
		{"invalid ace prefix", InvalidACEPrefix(PhaseValidate, "xn--", "empty payload"), PhaseValidate, KindInvalidACEPrefix},
		{"punycode", Punycode(PhaseToUnicode, "xn--x", nil), PhaseToUnicode, KindPunycode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Phase != tt.phase {
				t.Errorf("got phase %q, want %q", tt.err.Phase, tt.phase)
			}
			if tt.err.Kind != tt.kind {
				t.Errorf("got kind %q, want %q", tt.err.Kind, tt.kind)
			}
		})
	}
}
