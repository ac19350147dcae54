package punycode

import (
	"strings"
	"unicode/utf8"

	"github.com/wippyai/idna/errors"
)

// Decode converts a Punycode string back to the sequence of Unicode code
// points it encodes. It is the strict inverse of Encode.
//
// Failures: BadInput for an empty input, a non-ASCII byte in the basic
// prefix, an invalid or truncated digit group, or a reconstructed value
// outside the Unicode scalar range; InvalidEncoding for a trailing
// delimiter with no digits (a form Encode never produces); Overflow when
// a 32-bit accumulator would wrap.
func Decode(input string) ([]rune, error) {
	if input == "" {
		return nil, errors.BadInput(errors.PhaseDecode, "empty input")
	}

	output := make([]rune, 0, len(input))
	pos := 0
	if idx := strings.LastIndexByte(input, Delimiter); idx >= 0 {
		for i := 0; i < idx; i++ {
			b := input[i]
			if b >= byte(InitialN) {
				return nil, errors.New(errors.PhaseDecode, errors.KindBadInput).
					Detail("non-basic byte 0x%02x at position %d in basic prefix", b, i).
					Build()
			}
			output = append(output, rune(b))
		}
		pos = idx + 1
		if pos == len(input) {
			return nil, errors.InvalidEncoding(errors.PhaseDecode, "delimiter with empty digit suffix")
		}
	}

	i, n, bias := int32(0), InitialN, InitialBias
	for pos < len(input) {
		oldi, w := i, int32(1)
		for k := Base; ; k += Base {
			if pos == len(input) {
				return nil, errors.BadInput(errors.PhaseDecode, "truncated digit group")
			}
			digit, ok := digitValue(input[pos])
			if !ok {
				return nil, errors.BadDigit(errors.PhaseDecode, input[pos], pos)
			}
			pos++

			if digit > (maxInt32-i)/w {
				return nil, errors.Overflow(errors.PhaseDecode, "digit accumulation")
			}
			i += digit * w

			t := threshold(k, bias)
			if digit < t {
				break
			}

			if w > maxInt32/(Base-t) {
				return nil, errors.Overflow(errors.PhaseDecode, "weight accumulation")
			}
			w *= Base - t
		}

		out := int32(len(output) + 1)
		bias = adapt(i-oldi, out, oldi == 0)

		if i/out > maxInt32-n {
			return nil, errors.Overflow(errors.PhaseDecode, "code point advance")
		}
		n += i / out
		i %= out

		if !utf8.ValidRune(n) {
			return nil, errors.New(errors.PhaseDecode, errors.KindBadInput).
				Detail("code point U+%04X outside Unicode scalar range", n).
				Build()
		}

		output = append(output, 0)
		copy(output[i+1:], output[i:])
		output[i] = n
		i++
	}

	return output, nil
}

// DecodeToString is Decode with the result assembled into a string.
func DecodeToString(input string) (string, error) {
	decoded, err := Decode(input)
	if err != nil {
		return "", err
	}
	return string(decoded), nil
}
