package punycode

import (
	"unicode/utf8"

	"github.com/wippyai/idna/errors"
)

// Encode converts a sequence of Unicode code points to its Punycode form.
//
// Basic code points (below 0x80) are copied verbatim in their original
// order; if any extended code points follow, a delimiter and a base-36
// digit suffix encoding them are appended. A pure-ASCII input is returned
// unchanged. The only failure mode is checked arithmetic overflow of the
// internal 32-bit accumulators.
func Encode(input []rune) (string, error) {
	output := make([]byte, 0, len(input))
	remaining := int32(0)
	for _, r := range input {
		if r < InitialN {
			output = append(output, byte(r))
		} else {
			remaining++
		}
	}
	if remaining == 0 {
		return string(output), nil
	}

	b := int32(len(output))
	h := b
	if b > 0 {
		output = append(output, Delimiter)
	}

	n, delta, bias := InitialN, int32(0), InitialBias
	for remaining > 0 {
		// Smallest extended code point not yet handled.
		m := maxInt32
		for _, r := range input {
			if r >= n && r < m {
				m = r
			}
		}

		if m-n > (maxInt32-delta)/(h+1) {
			return "", errors.Overflow(errors.PhaseEncode, "delta accumulation")
		}
		delta += (m - n) * (h + 1)
		n = m

		for _, r := range input {
			if r < n {
				delta++
				if delta < 0 {
					return "", errors.Overflow(errors.PhaseEncode, "delta increment")
				}
				continue
			}
			if r > n {
				continue
			}
			q := delta
			for k := Base; ; k += Base {
				t := threshold(k, bias)
				if q < t {
					break
				}
				output = append(output, digitChar(t+(q-t)%(Base-t)))
				q = (q - t) / (Base - t)
			}
			output = append(output, digitChar(q))
			bias = adapt(delta, h+1, h == b)
			delta = 0
			h++
			remaining--
		}
		delta++
		n++
	}

	return string(output), nil
}

// EncodeString is Encode over the code points of s. It fails with
// BadInput when s is not valid UTF-8, since a malformed byte sequence
// has no code point reading.
func EncodeString(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", errors.BadInput(errors.PhaseEncode, "input is not valid UTF-8")
	}
	return Encode([]rune(s))
}
