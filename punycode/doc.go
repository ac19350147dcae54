// Package punycode implements the Bootstring encoding with the Punycode
// parameter profile defined in RFC 3492.
//
// The codec transforms a sequence of Unicode code points into an ASCII
// string and back. Code points below 0x80 (basic code points) are copied
// into the output verbatim; all other code points are represented by a
// suffix of base-36 digits encoding insertion deltas against an adaptive
// bias.
//
// # Encoding
//
//	encoded, err := punycode.Encode([]rune("münchen"))
//	// encoded == "mnchen-3ya"
//
// Encoding only fails when an internal 32-bit accumulator would overflow,
// which is unreachable for realistic domain labels but actively checked
// for pathological inputs.
//
// # Decoding
//
//	decoded, err := punycode.Decode("mnchen-3ya")
//	// string(decoded) == "münchen"
//
// Decoding is a strict inverse of encoding: for every code point sequence
// s, Decode(Encode(s)) yields s. Decoding fails on malformed digits, on
// values outside the Unicode scalar range, and on the structurally
// detectable non-canonical form of a trailing delimiter with no digits.
//
// The package is a pure leaf: no state persists between calls, and it
// knows nothing about domain names, labels, or the "xn--" prefix. That
// framing lives in the parent idna package.
package punycode
