package punycode

// Bootstring parameters for the Punycode profile (RFC 3492 section 5).
// The values are fixed by the RFC; changing any of them desynchronizes
// every digit against conforming implementations.
const (
	Base        int32 = 36
	TMin        int32 = 1
	TMax        int32 = 26
	Skew        int32 = 38
	Damp        int32 = 700
	InitialBias int32 = 72
	InitialN    int32 = 128

	// Delimiter separates the literal basic code point prefix from the
	// base-36 digit suffix.
	Delimiter byte = '-'
)

const maxInt32 int32 = 1<<31 - 1
