package idna

// Limits and markers fixed by the IDNA specifications.
const (
	// ACEPrefix marks an A-label (RFC 5890 section 2.3.2.1). Detection is
	// case-insensitive.
	ACEPrefix = "xn--"

	// MaxLabelOctets is the hard limit on an encoded label's length in
	// UTF-8 octets.
	MaxLabelOctets = 63

	// MaxLabelRunes is the hard limit on a decoded label's length in code
	// points.
	MaxLabelRunes = 252
)
