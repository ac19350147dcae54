// Package idna converts internationalized domain name labels between
// their Unicode form and the ASCII-compatible encoding used on the wire,
// following the IDNA2008 framing of RFC 5890 over the Punycode codec of
// RFC 3492.
//
// # Architecture Overview
//
// The library is organized into packages with distinct responsibilities:
//
//	idna/            Root package: the label framer (classification,
//	                 length limits, ACE prefix handling, per-label
//	                 orchestration across a dotted domain name)
//	├── punycode/    The Bootstring codec: pure code-point transform
//	│                with no knowledge of domains or labels
//	└── errors/      Structured Phase/Kind error types for both layers
//
// # Quick Start
//
// Convert a whole domain name in either direction:
//
//	ascii, err := idna.ToASCII("münchen.de")
//	// ascii == "xn--mnchen-3ya.de"
//
//	unicode, err := idna.ToUnicode("xn--wgv71a.jp")
//	// unicode == "日本.jp"
//
// Classify a single label:
//
//	idna.IsALabel("xn--mnchen-3ya") // true
//	idna.IsULabel("münchen")        // true
//	idna.IsNRLDHLabel("example")    // true
//
// # Normalization
//
// The codec assumes label text has already been NFC-normalized. Decomposed
// and composed diacritics encode to different Punycode strings, so callers
// that need canonical results must normalize before calling ToASCII or
// punycode.Encode. This is a caller obligation, not part of the codec's
// contract.
//
// # Thread Safety
//
// Every operation is a pure function over its input. There is no shared
// mutable state, so concurrent calls are safe without locking.
package idna
