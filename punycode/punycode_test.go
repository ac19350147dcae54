package punycode_test

// Shared test vectors. Encoded forms are the RFC 3492 Punycode encodings
// of the Unicode column; every vector is exercised in both directions and
// as a round trip.

var vectors = []struct {
	unicode string
	encoded string
}{
	{"münchen", "mnchen-3ya"},
	{"bücher", "bcher-kva"},
	{"mañana", "maana-pta"},
	{"faß", "fa-hia"},
	{"ü", "tda"},
	{"é", "9ca"},
	{"ñ", "ida"},
	{"☃", "n3h"},
	{"日本", "wgv71a"},
	{"中国", "fiqs8s"},
	{"a-bü", "a-b-joa"},
}
