package punycode

// Base-36 digit alphabet: values 0-25 map to 'a'-'z', values 26-35 map
// to '0'-'9'. Decoding also accepts 'A'-'Z' (RFC 3492 section 5 makes
// digits case-insensitive).

// digitValue returns the numeric value of a digit character. The second
// return is false when b is not a valid base-36 digit.
func digitValue(b byte) (int32, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return int32(b - 'a'), true
	case b >= 'A' && b <= 'Z':
		return int32(b - 'A'), true
	case b >= '0' && b <= '9':
		return int32(b-'0') + 26, true
	}
	return 0, false
}

// digitChar returns the character for a digit value in [0, 35].
func digitChar(d int32) byte {
	if d < 26 {
		return 'a' + byte(d)
	}
	return '0' + byte(d-26)
}

// threshold computes t(k, bias): TMin if k <= bias+TMin, TMax if
// k >= bias+TMax, otherwise k-bias.
func threshold(k, bias int32) int32 {
	t := k - bias
	if t < TMin {
		return TMin
	}
	if t > TMax {
		return TMax
	}
	return t
}

// adapt recomputes the bias after a delta has been encoded or decoded
// (RFC 3492 section 6.1). numPoints counts the code points handled so
// far including the one just processed; firstTime is true only for the
// first adaptation of a run.
func adapt(delta, numPoints int32, firstTime bool) int32 {
	if firstTime {
		delta /= Damp
	} else {
		delta /= 2
	}
	delta += delta / numPoints

	k := int32(0)
	for delta > (Base-TMin)*TMax/2 {
		delta /= Base - TMin
		k += Base
	}
	return k + (Base-TMin+1)*delta/(delta+Skew)
}
