package idna

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/wippyai/idna/errors"
	"github.com/wippyai/idna/punycode"
)

// ValidateLabel applies the stricter per-label checks that ToASCII and
// ToUnicode deliberately skip: LDH character repertoire, hyphen placement,
// and A-label well-formedness (the payload must decode and must contain
// an extended code point).
func ValidateLabel(label string) error {
	if label == "" {
		return errors.EmptyLabel(errors.PhaseValidate)
	}
	switch {
	case IsALabel(label):
		return validateALabel(label)
	case IsULabel(label):
		return validateULabel(label)
	default:
		return validateNRLDH(label)
	}
}

// ValidateDomain runs ValidateLabel over every dot-separated label,
// stopping at the first failure.
func ValidateDomain(domain string) error {
	for _, label := range strings.Split(domain, ".") {
		if err := ValidateLabel(label); err != nil {
			return err
		}
	}
	return nil
}

func validateALabel(label string) error {
	if len(label) > MaxLabelOctets {
		return errors.LabelTooLong(errors.PhaseValidate, label, len(label), MaxLabelOctets, "octets")
	}

	payload := label[len(ACEPrefix):]
	if payload == "" {
		return errors.InvalidACEPrefix(errors.PhaseValidate, label, "empty payload after ACE prefix")
	}

	decoded, err := punycode.Decode(strings.ToLower(payload))
	if err != nil {
		return errors.New(errors.PhaseValidate, errors.KindInvalidACEPrefix).
			Label(label).
			Cause(err).
			Detail("payload does not decode").
			Build()
	}
	if len(decoded) > MaxLabelRunes {
		return errors.LabelTooLong(errors.PhaseValidate, label, len(decoded), MaxLabelRunes, "code points")
	}

	for _, r := range decoded {
		if r >= utf8.RuneSelf {
			return nil
		}
	}
	// An A-label that decodes to pure ASCII should never have been encoded.
	return errors.InvalidACEPrefix(errors.PhaseValidate, label, "payload decodes to pure ASCII")
}

func validateULabel(label string) error {
	if !utf8.ValidString(label) {
		return errors.InvalidLabel(errors.PhaseValidate, label, "label is not valid UTF-8")
	}
	if n := utf8.RuneCountInString(label); n > MaxLabelRunes {
		return errors.LabelTooLong(errors.PhaseValidate, label, n, MaxLabelRunes, "code points")
	}

	encoded, err := punycode.EncodeString(strings.ToLower(label))
	if err != nil {
		return wrapCodecError(errors.PhaseValidate, label, err)
	}
	if n := len(ACEPrefix) + len(encoded); n > MaxLabelOctets {
		return errors.LabelTooLong(errors.PhaseValidate, label, n, MaxLabelOctets, "octets")
	}
	return nil
}

func validateNRLDH(label string) error {
	if len(label) > MaxLabelOctets {
		return errors.LabelTooLong(errors.PhaseValidate, label, len(label), MaxLabelOctets, "octets")
	}

	for i := 0; i < len(label); i++ {
		if !isLDH(label[i]) {
			return errors.InvalidLabel(errors.PhaseValidate, label,
				fmt.Sprintf("character %q not allowed", label[i]))
		}
	}
	if label[0] == '-' {
		return errors.InvalidLabel(errors.PhaseValidate, label, "leading hyphen")
	}
	if label[len(label)-1] == '-' {
		return errors.InvalidLabel(errors.PhaseValidate, label, "trailing hyphen")
	}
	// Hyphens in positions 3 and 4 are reserved for the ACE prefix
	// (RFC 5890 R-LDH); IsALabel has already routed real xn-- labels away.
	if len(label) >= 4 && label[2] == '-' && label[3] == '-' {
		return errors.InvalidLabel(errors.PhaseValidate, label, "reserved hyphens in positions 3 and 4")
	}
	return nil
}

func isLDH(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	case b == '-':
		return true
	}
	return false
}
