package idna

import (
	stderrors "errors"
	"strings"

	"go.uber.org/zap"

	"github.com/wippyai/idna/errors"
	"github.com/wippyai/idna/punycode"
)

// ToASCII converts a dotted domain name to its ASCII-compatible form.
//
// The domain is split on '.' with empty labels preserved, so leading,
// trailing, and doubled dots surface as empty-label errors rather than
// being dropped. Each label is lowercased; all-ASCII labels pass through,
// labels with extended code points are Punycode-encoded and given the
// ACE prefix. Any label failure aborts the whole conversion.
func ToASCII(domain string) (string, error) {
	labels := strings.Split(domain, ".")
	for i, label := range labels {
		converted, err := labelToASCII(label)
		if err != nil {
			Logger().Debug("ToASCII failed",
				zap.String("domain", domain),
				zap.String("label", label),
				zap.Error(err))
			return "", err
		}
		labels[i] = converted
	}
	result := strings.Join(labels, ".")
	Logger().Debug("ToASCII",
		zap.String("domain", domain),
		zap.String("result", result))
	return result, nil
}

func labelToASCII(label string) (string, error) {
	if label == "" {
		return "", errors.EmptyLabel(errors.PhaseToASCII)
	}

	lower := strings.ToLower(label)
	if isASCII(lower) {
		if len(lower) > MaxLabelOctets {
			return "", errors.LabelTooLong(errors.PhaseToASCII, lower, len(lower), MaxLabelOctets, "octets")
		}
		return lower, nil
	}

	encoded, err := punycode.EncodeString(lower)
	if err != nil {
		return "", wrapCodecError(errors.PhaseToASCII, label, err)
	}
	ace := ACEPrefix + encoded
	if len(ace) > MaxLabelOctets {
		return "", errors.LabelTooLong(errors.PhaseToASCII, ace, len(ace), MaxLabelOctets, "octets")
	}
	return ace, nil
}

// ToUnicode converts a dotted domain name to its Unicode form.
//
// Labels carrying the ACE prefix (detected case-insensitively) are
// stripped and Punycode-decoded, with any codec failure wrapped into a
// KindPunycode error; other labels are lowercased and passed through.
// Any label failure aborts the whole conversion.
func ToUnicode(domain string) (string, error) {
	labels := strings.Split(domain, ".")
	for i, label := range labels {
		converted, err := labelToUnicode(label)
		if err != nil {
			Logger().Debug("ToUnicode failed",
				zap.String("domain", domain),
				zap.String("label", label),
				zap.Error(err))
			return "", err
		}
		labels[i] = converted
	}
	result := strings.Join(labels, ".")
	Logger().Debug("ToUnicode",
		zap.String("domain", domain),
		zap.String("result", result))
	return result, nil
}

func labelToUnicode(label string) (string, error) {
	if label == "" {
		return "", errors.EmptyLabel(errors.PhaseToUnicode)
	}

	lower := strings.ToLower(label)
	if !strings.HasPrefix(lower, ACEPrefix) {
		return lower, nil
	}

	decoded, err := punycode.Decode(lower[len(ACEPrefix):])
	if err != nil {
		return "", wrapCodecError(errors.PhaseToUnicode, label, err)
	}
	if len(decoded) > MaxLabelRunes {
		return "", errors.LabelTooLong(errors.PhaseToUnicode, label, len(decoded), MaxLabelRunes, "code points")
	}
	return string(decoded), nil
}

// codecKinds maps codec error kinds to the framer kind surfaced by the
// conversion entry points. Every codec failure currently collapses into
// KindPunycode; surfacing one distinctly (say, overflow) is a one-entry
// change here.
var codecKinds = map[errors.Kind]errors.Kind{
	errors.KindOverflow:        errors.KindPunycode,
	errors.KindBadInput:        errors.KindPunycode,
	errors.KindInvalidEncoding: errors.KindPunycode,
}

func wrapCodecError(phase errors.Phase, label string, err error) error {
	kind := errors.KindPunycode
	var cerr *errors.Error
	if stderrors.As(err, &cerr) {
		if mapped, ok := codecKinds[cerr.Kind]; ok {
			kind = mapped
		}
	}
	return errors.New(phase, kind).Label(label).Cause(err).Build()
}
