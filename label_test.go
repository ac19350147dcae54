package idna_test

import (
	"testing"

	"github.com/wippyai/idna"
)

func TestClassification(t *testing.T) {
	tests := []struct {
		label string
		a     bool
		u     bool
		nrldh bool
	}{
		{"xn--mnchen-3ya", true, false, false},
		{"XN--MNCHEN-3YA", true, false, false},
		{"Xn--mixed", true, false, false},
		{"münchen", false, true, false},
		{"日本", false, true, false},
		{"xn--münchen", false, true, false}, // prefix plus extended code point is still a U-label
		{"example", false, false, true},
		{"ex-ample", false, false, true},
		{"xn-almost", false, false, true},
		{"123", false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			if got := idna.IsALabel(tt.label); got != tt.a {
				t.Errorf("IsALabel = %v, want %v", got, tt.a)
			}
			if got := idna.IsULabel(tt.label); got != tt.u {
				t.Errorf("IsULabel = %v, want %v", got, tt.u)
			}
			if got := idna.IsNRLDHLabel(tt.label); got != tt.nrldh {
				t.Errorf("IsNRLDHLabel = %v, want %v", got, tt.nrldh)
			}
		})
	}
}

func TestClassification_Partition(t *testing.T) {
	// Every non-empty label lands in exactly one category.
	labels := []string{
		"xn--mnchen-3ya", "münchen", "example", "xn--", "xn--münchen",
		"a", "-", "ü", "XN--WGV71A", "xn", "x",
	}
	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			count := 0
			for _, is := range []bool{idna.IsALabel(label), idna.IsULabel(label), idna.IsNRLDHLabel(label)} {
				if is {
					count++
				}
			}
			if count != 1 {
				t.Errorf("label matched %d categories, want exactly 1", count)
			}
		})
	}
}
