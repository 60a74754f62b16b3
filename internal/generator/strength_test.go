package generator

import (
	"errors"
	"testing"
)

func TestDefaultProfilesTable(t *testing.T) {
	profiles := DefaultProfiles()

	tests := []struct {
		level         StrengthLevel
		symbolPercent int
		label         string
		color         string
	}{
		{Weak, 5, "WEAK", "green"},
		{Medium, 20, "MEDIUM", "yellow"},
		{Strong, 40, "STRONG", "orange"},
		{VeryStrong, 80, "EXTREME", "red"},
	}

	for _, tt := range tests {
		p := profiles[tt.level]
		if p.SymbolPercent != tt.symbolPercent {
			t.Errorf("%v SymbolPercent = %d, want %d", tt.level, p.SymbolPercent, tt.symbolPercent)
		}
		if p.Label != tt.label {
			t.Errorf("%v Label = %q, want %q", tt.level, p.Label, tt.label)
		}
		if p.Color != tt.color {
			t.Errorf("%v Color = %q, want %q", tt.level, p.Color, tt.color)
		}
	}

	if profiles[Medium].LetterPercent != 75 {
		t.Errorf("Medium LetterPercent = %d, want 75", profiles[Medium].LetterPercent)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want StrengthLevel
	}{
		{"weak", Weak},
		{"medium", Medium},
		{"strong", Strong},
		{"extreme", VeryStrong},
		{"EXTREME", VeryStrong},
		{"Medium", Medium},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Errorf("ParseLevel(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseLevelInvalid(t *testing.T) {
	for _, in := range []string{"", "verystrong", "3", "WEAKEST"} {
		if _, err := ParseLevel(in); !errors.Is(err, ErrInvalidStrength) {
			t.Errorf("ParseLevel(%q) error = %v, want ErrInvalidStrength", in, err)
		}
	}
}

func TestStrengthLevelString(t *testing.T) {
	if got := VeryStrong.String(); got != "extreme" {
		t.Errorf("VeryStrong.String() = %q, want %q", got, "extreme")
	}
	if got := StrengthLevel(7).String(); got != "StrengthLevel(7)" {
		t.Errorf("out-of-range String() = %q", got)
	}
}
