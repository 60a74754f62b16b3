package generator

import (
	"errors"
	"fmt"
	"strings"
)

// StrengthLevel selects one of the four sampling profiles, ordered weakest
// to strongest.
type StrengthLevel int

const (
	Weak StrengthLevel = iota
	Medium
	Strong
	VeryStrong

	// NumLevels is the number of strength levels in a profile table.
	NumLevels = 4
)

var ErrInvalidStrength = errors.New("invalid strength level")

var levelNames = [NumLevels]string{"weak", "medium", "strong", "extreme"}

// String returns the level's lowercase name as used in the CLI and API.
func (l StrengthLevel) String() string {
	if l < Weak || l > VeryStrong {
		return fmt.Sprintf("StrengthLevel(%d)", int(l))
	}
	return levelNames[l]
}

// ParseLevel converts a level name (weak, medium, strong, extreme) to a
// StrengthLevel. Matching is case-insensitive.
func ParseLevel(s string) (StrengthLevel, error) {
	for i, name := range levelNames {
		if strings.EqualFold(s, name) {
			return StrengthLevel(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStrength, s)
}

// Profile holds the sampling weights and display attributes for one strength
// level. NumberPercent is carried in the table but never read during
// sampling: the digit probability is whatever remains of the digit-or-symbol
// band after the symbol cut.
type Profile struct {
	LetterPercent int
	SymbolPercent int
	NumberPercent int
	Label         string
	Color         string
}

// DefaultProfiles returns the built-in strength table. The table is passed
// into New so callers can substitute their own; nothing mutates it after
// construction.
func DefaultProfiles() [NumLevels]Profile {
	return [NumLevels]Profile{
		Weak:       {LetterPercent: 90, SymbolPercent: 5, NumberPercent: 5, Label: "WEAK", Color: "green"},
		Medium:     {LetterPercent: 75, SymbolPercent: 20, NumberPercent: 5, Label: "MEDIUM", Color: "yellow"},
		Strong:     {LetterPercent: 50, SymbolPercent: 40, NumberPercent: 10, Label: "STRONG", Color: "orange"},
		VeryStrong: {LetterPercent: 20, SymbolPercent: 80, NumberPercent: 0, Label: "EXTREME", Color: "red"},
	}
}
