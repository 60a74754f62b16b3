// Package generator implements the password sampling engine: a stateful
// configuration (character class toggles, strength level, target length)
// and a per-position probabilistic character chooser driven by the strength
// profile table.
//
// The engine deliberately uses a non-cryptographic uniform source
// (math/rand/v2) to stay faithful to the behavior it reimplements. A
// security-sensitive deployment would swap in crypto/rand.
package generator

import (
	"errors"
	"math/rand/v2"
	"strings"
	"sync"
)

const (
	letterAlphabet = "abcdefghijklmnopqrstuvwxyz"
	symbolAlphabet = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

var ErrNoClipboard = errors.New("no clipboard available")

// Clipboard is the external clipboard-write capability. Failures are the
// adapter's concern; the generator only delegates.
type Clipboard interface {
	WriteString(text string) error
}

// Toggles are the four independent character class switches. They are always
// replaced as a group so readers see a consistent snapshot.
type Toggles struct {
	Uppercase bool
	Lowercase bool
	Numbers   bool
	Symbols   bool
}

// Config is the generator's mutable state: the last-read values of the
// external length, strength and class controls.
type Config struct {
	Length   int
	Strength StrengthLevel
	Toggles  Toggles
}

// Generator produces randomized passwords from its current Config and an
// immutable strength profile table. All methods serialize on an internal
// lock: the config fields are read and written as a group, and the random
// source is not goroutine-safe.
type Generator struct {
	mu       sync.Mutex
	profiles [NumLevels]Profile
	cfg      Config
	rng      *rand.Rand
	clip     Clipboard
}

// New creates a Generator with the given profile table and initial target
// length. Strength starts at Medium and all character classes enabled.
// clip may be nil when the environment offers no clipboard.
func New(profiles [NumLevels]Profile, initialLength int, clip Clipboard) *Generator {
	return &Generator{
		profiles: profiles,
		cfg: Config{
			Length:   initialLength,
			Strength: Medium,
			Toggles:  Toggles{Uppercase: true, Lowercase: true, Numbers: true, Symbols: true},
		},
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
		clip: clip,
	}
}

// SetStrength stores the level and returns its profile so the caller can
// render the label and color. An out-of-range level is a caller bug: it
// fails with ErrInvalidStrength and leaves the stored level untouched —
// there is no safe fallback row to clamp to.
func (g *Generator) SetStrength(level StrengthLevel) (Profile, error) {
	if level < Weak || level > VeryStrong {
		return Profile{}, ErrInvalidStrength
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	g.cfg.Strength = level
	return g.profiles[level], nil
}

// SetToggles replaces all four class toggles atomically.
func (g *Generator) SetToggles(t Toggles) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cfg.Toggles = t
}

// SetTargetLength stores the requested password length. The core does not
// range-check: bounds belong to the external length control. Zero or
// negative lengths generate the empty string.
func (g *Generator) SetTargetLength(n int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cfg.Length = n
}

// Config returns a snapshot of the current configuration.
func (g *Generator) Config() Config {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.cfg
}

// Profile returns the profile of the currently selected strength level.
func (g *Generator) Profile() Profile {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.profiles[g.cfg.Strength]
}

// Profiles returns the full profile table.
func (g *Generator) Profiles() [NumLevels]Profile {
	return g.profiles
}

// Generate produces a password from the current configuration. Each position
// independently draws a letter candidate and a digit-or-symbol candidate,
// then a selector in [0,99] decides between them: the letter wins when it
// exists and either the selector falls at or below the profile's letter
// percent or there is no other candidate.
//
// With every class disabled both candidates are absent and positions
// contribute nothing, so the result degenerates toward the empty string.
// That is a valid configuration, not an error.
func (g *Generator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	p := g.profiles[g.cfg.Strength]

	var b strings.Builder
	if g.cfg.Length > 0 {
		b.Grow(g.cfg.Length)
	}

	for i := 0; i < g.cfg.Length; i++ {
		letter, hasLetter := g.chooseLetter()
		other, hasOther := g.chooseNumOrSymbol(p)
		selector := g.rng.IntN(100)

		switch {
		case hasLetter && (selector <= p.LetterPercent || !hasOther):
			b.WriteByte(letter)
		case hasOther:
			b.WriteByte(other)
		}
	}

	return b.String()
}

// CopyToClipboard delegates the given text to the clipboard sink. Empty text
// is skipped.
func (g *Generator) CopyToClipboard(text string) error {
	if text == "" {
		return nil
	}
	if g.clip == nil {
		return ErrNoClipboard
	}
	return g.clip.WriteString(text)
}

// chooseLetter picks a uniform letter in the case chosen uniformly among the
// enabled cases. Reports false when neither letter class is enabled.
func (g *Generator) chooseLetter() (byte, bool) {
	upper := g.cfg.Toggles.Uppercase
	lower := g.cfg.Toggles.Lowercase
	if !upper && !lower {
		return 0, false
	}

	useUpper := upper
	if upper && lower {
		useUpper = g.rng.IntN(2) == 0
	}

	c := letterAlphabet[g.rng.IntN(len(letterAlphabet))]
	if useUpper {
		c -= 'a' - 'A'
	}
	return c, true
}

// chooseNumOrSymbol picks a digit or a symbol by rejection sampling over
// [0,99]: draws landing inside the inclusive symbol band
// [0, SymbolPercent] yield a symbol, draws outside it yield a digit, and
// draws for a disabled class are discarded. The loop terminates: at least
// one class is enabled past the guard, so one of the two bands always
// accepts. Reports false when neither class is enabled.
func (g *Generator) chooseNumOrSymbol(p Profile) (byte, bool) {
	numbers := g.cfg.Toggles.Numbers
	symbols := g.cfg.Toggles.Symbols
	if !numbers && !symbols {
		return 0, false
	}

	for {
		v := g.rng.IntN(100)
		if v <= p.SymbolPercent {
			if symbols {
				return symbolAlphabet[g.rng.IntN(len(symbolAlphabet))], true
			}
			continue
		}
		if numbers {
			return byte('0' + g.rng.IntN(10)), true
		}
	}
}
