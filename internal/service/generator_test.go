package service

import (
	"context"
	"errors"
	"testing"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
)

func intPtr(n int) *int    { return &n }
func boolPtr(b bool) *bool { return &b }

func newTestGeneratorService() *GeneratorService {
	gen := generator.New(generator.DefaultProfiles(), 12, nil)
	return NewGeneratorService(gen, nil)
}

func TestGenerate_InitialDefaults(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.Generate(context.Background(), model.ConfigRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 12 {
		t.Errorf("expected length 12, got %d", resp.Length)
	}
	if len(resp.Password) != 12 {
		t.Errorf("expected password length 12, got %d", len(resp.Password))
	}
	if resp.Strength.Label != "MEDIUM" || resp.Strength.Color != "yellow" {
		t.Errorf("expected MEDIUM/yellow, got %s/%s", resp.Strength.Label, resp.Strength.Color)
	}
}

func TestGenerate_AppliesRequest(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.Generate(context.Background(), model.ConfigRequest{
		Length:   intPtr(32),
		Strength: intPtr(int(generator.VeryStrong)),
		Numbers:  boolPtr(false),
		Symbols:  boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 32 {
		t.Errorf("expected length 32, got %d", resp.Length)
	}
	if resp.Strength.Label != "EXTREME" {
		t.Errorf("expected EXTREME, got %s", resp.Strength.Label)
	}
	for _, c := range resp.Password {
		if !((c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')) {
			t.Errorf("unexpected character %q with only letter classes enabled", c)
		}
	}
}

func TestGenerate_StatePersistsBetweenCalls(t *testing.T) {
	svc := newTestGeneratorService()

	if _, err := svc.Generate(context.Background(), model.ConfigRequest{
		Length:   intPtr(20),
		Strength: intPtr(int(generator.Strong)),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	resp, err := svc.Generate(context.Background(), model.ConfigRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Length != 20 {
		t.Errorf("length did not persist: got %d, want 20", resp.Length)
	}
	if resp.Strength.Label != "STRONG" {
		t.Errorf("strength did not persist: got %s, want STRONG", resp.Strength.Label)
	}
}

func TestGenerate_ZeroLength(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.Generate(context.Background(), model.ConfigRequest{Length: intPtr(0)})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Password != "" || resp.Length != 0 {
		t.Errorf("expected empty password for zero length, got %q", resp.Password)
	}
}

func TestGenerate_AllClassesDisabled(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.Generate(context.Background(), model.ConfigRequest{
		Uppercase: boolPtr(false),
		Lowercase: boolPtr(false),
		Numbers:   boolPtr(false),
		Symbols:   boolPtr(false),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Password != "" {
		t.Errorf("expected empty password with every class disabled, got %q", resp.Password)
	}
}

func TestGenerate_InvalidStrength(t *testing.T) {
	svc := newTestGeneratorService()

	for _, ordinal := range []int{-1, 4, 99} {
		_, err := svc.Generate(context.Background(), model.ConfigRequest{Strength: intPtr(ordinal)})
		if !errors.Is(err, generator.ErrInvalidStrength) {
			t.Errorf("strength %d: error = %v, want ErrInvalidStrength", ordinal, err)
		}
	}

	// Failed requests must not mutate state.
	if cfg := svc.Config(); cfg.Strength.Label != "MEDIUM" {
		t.Errorf("strength mutated by invalid request: %s", cfg.Strength.Label)
	}
}

func TestGenerate_NegativeLength(t *testing.T) {
	svc := newTestGeneratorService()

	if _, err := svc.Generate(context.Background(), model.ConfigRequest{Length: intPtr(-1)}); !errors.Is(err, ErrNegativeLength) {
		t.Errorf("error = %v, want ErrNegativeLength", err)
	}
}

func TestGenerate_LengthTooLong(t *testing.T) {
	svc := newTestGeneratorService()

	if _, err := svc.Generate(context.Background(), model.ConfigRequest{Length: intPtr(MaxLength + 1)}); !errors.Is(err, ErrLengthTooLong) {
		t.Errorf("error = %v, want ErrLengthTooLong", err)
	}
}

func TestApply_InvalidRequestLeavesConfigUntouched(t *testing.T) {
	svc := newTestGeneratorService()

	before := svc.Config()
	_, err := svc.Apply(model.ConfigRequest{
		Length:   intPtr(64),
		Strength: intPtr(99),
		Symbols:  boolPtr(false),
	})
	if !errors.Is(err, generator.ErrInvalidStrength) {
		t.Fatalf("error = %v, want ErrInvalidStrength", err)
	}
	if after := svc.Config(); after != before {
		t.Errorf("config mutated by invalid request: %+v -> %+v", before, after)
	}
}

func TestApply_ReturnsRenderInfo(t *testing.T) {
	svc := newTestGeneratorService()

	resp, err := svc.Apply(model.ConfigRequest{Strength: intPtr(int(generator.Weak))})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Strength.Label != "WEAK" || resp.Strength.Color != "green" {
		t.Errorf("expected WEAK/green, got %s/%s", resp.Strength.Label, resp.Strength.Color)
	}
}

func TestStrengths(t *testing.T) {
	svc := newTestGeneratorService()

	levels := svc.Strengths()
	if len(levels) != generator.NumLevels {
		t.Fatalf("expected %d levels, got %d", generator.NumLevels, len(levels))
	}

	wantLabels := []string{"WEAK", "MEDIUM", "STRONG", "EXTREME"}
	for i, level := range levels {
		if level.Ordinal != i {
			t.Errorf("level %d ordinal = %d", i, level.Ordinal)
		}
		if level.Label != wantLabels[i] {
			t.Errorf("level %d label = %q, want %q", i, level.Label, wantLabels[i])
		}
	}
}
