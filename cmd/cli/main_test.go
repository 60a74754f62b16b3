package main

import (
	"flag"
	"strings"
	"testing"

	"github.com/passforge/passforge-go/internal/generator"
)

func TestParseFlagsDefaults(t *testing.T) {
	cfg, err := parseFlags(flag.NewFlagSet("test", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Length != 12 {
		t.Errorf("Length = %d, want 12", cfg.Length)
	}
	if cfg.Strength != "medium" {
		t.Errorf("Strength = %q, want medium", cfg.Strength)
	}
	if cfg.Count != 1 {
		t.Errorf("Count = %d, want 1", cfg.Count)
	}
	if cfg.NoUpper || cfg.NoLower || cfg.NoNumbers || cfg.NoSymbols {
		t.Error("all character classes should be enabled by default")
	}
}

func TestParseFlagsShorthands(t *testing.T) {
	cfg, err := parseFlags(flag.NewFlagSet("test", flag.ContinueOnError),
		[]string{"-l", "32", "-s", "extreme", "-c", "3", "-no-symbols"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Length != 32 {
		t.Errorf("Length = %d, want 32", cfg.Length)
	}
	if cfg.Strength != "extreme" {
		t.Errorf("Strength = %q, want extreme", cfg.Strength)
	}
	if cfg.Count != 3 {
		t.Errorf("Count = %d, want 3", cfg.Count)
	}
	if !cfg.NoSymbols {
		t.Error("expected NoSymbols to be set")
	}
}

func TestStrengthBar(t *testing.T) {
	profiles := generator.DefaultProfiles()

	bar := strengthBar(generator.Weak, profiles[generator.Weak])
	if !strings.Contains(bar, "WEAK") {
		t.Errorf("bar %q missing label", bar)
	}
	if !strings.Contains(bar, ansiColors["green"]) {
		t.Errorf("bar %q missing green color code", bar)
	}
	if strings.Count(bar, "█") != 1 || strings.Count(bar, "░") != 3 {
		t.Errorf("weak bar %q should have 1 filled and 3 empty segments", bar)
	}

	bar = strengthBar(generator.VeryStrong, profiles[generator.VeryStrong])
	if strings.Count(bar, "█") != 4 || strings.Count(bar, "░") != 0 {
		t.Errorf("extreme bar %q should be fully filled", bar)
	}
}
