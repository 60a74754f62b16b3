package service

import (
	"context"
	"testing"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
)

func TestRecord_NilService(t *testing.T) {
	// A nil HistoryService means no database; Record must be a no-op.
	var svc *HistoryService
	svc.Record(context.Background(), generator.Config{Length: 12, Strength: generator.Medium})
}

func TestGenerate_NilHistoryService(t *testing.T) {
	gen := generator.New(generator.DefaultProfiles(), 12, nil)
	svc := NewGeneratorService(gen, nil)

	if _, err := svc.Generate(context.Background(), model.ConfigRequest{Length: intPtr(8)}); err != nil {
		t.Fatalf("unexpected error with nil history: %v", err)
	}
}
