package service

import (
	"context"
	"log/slog"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 500
)

// HistoryService records and serves generation metadata. The generated
// password itself is never stored.
type HistoryService struct {
	repo *repository.HistoryRepository
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(repo *repository.HistoryRepository) *HistoryService {
	return &HistoryService{repo: repo}
}

// Record stores the configuration a password was generated with. Safe to
// call on a nil service (no database configured), and storage failures only
// log: history must never fail a generate call.
func (s *HistoryService) Record(ctx context.Context, cfg generator.Config) {
	if s == nil {
		return
	}

	rec := model.GenerationRecord{
		Length:    cfg.Length,
		Strength:  cfg.Strength.String(),
		Uppercase: cfg.Toggles.Uppercase,
		Lowercase: cfg.Toggles.Lowercase,
		Numbers:   cfg.Toggles.Numbers,
		Symbols:   cfg.Toggles.Symbols,
	}

	if err := s.repo.Insert(ctx, &rec); err != nil {
		slog.Warn("recording generation history failed", "error", err)
	}
}

// List returns recent generation records, newest first. Non-positive limits
// fall back to the default; oversized limits are capped.
func (s *HistoryService) List(ctx context.Context, limit int) ([]model.HistoryEntryResponse, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}

	records, err := s.repo.ListRecent(ctx, limit)
	if err != nil {
		return nil, err
	}

	entries := make([]model.HistoryEntryResponse, 0, len(records))
	for _, rec := range records {
		entries = append(entries, model.HistoryEntryResponse{
			ID:        rec.ID,
			Length:    rec.Length,
			Strength:  rec.Strength,
			Uppercase: rec.Uppercase,
			Lowercase: rec.Lowercase,
			Numbers:   rec.Numbers,
			Symbols:   rec.Symbols,
			CreatedAt: rec.CreatedAt,
		})
	}
	return entries, nil
}

// Clear removes all generation records.
func (s *HistoryService) Clear(ctx context.Context) (model.ClearHistoryResponse, error) {
	deleted, err := s.repo.DeleteAll(ctx)
	if err != nil {
		return model.ClearHistoryResponse{}, err
	}
	return model.ClearHistoryResponse{Deleted: deleted}, nil
}
