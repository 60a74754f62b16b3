package service

import (
	"context"
	"errors"

	"github.com/passforge/passforge-go/internal/generator"
	"github.com/passforge/passforge-go/internal/model"
)

// MaxLength bounds the length accepted over the API. The sampling core
// itself takes any length; the bound lives here with the rest of the
// adapter-side validation, mirroring the external length control.
const MaxLength = 256

var (
	ErrNegativeLength = errors.New("length must be non-negative")
	ErrLengthTooLong  = errors.New("length must be at most 256")
)

// GeneratorService owns the single generator instance and translates API
// requests into configuration updates and generation calls.
type GeneratorService struct {
	gen     *generator.Generator
	history *HistoryService
}

// NewGeneratorService creates a GeneratorService around the given generator.
// history may be nil when no database is configured.
func NewGeneratorService(gen *generator.Generator, history *HistoryService) *GeneratorService {
	return &GeneratorService{gen: gen, history: history}
}

// Generate applies any provided config fields and produces a password.
// Successful generations are recorded to history (metadata only,
// best-effort).
func (s *GeneratorService) Generate(ctx context.Context, req model.ConfigRequest) (model.GenerateResponse, error) {
	if _, err := s.Apply(req); err != nil {
		return model.GenerateResponse{}, err
	}

	password := s.gen.Generate()
	cfg := s.gen.Config()

	s.history.Record(ctx, cfg)

	return model.GenerateResponse{
		Password: password,
		Length:   len(password),
		Strength: strengthInfo(cfg.Strength, s.gen.Profile()),
	}, nil
}

// Apply updates the generator configuration from the request. Validation
// happens up front so an invalid request leaves the configuration untouched.
// Absent fields keep their current values.
func (s *GeneratorService) Apply(req model.ConfigRequest) (model.ConfigResponse, error) {
	if req.Strength != nil {
		level := generator.StrengthLevel(*req.Strength)
		if level < generator.Weak || level >= generator.NumLevels {
			return model.ConfigResponse{}, generator.ErrInvalidStrength
		}
	}
	if req.Length != nil {
		if *req.Length < 0 {
			return model.ConfigResponse{}, ErrNegativeLength
		}
		if *req.Length > MaxLength {
			return model.ConfigResponse{}, ErrLengthTooLong
		}
	}

	if req.Strength != nil {
		if _, err := s.gen.SetStrength(generator.StrengthLevel(*req.Strength)); err != nil {
			return model.ConfigResponse{}, err
		}
	}
	if req.Length != nil {
		s.gen.SetTargetLength(*req.Length)
	}
	if req.Uppercase != nil || req.Lowercase != nil || req.Numbers != nil || req.Symbols != nil {
		cur := s.gen.Config().Toggles
		s.gen.SetToggles(generator.Toggles{
			Uppercase: boolOrCurrent(req.Uppercase, cur.Uppercase),
			Lowercase: boolOrCurrent(req.Lowercase, cur.Lowercase),
			Numbers:   boolOrCurrent(req.Numbers, cur.Numbers),
			Symbols:   boolOrCurrent(req.Symbols, cur.Symbols),
		})
	}

	return s.Config(), nil
}

// Config returns the current generator configuration snapshot.
func (s *GeneratorService) Config() model.ConfigResponse {
	cfg := s.gen.Config()
	return model.ConfigResponse{
		Length:    cfg.Length,
		Strength:  strengthInfo(cfg.Strength, s.gen.Profile()),
		Uppercase: cfg.Toggles.Uppercase,
		Lowercase: cfg.Toggles.Lowercase,
		Numbers:   cfg.Toggles.Numbers,
		Symbols:   cfg.Toggles.Symbols,
	}
}

// Strengths returns the profile table for UI rendering.
func (s *GeneratorService) Strengths() []model.StrengthLevelResponse {
	profiles := s.gen.Profiles()
	levels := make([]model.StrengthLevelResponse, 0, len(profiles))
	for i, p := range profiles {
		level := generator.StrengthLevel(i)
		levels = append(levels, model.StrengthLevelResponse{
			Ordinal:       i,
			Name:          level.String(),
			Label:         p.Label,
			Color:         p.Color,
			LetterPercent: p.LetterPercent,
			SymbolPercent: p.SymbolPercent,
		})
	}
	return levels
}

func strengthInfo(level generator.StrengthLevel, p generator.Profile) model.StrengthInfo {
	return model.StrengthInfo{
		Ordinal: int(level),
		Label:   p.Label,
		Color:   p.Color,
	}
}

// boolOrCurrent returns the dereferenced pointer value, or the current value
// if the field was absent.
func boolOrCurrent(p *bool, current bool) bool {
	if p == nil {
		return current
	}
	return *p
}
