package service

import (
	"context"
	"errors"
	"time"

	"github.com/passforge/passforge-go/internal/crypto"
	"github.com/passforge/passforge-go/internal/model"
	"github.com/passforge/passforge-go/internal/repository"
)

var (
	ErrPassphraseRequired = errors.New("passphrase is required")
	ErrPassphraseTooShort = errors.New("passphrase must be at least 8 characters")
	ErrAlreadySetUp       = errors.New("passphrase already configured")
	ErrNotSetUp           = errors.New("passphrase not configured")
	ErrWrongPassphrase    = errors.New("wrong passphrase")
)

// SessionService manages the single owner passphrase and issues session
// tokens for the protected routes. There are no user accounts.
type SessionService struct {
	repo      *repository.MasterRepository
	jwtSecret string
	jwtExpiry time.Duration
}

// NewSessionService creates a new SessionService.
func NewSessionService(repo *repository.MasterRepository, secret string, expiry time.Duration) *SessionService {
	return &SessionService{
		repo:      repo,
		jwtSecret: secret,
		jwtExpiry: expiry,
	}
}

// Setup performs the one-time passphrase initialization and returns a
// session token. Fails with ErrAlreadySetUp if a passphrase exists.
func (s *SessionService) Setup(ctx context.Context, req model.PassphraseRequest) (model.SessionResponse, error) {
	if req.Passphrase == "" {
		return model.SessionResponse{}, ErrPassphraseRequired
	}
	if len(req.Passphrase) < 8 {
		return model.SessionResponse{}, ErrPassphraseTooShort
	}

	_, err := s.repo.Get(ctx)
	if err == nil {
		return model.SessionResponse{}, ErrAlreadySetUp
	}
	if !errors.Is(err, repository.ErrNoMasterSecret) {
		return model.SessionResponse{}, err
	}

	hash, err := crypto.HashPassphrase(req.Passphrase)
	if err != nil {
		return model.SessionResponse{}, err
	}
	if err := s.repo.Set(ctx, hash); err != nil {
		return model.SessionResponse{}, err
	}

	return s.issueToken()
}

// Unlock verifies the passphrase and returns a session token.
func (s *SessionService) Unlock(ctx context.Context, req model.PassphraseRequest) (model.SessionResponse, error) {
	if req.Passphrase == "" {
		return model.SessionResponse{}, ErrPassphraseRequired
	}

	hash, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoMasterSecret) {
			return model.SessionResponse{}, ErrNotSetUp
		}
		return model.SessionResponse{}, err
	}

	match, err := crypto.VerifyPassphrase(req.Passphrase, hash)
	if err != nil {
		return model.SessionResponse{}, err
	}
	if !match {
		return model.SessionResponse{}, ErrWrongPassphrase
	}

	return s.issueToken()
}

// Status reports whether a passphrase has been configured.
func (s *SessionService) Status(ctx context.Context) (model.SessionStatusResponse, error) {
	_, err := s.repo.Get(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNoMasterSecret) {
			return model.SessionStatusResponse{Initialized: false}, nil
		}
		return model.SessionStatusResponse{}, err
	}
	return model.SessionStatusResponse{Initialized: true}, nil
}

func (s *SessionService) issueToken() (model.SessionResponse, error) {
	token, expiresAt, err := crypto.NewSessionToken(s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.SessionResponse{}, err
	}
	return model.SessionResponse{Token: token, ExpiresAt: expiresAt}, nil
}
