package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/vaultpass/passgen/internal/crypto"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
)

const (
	maxNameLength       = 64
	minPassphraseLength = 8
)

var (
	ErrInvalidCredentials = errors.New("invalid name or passphrase")
	ErrNameRequired       = errors.New("name is required")
	ErrNameTooLong        = errors.New("name must be at most 64 characters")
	ErrPassphraseTooShort = errors.New("passphrase must be at least 8 characters")
	ErrNameTaken          = errors.New("name already taken")
)

// ProfileStore is the persistence used by ProfileService.
type ProfileStore interface {
	Create(ctx context.Context, p *model.Profile) error
	GetByName(ctx context.Context, name string) (*model.Profile, error)
	GetByID(ctx context.Context, id int64) (*model.Profile, error)
	UpdatePassphraseHash(ctx context.Context, id int64, hash string) error
}

// ProfileService registers profiles and issues their bearer tokens.
type ProfileService struct {
	store     ProfileStore
	jwtSecret string
	jwtExpiry time.Duration
	params    crypto.Argon2Params
}

// NewProfileService creates a new ProfileService.
func NewProfileService(store ProfileStore, secret string, expiry time.Duration) *ProfileService {
	return &ProfileService{
		store:     store,
		jwtSecret: secret,
		jwtExpiry: expiry,
		params:    crypto.DefaultArgon2Params(),
	}
}

// Register creates a profile and returns a token for it.
func (s *ProfileService) Register(ctx context.Context, req model.CreateProfileRequest) (model.AuthResponse, error) {
	name := strings.TrimSpace(req.Name)
	switch {
	case name == "":
		return model.AuthResponse{}, ErrNameRequired
	case utf8.RuneCountInString(name) > maxNameLength:
		return model.AuthResponse{}, ErrNameTooLong
	case utf8.RuneCountInString(req.Passphrase) < minPassphraseLength:
		return model.AuthResponse{}, ErrPassphraseTooShort
	}

	hash, err := crypto.HashPassphraseWith(req.Passphrase, s.params)
	if err != nil {
		return model.AuthResponse{}, err
	}

	p := &model.Profile{Name: name, PassphraseHash: hash, CreatedAt: time.Now().UTC()}
	if err := s.store.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicateName) {
			return model.AuthResponse{}, ErrNameTaken
		}
		return model.AuthResponse{}, err
	}

	return s.authResponse(p)
}

// Login checks the passphrase and returns a fresh token.
func (s *ProfileService) Login(ctx context.Context, req model.LoginRequest) (model.AuthResponse, error) {
	p, err := s.store.GetByName(ctx, strings.TrimSpace(req.Name))
	if err != nil {
		if errors.Is(err, repository.ErrProfileNotFound) {
			return model.AuthResponse{}, ErrInvalidCredentials
		}
		return model.AuthResponse{}, err
	}

	match, err := crypto.VerifyPassphrase(req.Passphrase, p.PassphraseHash)
	if err != nil {
		return model.AuthResponse{}, err
	}
	if !match {
		return model.AuthResponse{}, ErrInvalidCredentials
	}

	if crypto.NeedsRehash(p.PassphraseHash, s.params) {
		s.rehash(ctx, p, req.Passphrase)
	}

	return s.authResponse(p)
}

// rehash stores the passphrase under the current Argon2 parameters. Failures
// are logged; the login itself has already succeeded.
func (s *ProfileService) rehash(ctx context.Context, p *model.Profile, passphrase string) {
	hash, err := crypto.HashPassphraseWith(passphrase, s.params)
	if err != nil {
		slog.Warn("rehashing passphrase failed", "profile_id", p.ID, "error", err)
		return
	}
	if err := s.store.UpdatePassphraseHash(ctx, p.ID, hash); err != nil {
		slog.Warn("storing rehashed passphrase failed", "profile_id", p.ID, "error", err)
		return
	}
	p.PassphraseHash = hash
	slog.Info("passphrase rehashed", "profile_id", p.ID)
}

// Get returns the public view of a profile.
func (s *ProfileService) Get(ctx context.Context, id int64) (model.ProfileResponse, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return model.ProfileResponse{}, err
	}
	return toProfileResponse(p), nil
}

func (s *ProfileService) authResponse(p *model.Profile) (model.AuthResponse, error) {
	token, err := crypto.IssueToken(p.ID, p.Name, s.jwtSecret, s.jwtExpiry)
	if err != nil {
		return model.AuthResponse{}, err
	}
	return model.AuthResponse{Token: token, Profile: toProfileResponse(p)}, nil
}

func toProfileResponse(p *model.Profile) model.ProfileResponse {
	return model.ProfileResponse{ID: p.ID, Name: p.Name, CreatedAt: p.CreatedAt}
}
