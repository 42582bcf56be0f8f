package service

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/vaultpass/passgen/internal/config"
	"github.com/vaultpass/passgen/internal/model"
	"github.com/vaultpass/passgen/internal/repository"
)

var (
	ErrInvalidAppearance = errors.New("appearance must be one of dark, white, system")
	ErrInvalidScaling    = errors.New("scaling must be one of 75, 100, 150, 200, 250, 300")
)

// SettingsStore is the persistence used by SettingsService.
type SettingsStore interface {
	Get(ctx context.Context, profileID int64) (*model.Settings, error)
	Upsert(ctx context.Context, s *model.Settings) error
}

// SettingsService reads and validates stored generator settings.
type SettingsService struct {
	store  SettingsStore
	limits config.Limits
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(store SettingsStore, limits config.Limits) *SettingsService {
	return &SettingsService{store: store, limits: limits}
}

// DefaultSettings matches a fresh start of the desktop app: minimum length,
// every switch off, system appearance at 100% scaling.
func DefaultSettings(limits config.Limits) model.Settings {
	return model.Settings{
		Length:        limits.DefaultLength,
		Appearance:    model.AppearanceSystem,
		WindowScaling: 100,
		WidgetScaling: 100,
	}
}

// Get returns the stored settings, or defaults when none were saved.
func (s *SettingsService) Get(ctx context.Context, profileID int64) (model.Settings, error) {
	st, err := s.store.Get(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrSettingsNotFound) {
			d := DefaultSettings(s.limits)
			d.ProfileID = profileID
			return d, nil
		}
		return model.Settings{}, err
	}
	return *st, nil
}

// Update validates and stores settings for the profile.
func (s *SettingsService) Update(ctx context.Context, profileID int64, st model.Settings) (model.Settings, error) {
	if err := ValidateSettings(st, s.limits); err != nil {
		return model.Settings{}, err
	}

	st.ProfileID = profileID
	if err := s.store.Upsert(ctx, &st); err != nil {
		return model.Settings{}, err
	}
	return st, nil
}

// ValidateSettings checks length bounds, appearance mode and scaling choices.
func ValidateSettings(st model.Settings, limits config.Limits) error {
	if !limits.Contains(st.Length) {
		return fmt.Errorf("%w: %d not in [%d, %d]", ErrLengthOutOfRange, st.Length, limits.MinLength, limits.MaxLength)
	}

	switch st.Appearance {
	case model.AppearanceDark, model.AppearanceWhite, model.AppearanceSystem:
	default:
		return ErrInvalidAppearance
	}

	if !slices.Contains(model.ScalingOptions, st.WindowScaling) || !slices.Contains(model.ScalingOptions, st.WidgetScaling) {
		return ErrInvalidScaling
	}

	return nil
}
