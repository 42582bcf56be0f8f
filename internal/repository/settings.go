package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/vaultpass/passgen/internal/model"
)

var ErrSettingsNotFound = errors.New("settings not found")

// SettingsRepository persists per-profile generator settings.
type SettingsRepository struct {
	db *sql.DB
}

// NewSettingsRepository creates a new SettingsRepository.
func NewSettingsRepository(db *sql.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

const upsertSettingsQuery = `
	INSERT INTO settings (profile_id, length, digits, lowercase, uppercase, punctuation,
		appearance, window_scaling, widget_scaling)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON DUPLICATE KEY UPDATE
		length         = VALUES(length),
		digits         = VALUES(digits),
		lowercase      = VALUES(lowercase),
		uppercase      = VALUES(uppercase),
		punctuation    = VALUES(punctuation),
		appearance     = VALUES(appearance),
		window_scaling = VALUES(window_scaling),
		widget_scaling = VALUES(widget_scaling)`

// Get returns the stored settings for a profile.
func (r *SettingsRepository) Get(ctx context.Context, profileID int64) (*model.Settings, error) {
	query := `SELECT profile_id, length, digits, lowercase, uppercase, punctuation,
		appearance, window_scaling, widget_scaling, updated_at
		FROM settings WHERE profile_id = ?`

	s := &model.Settings{}
	err := r.db.QueryRowContext(ctx, query, profileID).Scan(
		&s.ProfileID, &s.Length, &s.Digits, &s.Lowercase, &s.Uppercase, &s.Punctuation,
		&s.Appearance, &s.WindowScaling, &s.WidgetScaling, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSettingsNotFound
		}
		return nil, err
	}
	return s, nil
}

// Upsert replaces the stored settings for s.ProfileID.
func (r *SettingsRepository) Upsert(ctx context.Context, s *model.Settings) error {
	_, err := r.db.ExecContext(ctx, upsertSettingsQuery,
		s.ProfileID,
		s.Length,
		s.Digits,
		s.Lowercase,
		s.Uppercase,
		s.Punctuation,
		s.Appearance,
		s.WindowScaling,
		s.WidgetScaling,
	)
	return err
}
