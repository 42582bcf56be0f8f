package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/vaultpass/passgen/internal/model"
)

// mysqlDuplicateEntry is the server error number for a unique key violation.
const mysqlDuplicateEntry = 1062

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrDuplicateName   = errors.New("profile name already exists")
)

// ProfileRepository persists profiles.
type ProfileRepository struct {
	db *sql.DB
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sql.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// Create inserts p and stores the generated ID on it.
func (r *ProfileRepository) Create(ctx context.Context, p *model.Profile) error {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO profiles (name, passphrase_hash) VALUES (?, ?)`, p.Name, p.PassphraseHash)
	if err != nil {
		if isDuplicateEntryError(err) {
			return ErrDuplicateName
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	p.ID = id
	return nil
}

// GetByName looks a profile up by its unique name.
func (r *ProfileRepository) GetByName(ctx context.Context, name string) (*model.Profile, error) {
	return r.getOne(ctx, `SELECT id, name, passphrase_hash, created_at, updated_at FROM profiles WHERE name = ?`, name)
}

// GetByID looks a profile up by ID.
func (r *ProfileRepository) GetByID(ctx context.Context, id int64) (*model.Profile, error) {
	return r.getOne(ctx, `SELECT id, name, passphrase_hash, created_at, updated_at FROM profiles WHERE id = ?`, id)
}

// UpdatePassphraseHash replaces the stored hash for profile id.
func (r *ProfileRepository) UpdatePassphraseHash(ctx context.Context, id int64, hash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE profiles SET passphrase_hash = ? WHERE id = ?`, hash, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepository) getOne(ctx context.Context, query string, arg any) (*model.Profile, error) {
	p := &model.Profile{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&p.ID, &p.Name, &p.PassphraseHash, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

func isDuplicateEntryError(err error) bool {
	var myErr *mysql.MySQLError
	return errors.As(err, &myErr) && myErr.Number == mysqlDuplicateEntry
}
