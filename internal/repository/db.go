package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS profiles (
		id              BIGINT AUTO_INCREMENT PRIMARY KEY,
		name            VARCHAR(64)  NOT NULL UNIQUE,
		passphrase_hash VARCHAR(255) NOT NULL,
		created_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at      TIMESTAMP    NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS settings (
		profile_id     BIGINT      NOT NULL PRIMARY KEY,
		length         INT         NOT NULL,
		digits         BOOLEAN     NOT NULL,
		lowercase      BOOLEAN     NOT NULL,
		uppercase      BOOLEAN     NOT NULL,
		punctuation    BOOLEAN     NOT NULL,
		appearance     VARCHAR(16) NOT NULL,
		window_scaling INT         NOT NULL,
		widget_scaling INT         NOT NULL,
		updated_at     TIMESTAMP   NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_settings_profile FOREIGN KEY (profile_id) REFERENCES profiles (id) ON DELETE CASCADE
	)`,
}

// NewDB opens a MySQL connection pool and checks it is reachable.
func NewDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

// Migrate creates the profiles and settings tables when missing.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	slog.Info("database schema ready", "tables", len(schema))
	return nil
}
