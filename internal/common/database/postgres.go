// internal/common/database/postgres.go
// PostgreSQL connection and schema

package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresConfig holds connection pool settings
type PostgresConfig struct {
	URL          string
	MaxOpenConns int
	MaxIdleConns int
	MaxLifetime  time.Duration
}

// NewPostgresDB creates a new PostgreSQL connection
func NewPostgresDB(config *PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", config.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool
	db.SetMaxOpenConns(config.MaxOpenConns)
	db.SetMaxIdleConns(config.MaxIdleConns)
	db.SetConnMaxLifetime(config.MaxLifetime)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// NewPostgresDBFromURL creates a connection from a URL with default pool settings
func NewPostgresDBFromURL(databaseURL string) (*sqlx.DB, error) {
	return NewPostgresDB(&PostgresConfig{
		URL:          databaseURL,
		MaxOpenConns: 25,
		MaxIdleConns: 5,
		MaxLifetime:  5 * time.Minute,
	})
}

// schema is applied in order; every statement is idempotent
var schema = []string{
	`CREATE TABLE IF NOT EXISTS partner_profiles (
		id                  TEXT PRIMARY KEY,
		couple_id           TEXT NOT NULL,
		name                TEXT NOT NULL,
		interests           TEXT[] NOT NULL DEFAULT '{}',
		favorite_date_types TEXT[] NOT NULL DEFAULT '{}',
		personality         JSONB NOT NULL,
		love_languages      JSONB NOT NULL,
		triggers            TEXT[] NOT NULL DEFAULT '{}',
		sensitivities       TEXT[] NOT NULL DEFAULT '{}',
		social_ability      TEXT NOT NULL,
		mobility_level      TEXT NOT NULL,
		disabilities        TEXT[] NOT NULL DEFAULT '{}',
		budget              JSONB NOT NULL,
		is_long_distance    BOOLEAN NOT NULL DEFAULT FALSE,
		created_at          TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at          TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_partner_profiles_couple ON partner_profiles (couple_id, created_at)`,
	`CREATE TABLE IF NOT EXISTS completions (
		id           BIGSERIAL PRIMARY KEY,
		couple_id    TEXT NOT NULL,
		kind         TEXT NOT NULL,
		item_id      TEXT NOT NULL,
		completed_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE INDEX IF NOT EXISTS idx_completions_recent ON completions (couple_id, kind, completed_at DESC, id DESC)`,
}

// Migrate creates the tables the repositories use
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement %d: %w", i+1, err)
		}
	}
	return nil
}
