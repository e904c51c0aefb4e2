package history

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PostgresStore reads and writes the completions table
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore creates a postgres-backed history store
func NewPostgresStore(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

// Record inserts one completion row
func (s *PostgresStore) Record(ctx context.Context, coupleID string, kind Kind, itemID string) error {
	query := `
		INSERT INTO completions (couple_id, kind, item_id, completed_at)
		VALUES ($1, $2, $3, NOW())`

	if _, err := s.db.ExecContext(ctx, query, coupleID, string(kind), itemID); err != nil {
		return fmt.Errorf("failed to record history: %w", err)
	}
	return nil
}

// Recent returns up to limit ids, newest first
func (s *PostgresStore) Recent(ctx context.Context, coupleID string, kind Kind, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	query := `
		SELECT item_id FROM completions
		WHERE couple_id = $1 AND kind = $2
		ORDER BY completed_at DESC, id DESC
		LIMIT $3`

	var ids []string
	if err := s.db.SelectContext(ctx, &ids, query, coupleID, string(kind), limit); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}
	return ids, nil
}
