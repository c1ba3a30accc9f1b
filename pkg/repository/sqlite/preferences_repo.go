package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gtm-serpro/docsearch/pkg/preferences"
)

// PreferencesRepository implements preferences.Store on a local SQLite file.
type PreferencesRepository struct {
	db *sql.DB
}

// NewPreferencesRepository expects a database opened by storage/sqlite.Open,
// which owns the schema.
func NewPreferencesRepository(db *sql.DB) *PreferencesRepository {
	return &PreferencesRepository{db: db}
}

func (r *PreferencesRepository) Get(ctx context.Context, owner string) ([]byte, error) {
	var blob string
	row := r.db.QueryRowContext(ctx, `SELECT blob FROM user_preferences WHERE owner = ?`, owner)
	if err := row.Scan(&blob); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, preferences.ErrNotFound
		}
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return []byte(blob), nil
}

func (r *PreferencesRepository) Put(ctx context.Context, owner string, blob []byte) error {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	if _, err := r.db.ExecContext(ctx, `
		INSERT INTO user_preferences (owner, blob, updated_utc)
		VALUES (?, ?, ?)
		ON CONFLICT(owner) DO UPDATE SET blob=excluded.blob, updated_utc=excluded.updated_utc
	`, owner, string(blob), now); err != nil {
		return fmt.Errorf("put preferences: %w", err)
	}
	return nil
}
