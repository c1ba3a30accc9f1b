package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/gtm-serpro/docsearch/pkg/preferences"
)

// PreferencesRepository implements preferences.Store backed by PostgreSQL (pgx).
type PreferencesRepository struct {
	pool *pgxpool.Pool
}

// NewPreferencesRepository expects the schema applied by storage/postgres.Migrate.
func NewPreferencesRepository(pool *pgxpool.Pool) *PreferencesRepository {
	return &PreferencesRepository{pool: pool}
}

func (r *PreferencesRepository) Get(ctx context.Context, owner string) ([]byte, error) {
	var blob []byte
	err := r.pool.QueryRow(ctx, `SELECT blob FROM user_preferences WHERE owner = $1`, owner).Scan(&blob)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, preferences.ErrNotFound
		}
		return nil, err
	}
	return blob, nil
}

func (r *PreferencesRepository) Put(ctx context.Context, owner string, blob []byte) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO user_preferences (owner, blob, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner) DO UPDATE SET blob = EXCLUDED.blob, updated_at = EXCLUDED.updated_at
	`, owner, blob, time.Now().UTC())
	return err
}
