package migrations

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestUpSQLiteIsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "m.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	n, err := Up(ctx, db, goose.DialectSQLite3)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	n, err = Up(ctx, db, goose.DialectSQLite3)
	require.NoError(t, err)
	assert.Zero(t, n)

	_, err = db.ExecContext(ctx, `INSERT INTO user_preferences (owner, blob, updated_utc) VALUES ('a', '{}', 'now')`)
	assert.NoError(t, err)
}

func TestUpUnknownDialect(t *testing.T) {
	_, err := Up(context.Background(), nil, goose.DialectMySQL)
	assert.Error(t, err)
}
