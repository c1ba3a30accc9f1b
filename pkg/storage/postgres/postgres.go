package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/gtm-serpro/docsearch/pkg/storage/migrations"
)

// Options tune the connection pool. Zero values keep the defaults.
type Options struct {
	MaxConns        int32
	MaxConnLifetime time.Duration
}

// Connect opens a pgx pool for the preferences store and pings it.
func Connect(ctx context.Context, dsn string, opts Options) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse pgx config: %w", err)
	}
	config.MaxConns = 4
	if opts.MaxConns > 0 {
		config.MaxConns = opts.MaxConns
	}
	config.MinConns = 0
	config.MaxConnLifetime = time.Hour
	if opts.MaxConnLifetime > 0 {
		config.MaxConnLifetime = opts.MaxConnLifetime
	}
	config.HealthCheckPeriod = 30 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("open pgx pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return pool, nil
}

// Migrate brings the preferences schema up to date.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	// the wrapper borrows pool connections; closing it is left to the pool
	_, err := migrations.Up(ctx, stdlib.OpenDBFromPool(pool), goose.DialectPostgres)
	return err
}
