package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/gtm-serpro/docsearch/pkg/preferences"
)

const keyPrefix = "docsearch:prefs:"

// PreferencesRepository implements preferences.Store on Redis. Blobs expire
// together with the session that owns them.
type PreferencesRepository struct {
	rdb redis.Cmdable
	ttl time.Duration
}

// NewPreferencesRepository stores blobs for ttl after their last write; a
// zero ttl keeps them forever.
func NewPreferencesRepository(rdb redis.Cmdable, ttl time.Duration) *PreferencesRepository {
	return &PreferencesRepository{rdb: rdb, ttl: ttl}
}

func key(owner string) string { return keyPrefix + owner }

func (r *PreferencesRepository) Get(ctx context.Context, owner string) ([]byte, error) {
	blob, err := r.rdb.Get(ctx, key(owner)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, preferences.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get preferences: %w", err)
	}
	return blob, nil
}

func (r *PreferencesRepository) Put(ctx context.Context, owner string, blob []byte) error {
	if err := r.rdb.Set(ctx, key(owner), blob, r.ttl).Err(); err != nil {
		return fmt.Errorf("put preferences: %w", err)
	}
	return nil
}
