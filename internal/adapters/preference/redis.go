// Package preference implements the preference-store port: one small
// key-value slot per active preference (currency, language).
package preference

import (
	"context"
	"errors"
	"fmt"

	"github.com/localecart/catalog_backend/internal/core/ports"
	"github.com/redis/go-redis/v9"
)

// RedisStore persists a single preference value under one Redis key,
// without expiry. One store instance per preference.
type RedisStore struct {
	client *redis.Client
	key    string
}

// NewRedisStore creates a store bound to key on the given client.
func NewRedisStore(client *redis.Client, key string) *RedisStore {
	return &RedisStore{client: client, key: key}
}

func (s *RedisStore) Get(ctx context.Context) (string, bool, error) {
	value, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read preference %s: %w", s.key, err)
	}
	return value, true, nil
}

func (s *RedisStore) Set(ctx context.Context, value string) error {
	if err := s.client.Set(ctx, s.key, value, 0).Err(); err != nil {
		return fmt.Errorf("failed to write preference %s: %w", s.key, err)
	}
	return nil
}

var _ ports.PreferenceStore = (*RedisStore)(nil)
