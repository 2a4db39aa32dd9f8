package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const defaultCartTTL = 30 * 24 * time.Hour

// RedisCartStore persists cart payloads in redis. Failures are logged
// here; callers treat the store as best effort and keep the in-memory
// cart authoritative.
type RedisCartStore struct {
	client    *redis.Client
	logger    *zap.Logger
	keyPrefix string
	ttl       time.Duration
}

// RedisCartStoreOption configures a RedisCartStore
type RedisCartStoreOption func(*RedisCartStore)

// WithCartTTL overrides the cart expiry
func WithCartTTL(ttl time.Duration) RedisCartStoreOption {
	return func(s *RedisCartStore) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// WithKeyPrefix overrides the redis key prefix
func WithKeyPrefix(prefix string) RedisCartStoreOption {
	return func(s *RedisCartStore) {
		if prefix != "" {
			s.keyPrefix = prefix
		}
	}
}

// NewRedisCartStore wraps an existing redis client
func NewRedisCartStore(client *redis.Client, logger *zap.Logger, opts ...RedisCartStoreOption) *RedisCartStore {
	s := &RedisCartStore{
		client:    client,
		logger:    logger.Named("cart_store"),
		keyPrefix: "cart:",
		ttl:       defaultCartTTL,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the stored payload for key
func (s *RedisCartStore) Get(ctx context.Context, key string) (string, bool, error) {
	val, err := s.client.Get(ctx, s.keyPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		s.logger.Warn("cart read failed", zap.String("key", key), zap.Error(err))
		return "", false, fmt.Errorf("redis get cart: %w", err)
	}
	return val, true, nil
}

// Set stores the payload and refreshes the expiry
func (s *RedisCartStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.keyPrefix+key, value, s.ttl).Err(); err != nil {
		s.logger.Warn("cart write failed", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("redis set cart: %w", err)
	}
	return nil
}

// Delete removes the payload for key
func (s *RedisCartStore) Delete(ctx context.Context, key string) error {
	if err := s.client.Del(ctx, s.keyPrefix+key).Err(); err != nil {
		return fmt.Errorf("redis delete cart: %w", err)
	}
	return nil
}
