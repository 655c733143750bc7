package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/yourusername/arpalette/core"
)

const redisKeyPrefix = "arpalette:"

// RedisStore provides Redis-backed document storage
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration // 0 keeps documents forever
}

// Ensure RedisStore implements Store interface
var _ Store = (*RedisStore)(nil)

// RedisConfig for creating a Redis store
type RedisConfig struct {
	Addr     string        `yaml:"addr"`     // Redis address (e.g., "localhost:6379")
	Password string        `yaml:"password"` // Redis password (empty for no auth)
	DB       int           `yaml:"db"`       // Redis database number
	TTL      time.Duration `yaml:"ttl"`      // Expiry for stored documents (default: none)
}

// NewRedisStore creates a new Redis-backed store
func NewRedisStore(config RedisConfig) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisStore{
		client: client,
		ttl:    config.TTL,
	}
}

// Get retrieves the document stored under key
func (s *RedisStore) Get(ctx context.Context, key string) (core.Document, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}

	val, err := s.client.Get(ctx, redisKeyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", key, err)
	}

	var doc core.Document
	if err := json.Unmarshal(val, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if doc == nil {
		doc = core.Document{}
	}
	return doc, nil
}

// Set stores doc under key
func (s *RedisStore) Set(ctx context.Context, key string, doc core.Document) error {
	if key == "" {
		return ErrInvalidKey
	}
	if doc == nil {
		doc = core.Document{}
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}

	if err := s.client.Set(ctx, redisKeyPrefix+key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

// Delete removes the document stored under key
func (s *RedisStore) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, redisKeyPrefix+key).Err()
}

// Clear removes all arpalette keys from Redis
func (s *RedisStore) Clear(ctx context.Context) error {
	iter := s.client.Scan(ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		if err := s.client.Del(ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

// Ping checks if Redis connection is alive
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (s *RedisStore) Close() error {
	return s.client.Close()
}
