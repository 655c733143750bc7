package store

import (
	"context"
	"fmt"
)

// Backend names accepted by Config.Backend.
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendSQLite = "sqlite"
)

// Config selects and configures a storage backend.
type Config struct {
	// Backend is one of "memory", "file", "redis", "sqlite".
	Backend string `yaml:"backend"`

	// Dir is the FileStore directory.
	Dir string `yaml:"dir,omitempty"`

	// Path is the SQLite database file.
	Path string `yaml:"path,omitempty"`

	Redis RedisConfig `yaml:"redis,omitempty"`
}

// DefaultConfig returns a file-backed configuration under ./data.
func DefaultConfig() Config {
	return Config{
		Backend: BackendFile,
		Dir:     "data",
	}
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	switch c.Backend {
	case BackendMemory:
	case BackendFile:
		if c.Dir == "" {
			return fmt.Errorf("%w: file backend requires dir", ErrMissingSetting)
		}
	case BackendRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("%w: redis backend requires redis.addr", ErrMissingSetting)
		}
	case BackendSQLite:
		if c.Path == "" {
			return fmt.Errorf("%w: sqlite backend requires path", ErrMissingSetting)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Backend)
	}
	return nil
}

// New creates the Store described by cfg. The returned close function
// releases backend connections and is never nil.
func New(ctx context.Context, cfg Config) (Store, func() error, error) {
	noop := func() error { return nil }

	if err := cfg.Validate(); err != nil {
		return nil, noop, err
	}

	switch cfg.Backend {
	case BackendMemory:
		return NewMemoryStore(), noop, nil
	case BackendFile:
		return NewFileStore(cfg.Dir), noop, nil
	case BackendRedis:
		s := NewRedisStore(cfg.Redis)
		if err := s.Ping(ctx); err != nil {
			s.Close()
			return nil, noop, fmt.Errorf("connect to redis at %s: %w", cfg.Redis.Addr, err)
		}
		return s, s.Close, nil
	default:
		s, err := NewSQLiteStore(cfg.Path)
		if err != nil {
			return nil, noop, err
		}
		return s, s.Close, nil
	}
}
