package store

import (
	"context"
	"errors"

	"github.com/yourusername/arpalette/core"
)

var (
	// ErrNotFound is returned by Get when no document is stored under a key
	ErrNotFound = errors.New("document not found")

	// ErrInvalidKey is returned when a document key is empty or unusable
	ErrInvalidKey = errors.New("invalid document key")

	// ErrUnknownBackend is returned by New for an unsupported backend name
	ErrUnknownBackend = errors.New("unknown storage backend")

	// ErrMissingSetting is returned when a known backend lacks a required setting
	ErrMissingSetting = errors.New("missing storage setting")
)

// Store defines the interface for document storage. Documents are whole
// JSON objects addressed by key; Get returns a copy the caller may mutate.
type Store interface {
	Get(ctx context.Context, key string) (core.Document, error)
	Set(ctx context.Context, key string, doc core.Document) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
