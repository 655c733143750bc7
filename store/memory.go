package store

import (
	"context"
	"sync"

	"github.com/yourusername/arpalette/core"
)

// MemoryStore provides thread-safe in-memory document storage. Contents are
// lost when the process exits.
type MemoryStore struct {
	docs sync.Map // map[string]core.Document
}

// Ensure MemoryStore implements Store interface
var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// Get retrieves a copy of the document stored under key
func (s *MemoryStore) Get(_ context.Context, key string) (core.Document, error) {
	if key == "" {
		return nil, ErrInvalidKey
	}
	val, ok := s.docs.Load(key)
	if !ok {
		return nil, ErrNotFound
	}
	return val.(core.Document).Clone(), nil
}

// Set stores a copy of doc under key
func (s *MemoryStore) Set(_ context.Context, key string, doc core.Document) error {
	if key == "" {
		return ErrInvalidKey
	}
	if doc == nil {
		doc = core.Document{}
	}
	s.docs.Store(key, doc.Clone())
	return nil
}

// Delete removes the document stored under key
func (s *MemoryStore) Delete(_ context.Context, key string) error {
	s.docs.Delete(key)
	return nil
}

// Clear removes all documents
func (s *MemoryStore) Clear(_ context.Context) error {
	s.docs.Range(func(key, value interface{}) bool {
		s.docs.Delete(key)
		return true
	})
	return nil
}
