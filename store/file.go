package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/yourusername/arpalette/core"
)

// FileStore keeps each document as <dir>/<key>.json. Writes go through a
// temporary file and a rename so readers never see a partial document.
type FileStore struct {
	dir string
}

// Ensure FileStore implements Store interface
var _ Store = (*FileStore)(nil)

// NewFileStore creates a store rooted at dir. The directory is created on
// first write.
func NewFileStore(dir string) *FileStore {
	return &FileStore{dir: dir}
}

// Path returns the file that backs key.
func (s *FileStore) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func validFileKey(key string) error {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}

// Get reads and decodes the document stored under key
func (s *FileStore) Get(_ context.Context, key string) (core.Document, error) {
	if err := validFileKey(key); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(key))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}

	var doc core.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if doc == nil {
		doc = core.Document{}
	}
	return doc, nil
}

// Set encodes doc and replaces the file for key
func (s *FileStore) Set(_ context.Context, key string, doc core.Document) error {
	if err := validFileKey(key); err != nil {
		return err
	}
	if doc == nil {
		doc = core.Document{}
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", s.dir, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), s.Path(key)); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Delete removes the file for key. A missing file is not an error.
func (s *FileStore) Delete(_ context.Context, key string) error {
	if err := validFileKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.Path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

// Clear removes every document file in the directory
func (s *FileStore) Clear(_ context.Context) error {
	matches, err := filepath.Glob(filepath.Join(s.dir, "*.json"))
	if err != nil {
		return err
	}
	for _, m := range matches {
		if err := os.Remove(m); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("clear %s: %w", m, err)
		}
	}
	return nil
}
