package core

import "errors"

var (
	// ErrEmptyKey is returned when a schema field has no key
	ErrEmptyKey = errors.New("schema field key cannot be empty")

	// ErrDuplicateKey is returned when two schema fields share a key
	ErrDuplicateKey = errors.New("duplicate schema field key")
)
