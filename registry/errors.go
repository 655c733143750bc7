package registry

import "errors"

var (
	// ErrNilModule is returned when registering a nil module
	ErrNilModule = errors.New("module cannot be nil")

	// ErrEmptyName is returned when a module has no name
	ErrEmptyName = errors.New("module name cannot be empty")

	// ErrAlreadyExists is returned when a module ID or name is already registered
	ErrAlreadyExists = errors.New("module already registered")

	// ErrNotFound is returned when no module matches an ID or name
	ErrNotFound = errors.New("module not found")
)
