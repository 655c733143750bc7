package host

import "errors"

var (
	// ErrInvalidConfig is returned when configuration is invalid
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrUnknownModule is returned when no registered module matches
	ErrUnknownModule = errors.New("unknown module")
)
