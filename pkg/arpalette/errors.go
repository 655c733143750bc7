package arpalette

import "errors"

var (
	// ErrInvalidOption is returned when an option is given an unusable value
	ErrInvalidOption = errors.New("invalid option")

	// ErrEmptyName is returned when the namespace name is empty
	ErrEmptyName = errors.New("usermod name cannot be empty")
)
