package arpalette

import (
	"fmt"

	"go.uber.org/zap"
)

// Option is a functional option for configuring a Usermod.
type Option func(*Usermod) error

// WithName sets the namespace used in the configuration and state documents.
func WithName(name string) Option {
	return func(u *Usermod) error {
		if name == "" {
			return ErrEmptyName
		}
		u.name = name
		return nil
	}
}

// WithEnabled sets the initial state of the capability gate.
func WithEnabled(enabled bool) Option {
	return func(u *Usermod) error {
		u.enabled = enabled
		return nil
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(u *Usermod) error {
		if logger == nil {
			return fmt.Errorf("%w: logger cannot be nil", ErrInvalidOption)
		}
		u.logger = logger
		return nil
	}
}

// WithParams seeds the Parameter Set with p instead of the compiled defaults.
// Fields missing from the configuration document fall back to these values.
func WithParams(p Params) Option {
	return func(u *Usermod) error {
		u.params = p
		return nil
	}
}
