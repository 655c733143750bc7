package arpalette

import (
	usermod "github.com/yourusername/arpalette/pkg/arpalette"
)

// Re-export main types for convenience
type (
	Usermod = usermod.Usermod
	Params  = usermod.Params
	Option  = usermod.Option
)

// ID is the usermod identifier used for registry lookups
const ID = usermod.ID

var (
	// New creates the AR Palette usermod
	New = usermod.New

	// DefaultParams returns the factory parameter set
	DefaultParams = usermod.DefaultParams

	// Instance finds the registered usermod
	Instance = usermod.Instance
)
