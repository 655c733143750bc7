// Package registry maps stable module identifiers to the single live instance
// of each module in the process. The host populates it once at boot; modules
// never hold a reference back into it.
package registry

import (
	"fmt"
	"sync"

	"github.com/yourusername/arpalette/core"
)

// Module is the lifecycle contract a host drives. Every method is expected to
// run to completion without blocking and without error.
type Module interface {
	// ID is the stable numeric identity used for lookups.
	ID() uint16
	// Name is the module's namespace in the configuration and state documents.
	Name() string

	// Setup is the one-shot boot hook.
	Setup()
	// Loop is the periodic hook.
	Loop()

	Enabled() bool
	SetEnabled(enabled bool)

	// LoadWithDefaults reads the module namespace from the configuration
	// root and reports whether every field was present and well typed.
	LoadWithDefaults(root core.Document) bool
	// Persist writes the module namespace into the configuration root.
	Persist(root core.Document)
	// ExportSnapshot writes the module namespace into a live-state root.
	ExportSnapshot(root core.Document)
	// ApplyPatch merges a client-submitted live-state root and returns the
	// keys it accepted.
	ApplyPatch(root core.Document) []string

	// AddToInfo adds entries to the informational document.
	AddToInfo(root core.Document)
	// ConfigInfo describes the module's settings for operators.
	ConfigInfo() []core.HelpEntry
}

// Registry is a process-wide directory of modules keyed by ID.
// It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byID    map[uint16]Module
	modules []Module
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{byID: make(map[uint16]Module)}
}

// Register adds m. IDs and names must be unique.
func (r *Registry) Register(m Module) error {
	if m == nil {
		return ErrNilModule
	}
	if m.Name() == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[m.ID()]; exists {
		return fmt.Errorf("%w: id %d", ErrAlreadyExists, m.ID())
	}
	for _, existing := range r.modules {
		if existing.Name() == m.Name() {
			return fmt.Errorf("%w: %s", ErrAlreadyExists, m.Name())
		}
	}

	r.byID[m.ID()] = m
	r.modules = append(r.modules, m)
	return nil
}

// Lookup returns the module registered under id.
func (r *Registry) Lookup(id uint16) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[id]
	return m, ok
}

// LookupName returns the module whose namespace is name.
func (r *Registry) LookupName(name string) (Module, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, m := range r.modules {
		if m.Name() == name {
			return m, true
		}
	}
	return nil, false
}

// Modules returns all modules in registration order.
func (r *Registry) Modules() []Module {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Len returns the number of registered modules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.modules)
}
