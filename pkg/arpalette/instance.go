package arpalette

import "github.com/yourusername/arpalette/registry"

// Locator finds modules by identifier. *registry.Registry satisfies it.
type Locator interface {
	Lookup(id uint16) (registry.Module, bool)
}

// Instance returns the palette registered in l, if any. Other components use
// it to reach the live Parameter Set without holding a reference of their own.
func Instance(l Locator) (*Usermod, bool) {
	if l == nil {
		return nil, false
	}
	m, ok := l.Lookup(ID)
	if !ok {
		return nil, false
	}
	u, ok := m.(*Usermod)
	return u, ok
}
