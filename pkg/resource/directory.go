package resource

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hostspec/hostspec/pkg/backend"
)

// ErrUnsupportedResource indicates a resource type/backend/platform
// combination the directory cannot serve. This is an expected outcome, not a
// programming error: the dispatcher reports it as a clean failure.
var ErrUnsupportedResource = errors.New("resource not supported")

// Directory holds all registered resource providers, keyed by UpperCamel type
// name. It is populated at process start and read-only afterward; concurrent
// resolution is safe.
type Directory struct {
	mu        sync.RWMutex
	providers map[string]Provider
	order     []string
}

// NewDirectory creates an empty provider directory.
func NewDirectory() *Directory {
	return &Directory{
		providers: make(map[string]Provider),
	}
}

// Register adds a provider to the directory. Returns an error if a provider
// with the same type name is already registered.
func (d *Directory) Register(p Provider) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	name := p.TypeName()
	if _, exists := d.providers[name]; exists {
		return fmt.Errorf("provider already registered: %s", name)
	}
	d.providers[name] = p
	d.order = append(d.order, name)
	return nil
}

// TypeNames returns the snake_case names of all registered resource types, in
// registration order. These are the names exposed at the entry-point boundary.
func (d *Directory) TypeNames() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	names := make([]string, len(d.order))
	for i, camel := range d.order {
		names[i] = CamelToSnake(camel)
	}
	return names
}

// Has reports whether a resource type is registered, by snake_case name.
func (d *Directory) Has(typeName string) bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	_, ok := d.providers[SnakeToCamel(typeName)]
	return ok
}

// Resolve returns a handle for the named resource type targeting the given
// backend. The snake_case boundary name is translated to the provider's
// UpperCamel registration name. Resolution is pure: the same inputs always
// yield an equivalent handle, and nothing is cached across calls.
func (d *Directory) Resolve(typeName string, b backend.Backend) (Handle, error) {
	d.mu.RLock()
	p, ok := d.providers[SnakeToCamel(typeName)]
	d.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: no %s provider for backend %s",
			ErrUnsupportedResource, typeName, b.Selector())
	}
	return p.Resolve(b)
}
