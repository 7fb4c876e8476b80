package verify

import (
	"context"
	"log/slog"

	"github.com/hostspec/hostspec/pkg/backend"
	"github.com/hostspec/hostspec/pkg/compare"
	"github.com/hostspec/hostspec/pkg/resource"
)

// EntryPoint is one generated verification function, bound to a resource
// type. The exposed name is the snake_case resource type name.
type EntryPoint func(ctx context.Context, subject string, checks map[string]any) (Report, error)

// EntryPointSet is the process-wide directory of generated entry points: one
// per resource type the provider directory knows. It is built once at startup
// and read-only afterward, so concurrent lookups and invocations are safe
// with no locking.
type EntryPointSet struct {
	points      map[string]EntryPoint
	dispatchers map[string]*Dispatcher
	names       []string
}

// BuildEntryPoints enumerates the directory's resource types and builds one
// dispatcher entry point per type, all targeting the given backend.
func BuildEntryPoints(dir *resource.Directory, reg *compare.Registry, b backend.Backend, logger *slog.Logger) *EntryPointSet {
	set := &EntryPointSet{
		points:      make(map[string]EntryPoint),
		dispatchers: make(map[string]*Dispatcher),
	}
	for _, name := range dir.TypeNames() {
		d := NewDispatcher(name, dir, reg, b, logger)
		set.points[name] = d.Run
		set.dispatchers[name] = d
		set.names = append(set.names, name)
	}
	return set
}

// Lookup returns the entry point exposed under a snake_case resource type
// name.
func (s *EntryPointSet) Lookup(name string) (EntryPoint, bool) {
	ep, ok := s.points[name]
	return ep, ok
}

// Dispatcher returns the underlying dispatcher for a resource type, for
// callers that need ordered check evaluation or a backend override.
func (s *EntryPointSet) Dispatcher(name string) (*Dispatcher, bool) {
	d, ok := s.dispatchers[name]
	return d, ok
}

// Names returns the exposed entry-point names in directory order.
func (s *EntryPointSet) Names() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}
