package resource

import (
	"github.com/hostspec/hostspec/pkg/backend"
)

// Handle is a resolved resource type bound to a backend. It is a capability
// description, not an instance: Params and TakesSubject describe the
// constructor, Member exposes the type-level member table, and New builds an
// instance for one subject.
type Handle interface {
	// TypeName returns the snake_case resource type name.
	TypeName() string

	// Params returns the constructor parameter names beyond the subject.
	// Every declared check whose name matches one of these is consumed as a
	// constructor argument instead of being verified.
	Params() []string

	// TakesSubject reports whether construction takes the subject name. A
	// subjectless handle is constructed with no parameters at all.
	TakesSubject() bool

	// New constructs an instance for the given subject and constructor
	// arguments.
	New(subject string, args map[string]any) (Instance, error)

	// Member looks up a type-level member by name.
	Member(name string) (Member, bool)
}

// Instance is one constructed resource, scoped to a single verification
// invocation. Instance-level members shadow nothing: the engine consults the
// handle's member table first.
type Instance interface {
	Subject() string
	Member(name string) (Member, bool)
}

// MemberLister is an optional Handle extension for introspection. Handles
// built with Define implement it; the CLI uses it to list checkable members.
type MemberLister interface {
	MemberNames() []string
}

// Provider supplies backend-bound handles for one resource type.
type Provider interface {
	// TypeName returns the provider's UpperCamel type name, the key it is
	// registered under in the directory.
	TypeName() string

	// Resolve returns a handle targeting the given backend, or an error
	// wrapping ErrUnsupportedResource when the type cannot be inspected
	// through that backend or on the current platform.
	Resolve(b backend.Backend) (Handle, error)
}
