// Package backend provides the execution contexts that resource providers
// inspect hosts through. A backend is addressed by a URI-like selector such
// as "local://"; resolution of a selector to a backend mirrors how resource
// types are resolved by name, and is the boundary where callers attach
// cancellation via context.Context.
package backend

import (
	"context"
	"fmt"
	"strings"
)

// DefaultSelector is the canonical local-execution selector used when a
// caller does not override the backend.
const DefaultSelector = "local://"

// CommandResult holds the outcome of one command executed on a backend.
type CommandResult struct {
	ExitStatus int
	Stdout     string
	Stderr     string
}

// Succeeded reports whether the command exited zero.
func (r CommandResult) Succeeded() bool {
	return r.ExitStatus == 0
}

// Backend is an execution context a resource handle targets. A non-zero exit
// status is a result, not an error; errors mean the command could not be run
// at all.
type Backend interface {
	Selector() string
	RunCommand(ctx context.Context, name string, args ...string) (CommandResult, error)
}

// Get resolves a backend selector to a backend. An empty selector resolves to
// the default local backend.
func Get(selector string) (Backend, error) {
	if selector == "" {
		selector = DefaultSelector
	}
	scheme, _, ok := strings.Cut(selector, "://")
	if !ok {
		return nil, fmt.Errorf("invalid backend selector %q (expected scheme://...)", selector)
	}
	switch scheme {
	case "local":
		return NewLocal(), nil
	default:
		return nil, fmt.Errorf("unknown backend scheme %q in selector %q", scheme, selector)
	}
}
