package resource

import (
	"context"
	"fmt"
	"sort"

	"github.com/hostspec/hostspec/pkg/backend"
)

// State is what a defined resource member inspects: the backend it targets,
// the subject it was constructed for, and any constructor arguments.
type State struct {
	Backend backend.Backend
	Subject string
	Args    map[string]any
}

// MemberDef declares one member of a defined resource type as data. Exactly
// one of Get, Call or Value applies, selected by Kind.
type MemberDef struct {
	Kind  MemberKind
	Get   func(ctx context.Context, s *State) (any, error)
	Call  func(ctx context.Context, s *State, arg any) (any, error)
	Value any
}

// Definition declares a resource type as data: its name, constructor shape
// and member table. Define turns it into a Provider, which keeps the
// catalogue of resource types swappable without touching the engine.
type Definition struct {
	// Name is the UpperCamel type name.
	Name string

	// Params are the constructor parameter names beyond the subject.
	Params []string

	// Subjectless marks types constructed with no parameters at all.
	Subjectless bool

	// Check, when set, probes whether the type can be inspected through a
	// backend; an error marks the combination unsupported.
	Check func(b backend.Backend) error

	// Members is the type-level member table.
	Members map[string]MemberDef
}

// Define builds a Provider from a Definition.
func Define(def Definition) Provider {
	return &definedProvider{def: def}
}

type definedProvider struct {
	def Definition
}

func (p *definedProvider) TypeName() string {
	return p.def.Name
}

func (p *definedProvider) Resolve(b backend.Backend) (Handle, error) {
	if p.def.Check != nil {
		if err := p.def.Check(b); err != nil {
			return nil, fmt.Errorf("%w: %s on backend %s: %v",
				ErrUnsupportedResource, CamelToSnake(p.def.Name), b.Selector(), err)
		}
	}
	return &definedHandle{def: p.def, backend: b}, nil
}

type definedHandle struct {
	def     Definition
	backend backend.Backend
}

func (h *definedHandle) TypeName() string {
	return CamelToSnake(h.def.Name)
}

func (h *definedHandle) Params() []string {
	return h.def.Params
}

func (h *definedHandle) TakesSubject() bool {
	return !h.def.Subjectless
}

func (h *definedHandle) New(subject string, args map[string]any) (Instance, error) {
	for name := range args {
		if !h.hasParam(name) {
			return nil, fmt.Errorf("%s does not accept a %s constructor argument",
				h.TypeName(), name)
		}
	}
	return &definedInstance{
		state: State{Backend: h.backend, Subject: subject, Args: args},
	}, nil
}

func (h *definedHandle) hasParam(name string) bool {
	for _, p := range h.def.Params {
		if p == name {
			return true
		}
	}
	return false
}

func (h *definedHandle) Member(name string) (Member, bool) {
	def, ok := h.def.Members[name]
	if !ok {
		return Member{}, false
	}
	switch def.Kind {
	case Attribute:
		get := def.Get
		return AttributeMember(func(ctx context.Context, inst Instance) (any, error) {
			return get(ctx, stateOf(inst))
		}), true
	case Operation:
		call := def.Call
		return OperationMember(func(ctx context.Context, inst Instance, arg any) (any, error) {
			return call(ctx, stateOf(inst), arg)
		}), true
	default:
		return ValueMember(def.Value), true
	}
}

// MemberNames returns the member table's names in sorted order.
func (h *definedHandle) MemberNames() []string {
	names := make([]string, 0, len(h.def.Members))
	for name := range h.def.Members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

type definedInstance struct {
	state State
}

func (i *definedInstance) Subject() string {
	return i.state.Subject
}

// Member always misses: defined types carry their whole member table at the
// handle level.
func (i *definedInstance) Member(string) (Member, bool) {
	return Member{}, false
}

// stateOf recovers the instance state a handle-level member runs against.
func stateOf(inst Instance) *State {
	if di, ok := inst.(*definedInstance); ok {
		return &di.state
	}
	return &State{Subject: inst.Subject()}
}
