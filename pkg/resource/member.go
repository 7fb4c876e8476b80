// Package resource defines the provider directory and the capability model
// for inspectable host resources. A provider supplies a backend-bound handle
// for one resource type; a handle constructs instances and exposes a member
// table of attributes, operations and plain values that the verification
// engine resolves by name.
package resource

import "context"

// MemberKind classifies how a resolved member is invoked.
type MemberKind int

const (
	// Attribute is a computed member invoked with no arguments.
	Attribute MemberKind = iota
	// Operation is a member requiring exactly one argument.
	Operation
	// Value is a plain data field returned as-is.
	Value
)

// String returns the member kind's name.
func (k MemberKind) String() string {
	switch k {
	case Attribute:
		return "attribute"
	case Operation:
		return "operation"
	default:
		return "value"
	}
}

// Member is one capability resolved from a handle or an instance. Exactly one
// of Get, Call or Plain is meaningful, selected by Kind. Handle-level members
// receive the instance they are invoked against, mirroring how a computed
// attribute defined on a type is evaluated against an instance of it.
type Member struct {
	Kind  MemberKind
	Get   func(ctx context.Context, inst Instance) (any, error)
	Call  func(ctx context.Context, inst Instance, arg any) (any, error)
	Plain any
}

// AttributeMember wraps a zero-argument accessor as an Attribute member.
func AttributeMember(get func(ctx context.Context, inst Instance) (any, error)) Member {
	return Member{Kind: Attribute, Get: get}
}

// OperationMember wraps a single-argument accessor as an Operation member.
func OperationMember(call func(ctx context.Context, inst Instance, arg any) (any, error)) Member {
	return Member{Kind: Operation, Call: call}
}

// ValueMember wraps a plain value as a Value member.
func ValueMember(v any) Member {
	return Member{Kind: Value, Plain: v}
}
