package verify

import (
	"context"
	"fmt"

	"github.com/hostspec/hostspec/pkg/resource"
)

// ResolveMember finds a member by name, consulting the handle's type-level
// table before the instance. The order is a hard contract: a type-level
// member shadows an instance-level one of the same name.
func ResolveMember(h resource.Handle, inst resource.Instance, name string) (resource.Member, error) {
	if m, ok := h.Member(name); ok {
		return m, nil
	}
	if m, ok := inst.Member(name); ok {
		return m, nil
	}
	return resource.Member{}, fmt.Errorf(
		"%w: the %s resource has no property or method named %s",
		ErrUnknownMember, h.TypeName(), name)
}

// InvokeMember applies the calling convention for a resolved member: an
// attribute is invoked with no arguments, an operation requires the
// expectation to carry a "parameter" value, and a plain value is returned
// as-is.
func InvokeMember(ctx context.Context, m resource.Member, inst resource.Instance, name string, exp Expectation) (any, error) {
	switch m.Kind {
	case resource.Attribute:
		return m.Get(ctx, inst)
	case resource.Operation:
		if exp.Spec == nil {
			return nil, fmt.Errorf(
				"%w: %s is a method, an argument map with a parameter key is required",
				ErrMissingArgument, name)
		}
		if !exp.Spec.HasParameter {
			return nil, fmt.Errorf(
				"%w: the argument map for %s has no key named parameter",
				ErrMissingArgument, name)
		}
		return m.Call(ctx, inst, exp.Spec.Parameter)
	default:
		return m.Plain, nil
	}
}
