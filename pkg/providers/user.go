package providers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hostspec/hostspec/pkg/resource"
)

// NewUser provides the "user" resource, backed by getent passwd.
func NewUser() resource.Provider {
	return resource.Define(resource.Definition{
		Name: "User",
		Members: map[string]resource.MemberDef{
			"exists": {Kind: resource.Attribute, Get: userExists},
			"uid":    {Kind: resource.Attribute, Get: userField(2, true)},
			"gid":    {Kind: resource.Attribute, Get: userField(3, true)},
			"home":   {Kind: resource.Attribute, Get: userField(5, false)},
			"shell":  {Kind: resource.Attribute, Get: userField(6, false)},
		},
	})
}

func userExists(ctx context.Context, s *resource.State) (any, error) {
	return succeeds(ctx, s, "getent", "passwd", s.Subject)
}

// userField extracts one colon-separated field of the passwd entry,
// optionally converted to an integer.
func userField(index int, numeric bool) func(ctx context.Context, s *resource.State) (any, error) {
	return func(ctx context.Context, s *resource.State) (any, error) {
		out, err := output(ctx, s, "getent", "passwd", s.Subject)
		if err != nil {
			return nil, err
		}
		if out == "" {
			return nil, fmt.Errorf("user %q does not exist", s.Subject)
		}
		fields := strings.Split(out, ":")
		if index >= len(fields) {
			return nil, fmt.Errorf("malformed passwd entry for %q", s.Subject)
		}
		if numeric {
			return strconv.Atoi(fields[index])
		}
		return fields[index], nil
	}
}
