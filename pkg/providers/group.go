package providers

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/hostspec/hostspec/pkg/resource"
)

// NewGroup provides the "group" resource, backed by getent group.
func NewGroup() resource.Provider {
	return resource.Define(resource.Definition{
		Name: "Group",
		Members: map[string]resource.MemberDef{
			"exists": {Kind: resource.Attribute, Get: groupExists},
			"gid":    {Kind: resource.Attribute, Get: groupGid},
		},
	})
}

func groupExists(ctx context.Context, s *resource.State) (any, error) {
	return succeeds(ctx, s, "getent", "group", s.Subject)
}

func groupGid(ctx context.Context, s *resource.State) (any, error) {
	out, err := output(ctx, s, "getent", "group", s.Subject)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, fmt.Errorf("group %q does not exist", s.Subject)
	}
	fields := strings.Split(out, ":")
	if len(fields) < 3 {
		return nil, fmt.Errorf("malformed group entry for %q", s.Subject)
	}
	return strconv.Atoi(fields[2])
}
