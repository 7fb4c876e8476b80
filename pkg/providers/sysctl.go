package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostspec/hostspec/pkg/resource"
)

// NewSysctl provides the "sysctl" resource: the current value of one kernel
// parameter, with the parameter key as the subject.
func NewSysctl() resource.Provider {
	return resource.Define(resource.Definition{
		Name: "Sysctl",
		Members: map[string]resource.MemberDef{
			"value": {Kind: resource.Attribute, Get: sysctlValue},
		},
	})
}

func sysctlValue(ctx context.Context, s *resource.State) (any, error) {
	res, err := s.Backend.RunCommand(ctx, "sysctl", "-n", s.Subject)
	if err != nil {
		return nil, err
	}
	if !res.Succeeded() {
		return nil, fmt.Errorf("sysctl %s: %s", s.Subject, res.Stderr)
	}
	return strings.TrimSpace(res.Stdout), nil
}
