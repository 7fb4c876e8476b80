package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/hostspec/hostspec/pkg/resource"
)

// NewInterface provides the "interface" resource: a network interface,
// optionally restricted to one address family through the family constructor
// argument ("inet" or "inet6").
func NewInterface() resource.Provider {
	return resource.Define(resource.Definition{
		Name:   "Interface",
		Params: []string{"family"},
		Members: map[string]resource.MemberDef{
			"exists":    {Kind: resource.Attribute, Get: interfaceExists},
			"addresses": {Kind: resource.Attribute, Get: interfaceAddresses},
		},
	})
}

func interfaceExists(ctx context.Context, s *resource.State) (any, error) {
	return succeeds(ctx, s, "ip", "link", "show", "dev", s.Subject)
}

func interfaceAddresses(ctx context.Context, s *resource.State) (any, error) {
	args := []string{"-o", "addr", "show", "dev", s.Subject}
	if family, ok := s.Args["family"]; ok {
		fam, isStr := family.(string)
		if !isStr {
			return nil, fmt.Errorf("family constructor argument must be a string, got %T", family)
		}
		args = append([]string{"-f", fam}, args...)
	}

	res, err := s.Backend.RunCommand(ctx, "ip", args...)
	if err != nil {
		return nil, err
	}
	if !res.Succeeded() {
		return nil, fmt.Errorf("ip addr show %s: %s", s.Subject, res.Stderr)
	}

	// Each line reads "2: eth0    inet 10.0.0.5/24 brd ...". The address is
	// the field after the family keyword, without its prefix length.
	addresses := []any{}
	for _, line := range strings.Split(res.Stdout, "\n") {
		fields := strings.Fields(line)
		for i, f := range fields {
			if (f == "inet" || f == "inet6") && i+1 < len(fields) {
				addr, _, _ := strings.Cut(fields[i+1], "/")
				addresses = append(addresses, addr)
			}
		}
	}
	return addresses, nil
}
