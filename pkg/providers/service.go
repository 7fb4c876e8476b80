package providers

import (
	"context"

	"github.com/hostspec/hostspec/pkg/resource"
)

// NewService provides the "service" resource: running and enabled state of a
// systemd unit.
func NewService() resource.Provider {
	return resource.Define(resource.Definition{
		Name: "Service",
		Members: map[string]resource.MemberDef{
			"is_running": {Kind: resource.Attribute, Get: serviceRunning},
			"is_enabled": {Kind: resource.Attribute, Get: serviceEnabled},
		},
	})
}

func serviceRunning(ctx context.Context, s *resource.State) (any, error) {
	return succeeds(ctx, s, "systemctl", "is-active", "--quiet", s.Subject)
}

func serviceEnabled(ctx context.Context, s *resource.State) (any, error) {
	return succeeds(ctx, s, "systemctl", "is-enabled", "--quiet", s.Subject)
}
