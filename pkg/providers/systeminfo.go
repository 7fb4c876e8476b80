package providers

import (
	"context"
	"strings"

	"github.com/hostspec/hostspec/pkg/resource"
)

// NewSystemInfo provides the subjectless "system_info" resource: kernel and
// distribution facts about the host itself.
func NewSystemInfo() resource.Provider {
	return resource.Define(resource.Definition{
		Name:        "SystemInfo",
		Subjectless: true,
		Members: map[string]resource.MemberDef{
			"type":         {Kind: resource.Attribute, Get: systemType},
			"release":      {Kind: resource.Attribute, Get: systemRelease},
			"arch":         {Kind: resource.Attribute, Get: systemArch},
			"distribution": {Kind: resource.Attribute, Get: systemDistribution},
			"codename":     {Kind: resource.Attribute, Get: systemCodename},
		},
	})
}

func systemType(ctx context.Context, s *resource.State) (any, error) {
	out, err := output(ctx, s, "uname", "-s")
	return strings.ToLower(out), err
}

func systemRelease(ctx context.Context, s *resource.State) (any, error) {
	return output(ctx, s, "uname", "-r")
}

func systemArch(ctx context.Context, s *resource.State) (any, error) {
	return output(ctx, s, "uname", "-m")
}

func systemDistribution(ctx context.Context, s *resource.State) (any, error) {
	return osReleaseField(ctx, s, "ID")
}

func systemCodename(ctx context.Context, s *resource.State) (any, error) {
	return osReleaseField(ctx, s, "VERSION_CODENAME")
}

func osReleaseField(ctx context.Context, s *resource.State, key string) (any, error) {
	out, err := output(ctx, s, "sh", "-c", ". /etc/os-release 2>/dev/null && printf %s \"$"+key+"\"")
	if err != nil {
		return nil, err
	}
	return out, nil
}
