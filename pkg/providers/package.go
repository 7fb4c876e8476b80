package providers

import (
	"context"
	"strings"

	"github.com/hostspec/hostspec/pkg/resource"
)

// NewPackage provides the "package" resource: installed state and version of
// a system package, queried through dpkg or rpm, whichever the host carries.
func NewPackage() resource.Provider {
	return resource.Define(resource.Definition{
		Name: "Package",
		Members: map[string]resource.MemberDef{
			"is_installed": {Kind: resource.Attribute, Get: packageInstalled},
			"version":      {Kind: resource.Attribute, Get: packageVersion},
		},
	})
}

func packageInstalled(ctx context.Context, s *resource.State) (any, error) {
	installed, _, err := queryPackage(ctx, s)
	if err != nil {
		return nil, err
	}
	return installed, nil
}

func packageVersion(ctx context.Context, s *resource.State) (any, error) {
	_, version, err := queryPackage(ctx, s)
	if err != nil {
		return nil, err
	}
	return version, nil
}

// queryPackage asks dpkg-query first and falls back to rpm when dpkg is not
// present on the host. "Not installed" is a clean false, not an error.
func queryPackage(ctx context.Context, s *resource.State) (bool, string, error) {
	res, err := s.Backend.RunCommand(ctx, "dpkg-query", "-W", "-f=${Status}\t${Version}", s.Subject)
	if err == nil {
		if !res.Succeeded() {
			return false, "", nil
		}
		status, version, _ := strings.Cut(strings.TrimSpace(res.Stdout), "\t")
		return strings.HasSuffix(status, " installed"), version, nil
	}

	res, err = s.Backend.RunCommand(ctx, "rpm", "-q", "--qf", "%{VERSION}-%{RELEASE}", s.Subject)
	if err != nil {
		return false, "", err
	}
	if !res.Succeeded() {
		return false, "", nil
	}
	return true, strings.TrimSpace(res.Stdout), nil
}
