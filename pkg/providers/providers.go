// Package providers ships the built-in resource catalogue: packages,
// services, files, sockets, users, groups, kernel parameters, network
// interfaces and system info, all inspected by running commands through a
// backend. The catalogue is deliberately swappable; the verification engine
// only ever sees the provider directory.
package providers

import (
	"context"
	"strings"

	"github.com/hostspec/hostspec/pkg/resource"
)

// RegisterAll registers every built-in provider in the directory.
func RegisterAll(dir *resource.Directory) error {
	all := []resource.Provider{
		NewPackage(),
		NewService(),
		NewFile(),
		NewSocket(),
		NewUser(),
		NewGroup(),
		NewSysctl(),
		NewInterface(),
		NewSystemInfo(),
	}
	for _, p := range all {
		if err := dir.Register(p); err != nil {
			return err
		}
	}
	return nil
}

// succeeds runs a command and reports whether it exited zero.
func succeeds(ctx context.Context, s *resource.State, name string, args ...string) (bool, error) {
	res, err := s.Backend.RunCommand(ctx, name, args...)
	if err != nil {
		return false, err
	}
	return res.Succeeded(), nil
}

// output runs a command and returns its trimmed stdout; a non-zero exit
// yields an empty string.
func output(ctx context.Context, s *resource.State, name string, args ...string) (string, error) {
	res, err := s.Backend.RunCommand(ctx, name, args...)
	if err != nil {
		return "", err
	}
	if !res.Succeeded() {
		return "", nil
	}
	return strings.TrimSpace(res.Stdout), nil
}
