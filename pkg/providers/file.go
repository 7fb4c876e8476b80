package providers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/hostspec/hostspec/pkg/resource"
)

// NewFile provides the "file" resource: existence, kind, ownership, mode and
// content of a path. The contains operation takes a regexp pattern argument.
func NewFile() resource.Provider {
	return resource.Define(resource.Definition{
		Name: "File",
		Members: map[string]resource.MemberDef{
			"exists":       {Kind: resource.Attribute, Get: fileExists},
			"is_file":      {Kind: resource.Attribute, Get: fileIsFile},
			"is_directory": {Kind: resource.Attribute, Get: fileIsDirectory},
			"mode":         {Kind: resource.Attribute, Get: fileMode},
			"user":         {Kind: resource.Attribute, Get: fileUser},
			"group":        {Kind: resource.Attribute, Get: fileGroup},
			"size":         {Kind: resource.Attribute, Get: fileSize},
			"content":      {Kind: resource.Attribute, Get: fileContent},
			"contains":     {Kind: resource.Operation, Call: fileContains},
		},
	})
}

func fileExists(ctx context.Context, s *resource.State) (any, error) {
	return succeeds(ctx, s, "test", "-e", s.Subject)
}

func fileIsFile(ctx context.Context, s *resource.State) (any, error) {
	return succeeds(ctx, s, "test", "-f", s.Subject)
}

func fileIsDirectory(ctx context.Context, s *resource.State) (any, error) {
	return succeeds(ctx, s, "test", "-d", s.Subject)
}

func fileMode(ctx context.Context, s *resource.State) (any, error) {
	return output(ctx, s, "stat", "-c", "%a", s.Subject)
}

func fileUser(ctx context.Context, s *resource.State) (any, error) {
	return output(ctx, s, "stat", "-c", "%U", s.Subject)
}

func fileGroup(ctx context.Context, s *resource.State) (any, error) {
	return output(ctx, s, "stat", "-c", "%G", s.Subject)
}

func fileSize(ctx context.Context, s *resource.State) (any, error) {
	out, err := output(ctx, s, "stat", "-c", "%s", s.Subject)
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, fmt.Errorf("stat %s: no size reported", s.Subject)
	}
	return strconv.Atoi(out)
}

func fileContent(ctx context.Context, s *resource.State) (any, error) {
	res, err := s.Backend.RunCommand(ctx, "cat", s.Subject)
	if err != nil {
		return nil, err
	}
	if !res.Succeeded() {
		return nil, fmt.Errorf("cat %s: %s", s.Subject, res.Stderr)
	}
	return res.Stdout, nil
}

// fileContains greps the file for the given pattern.
func fileContains(ctx context.Context, s *resource.State, arg any) (any, error) {
	pattern, ok := arg.(string)
	if !ok {
		return nil, fmt.Errorf("contains parameter must be a string, got %T", arg)
	}
	return succeeds(ctx, s, "grep", "-q", "-e", pattern, "--", s.Subject)
}
