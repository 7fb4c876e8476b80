package backend

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
)

// Local executes commands on the host running this process.
type Local struct{}

// NewLocal creates the local-execution backend.
func NewLocal() *Local {
	return &Local{}
}

// Selector returns the canonical local selector.
func (l *Local) Selector() string {
	return DefaultSelector
}

// RunCommand runs a command locally, capturing stdout and stderr. A non-zero
// exit is returned in the result; only failures to execute at all (command
// missing, context cancelled) surface as errors.
func (l *Local) RunCommand(ctx context.Context, name string, args ...string) (CommandResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := CommandResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			result.ExitStatus = exitErr.ExitCode()
			return result, nil
		}
		return result, err
	}
	return result, nil
}
