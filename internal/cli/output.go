package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/hostspec/hostspec/pkg/manifest"
)

// Exit codes for CLI commands.
const (
	ExitSuccess      = 0 // All assertions passed
	ExitFailure      = 1 // One or more assertions failed
	ExitCommandError = 2 // Command error (bad suite, unknown backend, etc.)
)

// ExitError represents an error with a specific exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// NewExitError creates a new ExitError with the given code and message.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError wraps an existing error with an exit code.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from an error. A nil error is success;
// anything that is not an ExitError counts as a command error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitCommandError
}

var (
	passColor  = color.New(color.FgGreen)
	failColor  = color.New(color.FgRed, color.Bold)
	labelColor = color.New(color.FgCyan)
)

// RenderSuiteReport writes a human-readable suite report.
func RenderSuiteReport(w io.Writer, report manifest.SuiteReport) {
	labelColor.Fprintf(w, "Suite: %s\n", report.Suite)

	for _, res := range report.Results {
		fmt.Fprintf(w, "\n%s %q", res.Resource, res.Subject)
		if res.ID != "" && res.ID != res.Subject {
			fmt.Fprintf(w, " (%s)", res.ID)
		}
		fmt.Fprintln(w)

		if res.Error != "" {
			failColor.Fprintf(w, "  ERROR %s\n", res.Error)
			continue
		}
		for _, msg := range res.Report.Passed {
			passColor.Fprintf(w, "  PASS ")
			fmt.Fprintln(w, msg)
		}
		for _, msg := range res.Report.Failed {
			failColor.Fprintf(w, "  FAIL ")
			fmt.Fprintln(w, msg)
		}
	}

	fmt.Fprintln(w)
	passed, failed := tally(report)
	if report.Success {
		passColor.Fprintf(w, "PASSED")
	} else {
		failColor.Fprintf(w, "FAILED")
	}
	fmt.Fprintf(w, "  %d passed, %d failed in %s\n", passed, failed, report.Duration)
}

// RenderJSON writes any payload as indented JSON.
func RenderJSON(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(payload)
}

func tally(report manifest.SuiteReport) (passed, failed int) {
	for _, res := range report.Results {
		passed += len(res.Report.Passed)
		failed += len(res.Report.Failed)
		if res.Error != "" {
			failed++
		}
	}
	return passed, failed
}
