package manifest

import (
	"fmt"
	"strings"

	"github.com/hostspec/hostspec/pkg/resource"
)

// ValidationError represents a single validation failure.
type ValidationError struct {
	Declaration string
	Message     string
}

func (e ValidationError) Error() string {
	if e.Declaration == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Declaration, e.Message)
}

// ValidationResult holds all validation errors for a suite.
type ValidationResult struct {
	Errors []ValidationError
}

// Valid returns true if no validation errors were found.
func (r ValidationResult) Valid() bool {
	return len(r.Errors) == 0
}

// Error returns a combined message from all validation errors.
func (r ValidationResult) Error() string {
	if r.Valid() {
		return ""
	}
	msgs := make([]string, len(r.Errors))
	for i, e := range r.Errors {
		msgs[i] = e.Error()
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}

// Validate checks a suite for structural problems before it runs: missing or
// unknown resource types and empty declarations. Reserved-prefix check names
// are legal (they are filtered at dispatch), so they are not flagged here.
func Validate(suite Suite, dir *resource.Directory) ValidationResult {
	var result ValidationResult

	if len(suite.Declarations) == 0 {
		result.Errors = append(result.Errors, ValidationError{
			Message: "suite declares no checks",
		})
		return result
	}

	for _, decl := range suite.Declarations {
		if decl.Resource == "" {
			result.Errors = append(result.Errors, ValidationError{
				Declaration: decl.ID, Message: "missing resource type",
			})
			continue
		}
		if !dir.Has(decl.Resource) {
			result.Errors = append(result.Errors, ValidationError{
				Declaration: decl.ID,
				Message:     fmt.Sprintf("unknown resource type %q", decl.Resource),
			})
		}
	}
	return result
}
