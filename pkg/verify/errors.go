package verify

import (
	"errors"
	"fmt"
)

// Per-check errors. Each is recovered locally into the fail messages of the
// report; a single malformed check never prevents evaluation of the rest.
var (
	// ErrUnknownMember indicates a declared check naming a member that exists
	// on neither the resource handle nor its instance.
	ErrUnknownMember = errors.New("unknown member")

	// ErrMissingArgument indicates an operation member invoked without a
	// usable "parameter" value.
	ErrMissingArgument = errors.New("missing argument")

	// ErrInvalidComparator indicates a structured expectation naming a
	// comparison the registry does not recognize.
	ErrInvalidComparator = errors.New("invalid comparator")

	// ErrInvalidExpectationType indicates an expectation that is neither a
	// boolean nor a comparator spec.
	ErrInvalidExpectationType = errors.New("invalid expectation type")
)

// ResourceConstructionError reports a constructor arity or type mismatch.
// Unlike an unsupported resource, this indicates a malformed declaration, so
// it is fatal for the invocation and propagated to the caller rather than
// folded into the report.
type ResourceConstructionError struct {
	Resource string
	Subject  string
	Err      error
}

func (e *ResourceConstructionError) Error() string {
	return fmt.Sprintf("constructing %s %q: %v", e.Resource, e.Subject, e.Err)
}

func (e *ResourceConstructionError) Unwrap() error {
	return e.Err
}
