package verify

import (
	"fmt"

	"github.com/hostspec/hostspec/pkg/compare"
)

// Evaluate applies an expectation to an actual result.
//
// A boolean expectation passes iff the actual result is that exact boolean:
// a non-boolean result never passes against a boolean expectation, so true
// declared against an actual result of 1 fails. A structured expectation
// resolves its comparison through the registry and applies it as
// comparator(expected, actual).
func Evaluate(reg *compare.Registry, exp Expectation, actual any) (bool, error) {
	if exp.Bool != nil {
		b, ok := actual.(bool)
		return ok && b == *exp.Bool, nil
	}

	spec := exp.Spec
	if spec == nil {
		return false, fmt.Errorf("%w: expectation carries neither a boolean nor a comparator spec",
			ErrInvalidExpectationType)
	}
	if spec.Comparison == "" {
		return false, fmt.Errorf("%w: the expectation map has no comparison key",
			ErrInvalidComparator)
	}

	cmp, err := reg.Resolve(spec.Comparison)
	if err != nil {
		return false, fmt.Errorf("%w: %q is not a valid selection",
			ErrInvalidComparator, spec.Comparison)
	}
	return cmp(spec.Expected, actual)
}
