package verify

import (
	"fmt"
	"strings"
)

// DeclaredCheck is one user-supplied (member name, expectation) pair.
type DeclaredCheck struct {
	Name        string
	Expectation any
}

// ReservedPrefix marks declared names reserved for the calling layer's own
// bookkeeping. Checks with this prefix are filtered out before binding and
// evaluation.
const ReservedPrefix = "_"

// CompareSpec is the structured form of an expectation: an expected value, a
// comparison name, and an optional parameter for operation members.
type CompareSpec struct {
	Expected     any
	Comparison   string
	Parameter    any
	HasParameter bool
}

// Expectation is a parsed expectation: either a bare boolean or a comparator
// spec. Exactly one of Bool and Spec is set.
type Expectation struct {
	Bool *bool
	Spec *CompareSpec
}

// ParseExpectation classifies a raw expectation value. Anything that is not a
// boolean or a mapping is a caller contract violation.
func ParseExpectation(v any) (Expectation, error) {
	switch x := v.(type) {
	case bool:
		return Expectation{Bool: &x}, nil
	case map[string]any:
		spec := &CompareSpec{Expected: x["expected"]}
		if c, ok := x["comparison"].(string); ok {
			spec.Comparison = c
		}
		if p, ok := x["parameter"]; ok {
			spec.Parameter = p
			spec.HasParameter = true
		}
		return Expectation{Spec: spec}, nil
	default:
		return Expectation{}, fmt.Errorf("%w: expected bool or map but received %T",
			ErrInvalidExpectationType, v)
	}
}

// String renders the expectation the way it was declared, for report
// messages.
func (e Expectation) String() string {
	switch {
	case e.Bool != nil:
		return fmt.Sprintf("%v", *e.Bool)
	case e.Spec != nil:
		var b strings.Builder
		b.WriteString("{expected: ")
		fmt.Fprintf(&b, "%v", e.Spec.Expected)
		b.WriteString(", comparison: ")
		b.WriteString(e.Spec.Comparison)
		if e.Spec.HasParameter {
			fmt.Fprintf(&b, ", parameter: %v", e.Spec.Parameter)
		}
		b.WriteString("}")
		return b.String()
	default:
		return "<none>"
	}
}
