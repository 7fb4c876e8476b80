// Package compare provides the fixed comparator vocabulary used to evaluate
// declared expectations against actual resource state. Comparator names follow
// the conventional operator naming (eq, ne, lt, ...) plus a regexp "search"
// comparator, and every comparator is applied as comparator(expected, actual).
package compare

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
)

// ErrComparatorNotFound indicates a comparison name with no registered
// comparator. It is surfaced to the caller, never treated as a failed check.
var ErrComparatorNotFound = errors.New("comparator not found")

// Comparator is a binary predicate applied as comparator(expected, actual).
// The argument order matters for the non-commutative comparators: lt means
// "expected < actual", and search treats expected as the pattern.
type Comparator func(expected, actual any) (bool, error)

// Registry maps comparison names to comparators. It is populated once and
// read-only afterward, so concurrent Resolve calls need no locking.
type Registry struct {
	comparators map[string]Comparator
}

// NewRegistry returns a registry holding the built-in comparator vocabulary.
func NewRegistry() *Registry {
	return &Registry{comparators: map[string]Comparator{
		"eq":       compareEq,
		"ne":       compareNe,
		"lt":       compareLt,
		"le":       compareLe,
		"gt":       compareGt,
		"ge":       compareGe,
		"contains": compareContains,
		"is_":      compareIs,
		"is_not":   compareIsNot,
		"search":   compareSearch,
	}}
}

// Resolve returns the comparator registered under name.
func (r *Registry) Resolve(name string) (Comparator, error) {
	cmp, ok := r.comparators[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrComparatorNotFound, name)
	}
	return cmp, nil
}

// Names returns all registered comparison names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.comparators))
	for name := range r.comparators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func compareEq(expected, actual any) (bool, error) {
	return equalValues(expected, actual), nil
}

func compareNe(expected, actual any) (bool, error) {
	return !equalValues(expected, actual), nil
}

func compareLt(expected, actual any) (bool, error) {
	c, err := orderValues(expected, actual)
	return c < 0, err
}

func compareLe(expected, actual any) (bool, error) {
	c, err := orderValues(expected, actual)
	return c <= 0, err
}

func compareGt(expected, actual any) (bool, error) {
	c, err := orderValues(expected, actual)
	return c > 0, err
}

func compareGe(expected, actual any) (bool, error) {
	c, err := orderValues(expected, actual)
	return c >= 0, err
}

// compareContains treats expected as the container and actual as the member:
// substring for strings, element membership for sequences, key membership for
// maps.
func compareContains(expected, actual any) (bool, error) {
	switch container := expected.(type) {
	case string:
		return strings.Contains(container, fmt.Sprintf("%v", actual)), nil
	case []any:
		for _, elem := range container {
			if equalValues(elem, actual) {
				return true, nil
			}
		}
		return false, nil
	case []string:
		for _, elem := range container {
			if equalValues(elem, actual) {
				return true, nil
			}
		}
		return false, nil
	case map[string]any:
		key, ok := actual.(string)
		if !ok {
			return false, nil
		}
		_, present := container[key]
		return present, nil
	default:
		return false, fmt.Errorf("contains: %T is not a container", expected)
	}
}

// compareIs is strict identity: the types must match exactly and the values
// must be equal. Unlike eq there is no numeric coercion, so 1 is not true and
// int(2) is not float64(2).
func compareIs(expected, actual any) (bool, error) {
	if reflect.TypeOf(expected) != reflect.TypeOf(actual) {
		return false, nil
	}
	return reflect.DeepEqual(expected, actual), nil
}

func compareIsNot(expected, actual any) (bool, error) {
	same, err := compareIs(expected, actual)
	return !same, err
}

// compareSearch treats expected as a regexp pattern and actual as the subject.
func compareSearch(expected, actual any) (bool, error) {
	pattern, ok := expected.(string)
	if !ok {
		pattern = fmt.Sprintf("%v", expected)
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return false, fmt.Errorf("search: invalid pattern %q: %w", pattern, err)
	}
	return re.MatchString(fmt.Sprintf("%v", actual)), nil
}

// equalValues compares two values, coercing numeric types so that YAML's int
// and float decodings of the same number compare equal.
func equalValues(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

// orderValues returns -1, 0 or 1 for a relative to b. Numbers order
// numerically, strings lexicographically; anything else is unordered.
func orderValues(a, b any) (int, error) {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		switch {
		case af < bf:
			return -1, nil
		case af > bf:
			return 1, nil
		default:
			return 0, nil
		}
	}
	as, aok := a.(string)
	bs, bok := b.(string)
	if aok && bok {
		return strings.Compare(as, bs), nil
	}
	return 0, fmt.Errorf("cannot order %T against %T", a, b)
}

// toFloat widens any numeric type to float64.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	case float32:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}
