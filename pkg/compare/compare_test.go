package compare

import (
	"errors"
	"testing"
)

func TestResolveUnknownComparator(t *testing.T) {
	reg := NewRegistry()
	if _, err := reg.Resolve("frobnicate"); !errors.Is(err, ErrComparatorNotFound) {
		t.Fatalf("expected ErrComparatorNotFound, got %v", err)
	}
}

func TestEqVersionStrings(t *testing.T) {
	reg := NewRegistry()
	eq, err := reg.Resolve("eq")
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}

	ok, err := eq("2.7.9-1", "2.7.9-1")
	if err != nil || !ok {
		t.Errorf("eq(2.7.9-1, 2.7.9-1) = %v, %v; want true", ok, err)
	}

	ok, err = eq("2.7.9-1", "3.0.0")
	if err != nil || ok {
		t.Errorf("eq(2.7.9-1, 3.0.0) = %v, %v; want false", ok, err)
	}
}

func TestNumericCoercion(t *testing.T) {
	reg := NewRegistry()
	eq, _ := reg.Resolve("eq")

	ok, err := eq(2, 2.0)
	if err != nil || !ok {
		t.Errorf("eq(2, 2.0) = %v, %v; want true", ok, err)
	}
}

// lt applies as lt(expected, actual): "expected < actual".
func TestOrderingArgumentOrder(t *testing.T) {
	reg := NewRegistry()

	tests := []struct {
		name     string
		expected any
		actual   any
		want     bool
	}{
		{"lt", 2, 3, true},
		{"lt", 3, 2, false},
		{"le", 2, 2, true},
		{"gt", 3, 2, true},
		{"gt", 2, 3, false},
		{"ge", 2, 2, true},
		{"lt", "abc", "abd", true},
	}
	for _, tt := range tests {
		cmp, err := reg.Resolve(tt.name)
		if err != nil {
			t.Fatalf("Resolve(%s) error: %v", tt.name, err)
		}
		got, err := cmp(tt.expected, tt.actual)
		if err != nil {
			t.Errorf("%s(%v, %v) error: %v", tt.name, tt.expected, tt.actual, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%s(%v, %v) = %v, want %v", tt.name, tt.expected, tt.actual, got, tt.want)
		}
	}
}

func TestOrderingUnorderableTypes(t *testing.T) {
	reg := NewRegistry()
	lt, _ := reg.Resolve("lt")
	if _, err := lt([]any{1}, "x"); err == nil {
		t.Error("expected error ordering slice against string")
	}
}

func TestContains(t *testing.T) {
	reg := NewRegistry()
	contains, _ := reg.Resolve("contains")

	tests := []struct {
		expected any
		actual   any
		want     bool
	}{
		{"hello world", "world", true},
		{"hello world", "mars", false},
		{[]any{"a", "b"}, "b", true},
		{[]any{"a", "b"}, "c", false},
		{[]any{1, 2}, 2.0, true},
		{map[string]any{"key": 1}, "key", true},
		{map[string]any{"key": 1}, "other", false},
	}
	for _, tt := range tests {
		got, err := contains(tt.expected, tt.actual)
		if err != nil {
			t.Errorf("contains(%v, %v) error: %v", tt.expected, tt.actual, err)
			continue
		}
		if got != tt.want {
			t.Errorf("contains(%v, %v) = %v, want %v", tt.expected, tt.actual, got, tt.want)
		}
	}

	if _, err := contains(42, "x"); err == nil {
		t.Error("expected error for non-container expected value")
	}
}

func TestIsStrictIdentity(t *testing.T) {
	reg := NewRegistry()
	is, _ := reg.Resolve("is_")

	ok, _ := is(true, true)
	if !ok {
		t.Error("is_(true, true) should pass")
	}
	ok, _ = is(true, 1)
	if ok {
		t.Error("is_(true, 1) should fail: types differ")
	}
	ok, _ = is(2, 2.0)
	if ok {
		t.Error("is_(2, 2.0) should fail: no numeric coercion")
	}

	isNot, _ := reg.Resolve("is_not")
	ok, _ = isNot(true, false)
	if !ok {
		t.Error("is_not(true, false) should pass")
	}
}

func TestSearch(t *testing.T) {
	reg := NewRegistry()
	search, _ := reg.Resolve("search")

	ok, err := search("^ssh", "sshd is running")
	if err != nil || !ok {
		t.Errorf("search(^ssh, sshd is running) = %v, %v; want true", ok, err)
	}
	ok, err = search("^ssh", "cron is running")
	if err != nil || ok {
		t.Errorf("search(^ssh, cron is running) = %v, %v; want false", ok, err)
	}

	if _, err := search("[invalid", "x"); err == nil {
		t.Error("expected error for invalid pattern")
	}
}

func TestNames(t *testing.T) {
	names := NewRegistry().Names()
	if len(names) == 0 {
		t.Fatal("expected registered comparator names")
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}
