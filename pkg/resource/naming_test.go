package resource

import "testing"

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"package", "Package"},
		{"system_info", "SystemInfo"},
		{"file", "File"},
		{"a_b_c", "ABC"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := SnakeToCamel(tt.in); got != tt.want {
			t.Errorf("SnakeToCamel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCamelToSnake(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Package", "package"},
		{"SystemInfo", "system_info"},
		{"File", "file"},
	}
	for _, tt := range tests {
		if got := CamelToSnake(tt.in); got != tt.want {
			t.Errorf("CamelToSnake(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	for _, name := range []string{"package", "system_info", "socket"} {
		if got := CamelToSnake(SnakeToCamel(name)); got != name {
			t.Errorf("round trip of %q = %q", name, got)
		}
	}
}
