package backend

import (
	"context"
	"strings"
	"testing"
)

func TestGetDefaultSelector(t *testing.T) {
	b, err := Get("")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if b.Selector() != DefaultSelector {
		t.Errorf("expected %q, got %q", DefaultSelector, b.Selector())
	}
}

func TestGetLocal(t *testing.T) {
	b, err := Get("local://")
	if err != nil {
		t.Fatalf("Get error: %v", err)
	}
	if _, ok := b.(*Local); !ok {
		t.Errorf("expected *Local, got %T", b)
	}
}

func TestGetInvalidSelector(t *testing.T) {
	if _, err := Get("localhost"); err == nil {
		t.Error("expected error for selector without scheme")
	}
}

func TestGetUnknownScheme(t *testing.T) {
	if _, err := Get("carrierpigeon://host"); err == nil {
		t.Error("expected error for unknown scheme")
	}
}

func TestLocalRunCommand(t *testing.T) {
	b := NewLocal()

	result, err := b.RunCommand(context.Background(), "sh", "-c", "echo hello")
	if err != nil {
		t.Fatalf("RunCommand error: %v", err)
	}
	if !result.Succeeded() {
		t.Errorf("expected exit 0, got %d", result.ExitStatus)
	}
	if strings.TrimSpace(result.Stdout) != "hello" {
		t.Errorf("expected stdout %q, got %q", "hello", result.Stdout)
	}
}

func TestLocalRunCommandNonZeroExit(t *testing.T) {
	b := NewLocal()

	result, err := b.RunCommand(context.Background(), "sh", "-c", "echo oops >&2; exit 3")
	if err != nil {
		t.Fatalf("non-zero exit should not be an error: %v", err)
	}
	if result.ExitStatus != 3 {
		t.Errorf("expected exit 3, got %d", result.ExitStatus)
	}
	if strings.TrimSpace(result.Stderr) != "oops" {
		t.Errorf("expected stderr %q, got %q", "oops", result.Stderr)
	}
}
