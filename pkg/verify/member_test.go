package verify

import (
	"context"
	"errors"
	"testing"

	"github.com/hostspec/hostspec/pkg/resource"
)

func TestResolveMemberHandleBeforeInstance(t *testing.T) {
	inst := &fakeInstance{
		subject: "python",
		members: map[string]resource.Member{"origin": resource.ValueMember("instance")},
	}
	h := &fakeHandle{
		typeName: "package",
		members:  map[string]resource.Member{"origin": resource.ValueMember("handle")},
		inst:     inst,
	}

	m, err := ResolveMember(h, inst, "origin")
	if err != nil {
		t.Fatalf("ResolveMember error: %v", err)
	}
	if m.Plain != "handle" {
		t.Errorf("handle-level member must win, got %v", m.Plain)
	}
}

func TestResolveMemberFallsBackToInstance(t *testing.T) {
	inst := &fakeInstance{
		subject: "python",
		members: map[string]resource.Member{"release": resource.ValueMember("bookworm")},
	}
	h := &fakeHandle{typeName: "package", inst: inst}

	m, err := ResolveMember(h, inst, "release")
	if err != nil {
		t.Fatalf("ResolveMember error: %v", err)
	}
	if m.Plain != "bookworm" {
		t.Errorf("expected instance member, got %v", m.Plain)
	}
}

func TestResolveMemberUnknown(t *testing.T) {
	inst := &fakeInstance{subject: "python"}
	h := &fakeHandle{typeName: "package", inst: inst}

	_, err := ResolveMember(h, inst, "bogus")
	if !errors.Is(err, ErrUnknownMember) {
		t.Fatalf("expected ErrUnknownMember, got %v", err)
	}
}

func TestInvokeAttribute(t *testing.T) {
	inst := &fakeInstance{subject: "python"}
	m := boolAttr("2.7.9-1")

	actual, err := InvokeMember(context.Background(), m, inst, "version", mustParse(t, true))
	if err != nil {
		t.Fatalf("InvokeMember error: %v", err)
	}
	if actual != "2.7.9-1" {
		t.Errorf("expected 2.7.9-1, got %v", actual)
	}
}

func TestInvokeOperationRequiresParameter(t *testing.T) {
	inst := &fakeInstance{subject: "/etc/chrony/chrony.conf"}
	m := resource.OperationMember(func(_ context.Context, _ resource.Instance, arg any) (any, error) {
		return arg, nil
	})

	// Bare boolean: no argument map at all.
	_, err := InvokeMember(context.Background(), m, inst, "contains", mustParse(t, true))
	if !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument for bare boolean, got %v", err)
	}

	// Structured expectation without a parameter key.
	exp := mustParse(t, map[string]any{"expected": true, "comparison": "is_"})
	_, err = InvokeMember(context.Background(), m, inst, "contains", exp)
	if !errors.Is(err, ErrMissingArgument) {
		t.Fatalf("expected ErrMissingArgument for missing parameter key, got %v", err)
	}

	// Parameter present: invoked with that single argument.
	exp = mustParse(t, map[string]any{"expected": "pool", "comparison": "eq", "parameter": "pool"})
	actual, err := InvokeMember(context.Background(), m, inst, "contains", exp)
	if err != nil {
		t.Fatalf("InvokeMember error: %v", err)
	}
	if actual != "pool" {
		t.Errorf("expected operation to receive parameter, got %v", actual)
	}
}

func TestInvokePlainValue(t *testing.T) {
	inst := &fakeInstance{subject: "python"}
	m := resource.ValueMember(42)

	actual, err := InvokeMember(context.Background(), m, inst, "count", mustParse(t, true))
	if err != nil {
		t.Fatalf("InvokeMember error: %v", err)
	}
	if actual != 42 {
		t.Errorf("expected 42, got %v", actual)
	}
}
