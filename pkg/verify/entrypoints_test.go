package verify

import (
	"context"
	"testing"

	"github.com/hostspec/hostspec/pkg/compare"
	"github.com/hostspec/hostspec/pkg/resource"
)

func TestBuildEntryPointsOnePerType(t *testing.T) {
	dir := resource.NewDirectory()
	for _, name := range []string{"Package", "SystemInfo"} {
		h := &fakeHandle{typeName: resource.CamelToSnake(name)}
		if err := dir.Register(&fakeProvider{name: name, handle: h}); err != nil {
			t.Fatalf("Register error: %v", err)
		}
	}

	set := BuildEntryPoints(dir, compare.NewRegistry(), fakeBackend{}, nil)

	names := set.Names()
	want := []string{"package", "system_info"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestEntryPointLookupAndInvoke(t *testing.T) {
	h := &fakeHandle{
		typeName: "package",
		members:  map[string]resource.Member{"is_installed": boolAttr(true)},
	}
	dir := resource.NewDirectory()
	if err := dir.Register(&fakeProvider{name: "Package", handle: h}); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	set := BuildEntryPoints(dir, compare.NewRegistry(), fakeBackend{}, nil)

	ep, ok := set.Lookup("package")
	if !ok {
		t.Fatal("expected package entry point")
	}
	report, err := ep(context.Background(), "chrony", map[string]any{"is_installed": true})
	if err != nil {
		t.Fatalf("entry point error: %v", err)
	}
	if !report.Success || len(report.Passed) != 1 {
		t.Errorf("unexpected report: %+v", report)
	}

	if _, ok := set.Lookup("quantum_flux"); ok {
		t.Error("expected lookup miss for unknown type")
	}

	if _, ok := set.Dispatcher("package"); !ok {
		t.Error("expected dispatcher for package")
	}
}
