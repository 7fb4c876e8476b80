// Package verify implements the resource-verification dispatcher: it
// resolves a resource type through the provider directory, binds declared
// checks into constructor arguments and assertions, resolves each asserted
// member through the capability lookup, invokes it with the correct calling
// convention, evaluates the declared expectation against the actual result,
// and aggregates a pass/fail report.
package verify

import (
	"context"
	"errors"
	"log/slog"
	"sort"

	"github.com/hostspec/hostspec/pkg/backend"
	"github.com/hostspec/hostspec/pkg/compare"
	"github.com/hostspec/hostspec/pkg/resource"
)

// Dispatcher verifies declared checks against one resource type on one
// backend. It holds no per-invocation state, so a single dispatcher is safe
// for concurrent use.
type Dispatcher struct {
	typeName    string
	directory   *resource.Directory
	comparators *compare.Registry
	backend     backend.Backend
	logger      *slog.Logger
}

// NewDispatcher creates a dispatcher bound to one resource type name.
func NewDispatcher(typeName string, dir *resource.Directory, reg *compare.Registry, b backend.Backend, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		typeName:    typeName,
		directory:   dir,
		comparators: reg,
		backend:     b,
		logger:      logger,
	}
}

// TypeName returns the snake_case resource type this dispatcher verifies.
func (d *Dispatcher) TypeName() string {
	return d.typeName
}

// WithBackend returns a copy of the dispatcher targeting a different backend.
func (d *Dispatcher) WithBackend(b backend.Backend) *Dispatcher {
	copied := *d
	copied.backend = b
	return &copied
}

// Run evaluates checks given as a name-to-expectation mapping. Map iteration
// order is not deterministic, so checks are evaluated in sorted name order;
// callers that need declaration order use RunChecks.
func (d *Dispatcher) Run(ctx context.Context, subject string, checks map[string]any) (Report, error) {
	names := make([]string, 0, len(checks))
	for name := range checks {
		names = append(names, name)
	}
	sort.Strings(names)

	ordered := make([]DeclaredCheck, len(names))
	for i, name := range names {
		ordered[i] = DeclaredCheck{Name: name, Expectation: checks[name]}
	}
	return d.RunChecks(ctx, subject, ordered)
}

// RunChecks evaluates the declared checks in the given order against one
// resource instance.
//
// An unsupported resource terminates immediately with a clean failed report
// and no error: "not supported here" is an expected outcome. A construction
// failure terminates with a failed report and a ResourceConstructionError:
// that is a malformed declaration and must reach the caller. Every other
// failure is per-check and never aborts the remaining checks.
func (d *Dispatcher) RunChecks(ctx context.Context, subject string, checks []DeclaredCheck) (Report, error) {
	d.logger.Debug("retrieving resource handle", "resource", d.typeName, "backend", d.backend.Selector())
	h, err := d.directory.Resolve(d.typeName, d.backend)
	if err != nil {
		if errors.Is(err, resource.ErrUnsupportedResource) {
			d.logger.Debug("resource not supported for this backend or platform",
				"resource", d.typeName, "error", err)
			return failedReport(), nil
		}
		return failedReport(), err
	}

	valid := filterReserved(checks)
	ctorArgs, remaining := BindArgs(h.Params(), valid)
	d.logger.Debug("bound constructor arguments",
		"resource", d.typeName, "args", len(ctorArgs), "checks", len(remaining))

	inst, err := d.construct(h, subject, ctorArgs)
	if err != nil {
		return failedReport(), &ResourceConstructionError{
			Resource: d.typeName,
			Subject:  subject,
			Err:      err,
		}
	}

	report := newReport()
	for _, chk := range remaining {
		passed, message := d.runCheck(ctx, h, inst, subject, chk)
		if passed {
			report.Passed = append(report.Passed, message)
			continue
		}
		report.Success = false
		report.Failed = append(report.Failed, message)
	}
	return report, nil
}

// construct builds the resource instance. A subjectless handle is constructed
// with no parameters at all; otherwise the subject is passed positionally
// alongside the bound constructor arguments.
func (d *Dispatcher) construct(h resource.Handle, subject string, args map[string]any) (resource.Instance, error) {
	if !h.TakesSubject() {
		return h.New("", nil)
	}
	return h.New(subject, args)
}

// runCheck evaluates a single declared check, folding any per-check error
// into the returned fail message.
func (d *Dispatcher) runCheck(ctx context.Context, h resource.Handle, inst resource.Instance, subject string, chk DeclaredCheck) (bool, string) {
	exp, err := ParseExpectation(chk.Expectation)
	if err != nil {
		return false, errorMessage(d.typeName, subject, chk.Name, "<invalid>", err)
	}

	d.logger.Debug("evaluating check", "resource", d.typeName, "member", chk.Name)
	m, err := ResolveMember(h, inst, chk.Name)
	if err != nil {
		return false, errorMessage(d.typeName, subject, chk.Name, exp.String(), err)
	}

	actual, err := InvokeMember(ctx, m, inst, chk.Name, exp)
	if err != nil {
		return false, errorMessage(d.typeName, subject, chk.Name, exp.String(), err)
	}

	passed, err := Evaluate(d.comparators, exp, actual)
	if err != nil {
		return false, errorMessage(d.typeName, subject, chk.Name, exp.String(), err)
	}

	if passed {
		return true, passMessage(d.typeName, subject, chk.Name, exp.String(), actual)
	}
	return false, failMessage(d.typeName, subject, chk.Name, exp.String(), actual)
}
