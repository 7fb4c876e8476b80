package manifest

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/hostspec/hostspec/pkg/backend"
	"github.com/hostspec/hostspec/pkg/events"
	"github.com/hostspec/hostspec/pkg/verify"
)

// SuiteReport aggregates the outcome of one suite run.
type SuiteReport struct {
	Suite    string              `json:"suite"`
	Success  bool                `json:"success"`
	Started  time.Time           `json:"started"`
	Duration time.Duration       `json:"duration"`
	Results  []DeclarationResult `json:"results"`
}

// DeclarationResult is the outcome of one declared resource instance. Error
// is set for fatal, declaration-level failures (malformed construction,
// unknown backend); per-check failures live in the report's fail messages.
type DeclarationResult struct {
	ID       string        `json:"id"`
	Resource string        `json:"resource"`
	Subject  string        `json:"subject"`
	Report   verify.Report `json:"report"`
	Error    string        `json:"error,omitempty"`
}

// Runner executes suites against the generated entry points.
type Runner struct {
	set    *verify.EntryPointSet
	bus    events.Bus
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithBus attaches an event bus the runner publishes progress to.
func WithBus(bus events.Bus) RunnerOption {
	return func(r *Runner) {
		r.bus = bus
	}
}

// WithLogger sets the runner's logger.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a suite runner over a built entry-point set.
func NewRunner(set *verify.EntryPointSet, opts ...RunnerOption) *Runner {
	r := &Runner{set: set, logger: slog.Default()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run evaluates every declaration in document order. A malformed declaration
// fails that declaration and the suite, but never stops the remaining
// declarations.
func (r *Runner) Run(ctx context.Context, suite Suite) SuiteReport {
	report := SuiteReport{
		Suite:   suite.Name,
		Success: true,
		Started: time.Now(),
		Results: make([]DeclarationResult, 0, len(suite.Declarations)),
	}
	r.publish(events.Event{Type: events.EventSuiteStart, Suite: suite.Name})

	for _, decl := range suite.Declarations {
		result := r.runDeclaration(ctx, suite.Name, decl)
		if result.Error != "" || !result.Report.Success {
			report.Success = false
		}
		report.Results = append(report.Results, result)
	}

	report.Duration = time.Since(report.Started)
	r.publish(events.Event{
		Type:   events.EventSuiteEnd,
		Suite:  suite.Name,
		Passed: report.Success,
	})
	return report
}

func (r *Runner) runDeclaration(ctx context.Context, suiteName string, decl Declaration) DeclarationResult {
	result := DeclarationResult{
		ID:       decl.ID,
		Resource: decl.Resource,
		Subject:  decl.Subject,
	}
	r.publish(events.Event{
		Type:     events.EventResourceStart,
		Suite:    suiteName,
		Resource: decl.Resource,
		Subject:  decl.Subject,
	})

	d, ok := r.set.Dispatcher(decl.Resource)
	if !ok {
		// Unknown types behave like unsupported resources: a clean failure.
		r.logger.Debug("no entry point for resource type", "resource", decl.Resource)
		result.Report = verify.Report{Success: false, Passed: []string{}, Failed: []string{}}
		return result
	}

	if decl.Backend != "" {
		b, err := backend.Get(decl.Backend)
		if err != nil {
			result.Error = err.Error()
			r.publishError(suiteName, decl, err)
			return result
		}
		d = d.WithBackend(b)
	}

	rep, err := d.RunChecks(ctx, decl.Subject, decl.Checks)
	result.Report = rep
	if err != nil {
		var cerr *verify.ResourceConstructionError
		if errors.As(err, &cerr) {
			result.Error = cerr.Error()
		} else {
			result.Error = err.Error()
		}
		r.publishError(suiteName, decl, err)
		return result
	}

	for _, msg := range rep.Passed {
		r.publishAssertion(suiteName, decl, true, msg)
	}
	for _, msg := range rep.Failed {
		r.publishAssertion(suiteName, decl, false, msg)
	}
	r.publish(events.Event{
		Type:     events.EventResourceEnd,
		Suite:    suiteName,
		Resource: decl.Resource,
		Subject:  decl.Subject,
		Passed:   rep.Success,
	})
	return result
}

func (r *Runner) publish(ev events.Event) {
	if r.bus == nil {
		return
	}
	if ev.Timestamp.IsZero() {
		ev.Timestamp = time.Now()
	}
	r.bus.Publish(ev)
}

func (r *Runner) publishAssertion(suiteName string, decl Declaration, passed bool, msg string) {
	r.publish(events.Event{
		Type:     events.EventAssertionResult,
		Suite:    suiteName,
		Resource: decl.Resource,
		Subject:  decl.Subject,
		Passed:   passed,
		Message:  msg,
	})
}

func (r *Runner) publishError(suiteName string, decl Declaration, err error) {
	r.publish(events.Event{
		Type:     events.EventResourceError,
		Suite:    suiteName,
		Resource: decl.Resource,
		Subject:  decl.Subject,
		Message:  err.Error(),
	})
}
