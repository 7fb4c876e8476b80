package cli

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/hostspec/hostspec/pkg/backend"
	"github.com/hostspec/hostspec/pkg/compare"
	"github.com/hostspec/hostspec/pkg/events"
	"github.com/hostspec/hostspec/pkg/history"
	"github.com/hostspec/hostspec/pkg/manifest"
	"github.com/hostspec/hostspec/pkg/providers"
	"github.com/hostspec/hostspec/pkg/resource"
	"github.com/hostspec/hostspec/pkg/verify"
)

// RunOptions holds flags for the run command.
type RunOptions struct {
	*RootOptions
	Vars []string
}

// NewRunCommand creates the run command.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "run <suite>",
		Short: "Run a verification suite",
		Long: `Run a verification suite against the configured backend.

The suite is a YAML file, given as a local path or a github://owner/repo/path
location. Every declared resource is checked and the command exits non-zero
if any assertion fails.

Example:
  hostspec run ./suites/base.yaml
  hostspec run github://acme/infra/suites/web.yaml@main --var env=prod`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuite(cmd, opts, args[0])
		},
	}

	cmd.Flags().StringArrayVar(&opts.Vars, "var", nil, "suite variable override (key=value, repeatable)")

	return cmd
}

func runSuite(cmd *cobra.Command, opts *RunOptions, location string) error {
	vars, err := parseVars(opts.Vars)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid --var", err)
	}

	suite, err := loadSuite(cmd, opts, location, vars)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load suite", err)
	}

	b, err := backend.Get(opts.Backend)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to select backend", err)
	}

	dir := resource.NewDirectory()
	if err := providers.RegisterAll(dir); err != nil {
		return WrapExitError(ExitCommandError, "failed to register resource types", err)
	}

	if result := manifest.Validate(suite, dir); !result.Valid() {
		return NewExitError(ExitCommandError, result.Error())
	}

	set := verify.BuildEntryPoints(dir, compare.NewRegistry(), b, slog.Default())

	runnerOpts := []manifest.RunnerOption{manifest.WithLogger(slog.Default())}
	if opts.Verbose {
		bus := events.NewMemoryBus()
		ch := bus.Subscribe(events.EventAssertionResult, events.EventResourceError)
		done := make(chan struct{})
		go func() {
			defer close(done)
			for ev := range ch {
				slog.Debug("progress", "type", ev.Type, "resource", ev.Resource,
					"subject", ev.Subject, "passed", ev.Passed, "message", ev.Message)
			}
		}()
		defer func() {
			bus.Unsubscribe(ch)
			<-done
		}()
		runnerOpts = append(runnerOpts, manifest.WithBus(bus))
	}
	runner := manifest.NewRunner(set, runnerOpts...)

	slog.Info("running suite", "suite", suite.Name, "backend", b.Selector(),
		"declarations", len(suite.Declarations))
	report := runner.Run(cmd.Context(), suite)

	if opts.Format == "json" {
		if err := RenderJSON(cmd.OutOrStdout(), report); err != nil {
			return WrapExitError(ExitCommandError, "failed to encode report", err)
		}
	} else {
		RenderSuiteReport(cmd.OutOrStdout(), report)
	}

	if err := recordRun(opts, report); err != nil {
		slog.Warn("failed to record run history", "error", err)
	}

	if !report.Success {
		return NewExitError(ExitFailure, "suite failed")
	}
	return nil
}

func loadSuite(cmd *cobra.Command, opts *RunOptions, location string, vars map[string]string) (manifest.Suite, error) {
	if manifest.IsGitHubLocation(location) {
		fetcher := manifest.NewGitHubFetcher(opts.cfg.GitHubToken())
		data, err := fetcher.Fetch(cmd.Context(), location)
		if err != nil {
			return manifest.Suite{}, err
		}
		return manifest.ParseSuite(data, vars)
	}
	return manifest.LoadSuite(location, vars)
}

func recordRun(opts *RunOptions, report manifest.SuiteReport) error {
	if opts.NoHistory || !opts.cfg.History.Enabled {
		return nil
	}
	store, err := history.Open(opts.cfg.History.Path)
	if err != nil {
		return err
	}
	defer store.Close()

	run, err := store.Append(report)
	if err != nil {
		return err
	}
	slog.Debug("recorded run", "id", run.ID)
	return nil
}

func parseVars(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	vars := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("expected key=value, got %q", pair)
		}
		vars[key] = value
	}
	return vars, nil
}
