package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hostspec/hostspec/pkg/history"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Limit int
}

// NewHistoryCommand creates the history command. Without arguments it lists
// recent runs; with a run ID it shows that run's full report.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "List or inspect past suite runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := history.Open(opts.cfg.History.Path)
			if err != nil {
				return WrapExitError(ExitCommandError, "failed to open history", err)
			}
			defer store.Close()

			if len(args) == 1 {
				return showRun(cmd, opts, store, args[0])
			}
			return listRuns(cmd, opts, store)
		},
	}

	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs to list")

	return cmd
}

func listRuns(cmd *cobra.Command, opts *HistoryOptions, store *history.Store) error {
	runs, err := store.List(opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to list runs", err)
	}

	if opts.Format == "json" {
		return RenderJSON(cmd.OutOrStdout(), runs)
	}

	w := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(w, "no recorded runs")
		return nil
	}
	for _, run := range runs {
		verdict := "PASSED"
		colorize := passColor
		if !run.Report.Success {
			verdict = "FAILED"
			colorize = failColor
		}
		fmt.Fprintf(w, "%s  %s  %-20s ", run.ID, run.Recorded.Format("2006-01-02 15:04:05"), run.Report.Suite)
		colorize.Fprintf(w, "%s\n", verdict)
	}
	return nil
}

func showRun(cmd *cobra.Command, opts *HistoryOptions, store *history.Store, id string) error {
	run, err := store.Get(id)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to load run", err)
	}

	if opts.Format == "json" {
		return RenderJSON(cmd.OutOrStdout(), run)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Run %s recorded %s\n\n", run.ID, run.Recorded.Format("2006-01-02 15:04:05"))
	RenderSuiteReport(cmd.OutOrStdout(), run.Report)
	return nil
}
