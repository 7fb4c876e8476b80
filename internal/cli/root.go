package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/hostspec/hostspec/internal/config"
)

// RootOptions holds global flags shared by all commands.
type RootOptions struct {
	ConfigPath string
	Backend    string
	Format     string // "text" | "json"
	Verbose    bool
	NoHistory  bool
	NoColor    bool

	cfg config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the hostspec CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "hostspec",
		Short: "Declarative host state verification",
		Long: `hostspec verifies the observed state of a host against declared
expectations: packages installed, services running, files present, ports
listening. Expectations live in YAML suites and are checked through a
pluggable backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}

			cfg, err := config.LoadConfig(opts.ConfigPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			if opts.Backend == "" {
				opts.Backend = cfg.Backend
			}
			if opts.NoColor || !cfg.Output.Color || opts.Format == "json" {
				color.NoColor = true
			}

			level := cfg.SlogLevel()
			if opts.Verbose {
				level = slog.LevelDebug
			}
			handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
			slog.SetDefault(slog.New(handler))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "path to config file")
	cmd.PersistentFlags().StringVar(&opts.Backend, "backend", "", "backend selector (default from config)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose logging")
	cmd.PersistentFlags().BoolVar(&opts.NoHistory, "no-history", false, "do not record this run in history")
	cmd.PersistentFlags().BoolVar(&opts.NoColor, "no-color", false, "disable colorized output")

	cmd.AddCommand(NewRunCommand(opts))
	cmd.AddCommand(NewResourcesCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))

	return cmd
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "hostspec.yaml"
	}
	return home + "/.hostspec/config.yaml"
}
