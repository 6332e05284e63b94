package cli

import (
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/lightgrid/internal/app"
	"github.com/specialistvlad/lightgrid/internal/lightgrid"
	"github.com/specialistvlad/lightgrid/internal/report"
	"github.com/spf13/cobra"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError wraps a parse or validation failure with exit code 2.
func usageError(err error) *ExitError {
	return &ExitError{Code: 2, Message: err.Error()}
}

// flags collects the values shared by every subcommand.
type flags struct {
	logFormat string
	logLevel  string
	output    string
	shards    int
	workers   int
	backend   string
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")

	var (
		f      flags
		config *app.Config
	)

	root := &cobra.Command{
		Use:   "lightgrid",
		Short: "Light grid simulator",
		Long: `Lightgrid applies rectangle instructions (turn on, turn off, toggle) to a
sparse grid of lights and reports the resulting magnitude: the number of lit
lights for the binary backend, the total brightness for the brightness backend.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	// A nil slice would make cobra fall back to os.Args.
	root.SetArgs(append([]string{}, args...))
	root.SetOut(output)
	root.SetErr(output)

	root.PersistentFlags().StringVar(&f.logFormat, "log-format", "text", "Log output format. Options: 'text' or 'json'.")
	root.PersistentFlags().StringVar(&f.logLevel, "log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	root.PersistentFlags().StringVarP(&f.output, "output", "o", "text", "Report format. Options: 'text', 'json' or 'yaml'.")
	root.PersistentFlags().IntVar(&f.shards, "shards", 1, "Number of row bands each run is split into.")
	root.PersistentFlags().IntVar(&f.workers, "workers", 0, "Number of concurrent band workers. 0 means GOMAXPROCS.")

	runCmd := &cobra.Command{
		Use:   "run PLAN",
		Short: "Execute the runs declared in an HCL plan file or directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := f.config(app.Config{PlanPath: args[0]})
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}

	applyCmd := &cobra.Command{
		Use:   "apply INPUT",
		Short: "Apply a text instruction file to one or all backends",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			kinds, err := parseBackends(f.backend)
			if err != nil {
				return err
			}
			cfg, err := f.config(app.Config{InputPath: args[0], Backends: kinds})
			if err != nil {
				return err
			}
			config = cfg
			return nil
		},
	}
	applyCmd.Flags().StringVar(&f.backend, "backend", "all", "Backend to apply instructions to. Options: 'binary', 'brightness' or 'all'.")

	root.AddCommand(runCmd, applyCmd)

	if err := root.Execute(); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			return nil, false, exitErr
		}
		return nil, false, usageError(err)
	}

	// Help output and a bare invocation both end here without a config.
	if config == nil {
		slog.Debug("No command executed, exiting.")
		return nil, true, nil
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// config merges the shared flags into base and validates the result.
func (f *flags) config(base app.Config) (*app.Config, error) {
	format, err := report.ParseFormat(f.output)
	if err != nil {
		return nil, usageError(err)
	}

	base.LogFormat = strings.ToLower(f.logFormat)
	base.LogLevel = strings.ToLower(f.logLevel)
	base.Output = format
	base.Shards = f.shards
	base.Workers = f.workers

	cfg, err := app.NewConfig(base)
	if err != nil {
		return nil, usageError(err)
	}
	return cfg, nil
}

func parseBackends(name string) ([]lightgrid.Kind, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return append([]lightgrid.Kind(nil), lightgrid.Kinds...), nil
	}
	kind, err := lightgrid.ParseKind(name)
	if err != nil {
		return nil, usageError(err)
	}
	return []lightgrid.Kind{kind}, nil
}
