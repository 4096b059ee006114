// Package cli implements the yaml-nested command line interface.
//
// Commands are built around an [App] carrying configuration and output
// writers, which keeps command logic testable: [RunWithConfig] executes the
// command tree against injected writers and returns an [ExecuteResult]
// instead of terminating the process. [Execute] is the thin entry point used
// by main.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/infinilabs/yaml-nested/conversion"
	"github.com/infinilabs/yaml-nested/internal/config"
	"github.com/infinilabs/yaml-nested/internal/log"
)

// App holds the configuration and writers shared by all commands.
type App struct {
	// Config is the active configuration. The --config and --separator
	// persistent flags may replace or adjust it before a command runs.
	Config *config.Config

	// Out receives converted YAML and check summaries.
	Out io.Writer

	// ErrOut receives error messages.
	ErrOut io.Writer

	configPath string
	separator  string
}

// converter returns a conversion.Converter using the configured separator.
func (a *App) converter() *conversion.Converter {
	return &conversion.Converter{Separator: a.Config.Separator}
}

// ExecuteResult is the outcome of running the command tree.
type ExecuteResult struct {
	// ExitCode is the code to return to the shell. Zero means success.
	ExitCode int

	// Err is the error that produced a non-zero exit code, if any.
	Err error
}

// NewRootCommand builds the yaml-nested command tree for the given App.
func NewRootCommand(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "yaml-nested",
		Short: "Convert YAML between nested and flattened forms",
		Long: `yaml-nested converts YAML configuration files between nested mappings
and the flattened dot-path form used by Elasticsearch-style config files.

Nested form:                Flattened form:
  cluster:                    cluster.routing.allocation.enable: all
    routing:
      allocation:
        enable: all`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if app.configPath != "" {
				cfg, err := config.NewLoader().LoadFromFile(app.configPath)
				if err != nil {
					return err
				}
				app.Config = cfg
			}
			if app.separator != "" {
				app.Config.Separator = app.separator
			}
			log.SetLevel(app.Config.Log.Level)
			return nil
		},
	}

	root.PersistentFlags().StringVar(&app.configPath, "config", "", "config file (bypasses discovery)")
	root.PersistentFlags().StringVar(&app.separator, "separator", "", "path separator for flattened keys")

	root.AddCommand(newFlattenCommand(app))
	root.AddCommand(newUnflattenCommand(app))
	root.AddCommand(newCheckCommand(app))

	return root
}

// Execute loads configuration, runs the command tree against the standard
// streams, and exits the process with the resulting code.
func Execute() {
	os.Exit(Run(os.Args[1:]).ExitCode)
}

// Run loads configuration via the standard discovery chain and runs the
// command tree against the standard streams.
func Run(args []string) ExecuteResult {
	cfg, err := config.NewLoader().Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "yaml-nested: %v\n", err)
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return RunWithConfig(args, cfg, os.Stdout, os.Stderr)
}

// RunWithConfig runs the command tree with an explicit configuration and
// writers. This is the seam tests use: no process exit, no global streams.
func RunWithConfig(args []string, cfg *config.Config, out, errOut io.Writer) ExecuteResult {
	app := &App{Config: cfg, Out: out, ErrOut: errOut}
	root := NewRootCommand(app)
	root.SetArgs(args)
	root.SetOut(out)
	root.SetErr(errOut)

	if err := root.Execute(); err != nil {
		if code, ok := IsExitError(err); ok {
			return ExecuteResult{ExitCode: code, Err: err}
		}
		fmt.Fprintln(errOut, app.render(failStyle, "error: "+err.Error()))
		return ExecuteResult{ExitCode: 1, Err: err}
	}
	return ExecuteResult{}
}
