package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version.
// This is typically called by the main package during initialization with values
// injected via ldflags at build time.
//
// Parameters:
//   - v: semantic version string (e.g., "v1.2.3")
//   - c: git commit SHA (short or long form)
//   - d: build timestamp (e.g., "2025-12-20T14:32:01Z")
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOpts holds persistent flags shared by all commands.
type rootOpts struct {
	configPath string // path to pagenav.toml
	model      string // model file override
}

// Execute runs the pagenav CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// The function sets up the root command with all subcommands, configures
// logging based on the --verbose flag, and executes the command tree.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
//
// Example:
//
//	func main() {
//	    cli.SetVersion("v1.0.0", "abc123", "2025-12-20")
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
func Execute() error {
	return ExecuteContext(context.Background())
}

// ExecuteContext runs the CLI under the given context so callers can
// wire in signal handling.
func ExecuteContext(ctx context.Context) error {
	var verbose bool
	opts := &rootOpts{}

	root := &cobra.Command{
		Use:          "pagenav",
		Short:        "Pagenav analyzes page navigation graphs in AppDNA models",
		Long:         `Pagenav builds the page navigation graph of an AppDNA application model and computes how many clicks each page is away from a role's start page, helping spot pages that are buried too deep in the flow.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("pagenav %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "path to pagenav.toml (default: ./pagenav.toml)")
	root.PersistentFlags().StringVarP(&opts.model, "model", "m", "", "path to the AppDNA model file (overrides config)")

	root.AddCommand(newDistancesCmd(opts))
	root.AddCommand(newPathCmd(opts))
	root.AddCommand(newPagesCmd(opts))
	root.AddCommand(newUsageCmd(opts))
	root.AddCommand(newRenderCmd(opts))
	root.AddCommand(newStartCmd(opts))
	root.AddCommand(newCacheCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newCompletionCmd())

	return root.ExecuteContext(ctx)
}
