package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/config"
	"github.com/raphi011/grit/internal/discovery"
	"github.com/raphi011/grit/internal/git"
	"github.com/raphi011/grit/internal/log"
	"github.com/raphi011/grit/internal/output"
	"github.com/raphi011/grit/internal/runner"
)

var (
	// Global flags
	verbose   bool
	quiet     bool
	hookPaths []string

	// Shared state injected into commands
	workDir string
)

// Command group IDs for organizing help output
const (
	GroupHooks  = "hooks"
	GroupConfig = "config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "grit",
	Short: "Git hook manager",
	Long: `grit discovers hook definitions in your project, installs them into
.git/hooks, and runs them when git fires a lifecycle event.

Hooks can be script files under githooks/ (or directories set via
--hook-paths / githooks.toml) or commands declared in githooks.toml.`,
	SilenceUsage:               true,
	SilenceErrors:              true,
	SuggestionsMinimumDistance: 2, // Enable typo suggestions
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Skip git check for completion and help commands
		if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
			return nil
		}

		// Attach the logger after flags are parsed so --verbose/--quiet apply
		cmd.SetContext(log.WithLogger(cmd.Context(), log.New(os.Stderr, verbose, quiet)))

		// Check git is available
		return git.CheckGit()
	},
	// Run is not set - shows help when no subcommand provided
}

// exitCodeError carries a specific process exit code through cobra.
// A nil Err means the failure was already reported (hook output).
type exitCodeError struct {
	Code int
	Err  error
}

func (e *exitCodeError) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	// Get working directory
	var err error
	workDir, err = os.Getwd()
	if err != nil {
		fmt.Fprintf(os.Stderr, "grit: failed to get working directory: %v\n", err)
		os.Exit(1)
	}

	// Create context with signal handling
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// Add output printer (stdout for primary data); the logger is
	// attached in PersistentPreRunE once flags are parsed
	ctx = log.WithLogger(ctx, log.New(os.Stderr, false, false))

	ctx = output.WithPrinter(ctx, os.Stdout)

	// Store context for commands to use
	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitCodeError
		if errors.As(err, &exitErr) {
			if exitErr.Err != nil {
				fmt.Fprintln(os.Stderr, "Error:", exitErr.Err)
			}
			cancel()
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		cancel()
		os.Exit(runner.ExitCode(err))
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Show external commands being executed")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all log output")
	rootCmd.PersistentFlags().StringSliceVar(&hookPaths, "hook-paths", nil, "Override hook search paths (relative to the project root)")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	// Version flag
	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Flag misuse exits 2 so scripts can tell it apart from a hook failure
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return &exitCodeError{Code: 2, Err: err}
	})

	// Add command groups for organized help output
	rootCmd.AddGroup(
		&cobra.Group{ID: GroupHooks, Title: "Hook Commands:"},
		&cobra.Group{ID: GroupConfig, Title: "Configuration Commands:"},
	)

	// Hook commands
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newShowCmd())
	rootCmd.AddCommand(newInstallCmd())
	rootCmd.AddCommand(newUninstallCmd())
	rootCmd.AddCommand(newRunCmd())

	// Configuration commands
	rootCmd.AddCommand(newSeedCmd())
	rootCmd.AddCommand(newCompletionCmd())
}

// newEngine resolves the project root from the working directory, loads
// its githooks.toml, and builds the discovery engine honoring the
// --hook-paths override.
func newEngine(ctx context.Context) (*discovery.Engine, error) {
	root, err := git.FindRoot(workDir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(root)
	if err != nil {
		return nil, err
	}

	eng := discovery.New(root, cfg)
	eng.SearchPaths = hookPaths
	log.FromContext(ctx).Debugf("project root: %s", root)
	return eng, nil
}

// completeHookName completes discovered hook names.
func completeHookName(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	eng, err := newEngine(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	reg, err := eng.Discover(cmd.Context())
	if err != nil {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return reg.Names(), cobra.ShellCompDirectiveNoFileComp
}
