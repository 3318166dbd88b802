package main

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/hook"
	"github.com/raphi011/grit/internal/log"
	"github.com/raphi011/grit/internal/runner"
)

func newRunCmd() *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:               "run <hook> [-- args...]",
		Short:             "Run a hook directly",
		GroupID:           GroupHooks,
		Args:              cobra.MinimumNArgs(1),
		ValidArgsFunction: completeHookName,
		Long: `Run a discovered hook, bypassing git.

This is both the manual test entrypoint and the re-entry point installed
shims use: git's stdin payload is read when piped, and arguments after
-- are forwarded to the hook unchanged.

The process exit code is the hook's exit code; a hook name that cannot
be found exits with a distinct code so callers can tell "missing" apart
from "ran and failed".`,
		Example: `  grit run pre-commit
  grit run pre-commit --debug
  grit run commit-msg -- .git/COMMIT_EDITMSG
  echo "refs..." | grit run pre-push`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]
			hookArgs := args[1:]

			if debug || os.Getenv("GRIT_DEBUG") != "" {
				ctx = log.WithLogger(ctx, log.New(os.Stderr, true, false))
			}

			eng, err := newEngine(ctx)
			if err != nil {
				return err
			}

			stdinLines, err := readStdinLines()
			if err != nil {
				return err
			}

			code, err := runner.New(eng).Run(ctx, name, stdinLines, hookArgs)
			if err != nil {
				return err
			}
			if code != 0 {
				// The hook's message was already reported by the runner.
				return &exitCodeError{Code: code}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&debug, "debug", false, "Enable debug logging for this run")

	return cmd
}

// readStdinLines reads the stdin payload if it is piped.
// An interactive terminal yields no lines.
func readStdinLines() ([]string, error) {
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return nil, nil
	}
	return hook.ReadStdinLines(os.Stdin)
}
