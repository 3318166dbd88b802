package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/hook"
	"github.com/raphi011/grit/internal/installer"
	"github.com/raphi011/grit/internal/log"
	"github.com/raphi011/grit/internal/output"
	"github.com/raphi011/grit/internal/runner"
)

func newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               "install <hook>",
		Short:             "Install a hook shim into .git/hooks",
		GroupID:           GroupHooks,
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: completeHookName,
		Long: `Install a shim for a discovered hook into .git/hooks.

The shim bakes in the project root resolved now, so git can invoke it
from any working directory. An existing hand-written hook at the target
path is never overwritten; reinstalling a grit shim is.`,
		Example: `  grit install pre-commit
  grit install pre-push --hook-paths scripts/hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			eng, err := newEngine(ctx)
			if err != nil {
				return err
			}

			// The hook must be discoverable before a shim makes sense.
			if _, err := runner.New(eng).Resolve(ctx, name); err != nil {
				return err
			}

			if !hook.IsKnownName(name) {
				log.FromContext(ctx).Warnf("%s is not a hook name git invokes; the shim will only ever run via 'grit run'", name)
			}

			inst, err := installer.New(eng.ProjectRoot)
			if err != nil {
				return err
			}
			inst.HookPaths = hookPaths

			if err := inst.Install(name); err != nil {
				return err
			}
			output.FromContext(ctx).Printf("Installed hook: %s\n", name)
			return nil
		},
	}

	return cmd
}
