package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/git"
	"github.com/raphi011/grit/internal/installer"
	"github.com/raphi011/grit/internal/output"
)

func newUninstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "uninstall <hook>",
		Short:   "Remove a grit hook shim from .git/hooks",
		GroupID: GroupHooks,
		Args:    cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			root, err := git.FindRoot(workDir)
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			inst, err := installer.New(root)
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			installed, err := inst.Installed()
			if err != nil {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var names []string
			for _, h := range installed {
				if h.Owned {
					names = append(names, h.Name)
				}
			}
			return names, cobra.ShellCompDirectiveNoFileComp
		},
		Long: `Remove the shim for a hook from .git/hooks.

Only shims carrying the grit sentinel are removed; a hand-written hook
at the same path is left untouched and reported as an error. Removing a
hook that isn't installed is a no-op.`,
		Example: `  grit uninstall pre-commit`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			name := args[0]

			root, err := git.FindRoot(workDir)
			if err != nil {
				return err
			}
			inst, err := installer.New(root)
			if err != nil {
				return err
			}

			removed, err := inst.Uninstall(name)
			if err != nil {
				return err
			}
			if !removed {
				output.FromContext(ctx).Printf("No grit shim installed for %s\n", name)
				return nil
			}
			output.FromContext(ctx).Printf("Uninstalled hook: %s\n", name)
			return nil
		},
	}

	return cmd
}
