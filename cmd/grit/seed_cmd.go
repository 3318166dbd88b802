package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/git"
	"github.com/raphi011/grit/internal/output"
	"github.com/raphi011/grit/internal/seed"
)

func newSeedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "seed [example]",
		Short:   "Copy a bundled example hook into githooks/",
		GroupID: GroupConfig,
		Args:    cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return seed.Available(), cobra.ShellCompDirectiveNoFileComp
		},
		Long: `Copy a bundled example hook script into the project's githooks/
directory. Without an argument, lists the available examples.
An existing file is never overwritten.`,
		Example: `  grit seed              # list available examples
  grit seed pre_commit   # write githooks/pre_commit.sh`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			if len(args) == 0 {
				examples := seed.Available()
				if len(examples) == 0 {
					out.Println("No example hooks available")
					return nil
				}
				out.Println("Available example hooks:")
				for _, name := range examples {
					out.Printf("  - %s\n", name)
				}
				return nil
			}

			root, err := git.FindRoot(workDir)
			if err != nil {
				return err
			}
			target, err := seed.Seed(root, args[0])
			if err != nil {
				return err
			}
			out.Printf("Seeded example %q to %s\n", args[0], target)
			return nil
		},
	}

	return cmd
}
