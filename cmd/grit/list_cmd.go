package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/hook"
	"github.com/raphi011/grit/internal/output"
	"github.com/raphi011/grit/internal/ui/styles"
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "list",
		Short:   "List hooks discovered in the project",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `List all hook definitions discovered in the project.

Sources are the githooks/ directory (or --hook-paths / hook_paths from
githooks.toml), [hooks.NAME] tables in githooks.toml, and legacy *_hook
files at the project root.`,
		Example: `  grit list
  grit list --hook-paths scripts/hooks`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			eng, err := newEngine(ctx)
			if err != nil {
				return err
			}
			reg, err := eng.Discover(ctx)
			if err != nil {
				return err
			}

			names := reg.Names()
			if len(names) == 0 {
				out.Println("No hooks found")
				return nil
			}

			styled := styles.Enabled(out.Writer())
			header := "Available hooks:"
			if styled {
				header = styles.Bold.Render(header)
			}
			out.Println(header)
			for _, name := range names {
				line := "  - " + name
				def, _ := reg.Lookup(name)
				if c, ok := def.(hook.Command); ok && c.Description != "" {
					line += ": " + c.Description
				}
				source := reg.Source(name)
				if styled {
					out.Println(line + " " + styles.MutedStyle.Render("("+source+")"))
				} else {
					out.Printf("%s (%s)\n", line, source)
				}
			}
			return nil
		},
	}

	return cmd
}
