package main

import (
	"github.com/spf13/cobra"

	"github.com/raphi011/grit/internal/git"
	"github.com/raphi011/grit/internal/installer"
	"github.com/raphi011/grit/internal/output"
	"github.com/raphi011/grit/internal/ui/styles"
)

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "show",
		Short:   "Show hooks installed in .git/hooks",
		GroupID: GroupHooks,
		Args:    cobra.NoArgs,
		Long: `Show the hook files present in .git/hooks and whether each one is a
grit-generated shim or an external (hand-written) hook.`,
		Example: `  grit show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := output.FromContext(ctx)

			root, err := git.FindRoot(workDir)
			if err != nil {
				return err
			}
			inst, err := installer.New(root)
			if err != nil {
				return err
			}

			installed, err := inst.Installed()
			if err != nil {
				return err
			}
			if len(installed) == 0 {
				out.Println("No hooks installed")
				return nil
			}

			styled := styles.Enabled(out.Writer())
			header := "Installed hooks:"
			if styled {
				header = styles.Bold.Render(header)
			}
			out.Println(header)
			for _, h := range installed {
				tag := "(external)"
				if h.Owned {
					tag = "(grit)"
				}
				if styled {
					style := styles.WarnStyle
					if h.Owned {
						style = styles.SuccessStyle
					}
					tag = style.Render(tag)
				}
				out.Printf("  - %s %s\n", h.Name, tag)
			}
			return nil
		},
	}

	return cmd
}
