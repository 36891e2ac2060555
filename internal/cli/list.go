package cli

import (
	"github.com/spf13/cobra"

	"treekit.dev/treekit/internal/config"
	"treekit.dev/treekit/internal/tui"
)

// newListCmd creates the list command
func newListCmd(g *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the subtrees with a recorded upstream",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, _, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer ctx.Splog.Close()

			prefixes, entries, err := config.ListSubtrees(ctx.RepoRoot)
			if err != nil {
				return err
			}

			if len(prefixes) == 0 {
				ctx.Splog.Info("No subtrees recorded yet")
				ctx.Splog.Tip("Run 'treekit add -P <prefix> <repository> <ref>' to import one")
				return nil
			}

			for _, prefix := range prefixes {
				entry := entries[prefix]
				line := tui.ColorPrefix(prefix) + " " +
					tui.ColorRepository(entry.Repository) + " " +
					tui.ColorRef(entry.Ref)
				if entry.Squash {
					line += " " + tui.ColorDim("(squash)")
				}
				ctx.Splog.Info("%s", line)
			}
			return nil
		},
	}

	return cmd
}
