package cli

import (
	"github.com/spf13/cobra"

	"treekit.dev/treekit/internal/subtree"
)

// newMergeCmd creates the merge command
func newMergeCmd(g *globalFlags) *cobra.Command {
	var (
		squash  bool
		message string
	)

	cmd := &cobra.Command{
		Use:   "merge <local-commit> [<repository>]",
		Short: "Merge recent changes up to a commit into the prefix subtree",
		Long: `Merge recent changes up to <local-commit> into the prefix subtree. As with
a normal git merge, this doesn't remove your own local changes; it just
merges those changes into the latest <local-commit>.

With --squash, create only one commit that contains all the changes, rather
than merging in the entire history. When the previous squash merge referenced
an annotated tag of the subtree repository, that tag needs to be available
locally; if <repository> is given, a missing tag is fetched from it.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, st, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer ctx.Splog.Close()

			opts := subtree.MergeOptions{
				LocalCommit: args[0],
				Squash:      squash,
				Message:     message,
			}
			if len(args) == 2 {
				opts.Repository = args[1]
			}

			res, err := st.Merge(ctx.Context, opts)
			if err != nil {
				return err
			}
			emit(ctx, g, res)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&squash, "squash", "s", false, "Create only one commit that contains all the changes, rather than merging in the entire history")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Use <message> as the commit message for the merge commit")

	return cmd
}
