package cli

import (
	"github.com/spf13/cobra"

	"treekit.dev/treekit/internal/subtree"
)

// newSplitCmd creates the split command
func newSplitCmd(g *globalFlags) *cobra.Command {
	var (
		annotate    string
		branch      string
		ignoreJoins bool
		onto        string
		rejoin      bool
		squash      bool
		message     string
	)

	cmd := &cobra.Command{
		Use:   "split [<local-commit>] [<repository>]",
		Short: "Extract a synthetic project history from the prefix subtree",
		Long: `Extract a new, synthetic project history from the history of the prefix
subtree of <local-commit>, or of HEAD if no <local-commit> is given. The new
history includes only the commits (including merges) that affected the
prefix, each with the prefix contents at the root, so it is suitable for
export as a separate git repository.

After splitting successfully, a single commit ID is printed to stdout,
corresponding to the HEAD of the newly created tree.

Repeated splits of exactly the same history produce the same commit IDs as
long as the settings (such as --annotate) are the same.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, st, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer ctx.Splog.Close()

			opts := subtree.SplitOptions{
				Annotate:    annotate,
				Branch:      branch,
				IgnoreJoins: ignoreJoins,
				Onto:        onto,
				Rejoin:      rejoin,
				Squash:      squash,
				Message:     message,
			}
			if len(args) > 0 {
				opts.LocalCommit = args[0]
			}
			if len(args) > 1 {
				opts.Repository = args[1]
			}

			res, err := st.Split(ctx.Context, opts)
			if err != nil {
				return err
			}
			emit(ctx, g, res)
			return nil
		},
	}

	cmd.Flags().StringVar(&annotate, "annotate", "", "Prefix each synthetic commit message with <annotation>; reuse the same annotation on every split")
	cmd.Flags().StringVarP(&branch, "branch", "b", "", "Create a new branch containing the synthetic history; it must not already exist")
	cmd.Flags().BoolVar(&ignoreJoins, "ignore-joins", false, "Ignore prior --rejoin commits and regenerate the entire history")
	cmd.Flags().StringVar(&onto, "onto", "", "Commit ID of the first imported revision, for subtrees not created with subtree add")
	cmd.Flags().BoolVar(&rejoin, "rejoin", false, "Merge the synthetic history back into the main project so future splits walk less history")
	cmd.Flags().BoolVarP(&squash, "squash", "s", false, "Create only one commit for the rejoin, rather than merging in the entire history")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Use <message> as the commit message for the rejoin merge commit")

	return cmd
}
