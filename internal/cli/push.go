package cli

import (
	"github.com/spf13/cobra"

	"treekit.dev/treekit/internal/config"
	treekiterrors "treekit.dev/treekit/internal/errors"
	"treekit.dev/treekit/internal/subtree"
	"treekit.dev/treekit/internal/tui"
)

// newPushCmd creates the push command
func newPushCmd(g *globalFlags) *cobra.Command {
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
		Use:   "push [<repository> [+][<local-commit>:]<remote-ref>]",
		Short: "Split the prefix subtree and push the result to a remote",
		Long: `Does a split using the prefix subtree of <local-commit> and then does a
git push of the result to <repository> and <remote-ref>. This can be used to
push your subtree to different branches of the remote repository. Just as
with split, if no <local-commit> is given, then HEAD is used. The optional
leading + on the refspec is ignored.

With no arguments, the upstream recorded for the prefix is used.`,
		Args: argsNoneOrExactly(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, st, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer ctx.Splog.Close()

			opts := subtree.PushOptions{
				Annotate:    annotate,
				Branch:      branch,
				IgnoreJoins: ignoreJoins,
				Onto:        onto,
				Rejoin:      rejoin,
				Squash:      squash,
				Message:     message,
			}

			if len(args) == 2 {
				opts.Repository = args[0]
				opts.LocalCommit, opts.RemoteRef = subtree.ParseRefspec(args[1])
			} else {
				if g.prefix == "" {
					return treekiterrors.NewPrefixRequiredError("push")
				}
				entry, ok := config.LookupSubtree(ctx.RepoRoot, g.prefix)
				if !ok {
					return treekiterrors.NewSubtreeNotTrackedError(g.prefix)
				}
				opts.Repository = entry.Repository
				opts.RemoteRef = entry.Ref
				if entry.Squash {
					opts.Squash = true
				}
				ctx.Splog.Info("Pushing %s to %s %s",
					tui.ColorPrefix(g.prefix), tui.ColorRepository(opts.Repository), tui.ColorRef(opts.RemoteRef))
			}

			res, err := st.Push(ctx.Context, opts)
			if err != nil {
				return err
			}
			emit(ctx, g, res)

			if !g.dryRun && len(args) == 2 {
				if err := config.RecordSubtree(ctx.RepoRoot, g.prefix, config.SubtreeEntry{
					Repository: opts.Repository,
					Ref:        opts.RemoteRef,
					Squash:     squash,
				}); err != nil {
					ctx.Splog.Debug("Failed to record subtree upstream: %v", err)
				}
			}
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
