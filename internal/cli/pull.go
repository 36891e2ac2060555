package cli

import (
	"github.com/spf13/cobra"

	"treekit.dev/treekit/internal/config"
	treekiterrors "treekit.dev/treekit/internal/errors"
	"treekit.dev/treekit/internal/subtree"
	"treekit.dev/treekit/internal/tui"
)

// newPullCmd creates the pull command
func newPullCmd(g *globalFlags) *cobra.Command {
	var (
		squash  bool
		message string
	)

	cmd := &cobra.Command{
		Use:   "pull [<repository> <remote-ref>]",
		Short: "Fetch and merge a remote ref into the prefix subtree",
		Long: `Exactly like merge, but parallels git pull in that it fetches the given ref
from the specified remote repository first.

With no arguments, the upstream recorded for the prefix (by a previous add or
pull with explicit arguments) is used.`,
		Args: argsNoneOrExactly(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, st, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer ctx.Splog.Close()

			opts := subtree.PullOptions{
				Squash:  squash,
				Message: message,
			}

			if len(args) == 2 {
				opts.Repository = args[0]
				opts.RemoteRef = args[1]
			} else {
				if g.prefix == "" {
					return treekiterrors.NewPrefixRequiredError("pull")
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
				ctx.Splog.Info("Pulling %s from %s %s",
					tui.ColorPrefix(g.prefix), tui.ColorRepository(opts.Repository), tui.ColorRef(opts.RemoteRef))
			}

			res, err := st.Pull(ctx.Context, opts)
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

	cmd.Flags().BoolVarP(&squash, "squash", "s", false, "Create only one commit that contains all the changes, rather than merging in the entire history")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Use <message> as the commit message for the merge commit")

	return cmd
}

// argsNoneOrExactly accepts either zero or exactly n positional arguments
func argsNoneOrExactly(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || len(args) == n {
			return nil
		}
		return cobra.ExactArgs(n)(cmd, args)
	}
}
