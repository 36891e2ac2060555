package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"treekit.dev/treekit/internal/config"
	"treekit.dev/treekit/internal/subtree"
	"treekit.dev/treekit/internal/tui"
)

// newAddCmd creates the add command
func newAddCmd(g *globalFlags) *cobra.Command {
	var (
		squash  bool
		message string
	)

	cmd := &cobra.Command{
		Use:   "add [<local-commit> | <repository> <remote-ref>]",
		Short: "Create the prefix subtree by importing another project's contents",
		Long: `Create the prefix subtree by importing its contents from the given
local commit, or from a repository and remote ref. A new commit is created
automatically, joining the imported project's history with your own.

With --squash, import only a single commit from the subproject, rather than
its entire history.

When a repository and ref are given, the upstream is recorded so later pulls
and pushes for the same prefix can omit them.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, st, err := setup(cmd, g)
			if err != nil {
				return err
			}
			defer ctx.Splog.Close()

			opts := subtree.AddOptions{
				Squash:  squash,
				Message: message,
			}

			switch len(args) {
			case 1:
				opts.LocalCommit = args[0]
			case 2:
				opts.Repository = args[0]
				opts.RemoteRef = args[1]
			default:
				if !tui.IsInteractive() {
					return fmt.Errorf("add requires a <local-commit> or a <repository> and <remote-ref>")
				}
				repository, err := tui.PromptInput("Repository to import from:", "")
				if err != nil {
					return err
				}
				remoteRef, err := tui.PromptInput("Ref to import:", "HEAD")
				if err != nil {
					return err
				}
				opts.Repository = repository
				opts.RemoteRef = remoteRef
				if !squash {
					squash, err = tui.PromptConfirm("Squash the imported history into a single commit?", false)
					if err != nil {
						return err
					}
					opts.Squash = squash
				}
			}

			res, err := st.Add(ctx.Context, opts)
			if err != nil {
				return err
			}
			emit(ctx, g, res)

			if !g.dryRun && opts.Repository != "" {
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

	cmd.Flags().BoolVarP(&squash, "squash", "s", false, "Import only a single commit from the subproject, rather than its entire history")
	cmd.Flags().StringVarP(&message, "message", "m", "", "Use <message> as the commit message for the merge commit")

	return cmd
}
