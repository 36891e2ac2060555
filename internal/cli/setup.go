package cli

import (
	"fmt"
	"os"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"treekit.dev/treekit/internal/runtime"
	"treekit.dev/treekit/internal/subtree"
)

// setup resolves the runtime context and builds the subtree handle from the
// persistent flags.
func setup(cmd *cobra.Command, g *globalFlags) (*runtime.Context, *subtree.Subtree, error) {
	ctx, err := runtime.GetContext(cmd.Context(), g.repo)
	if err != nil {
		return nil, nil, err
	}
	ctx.Splog.SetQuiet(g.quiet)

	st := subtree.New(ctx.RepoRoot)
	st.Prefix = g.prefix
	st.Quiet = g.quiet
	st.Debug = g.debug
	st.DryRun = g.dryRun

	return ctx, st, nil
}

// emit surfaces a successful invocation. The external tool's streams are
// relayed verbatim; in dry-run mode the assembled command line is printed
// shell-quoted instead.
func emit(ctx *runtime.Context, g *globalFlags, res subtree.Result) {
	if g.dryRun {
		ctx.Splog.Info("%s", shellquote.Join(res.Args...))
		return
	}
	if res.Stdout != "" {
		ctx.Splog.Page(res.Stdout)
	}
	if res.Stderr != "" && !g.quiet {
		_, _ = fmt.Fprint(os.Stderr, res.Stderr)
	}
}
