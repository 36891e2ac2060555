package runtime

import (
	"context"

	"treekit.dev/treekit/internal/git"
	"treekit.dev/treekit/internal/tui"
)

// Context provides access to repository state and output for commands
type Context struct {
	Context  context.Context
	Splog    *tui.Splog
	RepoRoot string
	Runner   *git.CommandRunner
}

// GetContext resolves the repository rooted at or above dir (the current
// working directory if dir is empty) and builds the shared logger.
func GetContext(ctx context.Context, dir string) (*Context, error) {
	repoRoot, err := git.GetRepoRoot(dir)
	if err != nil {
		return nil, err
	}

	splog, err := tui.NewSplogWithConfig(tui.GetLogFilePath())
	if err != nil {
		splog = tui.NewSplog()
	}

	return &Context{
		Context:  ctx,
		Splog:    splog,
		RepoRoot: repoRoot,
		Runner:   git.NewCommandRunner(repoRoot),
	}, nil
}
