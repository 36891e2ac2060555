package git

import (
	"fmt"
	"os"

	gogit "github.com/go-git/go-git/v5"

	treekiterrors "treekit.dev/treekit/internal/errors"
)

// GetRepoRoot returns the root directory of the Git repository containing dir.
// If dir is empty, the current working directory is used.
func GetRepoRoot(dir string) (string, error) {
	if dir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("failed to get working directory: %w", err)
		}
		dir = wd
	}

	// Use go-git to find the repository
	repo, err := gogit.PlainOpenWithOptions(dir, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %s", treekiterrors.ErrNotARepository, dir)
	}

	// Get the worktree to find the root
	worktree, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("failed to get worktree: %w", err)
	}

	return worktree.Filesystem.Root(), nil
}
