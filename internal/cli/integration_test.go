package cli_test

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"treekit.dev/treekit/testhelpers"
)

var (
	subtreeCheckOnce sync.Once
	subtreeAvailable bool
)

// requireGitSubtree skips the test when the git subtree contrib command is
// not installed.
func requireGitSubtree(t *testing.T) {
	t.Helper()
	subtreeCheckOnce.Do(func() {
		output, _ := exec.Command("git", "subtree").CombinedOutput()
		subtreeAvailable = !strings.Contains(string(output), "is not a git command")
	})
	if !subtreeAvailable {
		t.Skip("git subtree is not available")
	}
}

// newLibRepo creates a standalone repository to import as a subtree.
func newLibRepo(t *testing.T) *testhelpers.GitRepo {
	t.Helper()
	dir, err := os.MkdirTemp("", "treekit-lib-*")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	repo, err := testhelpers.NewGitRepo(dir)
	require.NoError(t, err)
	require.NoError(t, repo.CreateChangeAndCommit("lib.txt", "library code", "lib: initial commit"))
	require.NoError(t, repo.CreateChangeAndCommit("lib.txt", "library code v2", "lib: second commit"))
	return repo
}

func TestSubtreeRoundtrip(t *testing.T) {
	requireGitSubtree(t)

	t.Run("add imports the library under the prefix", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("app.txt", "app code", "init")
		})
		lib := newLibRepo(t)

		output, err := runTreekit(t, scene, "add", "-P", "vendor/lib", lib.Dir, "main")
		require.NoError(t, err, "add failed: %s", output)

		files, err := scene.Repo.ListFiles()
		require.NoError(t, err)
		require.Contains(t, files, "vendor/lib/lib.txt")
	})

	t.Run("split prints a commit id", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("app.txt", "app code", "init")
		})
		lib := newLibRepo(t)

		output, err := runTreekit(t, scene, "add", "-P", "vendor/lib", lib.Dir, "main")
		require.NoError(t, err, "add failed: %s", output)

		// Change the vendored library so there is something to extract
		require.NoError(t, scene.Repo.CreateChangeAndCommit("vendor/lib/extra.txt", "local change", "tweak lib"))

		stdout, err := runTreekitStdout(t, scene, "split", "-P", "vendor/lib", "--annotate", "(lib) ")
		require.NoError(t, err, "split failed: %s", stdout)

		// The last stdout line is the synthetic HEAD commit id
		lines := strings.Split(strings.TrimSpace(stdout), "\n")
		sha := lines[len(lines)-1]
		require.Len(t, sha, 40)

		// The id must name a real commit
		objType, err := scene.Repo.RunGitCommandAndGetOutput("cat-file", "-t", sha)
		require.NoError(t, err)
		require.Equal(t, "commit", objType)
	})

	t.Run("pull uses the recorded upstream", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("app.txt", "app code", "init")
		})
		lib := newLibRepo(t)

		output, err := runTreekit(t, scene, "add", "-P", "vendor/lib", "--squash", lib.Dir, "main")
		require.NoError(t, err, "add failed: %s", output)

		// Advance the library upstream
		require.NoError(t, lib.CreateChangeAndCommit("lib.txt", "library code v3", "lib: third commit"))

		output, err = runTreekit(t, scene, "pull", "-P", "vendor/lib")
		require.NoError(t, err, "pull failed: %s", output)

		data, err := os.ReadFile(filepath.Join(scene.Dir, "vendor", "lib", "lib.txt"))
		require.NoError(t, err)
		require.Equal(t, "library code v3", string(data))
	})
}
