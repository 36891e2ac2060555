package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"treekit.dev/treekit/testhelpers"
)

func TestPassthrough(t *testing.T) {
	t.Run("forwards allowlisted commands to git", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		output, err := runTreekit(t, scene, "status")
		require.NoError(t, err, "status failed: %s", output)
		require.Contains(t, output, "Passing command through to git")
		require.Contains(t, output, "working tree clean")
	})

	t.Run("propagates the git exit status", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		_, err := runTreekit(t, scene, "checkout", "no-such-branch")
		require.Error(t, err)
	})

	t.Run("leaves subtree verbs to treekit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		output, err := runTreekit(t, scene,
			"add", "-P", "vendor/lib", "deadbeef", "--dry-run")
		require.NoError(t, err, "add failed: %s", output)
		require.NotContains(t, output, "Passing command through to git")
	})
}
