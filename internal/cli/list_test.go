package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"treekit.dev/treekit/internal/config"
	"treekit.dev/treekit/testhelpers"
)

func TestListCommand(t *testing.T) {
	t.Run("empty repository", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		output, err := runTreekit(t, scene, "list")
		require.NoError(t, err, "list failed: %s", output)
		require.Contains(t, output, "No subtrees recorded yet")
	})

	t.Run("shows recorded subtrees", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		require.NoError(t, config.RecordSubtree(scene.Dir, "vendor/lib", config.SubtreeEntry{
			Repository: "https://example.com/lib.git",
			Ref:        "main",
			Squash:     true,
		}))
		require.NoError(t, config.RecordSubtree(scene.Dir, "third_party/tool", config.SubtreeEntry{
			Repository: "https://example.com/tool.git",
			Ref:        "v1",
		}))

		output, err := runTreekit(t, scene, "list")
		require.NoError(t, err, "list failed: %s", output)
		require.Contains(t, output, "vendor/lib")
		require.Contains(t, output, "https://example.com/lib.git")
		require.Contains(t, output, "(squash)")
		require.Contains(t, output, "third_party/tool")
		require.Contains(t, output, "v1")
	})
}
