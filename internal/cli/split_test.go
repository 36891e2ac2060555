package cli_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"treekit.dev/treekit/testhelpers"
)

func TestSplitCommand(t *testing.T) {
	t.Run("dry-run with defaults", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		output, err := runTreekit(t, scene, "split", "-P", "vendor/lib", "--dry-run")
		require.NoError(t, err, "split failed: %s", output)
		require.Contains(t, output, "git subtree split -P vendor/lib")
	})

	t.Run("dry-run with all options in fixed order", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		output, err := runTreekit(t, scene,
			"split", "-P", "vendor/lib",
			"--annotate", "(lib)", "-b", "lib-export", "--ignore-joins",
			"--onto", "cafebabe", "--rejoin", "--squash", "-m", "rejoin",
			"HEAD~5", "--dry-run")
		require.NoError(t, err, "split failed: %s", output)
		require.Contains(t, output,
			"git subtree split HEAD~5 '--annotate=(lib)' -b lib-export --ignore-joins --onto=cafebabe --rejoin --squash -m rejoin -P vendor/lib")
	})

	t.Run("local commit and repository positionals", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		output, err := runTreekit(t, scene,
			"split", "-P", "vendor/lib", "HEAD", "https://example.com/lib.git", "--dry-run")
		require.NoError(t, err, "split failed: %s", output)
		require.Contains(t, output, "git subtree split HEAD https://example.com/lib.git -P vendor/lib")
	})

	t.Run("requires a prefix", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		output, err := runTreekit(t, scene, "split", "--dry-run")
		require.Error(t, err)
		require.Contains(t, output, "requires a prefix")
	})
}

func TestMergeCommand(t *testing.T) {
	t.Run("dry-run with squash", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		output, err := runTreekit(t, scene,
			"merge", "-P", "vendor/lib", "--squash", "v2.0", "--dry-run")
		require.NoError(t, err, "merge failed: %s", output)
		require.Contains(t, output, "git subtree merge v2.0 --squash -P vendor/lib")
	})

	t.Run("requires a local commit", func(t *testing.T) {
		scene := testhelpers.NewScene(t, func(s *testhelpers.Scene) error {
			return s.Repo.CreateChangeAndCommit("file.txt", "hello", "init")
		})

		_, err := runTreekit(t, scene, "merge", "-P", "vendor/lib", "--dry-run")
		require.Error(t, err)
	})
}
