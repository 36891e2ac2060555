package subtree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptionTokens(t *testing.T) {
	t.Run("long flag", func(t *testing.T) {
		require.Equal(t, []string{"--squash"}, optionTokens([]Option{Flag("squash", true)}))
	})

	t.Run("short flag", func(t *testing.T) {
		require.Equal(t, []string{"-q"}, optionTokens([]Option{Flag("q", true)}))
	})

	t.Run("unset flag emits nothing", func(t *testing.T) {
		require.Empty(t, optionTokens([]Option{Flag("squash", false), Flag("q", false)}))
	})

	t.Run("long value is equals-joined into one token", func(t *testing.T) {
		require.Equal(t, []string{"--annotate=split: "}, optionTokens([]Option{Value("annotate", "split: ")}))
	})

	t.Run("short value follows as a separate token", func(t *testing.T) {
		require.Equal(t, []string{"-m", "merge lib"}, optionTokens([]Option{Value("m", "merge lib")}))
	})

	t.Run("empty value emits nothing", func(t *testing.T) {
		require.Empty(t, optionTokens([]Option{Value("onto", ""), Value("m", "")}))
	})

	t.Run("order is preserved", func(t *testing.T) {
		tokens := optionTokens([]Option{
			Value("annotate", "x"),
			Value("b", "staging"),
			Flag("ignore-joins", true),
			Flag("q", true),
			Value("P", "vendor/lib"),
		})
		require.Equal(t, []string{"--annotate=x", "-b", "staging", "--ignore-joins", "-q", "-P", "vendor/lib"}, tokens)
	})
}

func TestDash(t *testing.T) {
	require.Equal(t, "-m", dash("m"))
	require.Equal(t, "--message", dash("message"))
	require.Equal(t, "--ignore-joins", dash("ignore-joins"))
}
