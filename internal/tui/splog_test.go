package tui_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"treekit.dev/treekit/internal/tui"
)

func TestSplog(t *testing.T) {
	t.Run("info writes the plain message", func(t *testing.T) {
		var buf bytes.Buffer
		splog := tui.NewSplog()
		splog.SetWriter(&buf)

		splog.Info("pulling %s", "vendor/lib")
		require.Equal(t, "pulling vendor/lib\n", buf.String())
	})

	t.Run("warn and tip carry their markers", func(t *testing.T) {
		var buf bytes.Buffer
		splog := tui.NewSplog()
		splog.SetWriter(&buf)

		splog.Warn("upstream not recorded")
		splog.Tip("pass the repository explicitly")
		require.Contains(t, buf.String(), "⚠️  upstream not recorded")
		require.Contains(t, buf.String(), "💡 pass the repository explicitly")
	})

	t.Run("quiet suppresses everything below error", func(t *testing.T) {
		var buf bytes.Buffer
		splog := tui.NewSplog()
		splog.SetWriter(&buf)

		splog.SetQuiet(true)
		require.True(t, splog.IsQuiet())

		splog.Info("hidden")
		splog.Warn("hidden")
		require.Empty(t, buf.String())

		splog.Error("shown")
		require.Contains(t, buf.String(), "❌ shown")
	})

	t.Run("debug output requires the DEBUG environment", func(t *testing.T) {
		var buf bytes.Buffer
		splog := tui.NewSplog()
		splog.SetWriter(&buf)

		splog.Debug("hidden")
		require.Empty(t, buf.String())

		t.Setenv("DEBUG", "1")
		splog.SetWriter(&buf)
		splog.Debug("shown")
		require.Equal(t, "shown\n", buf.String())
	})

	t.Run("page and newline write verbatim", func(t *testing.T) {
		var buf bytes.Buffer
		splog := tui.NewSplog()
		splog.SetWriter(&buf)

		splog.Page("raw output")
		splog.Newline()
		require.Equal(t, "raw output\n", buf.String())
	})
}
