package tui

import (
	"os"
	"path/filepath"
)

// GetLogFilePath returns the path to the log file.
// If TREEKIT_LOG_FILE is set, uses that path.
// Otherwise, uses ~/.treekit/logs/treekit.log
func GetLogFilePath() string {
	if customPath := os.Getenv("TREEKIT_LOG_FILE"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if we can't get home dir
		return "treekit.log"
	}

	return filepath.Join(homeDir, ".treekit", "logs", "treekit.log")
}
