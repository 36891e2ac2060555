// Package tui provides the terminal user interface for treekit.
//
// It handles:
//   - Interactive prompts (using survey)
//   - Structured logging and status reporting (Splog)
//   - Terminal styling and colors (using lipgloss)
package tui
