// Package git provides low-level git command execution.
//
// It wraps external command invocation and provides a Go-friendly interface
// for:
//   - Running git with captured or inherited output
//   - Running arbitrary programs under the same timeout and error handling
//   - Repository root discovery (via go-git)
//
// This package should be the only place where external commands are executed.
package git
