// Package errors provides sentinel errors and custom error types for the treekit application.
// Use errors.Is() and errors.As() to check for specific error types.
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	// ErrPrefixRequired indicates that no subtree prefix was supplied
	ErrPrefixRequired = errors.New("prefix is required")

	// ErrNotARepository indicates that the working directory is not inside a git repository
	ErrNotARepository = errors.New("not a git repository")

	// ErrSubtreeNotTracked indicates that no upstream is recorded for a prefix
	ErrSubtreeNotTracked = errors.New("subtree not tracked")
)

// PrefixRequiredError reports an operation invoked without a prefix
type PrefixRequiredError struct {
	Subcommand string
}

func (e *PrefixRequiredError) Error() string {
	return fmt.Sprintf("subtree %s requires a prefix (use -P/--prefix)", e.Subcommand)
}

// Is returns true if the target error is ErrPrefixRequired
func (e *PrefixRequiredError) Is(target error) bool {
	return target == ErrPrefixRequired
}

// NewPrefixRequiredError creates a new PrefixRequiredError
func NewPrefixRequiredError(subcommand string) *PrefixRequiredError {
	return &PrefixRequiredError{Subcommand: subcommand}
}

// SubtreeNotTrackedError reports a pull or push for a prefix with no recorded upstream
type SubtreeNotTrackedError struct {
	Prefix string
}

func (e *SubtreeNotTrackedError) Error() string {
	return fmt.Sprintf("no upstream recorded for prefix %s; pass <repository> <ref> explicitly", e.Prefix)
}

// Is returns true if the target error is ErrSubtreeNotTracked
func (e *SubtreeNotTrackedError) Is(target error) bool {
	return target == ErrSubtreeNotTracked
}

// NewSubtreeNotTrackedError creates a new SubtreeNotTrackedError
func NewSubtreeNotTrackedError(prefix string) *SubtreeNotTrackedError {
	return &SubtreeNotTrackedError{Prefix: prefix}
}

// GitCommandError represents an error from a git command execution.
// Stdout and Stderr hold whatever the child process printed, verbatim.
type GitCommandError struct {
	Command string
	Args    []string
	Stdout  string
	Stderr  string
	Err     error
}

func (e *GitCommandError) Error() string {
	msg := fmt.Sprintf("%s command failed: %s", e.Command, strings.Join(e.Args, " "))
	if e.Stderr != "" {
		msg += fmt.Sprintf("\nstderr: %s", e.Stderr)
	}
	if e.Stdout != "" {
		msg += fmt.Sprintf("\nstdout: %s", e.Stdout)
	}
	if e.Err != nil {
		msg += fmt.Sprintf("\n%v", e.Err)
	}
	return msg
}

func (e *GitCommandError) Unwrap() error {
	return e.Err
}

// NewGitCommandError creates a new GitCommandError
func NewGitCommandError(command string, args []string, stdout, stderr string, err error) *GitCommandError {
	return &GitCommandError{
		Command: command,
		Args:    args,
		Stdout:  stdout,
		Stderr:  stderr,
		Err:     err,
	}
}
