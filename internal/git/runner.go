package git

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"
	"time"

	treekiterrors "treekit.dev/treekit/internal/errors"
)

// DefaultCommandTimeout is the default timeout for git commands
const DefaultCommandTimeout = 5 * time.Minute

// CommandRunner handles execution of git commands
type CommandRunner struct {
	workingDir string
}

// NewCommandRunner creates a new CommandRunner
func NewCommandRunner(workingDir string) *CommandRunner {
	return &CommandRunner{workingDir: workingDir}
}

// Run executes a git command with the given context and returns the trimmed output
func (r *CommandRunner) Run(ctx context.Context, args ...string) (string, error) {
	out, _, err := r.runInternal(ctx, args...)
	return strings.TrimSpace(out), err
}

// RunRaw executes a git command and returns the raw output (no trimming)
func (r *CommandRunner) RunRaw(ctx context.Context, args ...string) (string, error) {
	out, _, err := r.runInternal(ctx, args...)
	return out, err
}

// RunProgram executes an arbitrary program and returns both captured streams.
// Used for commands whose executable is configurable rather than plain git.
func (r *CommandRunner) RunProgram(ctx context.Context, name string, args ...string) (stdout, stderr string, err error) {
	return r.runProgram(ctx, name, args...)
}

func (r *CommandRunner) runInternal(ctx context.Context, args ...string) (string, string, error) {
	return r.runProgram(ctx, "git", args...)
}

func (r *CommandRunner) runProgram(ctx context.Context, name string, args ...string) (string, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	// If no timeout/deadline is set in the context, add the default one
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultCommandTimeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, name, args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			err = ctx.Err()
		}
		return stdout.String(), stderr.String(),
			treekiterrors.NewGitCommandError(name, args, stdout.String(), stderr.String(), err)
	}
	return stdout.String(), stderr.String(), nil
}

// RunLines executes a git command and returns the output as lines
func (r *CommandRunner) RunLines(ctx context.Context, args ...string) ([]string, error) {
	output, err := r.Run(ctx, args...)
	if err != nil {
		return nil, err
	}
	if output == "" {
		return []string{}, nil
	}
	return strings.Split(output, "\n"), nil
}

// RunInteractive executes a git command with stdin/stdout/stderr connected
// to the terminal.
func (r *CommandRunner) RunInteractive(args ...string) error {
	cmd := exec.Command("git", args...)
	if r.workingDir != "" {
		cmd.Dir = r.workingDir
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	return cmd.Run()
}
