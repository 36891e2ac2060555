package cli

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"slices"

	"github.com/kballard/go-shellquote"

	"treekit.dev/treekit/internal/git"
)

// gitCommandAllowlist holds plain git commands that are forwarded untouched.
// The subtree verbs (add, merge, split, pull, push) are deliberately absent:
// treekit owns those.
var gitCommandAllowlist = []string{
	"blame",
	"branch",
	"checkout",
	"diff",
	"fetch",
	"log",
	"remote",
	"show",
	"status",
	"switch",
	"tag",
}

// HandlePassthrough checks if the command should be passed through to git
// and executes it if so. Returns true if the command was handled (and the program should exit).
func HandlePassthrough(args []string) bool {
	if len(args) < 2 {
		return false
	}

	command := args[1]
	if !slices.Contains(gitCommandAllowlist, command) {
		return false
	}

	gitArgs := args[1:]

	fmt.Fprintf(os.Stderr, "\033[90mPassing command through to git...\033[0m\n")
	fmt.Fprintf(os.Stderr, "\033[90mRunning: \"git %s\"\033[0m\n\n", shellquote.Join(gitArgs...))

	if err := git.NewCommandRunner("").RunInteractive(gitArgs...); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			os.Exit(exitError.ExitCode())
		}
		os.Exit(1)
	}
	os.Exit(0)
	return true
}
