// Package subtree builds and runs git-subtree command lines. It does not
// implement any of the subtree algorithm itself; its job is translating
// structured options into the token list git subtree expects and handing
// that list to the external tool.
package subtree

import (
	"context"
	"strings"

	treekiterrors "treekit.dev/treekit/internal/errors"
	"treekit.dev/treekit/internal/git"
)

// DefaultBaseCommand is the executable invocation the generated arguments
// are appended to.
const DefaultBaseCommand = "git subtree"

// Subtree drives git-subtree operations against a single repository.
// Prefix is mandatory for every operation.
type Subtree struct {
	// RepoPath is the working directory the external tool runs in.
	RepoPath string

	// BaseCommand overrides DefaultBaseCommand. It may contain spaces and
	// is split into fields before execution.
	BaseCommand string

	// Prefix is the path in the repository to the subtree being manipulated.
	Prefix string

	// Quiet suppresses unnecessary output messages on stderr.
	Quiet bool

	// Debug produces even more output messages on stderr.
	Debug bool

	// DryRun builds the token list but skips execution. The Result then
	// carries only Args.
	DryRun bool

	runner *git.CommandRunner
}

// New creates a Subtree rooted at repoPath.
func New(repoPath string) *Subtree {
	return &Subtree{
		RepoPath: repoPath,
		runner:   git.NewCommandRunner(repoPath),
	}
}

// Result holds the outcome of an invocation: the exact token list that was
// run and the captured streams, unparsed.
type Result struct {
	Args   []string
	Stdout string
	Stderr string
}

func (s *Subtree) base() []string {
	cmd := s.BaseCommand
	if cmd == "" {
		cmd = DefaultBaseCommand
	}
	return strings.Fields(cmd)
}

// globals returns the options shared by every subcommand, in their fixed
// trailing order: quiet, debug, prefix.
func (s *Subtree) globals() []Option {
	return []Option{
		Flag("q", s.Quiet),
		Flag("d", s.Debug),
		Value("P", s.Prefix),
	}
}

// ToArgs builds the full token list for a subcommand: base command fields,
// the subcommand, non-empty positionals, then option flags. Per-command
// options come before the global quiet/debug/prefix options.
func (s *Subtree) ToArgs(subcommand string, opts []Option, positionals ...string) []string {
	args := append(s.base(), subcommand)
	for _, p := range positionals {
		if p != "" {
			args = append(args, p)
		}
	}
	return append(args, optionTokens(append(opts, s.globals()...))...)
}

// run executes the assembled command. Exit status is not interpreted: a
// failure is returned as-is, with both streams captured in the Result.
func (s *Subtree) run(ctx context.Context, subcommand string, opts []Option, positionals ...string) (Result, error) {
	if s.Prefix == "" {
		return Result{}, treekiterrors.NewPrefixRequiredError(subcommand)
	}

	args := s.ToArgs(subcommand, opts, positionals...)
	if s.DryRun {
		return Result{Args: args}, nil
	}
	if s.runner == nil {
		s.runner = git.NewCommandRunner(s.RepoPath)
	}
	stdout, stderr, err := s.runner.RunProgram(ctx, args[0], args[1:]...)
	return Result{Args: args, Stdout: stdout, Stderr: stderr}, err
}

// AddOptions configures Add. Exactly one of LocalCommit or the
// Repository/RemoteRef pair must be set.
type AddOptions struct {
	LocalCommit string
	Repository  string
	RemoteRef   string

	// Squash imports only a single commit from the subproject, rather
	// than its entire history.
	Squash bool

	// Message is used as the commit message for the merge commit.
	Message string
}

// Add creates the prefix subtree by importing its contents from the given
// local commit, or from a repository and remote ref.
func (s *Subtree) Add(ctx context.Context, opts AddOptions) (Result, error) {
	flags := []Option{
		Flag("squash", opts.Squash),
		Value("m", opts.Message),
	}
	if opts.LocalCommit != "" {
		return s.run(ctx, "add", flags, opts.LocalCommit)
	}
	return s.run(ctx, "add", flags, opts.Repository, opts.RemoteRef)
}

// MergeOptions configures Merge.
type MergeOptions struct {
	LocalCommit string

	// Repository is used to fetch a missing annotated tag when the previous
	// squash merge referenced one.
	Repository string

	Squash  bool
	Message string
}

// Merge merges recent changes up to the local commit into the prefix subtree.
func (s *Subtree) Merge(ctx context.Context, opts MergeOptions) (Result, error) {
	flags := []Option{
		Flag("squash", opts.Squash),
		Value("m", opts.Message),
	}
	return s.run(ctx, "merge", flags, opts.LocalCommit, opts.Repository)
}

// SplitOptions configures Split. An empty LocalCommit means HEAD; the
// external tool applies the default.
type SplitOptions struct {
	LocalCommit string
	Repository  string

	// Annotate prefixes each synthetic commit message. Repeated splits must
	// use the same annotation to reproduce identical history.
	Annotate string

	// Branch creates a new branch containing the synthetic history.
	// It must not already exist.
	Branch string

	// IgnoreJoins disables the rejoin optimization and regenerates the
	// entire synthetic history.
	IgnoreJoins bool

	// Onto names the first imported revision when the subtree was not
	// originally imported with subtree add.
	Onto string

	// Rejoin merges the synthetic history back into the main project so
	// future splits only walk commits added since.
	Rejoin bool

	Squash  bool
	Message string
}

// Split extracts a synthetic project history from the prefix subtree.
// On success the external tool prints the new HEAD commit ID to stdout.
func (s *Subtree) Split(ctx context.Context, opts SplitOptions) (Result, error) {
	flags := []Option{
		Value("annotate", opts.Annotate),
		Value("b", opts.Branch),
		Flag("ignore-joins", opts.IgnoreJoins),
		Value("onto", opts.Onto),
		Flag("rejoin", opts.Rejoin),
		Flag("squash", opts.Squash),
		Value("m", opts.Message),
	}
	return s.run(ctx, "split", flags, opts.LocalCommit, opts.Repository)
}

// PullOptions configures Pull.
type PullOptions struct {
	Repository string
	RemoteRef  string

	Squash  bool
	Message string
}

// Pull is merge plus a fetch of the given ref from the remote repository.
func (s *Subtree) Pull(ctx context.Context, opts PullOptions) (Result, error) {
	flags := []Option{
		Value("m", opts.Message),
		Flag("squash", opts.Squash),
	}
	return s.run(ctx, "pull", flags, opts.Repository, opts.RemoteRef)
}

// PushOptions configures Push. An empty LocalCommit means HEAD.
type PushOptions struct {
	Repository  string
	LocalCommit string
	RemoteRef   string

	Annotate    string
	Branch      string
	IgnoreJoins bool
	Onto        string
	Rejoin      bool
	Squash      bool
	Message     string
}

// Push splits the prefix subtree of the local commit and pushes the result
// to the repository and remote ref.
func (s *Subtree) Push(ctx context.Context, opts PushOptions) (Result, error) {
	flags := []Option{
		Value("annotate", opts.Annotate),
		Value("b", opts.Branch),
		Flag("ignore-joins", opts.IgnoreJoins),
		Value("onto", opts.Onto),
		Flag("rejoin", opts.Rejoin),
		Flag("squash", opts.Squash),
		Value("m", opts.Message),
	}
	return s.run(ctx, "push", flags, opts.Repository, opts.LocalCommit, opts.RemoteRef)
}

// ParseRefspec splits a push refspec of the form [+][<local-commit>:]<remote-ref>.
// The optional leading + is ignored; a missing <local-commit> part means HEAD.
func ParseRefspec(refspec string) (localCommit, remoteRef string) {
	refspec = strings.TrimPrefix(refspec, "+")
	if local, remote, ok := strings.Cut(refspec, ":"); ok {
		return local, remote
	}
	return "", refspec
}
