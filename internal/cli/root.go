package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// globalFlags holds the persistent flags shared by every subtree subcommand
type globalFlags struct {
	prefix string
	quiet  bool
	debug  bool
	repo   string
	dryRun bool
}

// NewRootCmd creates the root cobra command
func NewRootCmd(version, commit, date string) *cobra.Command {
	g := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "treekit",
		Short: "Treekit embeds and extracts subproject history using git subtree",
		Long: `Treekit embeds and extracts subproject history using git subtree.

A subtree is just a subdirectory that can be committed to, branched, and
merged along with your project. Treekit builds the git subtree command line
for you and remembers each subtree's upstream so pulls and pushes don't need
the repository spelled out every time.`,
		SilenceUsage: true,
		Version:      fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	}

	rootCmd.PersistentFlags().StringVarP(&g.prefix, "prefix", "P", "", "Path in the repository to the subtree to manipulate (mandatory for all commands)")
	rootCmd.PersistentFlags().BoolVarP(&g.quiet, "quiet", "q", false, "Suppress unnecessary output messages on stderr")
	rootCmd.PersistentFlags().BoolVarP(&g.debug, "debug", "d", false, "Produce even more output messages on stderr")
	rootCmd.PersistentFlags().StringVarP(&g.repo, "repo", "C", "", "Run as if started in this directory instead of the current one")
	rootCmd.PersistentFlags().BoolVar(&g.dryRun, "dry-run", false, "Print the git subtree command line without running it")

	// Add subcommands
	rootCmd.AddCommand(newAddCmd(g))
	rootCmd.AddCommand(newMergeCmd(g))
	rootCmd.AddCommand(newSplitCmd(g))
	rootCmd.AddCommand(newPullCmd(g))
	rootCmd.AddCommand(newPushCmd(g))
	rootCmd.AddCommand(newListCmd(g))

	return rootCmd
}
