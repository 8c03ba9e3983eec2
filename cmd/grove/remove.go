package main

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// errNoTerminal is returned when interactive selection is requested
// without a terminal attached.
var errNoTerminal = errors.New("interactive worktree selection requires a terminal; pass a branch name instead")

func createRemoveCmd() *cobra.Command {
	var force bool

	removeCmd := &cobra.Command{
		Use:   "remove [branch] [--force]",
		Short: "Remove a worktree and its branch",
		Long: `Remove the worktree for the specified branch, or pick one interactively
when no branch is given. The worktree on the default branch can never be
removed. Without --force a confirmation prompt shows uncommitted changes and
unmerged commits before anything is deleted.

Examples:
  grove remove feature-branch
  grove remove feature-branch --force
  grove remove`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			var branch string
			if len(args) == 1 {
				branch = args[0]
			}

			if branch == "" && !isTerminal(os.Stdin) {
				return errNoTerminal
			}

			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			g, err := newGrove(cfg)
			if err != nil {
				return err
			}
			return g.DeleteWorkTree(branch, force)
		},
	}

	removeCmd.Flags().BoolVarP(&force, "force", "f", false, "Skip confirmation and force worktree removal")

	return removeCmd
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
