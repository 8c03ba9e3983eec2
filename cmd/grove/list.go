package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/grovekit/grove/pkg/grove"
	"github.com/spf13/cobra"
)

var (
	primaryStyle  = lipgloss.NewStyle().Bold(true)
	detachedStyle = lipgloss.NewStyle().Faint(true)
)

func createListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List worktrees with their divergence from the default branch",
		Long: `List all worktrees of the current repository with ahead/behind counts
against the default branch and the number of uncommitted changes.

Examples:
  grove list`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			g, err := newGrove(cfg)
			if err != nil {
				return err
			}

			infos, err := g.ListWorkTrees()
			if err != nil {
				return err
			}

			printWorktrees(infos)
			return nil
		},
	}

	return listCmd
}

func printWorktrees(infos []grove.WorktreeInfo) {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	defer w.Flush()

	for _, info := range infos {
		branch := info.Branch
		switch {
		case info.IsDetached:
			branch = detachedStyle.Render("(detached)")
		case info.IsPrimary:
			branch = primaryStyle.Render(branch + " *")
		}

		status := ""
		if info.Ahead > 0 || info.Behind > 0 {
			status = fmt.Sprintf("+%d -%d", info.Ahead, info.Behind)
		}
		if info.Uncommitted > 0 {
			if status != "" {
				status += " "
			}
			status += fmt.Sprintf("%d uncommitted", info.Uncommitted)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", branch, info.Path, status)
	}
}
