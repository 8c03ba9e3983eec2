package main

import (
	"github.com/spf13/cobra"
)

func createMergeCmd() *cobra.Command {
	var keep bool

	mergeCmd := &cobra.Command{
		Use:   "merge [--keep]",
		Short: "Merge the current branch into the primary worktree",
		Long: `Merge the branch checked out in the current worktree into the primary
worktree (the one on the default branch). On success the merged worktree and
branch are removed unless --keep is given, and the primary worktree path is
printed on stdout. On merge failure nothing is torn down and the current
directory is printed instead, so the calling shell stays where it is.

Examples:
  grove merge
  grove merge --keep`,
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
			return g.MergeWorkTree(keep)
		},
	}

	mergeCmd.Flags().BoolVarP(&keep, "keep", "k", false, "Keep the worktree and branch after merging")

	return mergeCmd
}
