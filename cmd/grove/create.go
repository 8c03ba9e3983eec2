package main

import (
	"github.com/grovekit/grove/pkg/fs"
	"github.com/grovekit/grove/pkg/plugins/ide"
	"github.com/spf13/cobra"
)

func createCreateCmd() *cobra.Command {
	var ideName string

	createCmd := &cobra.Command{
		Use:   "create <branch> [--ide <ide-name>]",
		Short: "Create a worktree for the specified branch",
		Long: `Create a worktree (and branch, if needed) for the specified branch.

The new worktree path is printed on stdout so a shell wrapper can cd into it.

Examples:
  grove create feature-branch
  grove create feat/login --ide vscode
  grove create feature-branch --ide cursor`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			if ideName != "" {
				plugin, err := ide.NewPlugin(ideName, fs.NewFS())
				if err != nil {
					return err
				}
				cfg.Plugins = append(cfg.Plugins, plugin)
			}

			g, err := newGrove(cfg)
			if err != nil {
				return err
			}
			return g.CreateWorkTree(args[0])
		},
	}

	createCmd.Flags().StringVarP(&ideName, "ide", "i", "", "Open in specified IDE after creation")

	return createCmd
}
