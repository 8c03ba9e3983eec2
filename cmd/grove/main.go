// Package main provides the command-line interface for grove.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/grovekit/grove/pkg/config"
	"github.com/grovekit/grove/pkg/dependencies"
	"github.com/grovekit/grove/pkg/grove"
	"github.com/grovekit/grove/pkg/logger"
	"github.com/spf13/cobra"
)

var (
	quiet      bool
	verbose    bool
	configPath string
)

// defaultConfigPath returns the config file path used when --config is
// not given.
func defaultConfigPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".grove", "config.yaml")
}

// loadConfig resolves the configuration for this invocation. An explicit
// --config path must exist; the default location falls back to the
// built-in defaults when absent.
func loadConfig() (config.Config, error) {
	manager := config.NewManager()

	if configPath != "" {
		cfg, err := manager.Load(configPath)
		if err != nil {
			return config.Config{}, fmt.Errorf("failed to load config %s: %w", configPath, err)
		}
		return cfg, nil
	}

	path := defaultConfigPath()
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, "Using config %s\n", path)
	}
	return manager.LoadWithFallback(path)
}

// newGrove builds a Grove instance with the standard dependency wiring.
// Diagnostics go to stderr; --quiet silences them. Stdout stays reserved
// for the worktree path consumed by the calling shell.
func newGrove(cfg config.Config) (grove.Grove, error) {
	deps := dependencies.New()
	if !quiet {
		deps.WithLogger(logger.NewDefaultLogger())
	}
	return grove.NewGrove(grove.NewGroveParams{
		Dependencies: deps,
		Config:       cfg,
	})
}

func main() {
	var rootCmd = &cobra.Command{
		Use:   "grove",
		Short: "Grove - Git worktree lifecycle manager",
		Long: `A CLI tool for managing the lifecycle of Git worktrees: create a worktree ` +
			`and branch in one step, merge it back and tear it down, or remove it, with ` +
			`lifecycle hooks running around each operation.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Specify a custom config file path")

	// Add subcommands
	rootCmd.AddCommand(
		createCreateCmd(),
		createMergeCmd(),
		createRemoveCmd(),
		createListCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
