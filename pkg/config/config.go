// Package config provides configuration management for the grove application.
package config

import (
	"fmt"

	"github.com/grovekit/grove/pkg/hooks"
)

// Settings holds the behavioral knobs of the workflows.
type Settings struct {
	// CopyUntrackedFiles propagates untracked-but-ignored files from the
	// repository root into newly created worktrees.
	CopyUntrackedFiles bool `yaml:"copy_untracked_files"`

	// CopyDependencyDirectories includes dependency directories
	// (node_modules, vendor, ...) in that propagation.
	CopyDependencyDirectories bool `yaml:"copy_dependency_directories"`

	// WorktreePathTemplate is the template for new worktree paths.
	// Supported tokens: {repo}, {branch}, {parent}.
	WorktreePathTemplate string `yaml:"worktree_path_template"`
}

// Config is the resolved configuration for one command invocation:
// defaults merged with an optional config file, immutable thereafter.
// Plugins are constructed programmatically and can never come from the
// configuration file; inline hooks can.
type Config struct {
	Settings Settings  `yaml:"settings"`
	Hooks    hooks.Map `yaml:"hooks"`
	Plugins  []hooks.Plugin `yaml:"-"`
}

// Validate validates the configuration values.
func (c *Config) Validate() error {
	if c.Settings.WorktreePathTemplate == "" {
		return ErrEmptyPathTemplate
	}
	for name := range c.Hooks {
		if !name.Valid() {
			return fmt.Errorf("%w: %q", ErrUnknownHookName, name)
		}
	}
	return nil
}
