// Package grove implements the worktree lifecycle workflows: creating a
// worktree and branch, merging it back and tearing it down, and removing
// it, with lifecycle hooks running at defined points around the Git
// operations.
package grove

import (
	"fmt"
	"os"

	"github.com/grovekit/grove/pkg/config"
	"github.com/grovekit/grove/pkg/dependencies"
	"github.com/grovekit/grove/pkg/hooks"
	"github.com/grovekit/grove/pkg/logger"
)

// Grove interface provides the worktree lifecycle operations.
type Grove interface {
	// CreateWorkTree creates a worktree (and branch, if needed) for the
	// specified branch.
	CreateWorkTree(branch string) error

	// MergeWorkTree merges the current branch into the primary worktree.
	// Unless keep is true, the merged worktree and branch are torn down
	// afterwards.
	MergeWorkTree(keep bool) error

	// DeleteWorkTree removes a worktree resolved by branch name, or by
	// interactive selection when branch is empty. The default-branch
	// worktree can never be removed.
	DeleteWorkTree(branch string, force bool) error

	// ListWorkTrees lists all worktrees with divergence information.
	ListWorkTrees() ([]WorktreeInfo, error)

	// SetLogger sets the logger for this Grove instance.
	SetLogger(log logger.Logger)
}

// NewGroveParams contains parameters for creating a new Grove instance.
type NewGroveParams struct {
	Dependencies *dependencies.Dependencies

	// Config is the resolved configuration for this command invocation.
	// A zero value falls back to the default configuration.
	Config config.Config

	// WorkDir is the invocation working directory. Defaults to the
	// process working directory.
	WorkDir string
}

type realGrove struct {
	deps    *dependencies.Dependencies
	cfg     config.Config
	workDir string
}

// NewGrove creates a new Grove instance.
func NewGrove(params NewGroveParams) (Grove, error) {
	deps := params.Dependencies
	if deps == nil {
		deps = dependencies.New()
	}
	if err := deps.Validate(); err != nil {
		return nil, err
	}

	cfg := params.Config
	if cfg.Settings.WorktreePathTemplate == "" {
		cfg.Settings = deps.Config.Default().Settings
	}

	workDir := params.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
		workDir = wd
	}

	return &realGrove{
		deps:    deps,
		cfg:     cfg,
		workDir: workDir,
	}, nil
}

// VerbosePrint logs a formatted message using the current logger.
func (g *realGrove) VerbosePrint(msg string, args ...interface{}) {
	if g.deps.Logger != nil {
		g.deps.Logger.Logf(msg, args...)
	}
}

// SetLogger sets the logger for this Grove instance.
func (g *realGrove) SetLogger(log logger.Logger) {
	g.deps.WithLogger(log)
}

// runHooks invokes one lifecycle event: every plugin's hook in plugin
// list order, then the inline hook from configuration. Hook failures are
// advisory and never abort the calling workflow.
func (g *realGrove) runHooks(name hooks.Name, ctx hooks.Context) {
	g.deps.Hooks.Run(name, g.cfg.Plugins, g.cfg.Hooks, ctx)
}

// emit writes a single path line to the success channel for consumption
// by the calling shell. Diagnostic output never goes there.
func (g *realGrove) emit(path string) {
	fmt.Fprintln(g.deps.Out, path)
}

// requireRepository checks that the invocation directory is inside a Git
// repository and resolves the repository root and default branch.
func (g *realGrove) requireRepository() (root, defaultBranch string, err error) {
	inside, err := g.deps.Git.IsInsideRepository(g.workDir)
	if err != nil {
		return "", "", fmt.Errorf("failed to check repository: %w", err)
	}
	if !inside {
		return "", "", ErrNotARepository
	}

	root, err = g.deps.Git.RepositoryRoot(g.workDir)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve repository root: %w", err)
	}

	defaultBranch, err = g.deps.Git.DefaultBranch(root)
	if err != nil {
		return "", "", fmt.Errorf("failed to resolve default branch: %w", err)
	}

	return root, defaultBranch, nil
}
