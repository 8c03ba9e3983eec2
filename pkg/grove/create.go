package grove

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/grovekit/grove/pkg/hooks"
	"github.com/grovekit/grove/pkg/worktree"
)

// dependencyDirectories are skipped during untracked-file propagation
// unless copy_dependency_directories is enabled.
var dependencyDirectories = []string{"node_modules", "vendor", ".venv", "target", "dist"}

// CreateWorkTree creates a worktree (and branch, if needed) for the
// specified branch. The destination path is resolved from the configured
// template and must not exist yet. Untracked-but-ignored files are
// propagated from the repository root when configured.
func (g *realGrove) CreateWorkTree(branch string) error {
	g.VerbosePrint("Creating worktree for branch: %s", branch)

	root, defaultBranch, err := g.requireRepository()
	if err != nil {
		return err
	}

	vars := worktree.PathVars{
		Repo:   filepath.Base(root),
		Branch: branch,
		Parent: filepath.Dir(root),
	}
	path := worktree.ResolvePath(g.cfg.Settings.WorktreePathTemplate, vars, g.workDir)
	g.VerbosePrint("Resolved worktree path: %s", path)

	// Collision check happens before any mutation
	exists, err := g.deps.FS.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check worktree path: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrWorktreeExists, path)
	}

	ctx := hooks.Context{
		RepoRoot:           root,
		DefaultBranch:      defaultBranch,
		Branch:             branch,
		WorktreePath:       path,
		SourceWorktreePath: g.workDir,
	}
	g.runHooks(hooks.BeforeCreate, ctx)

	branchExists, err := g.deps.Git.BranchExists(root, branch)
	if err != nil {
		return fmt.Errorf("failed to check branch existence: %w", err)
	}
	if err := g.deps.Git.AddWorktree(root, path, branch, !branchExists); err != nil {
		return fmt.Errorf("failed to create worktree: %w", err)
	}

	if g.cfg.Settings.CopyUntrackedFiles {
		g.copyUntrackedFiles(root, path)
	}

	g.runHooks(hooks.AfterCreate, ctx)

	g.emit(path)
	return nil
}

// copyUntrackedFiles propagates untracked-but-ignored files from the
// repository root into the new worktree, preserving relative paths.
// Only regular files are copied; per-file failures are advisory.
func (g *realGrove) copyUntrackedFiles(root, worktreePath string) {
	files, err := g.deps.Git.UntrackedIgnoredFiles(root)
	if err != nil {
		g.deps.Logger.Warnf("failed to list untracked files: %v", err)
		return
	}

	for _, rel := range files {
		if !g.cfg.Settings.CopyDependencyDirectories && inDependencyDirectory(rel) {
			continue
		}

		src := filepath.Join(root, rel)
		regular, err := g.deps.FS.IsRegularFile(src)
		if err != nil {
			g.deps.Logger.Warnf("failed to stat %s: %v", rel, err)
			continue
		}
		if !regular {
			continue
		}

		dst := filepath.Join(worktreePath, rel)
		if err := g.deps.FS.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			g.deps.Logger.Warnf("failed to create directory for %s: %v", rel, err)
			continue
		}
		if err := g.deps.FS.CopyFile(src, dst); err != nil {
			g.deps.Logger.Warnf("failed to copy %s: %v", rel, err)
		}
	}
}

// inDependencyDirectory reports whether any path element of rel is a
// known dependency directory.
func inDependencyDirectory(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		for _, dep := range dependencyDirectories {
			if part == dep {
				return true
			}
		}
	}
	return false
}
