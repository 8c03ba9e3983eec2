package grove

import (
	"fmt"

	"github.com/grovekit/grove/pkg/git"
	"github.com/grovekit/grove/pkg/hooks"
)

// MergeWorkTree merges the current branch into the primary worktree (the
// one checked out to the default branch). On success the merged worktree
// and its branch are torn down unless keep is true; teardown failures
// are advisory. On merge failure the operator's shell never moves: the
// original working directory is emitted on the success channel and a
// MergeConflictError is surfaced.
func (g *realGrove) MergeWorkTree(keep bool) error {
	root, defaultBranch, err := g.requireRepository()
	if err != nil {
		return err
	}

	current, err := g.deps.Git.CurrentBranch(g.workDir)
	if err != nil {
		return fmt.Errorf("failed to resolve current branch: %w", err)
	}

	// Guard: merging the default branch into itself is meaningless.
	// No hooks have run at this point.
	if current == defaultBranch {
		return fmt.Errorf("%w (branch %s)", ErrNothingToMerge, current)
	}

	worktrees, err := g.deps.Git.ListWorktrees(root)
	if err != nil {
		return fmt.Errorf("failed to list worktrees: %w", err)
	}
	primary := findWorktreeByBranch(worktrees, defaultBranch)
	if primary == nil {
		return fmt.Errorf("%w (default branch %s)", ErrPrimaryWorktreeNotFound, defaultBranch)
	}

	g.VerbosePrint("Merging branch %s into %s at %s", current, defaultBranch, primary.Path)

	ctx := hooks.Context{
		RepoRoot:           root,
		DefaultBranch:      defaultBranch,
		Branch:             current,
		WorktreePath:       g.workDir,
		TargetWorktreePath: primary.Path,
	}
	g.runHooks(hooks.BeforeMerge, ctx)

	output, err := g.deps.Git.Merge(primary.Path, current)
	if err != nil {
		// Git's own diagnostics go to the user verbatim, followed by an
		// explicit statement of where the operator is. The success
		// channel gets the unchanged working directory so the calling
		// shell does not move.
		if output != "" {
			g.deps.Logger.Logf("%s", output)
		}
		g.deps.Logger.Logf("Merge failed. You remain in your worktree at %s.", g.workDir)
		g.emit(g.workDir)
		return &MergeConflictError{TargetBranch: defaultBranch, TargetPath: primary.Path}
	}

	if keep {
		g.runHooks(hooks.AfterMerge, ctx)
		g.emit(primary.Path)
		return nil
	}

	g.runHooks(hooks.BeforeRemove, ctx)

	// Teardown after a successful merge is best-effort: the worktree may
	// have grown new files, the branch may fail Git's merged check.
	if err := g.deps.Git.RemoveWorktree(root, g.workDir, false); err != nil {
		g.deps.Logger.Warnf("failed to remove worktree %s: %v", g.workDir, err)
	}
	if err := g.deps.Git.DeleteBranch(root, current, false); err != nil {
		g.deps.Logger.Warnf("failed to delete branch %s: %v", current, err)
	}

	g.runHooks(hooks.AfterRemove, ctx)
	g.runHooks(hooks.AfterMerge, ctx)

	g.emit(primary.Path)
	return nil
}

// findWorktreeByBranch returns the worktree checked out to branch, or nil.
func findWorktreeByBranch(worktrees []git.Worktree, branch string) *git.Worktree {
	for i := range worktrees {
		if !worktrees[i].IsDetached && worktrees[i].Branch == branch {
			return &worktrees[i]
		}
	}
	return nil
}
