package grove

import (
	"fmt"

	"github.com/grovekit/grove/pkg/git"
	"github.com/grovekit/grove/pkg/hooks"
)

// DeleteWorkTree removes a worktree resolved by branch name, or by
// interactive selection when branch is empty. The default-branch
// worktree can never be removed, force flag included. Worktree removal
// failure is fatal here (removal is this workflow's sole purpose);
// branch deletion failure is advisory.
func (g *realGrove) DeleteWorkTree(branch string, force bool) error {
	root, defaultBranch, err := g.requireRepository()
	if err != nil {
		return err
	}

	worktrees, err := g.deps.Git.ListWorktrees(root)
	if err != nil {
		return fmt.Errorf("failed to list worktrees: %w", err)
	}

	target, err := g.resolveRemovalTarget(branch, defaultBranch, worktrees)
	if err != nil {
		return err
	}
	if target == nil {
		// Nothing selected: quiet exit, not an error
		return nil
	}

	if !target.IsDetached && target.Branch == defaultBranch {
		return fmt.Errorf("%w (branch %s)", ErrDefaultBranchWorktree, target.Branch)
	}

	if !force {
		confirmed, err := g.confirmRemoval(root, defaultBranch, target)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !confirmed {
			g.VerbosePrint("Removal cancelled")
			return nil
		}
	}

	primary := findWorktreeByBranch(worktrees, defaultBranch)
	ctx := hooks.Context{
		RepoRoot:      root,
		DefaultBranch: defaultBranch,
		Branch:        target.Branch,
		WorktreePath:  target.Path,
	}
	if primary != nil {
		ctx.TargetWorktreePath = primary.Path
	}

	g.runHooks(hooks.BeforeRemove, ctx)

	if err := g.deps.Git.RemoveWorktree(root, target.Path, force); err != nil {
		return fmt.Errorf("failed to remove worktree: %w", err)
	}

	if target.Branch != "" {
		if err := g.deps.Git.DeleteBranch(root, target.Branch, false); err != nil {
			g.deps.Logger.Warnf("failed to delete branch %s: %v", target.Branch, err)
		}
	}

	g.runHooks(hooks.AfterRemove, ctx)

	if primary != nil {
		g.emit(primary.Path)
	} else {
		g.emit(root)
	}
	return nil
}

// resolveRemovalTarget finds the worktree to remove, either by exact
// branch-name match or by interactive selection over non-default-branch
// worktrees. A nil result with nil error means quiet exit (no candidates
// or selection cancelled).
func (g *realGrove) resolveRemovalTarget(
	branch, defaultBranch string, worktrees []git.Worktree) (*git.Worktree, error) {
	if branch != "" {
		target := findWorktreeByBranch(worktrees, branch)
		if target == nil {
			return nil, fmt.Errorf("%w: %s", ErrWorktreeNotFound, branch)
		}
		return target, nil
	}

	var candidates []git.Worktree
	for _, wt := range worktrees {
		if wt.IsDetached || wt.Branch != defaultBranch {
			candidates = append(candidates, wt)
		}
	}
	if len(candidates) == 0 {
		g.deps.Logger.Logf("No removable worktrees found")
		return nil, nil
	}

	selected, err := g.deps.Prompt.SelectWorktree(candidates)
	if err != nil {
		return nil, fmt.Errorf("failed to select worktree: %w", err)
	}
	if selected == nil {
		g.VerbosePrint("Selection cancelled")
		return nil, nil
	}
	return selected, nil
}

// confirmRemoval asks for explicit confirmation, surfacing divergence
// information so the operator knows what they are about to lose.
func (g *realGrove) confirmRemoval(root, defaultBranch string, target *git.Worktree) (bool, error) {
	uncommitted, err := g.deps.Git.UncommittedCount(target.Path)
	if err != nil {
		g.deps.Logger.Warnf("failed to count uncommitted changes: %v", err)
	} else if uncommitted > 0 {
		g.deps.Logger.Logf("Worktree %s has %d uncommitted change(s)", target.Path, uncommitted)
	}

	if target.Branch != "" {
		ahead, _, err := g.deps.Git.AheadBehind(root, target.Branch, defaultBranch)
		if err != nil {
			g.deps.Logger.Warnf("failed to compare %s with %s: %v", target.Branch, defaultBranch, err)
		} else if ahead > 0 {
			g.deps.Logger.Logf("Branch %s is %d commit(s) ahead of %s", target.Branch, ahead, defaultBranch)
		}
	}

	message := fmt.Sprintf("Remove worktree %s (branch %s)?", target.Path, target.Branch)
	if target.IsDetached {
		message = fmt.Sprintf("Remove detached worktree %s?", target.Path)
	}
	return g.deps.Prompt.Confirm(message, false)
}
