package grove

import "fmt"

// WorktreeInfo describes one worktree with divergence information
// relative to the default branch.
type WorktreeInfo struct {
	Path        string
	Branch      string
	IsDetached  bool
	IsPrimary   bool
	Ahead       int
	Behind      int
	Uncommitted int
}

// ListWorkTrees lists all worktrees of the current repository with
// ahead/behind counts against the default branch and uncommitted-change
// counts. Divergence lookups are best-effort per worktree.
func (g *realGrove) ListWorkTrees() ([]WorktreeInfo, error) {
	root, defaultBranch, err := g.requireRepository()
	if err != nil {
		return nil, err
	}

	worktrees, err := g.deps.Git.ListWorktrees(root)
	if err != nil {
		return nil, fmt.Errorf("failed to list worktrees: %w", err)
	}

	infos := make([]WorktreeInfo, 0, len(worktrees))
	for _, wt := range worktrees {
		info := WorktreeInfo{
			Path:       wt.Path,
			Branch:     wt.Branch,
			IsDetached: wt.IsDetached,
			IsPrimary:  !wt.IsDetached && wt.Branch == defaultBranch,
		}

		if uncommitted, err := g.deps.Git.UncommittedCount(wt.Path); err != nil {
			g.deps.Logger.Warnf("failed to count uncommitted changes in %s: %v", wt.Path, err)
		} else {
			info.Uncommitted = uncommitted
		}

		if !info.IsPrimary && !wt.IsDetached {
			if ahead, behind, err := g.deps.Git.AheadBehind(root, wt.Branch, defaultBranch); err != nil {
				g.deps.Logger.Warnf("failed to compare %s with %s: %v", wt.Branch, defaultBranch, err)
			} else {
				info.Ahead = ahead
				info.Behind = behind
			}
		}

		infos = append(infos, info)
	}

	return infos, nil
}
