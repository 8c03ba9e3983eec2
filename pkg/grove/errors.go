package grove

import (
	"errors"
	"fmt"
)

// Error definitions for the grove package.
var (
	ErrNotARepository          = errors.New("not inside a Git repository")
	ErrWorktreeExists          = errors.New("worktree destination already exists")
	ErrWorktreeNotFound        = errors.New("no worktree found for branch")
	ErrNothingToMerge          = errors.New("already on the default branch, nothing to merge")
	ErrPrimaryWorktreeNotFound = errors.New("no worktree is checked out to the default branch")
	ErrDefaultBranchWorktree   = errors.New("the default-branch worktree cannot be removed")
)

// MergeConflictError reports a merge the VCS rejected. It is distinct
// from a generic Git failure: it names the branch and worktree the merge
// targeted, and its presence means the operator was left in their
// original worktree.
type MergeConflictError struct {
	// TargetBranch is the branch the merge was running into.
	TargetBranch string

	// TargetPath is the worktree the merge ran in.
	TargetPath string
}

func (e *MergeConflictError) Error() string {
	return fmt.Sprintf("merge into branch %q at %s failed, resolve conflicts there",
		e.TargetBranch, e.TargetPath)
}
