package git

//go:generate mockgen -source=git.go -destination=mocks/git.gen.go -package=mocks

// Git interface provides Git command execution capabilities.
// All operations shell out to the git binary; exit codes and output
// formats are trusted as-is.
type Git interface {
	// IsInsideRepository checks whether workDir is inside a Git repository.
	IsInsideRepository(workDir string) (bool, error)

	// RepositoryRoot returns the root of the main worktree for the
	// repository containing workDir.
	RepositoryRoot(workDir string) (string, error)

	// CurrentBranch gets the current branch name.
	// Returns ErrDetachedHead when HEAD is not on a branch.
	CurrentBranch(workDir string) (string, error)

	// DefaultBranch resolves the repository's default branch name.
	DefaultBranch(workDir string) (string, error)

	// BranchExists checks if a local branch exists.
	BranchExists(workDir, branch string) (bool, error)

	// ListWorktrees lists all worktrees of the repository containing workDir.
	ListWorktrees(workDir string) ([]Worktree, error)

	// AheadBehind counts commits on branch that are not on base and vice versa.
	AheadBehind(workDir, branch, base string) (ahead, behind int, err error)

	// UncommittedCount counts uncommitted changes (staged, unstaged and
	// untracked) in the given worktree.
	UncommittedCount(workDir string) (int, error)

	// UntrackedIgnoredFiles lists files that are untracked and ignored,
	// as paths relative to workDir.
	UntrackedIgnoredFiles(workDir string) ([]string, error)

	// AddWorktree creates a worktree at worktreePath checked out to branch.
	// When createBranch is true the branch is created atomically with the worktree.
	AddWorktree(repoPath, worktreePath, branch string, createBranch bool) error

	// RemoveWorktree removes a worktree from Git's tracking.
	RemoveWorktree(repoPath, worktreePath string, force bool) error

	// DeleteBranch deletes a local branch. Without force, Git's own
	// not-fully-merged protection applies.
	DeleteBranch(repoPath, branch string, force bool) error

	// Merge merges branch into the checkout at worktreePath.
	// The combined stdout/stderr of the merge command is returned verbatim
	// in both the success and the failure case.
	Merge(worktreePath, branch string) (string, error)
}

type realGit struct {
	// No fields needed for basic Git operations
}

// NewGit creates a new Git instance.
func NewGit() Git {
	return &realGit{}
}
