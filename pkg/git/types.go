package git

// Worktree represents a single worktree as reported by Git.
// Branch is empty iff IsDetached is true.
type Worktree struct {
	Path       string
	Branch     string
	IsDetached bool
}
