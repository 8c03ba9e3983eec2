package hooks

import "github.com/grovekit/grove/pkg/logger"

// Context is the immutable snapshot passed to every hook invocation for
// one lifecycle event. It is constructed fresh per event by the owning
// workflow and never shared across events.
type Context struct {
	// RepoRoot is the absolute path to the repository's main worktree root.
	RepoRoot string

	// DefaultBranch is the repository's primary branch, resolved once per command.
	DefaultBranch string

	// Branch is the branch under operation (create target, merge source
	// or remove target).
	Branch string

	// WorktreePath is the filesystem path of the worktree being acted on.
	WorktreePath string

	// SourceWorktreePath is set for create events: the worktree the new
	// one was derived from.
	SourceWorktreePath string

	// TargetWorktreePath is set for merge/remove events: the worktree
	// that remains after the operation.
	TargetWorktreePath string

	// Logger and Run are capability handles injected by the lifecycle
	// runner; hooks never construct these themselves.
	Logger logger.Logger
	Run    CommandRunner
}
