package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// ListWorktrees lists all worktrees of the repository containing workDir.
func (g *realGit) ListWorktrees(workDir string) ([]Worktree, error) {
	cmd := exec.Command("git", "worktree", "list", "--porcelain")
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git worktree list failed: %w (command: git worktree list --porcelain, output: %s)",
			err, string(output))
	}

	return parseWorktreeList(string(output)), nil
}

// parseWorktreeList parses `git worktree list --porcelain` output.
// Entries are separated by blank lines; each entry starts with a
// "worktree <path>" line followed by attribute lines.
func parseWorktreeList(output string) []Worktree {
	var worktrees []Worktree
	var current *Worktree

	flush := func() {
		if current != nil {
			worktrees = append(worktrees, *current)
			current = nil
		}
	}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		switch {
		case strings.HasPrefix(line, "worktree "):
			flush()
			current = &Worktree{Path: strings.TrimPrefix(line, "worktree ")}
		case strings.HasPrefix(line, "branch "):
			if current != nil {
				ref := strings.TrimPrefix(line, "branch ")
				current.Branch = strings.TrimPrefix(ref, "refs/heads/")
			}
		case line == "detached":
			if current != nil {
				current.IsDetached = true
				current.Branch = ""
			}
		case line == "":
			flush()
		}
	}
	flush()

	return worktrees
}
