package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// AddWorktree creates a worktree at worktreePath checked out to branch.
// When createBranch is true the branch is created atomically with the worktree.
func (g *realGit) AddWorktree(repoPath, worktreePath, branch string, createBranch bool) error {
	args := []string{"worktree", "add"}
	if createBranch {
		args = append(args, "-b", branch, worktreePath)
	} else {
		args = append(args, worktreePath, branch)
	}

	cmd := exec.Command("git", args...)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git worktree add failed: %w (command: git %s, output: %s)",
			err, strings.Join(args, " "), string(output))
	}
	return nil
}
