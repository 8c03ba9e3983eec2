package git

import (
	"fmt"
	"os/exec"
)

// DeleteBranch deletes a local branch. Without force, Git's own
// not-fully-merged protection applies.
func (g *realGit) DeleteBranch(repoPath, branch string, force bool) error {
	flag := "-d"
	if force {
		flag = "-D"
	}

	cmd := exec.Command("git", "branch", flag, branch)
	cmd.Dir = repoPath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("git branch %s failed: %w (command: git branch %s %s, output: %s)",
			flag, err, flag, branch, string(output))
	}
	return nil
}
