package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// CurrentBranch gets the current branch name.
func (g *realGit) CurrentBranch(workDir string) (string, error) {
	cmd := exec.Command("git", "branch", "--show-current")
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git branch --show-current failed: %w (command: git branch --show-current, output: %s)",
			err, string(output))
	}

	branch := strings.TrimSpace(string(output))
	if branch == "" {
		return "", ErrDetachedHead
	}
	return branch, nil
}
