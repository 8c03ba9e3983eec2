package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// UncommittedCount counts uncommitted changes in the given worktree.
func (g *realGit) UncommittedCount(workDir string) (int, error) {
	cmd := exec.Command("git", "status", "--porcelain")
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("git status failed: %w (command: git status --porcelain, output: %s)",
			err, string(output))
	}

	count := 0
	for _, line := range strings.Split(string(output), "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count, nil
}
