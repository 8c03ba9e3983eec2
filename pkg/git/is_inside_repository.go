package git

import (
	"os/exec"
	"strings"
)

// IsInsideRepository checks whether workDir is inside a Git repository.
func (g *realGit) IsInsideRepository(workDir string) (bool, error) {
	cmd := exec.Command("git", "rev-parse", "--is-inside-work-tree")
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		// git exits non-zero outside a repository
		return false, nil
	}
	return strings.TrimSpace(string(output)) == "true", nil
}
