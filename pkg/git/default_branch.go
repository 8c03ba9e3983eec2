package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// DefaultBranch resolves the repository's default branch name.
// The origin HEAD reference is tried first; without a remote, the
// conventional names are probed locally.
func (g *realGit) DefaultBranch(workDir string) (string, error) {
	cmd := exec.Command("git", "symbolic-ref", "--short", "refs/remotes/origin/HEAD")
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	if err == nil {
		ref := strings.TrimSpace(string(output))
		// Output format: "origin/main"
		if idx := strings.Index(ref, "/"); idx >= 0 {
			return ref[idx+1:], nil
		}
	}

	for _, candidate := range []string{"main", "master"} {
		exists, err := g.BranchExists(workDir, candidate)
		if err != nil {
			return "", fmt.Errorf("failed to probe branch %s: %w", candidate, err)
		}
		if exists {
			return candidate, nil
		}
	}

	return "", ErrDefaultBranchNotFound
}
