package git

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
)

// RepositoryRoot returns the root of the main worktree for the repository
// containing workDir. The common git dir is shared by all worktrees, so its
// parent is the main worktree root even when called from a linked worktree.
func (g *realGit) RepositoryRoot(workDir string) (string, error) {
	cmd := exec.Command("git", "rev-parse", "--path-format=absolute", "--git-common-dir")
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git rev-parse --git-common-dir failed: %w "+
			"(command: git rev-parse --path-format=absolute --git-common-dir, output: %s)",
			err, string(output))
	}

	commonDir := strings.TrimSpace(string(output))
	return filepath.Dir(commonDir), nil
}
