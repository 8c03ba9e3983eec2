package git

import (
	"fmt"
	"os/exec"
)

// Merge merges branch into the checkout at worktreePath.
// The combined stdout/stderr of the merge command is returned verbatim in
// both the success and the failure case, so callers can surface Git's own
// conflict diagnostics to the user.
func (g *realGit) Merge(worktreePath, branch string) (string, error) {
	cmd := exec.Command("git", "merge", "--no-edit", branch)
	cmd.Dir = worktreePath
	output, err := cmd.CombinedOutput()
	if err != nil {
		return string(output), fmt.Errorf("git merge failed: %w (command: git merge --no-edit %s)",
			err, branch)
	}
	return string(output), nil
}
