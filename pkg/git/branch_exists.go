package git

import "os/exec"

// BranchExists checks if a local branch exists.
func (g *realGit) BranchExists(workDir, branch string) (bool, error) {
	cmd := exec.Command("git", "show-ref", "--verify", "--quiet", "refs/heads/"+branch)
	cmd.Dir = workDir
	if err := cmd.Run(); err != nil {
		// show-ref exits 1 when the reference does not exist
		return false, nil
	}
	return true, nil
}
