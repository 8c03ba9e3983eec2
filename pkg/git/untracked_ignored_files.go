package git

import (
	"fmt"
	"os/exec"
	"strings"
)

// UntrackedIgnoredFiles lists files that are untracked and ignored,
// as paths relative to workDir.
func (g *realGit) UntrackedIgnoredFiles(workDir string) ([]string, error) {
	cmd := exec.Command("git", "ls-files", "--others", "--ignored", "--exclude-standard", "-z")
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return nil, fmt.Errorf("git ls-files failed: %w "+
			"(command: git ls-files --others --ignored --exclude-standard -z, output: %s)",
			err, string(output))
	}

	var files []string
	for _, path := range strings.Split(string(output), "\x00") {
		if path != "" {
			files = append(files, path)
		}
	}
	return files, nil
}
