package git

import (
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// AheadBehind counts commits on branch that are not on base and vice versa.
func (g *realGit) AheadBehind(workDir, branch, base string) (int, int, error) {
	spec := branch + "..." + base
	cmd := exec.Command("git", "rev-list", "--left-right", "--count", spec)
	cmd.Dir = workDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, 0, fmt.Errorf("git rev-list failed: %w (command: git rev-list --left-right --count %s, output: %s)",
			err, spec, string(output))
	}

	// Output format: "<ahead>\t<behind>"
	fields := strings.Fields(strings.TrimSpace(string(output)))
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("unexpected rev-list output: %q", string(output))
	}

	ahead, err := strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse ahead count: %w", err)
	}
	behind, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse behind count: %w", err)
	}

	return ahead, behind, nil
}
