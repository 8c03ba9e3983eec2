// Package worktree provides worktree path resolution from templates.
package worktree

import (
	"path/filepath"
	"strings"
)

// PathVars holds the values substituted into a worktree path template.
type PathVars struct {
	// Repo is the repository name (base name of the repository root).
	Repo string

	// Branch is the branch the worktree is created for.
	Branch string

	// Parent is the parent directory of the repository root.
	Parent string
}

// ResolvePath computes the worktree path for a template. Supported tokens
// are {repo}, {branch} and {parent}; slashes in branch names are replaced
// with dashes so one branch maps to one directory. Relative templates
// resolve against workDir. The result is a pure function of its inputs.
//
// Examples:
//   - "../{repo}-{branch}" = sibling of workDir
//   - "{parent}/worktrees/{branch}" = centralized folder next to the repo
//   - "/abs/path/{repo}-{branch}" = absolute path
func ResolvePath(template string, vars PathVars, workDir string) string {
	safeBranch := strings.ReplaceAll(vars.Branch, "/", "-")

	path := strings.ReplaceAll(template, "{repo}", vars.Repo)
	path = strings.ReplaceAll(path, "{branch}", safeBranch)
	path = strings.ReplaceAll(path, "{parent}", vars.Parent)

	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	return filepath.Clean(path)
}
