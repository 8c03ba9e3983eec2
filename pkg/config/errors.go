package config

import "errors"

// Error definitions for config package.
var (
	ErrConfigNotFound    = errors.New("config file not found")
	ErrConfigParse       = errors.New("failed to parse config file")
	ErrUnknownHookName   = errors.New("unknown hook name")
	ErrEmptyPathTemplate = errors.New("worktree_path_template cannot be empty")
)

// isNotFound reports whether err wraps ErrConfigNotFound.
func isNotFound(err error) bool {
	return errors.Is(err, ErrConfigNotFound)
}
