package hooks

import "errors"

// Error definitions for the hooks package.
var (
	ErrInvalidHookValue = errors.New("invalid hook value")
	ErrNoCommandRunner  = errors.New("no command runner available")
)
