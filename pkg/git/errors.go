// Package git provides Git operations and error definitions.
package git

import "errors"

// Git-specific error types.
var (
	ErrDetachedHead          = errors.New("HEAD is detached")
	ErrDefaultBranchNotFound = errors.New("default branch could not be determined")
)
