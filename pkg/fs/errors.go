package fs

import "errors"

// Error definitions for fs package.
var (
	ErrNotARegularFile = errors.New("not a regular file")
)
