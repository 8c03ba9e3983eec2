package prompt

import "errors"

// Error definitions for prompt package.
var (
	ErrInvalidConfirmationInput = errors.New("invalid confirmation input, expected y/yes or n/no")
	ErrNoChoicesAvailable       = errors.New("no choices available")
)
