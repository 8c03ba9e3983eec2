package ide

import "errors"

// Error definitions for the ide plugin.
var (
	ErrUnsupportedIDE     = errors.New("unsupported IDE")
	ErrIDENotInstalled    = errors.New("IDE is not installed")
	ErrIDEExecutionFailed = errors.New("failed to execute IDE command")
)
