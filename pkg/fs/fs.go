// Package fs provides file system operations used by the workflows.
package fs

import "os"

//go:generate mockgen -source=fs.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the file system operations used by the workflows
// and built-in plugins.
type FS interface {
	// Exists checks if a file or directory exists at the given path.
	Exists(path string) (bool, error)

	// IsRegularFile checks if the path is a regular file (not a directory,
	// symlink or special file).
	IsRegularFile(path string) (bool, error)

	// MkdirAll creates a directory and all parent directories.
	MkdirAll(path string, perm os.FileMode) error

	// CopyFile copies a regular file from src to dst, preserving its mode.
	CopyFile(src, dst string) error

	// Which finds the executable path for a command using the system's PATH.
	Which(command string) (string, error)

	// ExecuteCommand executes a command with arguments in the background.
	ExecuteCommand(command string, args ...string) error
}

type realFS struct {
	// No fields needed for basic file system operations
}

// NewFS creates a new FS instance.
func NewFS() FS {
	return &realFS{}
}
