package hooks

import (
	"errors"
	"os/exec"
)

// maxCommandOutputBytes bounds the buffered output of a single hook
// command so a noisy command cannot grow memory without limit.
const maxCommandOutputBytes = 32 << 20

// ExecResult holds the outcome of one shell command execution.
type ExecResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// CommandRunner executes a shell command in a working directory and
// returns its buffered output. A non-zero exit code is reported in the
// result, not as an error; errors are reserved for failures to run the
// command at all.
type CommandRunner interface {
	Run(command, workDir string) (ExecResult, error)
}

type shellRunner struct {
	// No fields needed: commands run through the system shell
}

// NewShellRunner creates a CommandRunner that executes commands via `sh -c`.
func NewShellRunner() CommandRunner {
	return &shellRunner{}
}

// Run executes command through the shell with the given working directory.
// The parent blocks until the child exits; stdout and stderr are fully
// buffered, capped at maxCommandOutputBytes each.
func (s *shellRunner) Run(command, workDir string) (ExecResult, error) {
	cmd := exec.Command("sh", "-c", command)
	cmd.Dir = workDir

	var stdout, stderr cappedBuffer
	stdout.limit = maxCommandOutputBytes
	stderr.limit = maxCommandOutputBytes
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := ExecResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return result, err
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}

// cappedBuffer buffers writes up to limit bytes and silently discards
// the rest, so the writing child process never blocks.
type cappedBuffer struct {
	buf   []byte
	limit int
}

func (b *cappedBuffer) Write(p []byte) (int, error) {
	if remaining := b.limit - len(b.buf); remaining > 0 {
		if len(p) > remaining {
			b.buf = append(b.buf, p[:remaining]...)
		} else {
			b.buf = append(b.buf, p...)
		}
	}
	return len(p), nil
}

func (b *cappedBuffer) String() string {
	return string(b.buf)
}
