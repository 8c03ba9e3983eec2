package hooks

import (
	"fmt"
	"strings"

	"github.com/grovekit/grove/pkg/logger"
)

// Executor runs a single hook value against a context.
type Executor struct {
	logger logger.Logger
}

// NewExecutor creates a new Executor logging through the given logger.
func NewExecutor(log logger.Logger) *Executor {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	return &Executor{logger: log}
}

// Execute runs the hook value against ctx. It never propagates hook
// failures: any failure is logged as a warning tagged with label and
// swallowed, so one broken hook cannot abort the enclosing workflow.
func (e *Executor) Execute(label string, v Value, ctx Context) {
	if err := e.run(v, ctx); err != nil {
		e.logger.Warnf("hook %s failed: %v", label, err)
	}
}

// run dispatches on the hook value shape. Within a sequence the first
// failing element (function or command) aborts the remaining elements of
// that sequence only; the error surfaces once for the whole value.
func (e *Executor) run(v Value, ctx Context) error {
	switch v.kind {
	case valueFunc:
		return v.fn(ctx)
	case valueCommand:
		return e.runCommand(v.command, ctx)
	case valueSequence:
		for _, element := range v.elements {
			if err := e.run(element, ctx); err != nil {
				return err
			}
		}
		return nil
	case valueNone:
		return nil
	default:
		return fmt.Errorf("%w: unknown kind", ErrInvalidHookValue)
	}
}

// runCommand executes a shell command hook with the context's worktree
// path as working directory, streaming its output as log lines.
func (e *Executor) runCommand(command string, ctx Context) error {
	if ctx.Run == nil {
		return ErrNoCommandRunner
	}

	result, err := ctx.Run.Run(command, ctx.WorktreePath)
	if err != nil {
		return fmt.Errorf("command %q could not run: %w", command, err)
	}

	e.logLines(result.Stdout)
	e.logLines(result.Stderr)

	if result.ExitCode != 0 {
		return fmt.Errorf("command %q exited with code %d", command, result.ExitCode)
	}
	return nil
}

func (e *Executor) logLines(output string) {
	for _, line := range strings.Split(output, "\n") {
		if line != "" {
			e.logger.Logf("%s", line)
		}
	}
}
