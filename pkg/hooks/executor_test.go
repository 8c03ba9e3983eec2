//go:build unit

package hooks

import (
	"bytes"
	"errors"
	"testing"

	"github.com/grovekit/grove/pkg/logger"
	"github.com/stretchr/testify/assert"
)

// fakeRunner records executed commands and returns canned results.
type fakeRunner struct {
	commands []string
	workDirs []string
	results  map[string]ExecResult
	err      error
}

func (f *fakeRunner) Run(command, workDir string) (ExecResult, error) {
	f.commands = append(f.commands, command)
	f.workDirs = append(f.workDirs, workDir)
	if f.err != nil {
		return ExecResult{}, f.err
	}
	if result, ok := f.results[command]; ok {
		return result, nil
	}
	return ExecResult{}, nil
}

func TestExecutor_FunctionHook(t *testing.T) {
	executor := NewExecutor(logger.NewNoopLogger())

	var got Context
	ctx := Context{Branch: "feature-x", WorktreePath: "/tmp/wt"}
	executor.Execute("test.afterCreate", Function(func(c Context) error {
		got = c
		return nil
	}), ctx)

	assert.Equal(t, "feature-x", got.Branch)
	assert.Equal(t, "/tmp/wt", got.WorktreePath)
}

func TestExecutor_FunctionHookFailureIsSwallowed(t *testing.T) {
	var buf bytes.Buffer
	executor := NewExecutor(logger.NewLogger(&buf))

	executor.Execute("broken.afterCreate", Function(func(Context) error {
		return errors.New("boom")
	}), Context{})

	assert.Contains(t, buf.String(), "Warning: hook broken.afterCreate failed: boom")
}

func TestExecutor_CommandHook(t *testing.T) {
	runner := &fakeRunner{results: map[string]ExecResult{
		"make setup": {Stdout: "done\n"},
	}}
	var buf bytes.Buffer
	executor := NewExecutor(logger.NewLogger(&buf))

	executor.Execute("test.afterCreate", Command("make setup"), Context{
		WorktreePath: "/tmp/wt",
		Run:          runner,
	})

	assert.Equal(t, []string{"make setup"}, runner.commands)
	assert.Equal(t, []string{"/tmp/wt"}, runner.workDirs)
	assert.Contains(t, buf.String(), "done")
	assert.NotContains(t, buf.String(), "Warning")
}

func TestExecutor_CommandHookNonZeroExit(t *testing.T) {
	runner := &fakeRunner{results: map[string]ExecResult{
		"exit 1": {ExitCode: 1},
	}}
	var buf bytes.Buffer
	executor := NewExecutor(logger.NewLogger(&buf))

	executor.Execute("test.afterCreate", Command("exit 1"), Context{Run: runner})

	assert.Contains(t, buf.String(), `command "exit 1" exited with code 1`)
}

func TestExecutor_SequenceAbortsAfterFailingCommand(t *testing.T) {
	runner := &fakeRunner{results: map[string]ExecResult{
		"exit 1": {ExitCode: 1},
	}}
	var buf bytes.Buffer
	executor := NewExecutor(logger.NewLogger(&buf))

	var fn1Ran, fn2Ran bool
	value := Sequence(
		Function(func(Context) error { fn1Ran = true; return nil }),
		Command("exit 1"),
		Function(func(Context) error { fn2Ran = true; return nil }),
	)

	executor.Execute("inline.afterCreate", value, Context{Run: runner})

	assert.True(t, fn1Ran)
	assert.False(t, fn2Ran)
	// One advisory failure for the whole sequence, not one per element
	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("Warning:")))
}

func TestExecutor_SequenceAbortsAfterFailingFunction(t *testing.T) {
	runner := &fakeRunner{}
	executor := NewExecutor(logger.NewNoopLogger())

	value := Sequence(
		Function(func(Context) error { return errors.New("boom") }),
		Command("echo never"),
	)

	executor.Execute("inline.afterCreate", value, Context{Run: runner})

	assert.Empty(t, runner.commands)
}

func TestExecutor_ZeroValueIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	executor := NewExecutor(logger.NewLogger(&buf))

	executor.Execute("test.afterCreate", Value{}, Context{})

	assert.Empty(t, buf.String())
}

func TestExecutor_CommandWithoutRunner(t *testing.T) {
	var buf bytes.Buffer
	executor := NewExecutor(logger.NewLogger(&buf))

	executor.Execute("test.afterCreate", Command("echo hi"), Context{})

	assert.Contains(t, buf.String(), "no command runner available")
}
