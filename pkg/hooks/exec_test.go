//go:build integration

package hooks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShellRunner_CapturesOutput(t *testing.T) {
	runner := NewShellRunner()

	result, err := runner.Run("echo out; echo err >&2", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "out\n", result.Stdout)
	assert.Equal(t, "err\n", result.Stderr)
	assert.Equal(t, 0, result.ExitCode)
}

func TestShellRunner_NonZeroExit(t *testing.T) {
	runner := NewShellRunner()

	result, err := runner.Run("exit 3", t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, 3, result.ExitCode)
}

func TestShellRunner_WorkingDirectory(t *testing.T) {
	runner := NewShellRunner()
	dir := t.TempDir()

	result, err := runner.Run("pwd", dir)
	require.NoError(t, err)

	assert.Contains(t, result.Stdout, dir)
}

func TestCappedBuffer(t *testing.T) {
	buf := cappedBuffer{limit: 4}

	n, err := buf.Write([]byte("abcdef"))
	require.NoError(t, err)

	// Writer reports full consumption so the child never blocks
	assert.Equal(t, 6, n)
	assert.Equal(t, "abcd", buf.String())

	n, err = buf.Write([]byte("gh"))
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Equal(t, "abcd", buf.String())
}
