//go:build unit

package ide

import (
	"bytes"
	"errors"
	"testing"

	fsmocks "github.com/grovekit/grove/pkg/fs/mocks"
	"github.com/grovekit/grove/pkg/hooks"
	"github.com/grovekit/grove/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNewPlugin_UnsupportedIDE(t *testing.T) {
	_, err := NewPlugin("emacs", nil)
	assert.ErrorIs(t, err, ErrUnsupportedIDE)
}

func TestNewPlugin_OpensWorktreeAfterCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Which("code").Return("/usr/bin/code", nil)
	mockFS.EXPECT().ExecuteCommand("code", "/repo/proj-feature").Return(nil)

	plugin, err := NewPlugin(VSCodeName, mockFS)
	require.NoError(t, err)
	assert.Equal(t, "ide-opening", plugin.Name)

	var log bytes.Buffer
	runner := hooks.NewRunner(logger.NewLogger(&log), nil)
	runner.Run(hooks.AfterCreate, []hooks.Plugin{plugin}, nil, hooks.Context{
		WorktreePath: "/repo/proj-feature",
	})

	assert.Contains(t, log.String(), "Opening /repo/proj-feature in vscode")
	assert.NotContains(t, log.String(), "Warning:")
}

func TestNewPlugin_CursorUsesCursorCommand(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Which("cursor").Return("/usr/bin/cursor", nil)
	mockFS.EXPECT().ExecuteCommand("cursor", "/wt").Return(nil)

	plugin, err := NewPlugin(CursorName, mockFS)
	require.NoError(t, err)

	var log bytes.Buffer
	runner := hooks.NewRunner(logger.NewLogger(&log), nil)
	runner.Run(hooks.AfterCreate, []hooks.Plugin{plugin}, nil, hooks.Context{WorktreePath: "/wt"})

	assert.NotContains(t, log.String(), "Warning:")
}

func TestNewPlugin_IDENotInstalled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Which("code").Return("", errors.New("executable not found"))

	plugin, err := NewPlugin(VSCodeName, mockFS)
	require.NoError(t, err)

	var log bytes.Buffer
	runner := hooks.NewRunner(logger.NewLogger(&log), nil)
	runner.Run(hooks.AfterCreate, []hooks.Plugin{plugin}, nil, hooks.Context{WorktreePath: "/wt"})

	assert.Contains(t, log.String(), "Warning: hook ide-opening.afterCreate failed")
	assert.Contains(t, log.String(), "IDE is not installed")
}

func TestNewPlugin_ExecutionFailureIsAdvisory(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockFS := fsmocks.NewMockFS(ctrl)
	mockFS.EXPECT().Which("code").Return("/usr/bin/code", nil)
	mockFS.EXPECT().ExecuteCommand("code", "/wt").Return(errors.New("spawn failed"))

	plugin, err := NewPlugin(VSCodeName, mockFS)
	require.NoError(t, err)

	var log bytes.Buffer
	runner := hooks.NewRunner(logger.NewLogger(&log), nil)
	runner.Run(hooks.AfterCreate, []hooks.Plugin{plugin}, nil, hooks.Context{WorktreePath: "/wt"})

	assert.Contains(t, log.String(), "Warning: hook ide-opening.afterCreate failed")
	assert.Contains(t, log.String(), "failed to execute IDE command")
}

func TestSupportedIDEs(t *testing.T) {
	assert.Equal(t, []string{"vscode", "cursor"}, SupportedIDEs())
}
