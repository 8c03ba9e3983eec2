// Package ide provides a built-in plugin that opens newly created
// worktrees in an IDE.
package ide

import (
	"fmt"

	"github.com/grovekit/grove/pkg/fs"
	"github.com/grovekit/grove/pkg/hooks"
)

const (
	// VSCodeName is the name identifier for the VS Code IDE.
	VSCodeName = "vscode"
	// VSCodeCommand is the command to open VS Code.
	VSCodeCommand = "code"
	// CursorName is the name identifier for the Cursor IDE.
	CursorName = "cursor"
	// CursorCommand is the command to open Cursor.
	CursorCommand = "cursor"
)

// commands maps IDE names to the executables that open them.
var commands = map[string]string{
	VSCodeName: VSCodeCommand,
	CursorName: CursorCommand,
}

// SupportedIDEs lists the IDE names accepted by NewPlugin.
func SupportedIDEs() []string {
	return []string{VSCodeName, CursorName}
}

// NewPlugin creates a plugin whose afterCreate hook opens the new
// worktree in the named IDE. Like every hook, a failure to open the IDE
// is advisory and never aborts worktree creation.
func NewPlugin(ideName string, filesystem fs.FS) (hooks.Plugin, error) {
	command, ok := commands[ideName]
	if !ok {
		return hooks.Plugin{}, fmt.Errorf("%w: %s", ErrUnsupportedIDE, ideName)
	}

	return hooks.Plugin{
		Name: "ide-opening",
		Hooks: hooks.Map{
			hooks.AfterCreate: hooks.Function(func(ctx hooks.Context) error {
				if _, err := filesystem.Which(command); err != nil {
					return fmt.Errorf("%w: %s", ErrIDENotInstalled, ideName)
				}
				ctx.Logger.Logf("Opening %s in %s", ctx.WorktreePath, ideName)
				if err := filesystem.ExecuteCommand(command, ctx.WorktreePath); err != nil {
					return fmt.Errorf("%w: %s", ErrIDEExecutionFailed, command)
				}
				return nil
			}),
		},
	}, nil
}
