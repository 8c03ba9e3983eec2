package hooks

import (
	"fmt"

	"github.com/grovekit/grove/pkg/logger"
)

// Runner invokes all hooks registered for one lifecycle event.
type Runner interface {
	// Run executes, in order, each plugin's hook for the event (plugins
	// in list order), then the inline hook. It always completes: hook
	// failures are isolated per plugin/inline entry and never propagate
	// to the invoking workflow.
	Run(name Name, plugins []Plugin, inline Map, ctx Context)
}

type realRunner struct {
	executor *Executor
	logger   logger.Logger
	commands CommandRunner
}

// NewRunner creates a Runner. The logger and command runner are injected
// into each hook context, so hooks never construct capabilities themselves.
func NewRunner(log logger.Logger, commands CommandRunner) Runner {
	if log == nil {
		log = logger.NewNoopLogger()
	}
	if commands == nil {
		commands = NewShellRunner()
	}
	return &realRunner{
		executor: NewExecutor(log),
		logger:   log,
		commands: commands,
	}
}

// Run executes the lifecycle event. The ordering contract is load-bearing:
// plugin hooks run in plugin-list order, then the inline hook, regardless
// of any individual failure along the way.
func (r *realRunner) Run(name Name, plugins []Plugin, inline Map, ctx Context) {
	if ctx.Logger == nil {
		ctx.Logger = r.logger
	}
	if ctx.Run == nil {
		ctx.Run = r.commands
	}

	for _, plugin := range plugins {
		v, ok := plugin.Hooks[name]
		if !ok {
			continue
		}
		r.executor.Execute(fmt.Sprintf("%s.%s", plugin.Name, name), v, ctx)
	}

	if v, ok := inline[name]; ok {
		r.executor.Execute(fmt.Sprintf("inline.%s", name), v, ctx)
	}
}
