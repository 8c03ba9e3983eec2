// Package dependencies provides a centralized dependency container for the
// grove application. This package follows Go idioms for dependency injection
// by grouping related dependencies together and providing a fluent API for
// configuration.
package dependencies

import (
	"errors"
	"io"
	"os"

	"github.com/grovekit/grove/pkg/config"
	"github.com/grovekit/grove/pkg/fs"
	"github.com/grovekit/grove/pkg/git"
	"github.com/grovekit/grove/pkg/hooks"
	"github.com/grovekit/grove/pkg/logger"
	"github.com/grovekit/grove/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing     = errors.New("fs dependency is required but not set")
	ErrGitMissing    = errors.New("git dependency is required but not set")
	ErrConfigMissing = errors.New("config dependency is required but not set")
	ErrLoggerMissing = errors.New("logger dependency is required but not set")
	ErrPromptMissing = errors.New("prompt dependency is required but not set")
	ErrHooksMissing  = errors.New("hooks runner dependency is required but not set")
	ErrOutMissing    = errors.New("success-channel writer is required but not set")
)

// Dependencies holds shared dependencies across the application.
// Out is the success channel: each workflow writes exactly one path line
// to it, distinct from all diagnostic output.
type Dependencies struct {
	FS     fs.FS
	Git    git.Git
	Config config.Manager
	Logger logger.Logger
	Prompt prompt.Prompter
	Hooks  hooks.Runner
	Out    io.Writer
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	log := logger.NewNoopLogger()
	return &Dependencies{
		FS:     fs.NewFS(),
		Git:    git.NewGit(),
		Config: config.NewManager(),
		Logger: log,
		Prompt: prompt.NewPrompt(),
		Hooks:  hooks.NewRunner(log, hooks.NewShellRunner()),
		Out:    os.Stdout,
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(fs fs.FS) *Dependencies {
	d.FS = fs
	return d
}

// WithGit sets the git instance and returns the instance for chaining.
func (d *Dependencies) WithGit(git git.Git) *Dependencies {
	d.Git = git
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
// The hooks runner is rebuilt so hook contexts log through the same sink.
func (d *Dependencies) WithLogger(log logger.Logger) *Dependencies {
	d.Logger = log
	d.Hooks = hooks.NewRunner(log, hooks.NewShellRunner())
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(prompt prompt.Prompter) *Dependencies {
	d.Prompt = prompt
	return d
}

// WithHooks sets the hooks runner and returns the instance for chaining.
func (d *Dependencies) WithHooks(runner hooks.Runner) *Dependencies {
	d.Hooks = runner
	return d
}

// WithOut sets the success-channel writer and returns the instance for chaining.
func (d *Dependencies) WithOut(out io.Writer) *Dependencies {
	d.Out = out
	return d
}

// dependencyCheck represents a dependency validation check.
type dependencyCheck struct {
	dep interface{}
	err error
}

// Validate checks that all required dependencies are set and returns an
// error if any are missing.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Git, ErrGitMissing},
		{d.Config, ErrConfigMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Hooks, ErrHooksMissing},
		{d.Out, ErrOutMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
