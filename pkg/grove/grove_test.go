//go:build unit

package grove

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/grovekit/grove/pkg/config"
	"github.com/grovekit/grove/pkg/dependencies"
	fsmocks "github.com/grovekit/grove/pkg/fs/mocks"
	gitmocks "github.com/grovekit/grove/pkg/git/mocks"
	"github.com/grovekit/grove/pkg/hooks"
	"github.com/grovekit/grove/pkg/logger"
	promptmocks "github.com/grovekit/grove/pkg/prompt/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// testFixture bundles the mocked collaborators and the captured output
// channels for one workflow test.
type testFixture struct {
	git    *gitmocks.MockGit
	fs     *fsmocks.MockFS
	prompt *promptmocks.MockPrompter
	out    *bytes.Buffer
	log    *bytes.Buffer
}

func newTestGrove(t *testing.T, cfg config.Config, workDir string) (*realGrove, *testFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &testFixture{
		git:    gitmocks.NewMockGit(ctrl),
		fs:     fsmocks.NewMockFS(ctrl),
		prompt: promptmocks.NewMockPrompter(ctrl),
		out:    &bytes.Buffer{},
		log:    &bytes.Buffer{},
	}

	deps := dependencies.New().
		WithGit(f.git).
		WithFS(f.fs).
		WithPrompt(f.prompt).
		WithLogger(logger.NewLogger(f.log)).
		WithOut(f.out)

	g, err := NewGrove(NewGroveParams{
		Dependencies: deps,
		Config:       cfg,
		WorkDir:      workDir,
	})
	require.NoError(t, err)
	return g.(*realGrove), f
}

func testConfig() config.Config {
	return config.Config{
		Settings: config.Settings{
			WorktreePathTemplate: "../{repo}-{branch}",
		},
	}
}

// recordingPlugin contributes a function hook for every lifecycle event
// that appends "name.event" to events.
func recordingPlugin(name string, events *[]string) hooks.Plugin {
	m := hooks.Map{}
	for _, event := range hooks.Names {
		event := event
		m[event] = hooks.Function(func(hooks.Context) error {
			*events = append(*events, fmt.Sprintf("%s.%s", name, event))
			return nil
		})
	}
	return hooks.Plugin{Name: name, Hooks: m}
}

// expectRepository wires the repository resolution calls shared by every
// workflow.
func (f *testFixture) expectRepository(workDir, root, defaultBranch string) {
	f.git.EXPECT().IsInsideRepository(workDir).Return(true, nil)
	f.git.EXPECT().RepositoryRoot(workDir).Return(root, nil)
	f.git.EXPECT().DefaultBranch(root).Return(defaultBranch, nil)
}

func TestNewGrove_DefaultsSettingsWhenTemplateEmpty(t *testing.T) {
	deps := dependencies.New().WithOut(&bytes.Buffer{})
	g, err := NewGrove(NewGroveParams{Dependencies: deps, WorkDir: "/tmp"})
	require.NoError(t, err)

	rg := g.(*realGrove)
	assert.Equal(t, "../{repo}-{branch}", rg.cfg.Settings.WorktreePathTemplate)
	assert.True(t, rg.cfg.Settings.CopyUntrackedFiles)
}

func TestNewGrove_ValidatesDependencies(t *testing.T) {
	deps := dependencies.New()
	deps.Git = nil

	_, err := NewGrove(NewGroveParams{Dependencies: deps, WorkDir: "/tmp"})
	assert.ErrorIs(t, err, dependencies.ErrGitMissing)
}

func TestWorkflows_NotARepository(t *testing.T) {
	g, f := newTestGrove(t, testConfig(), "/repo/proj")
	f.git.EXPECT().IsInsideRepository("/repo/proj").Return(false, nil).Times(3)

	assert.ErrorIs(t, g.CreateWorkTree("feature"), ErrNotARepository)
	assert.ErrorIs(t, g.MergeWorkTree(false), ErrNotARepository)
	assert.ErrorIs(t, g.DeleteWorkTree("feature", false), ErrNotARepository)
	assert.Empty(t, f.out.String())
}
