//go:build unit

package grove

import (
	"errors"
	"testing"

	"github.com/grovekit/grove/pkg/git"
	"github.com/grovekit/grove/pkg/hooks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergeWorktrees() []git.Worktree {
	return []git.Worktree{
		{Path: "/repo/proj", Branch: "main"},
		{Path: "/repo/proj-feature", Branch: "feature"},
	}
}

func TestMergeWorkTree_SuccessTearsDown(t *testing.T) {
	cfg := testConfig()
	var events []string
	cfg.Plugins = []hooks.Plugin{recordingPlugin("p1", &events)}

	g, f := newTestGrove(t, cfg, "/repo/proj-feature")
	f.expectRepository("/repo/proj-feature", "/repo/proj", "main")
	f.git.EXPECT().CurrentBranch("/repo/proj-feature").Return("feature", nil)
	f.git.EXPECT().ListWorktrees("/repo/proj").Return(mergeWorktrees(), nil)
	f.git.EXPECT().Merge("/repo/proj", "feature").Return("Updating abc..def", nil)
	f.git.EXPECT().RemoveWorktree("/repo/proj", "/repo/proj-feature", false).Return(nil)
	f.git.EXPECT().DeleteBranch("/repo/proj", "feature", false).Return(nil)

	err := g.MergeWorkTree(false)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"p1.beforeMerge",
		"p1.beforeRemove",
		"p1.afterRemove",
		"p1.afterMerge",
	}, events)
	assert.Equal(t, "/repo/proj\n", f.out.String())
}

func TestMergeWorkTree_KeepSkipsTeardown(t *testing.T) {
	cfg := testConfig()
	var events []string
	cfg.Plugins = []hooks.Plugin{recordingPlugin("p1", &events)}

	g, f := newTestGrove(t, cfg, "/repo/proj-feature")
	f.expectRepository("/repo/proj-feature", "/repo/proj", "main")
	f.git.EXPECT().CurrentBranch("/repo/proj-feature").Return("feature", nil)
	f.git.EXPECT().ListWorktrees("/repo/proj").Return(mergeWorktrees(), nil)
	f.git.EXPECT().Merge("/repo/proj", "feature").Return("Updating abc..def", nil)

	err := g.MergeWorkTree(true)
	require.NoError(t, err)
	assert.Equal(t, []string{"p1.beforeMerge", "p1.afterMerge"}, events)
	assert.Equal(t, "/repo/proj\n", f.out.String())
}

func TestMergeWorkTree_ConflictLeavesOperatorInPlace(t *testing.T) {
	cfg := testConfig()
	var events []string
	cfg.Plugins = []hooks.Plugin{recordingPlugin("p1", &events)}

	g, f := newTestGrove(t, cfg, "/repo/proj-feature")
	f.expectRepository("/repo/proj-feature", "/repo/proj", "main")
	f.git.EXPECT().CurrentBranch("/repo/proj-feature").Return("feature", nil)
	f.git.EXPECT().ListWorktrees("/repo/proj").Return(mergeWorktrees(), nil)
	f.git.EXPECT().Merge("/repo/proj", "feature").
		Return("CONFLICT (content): Merge conflict in a.txt", errors.New("exit status 1"))

	err := g.MergeWorkTree(false)

	var conflict *MergeConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, "main", conflict.TargetBranch)
	assert.Equal(t, "/repo/proj", conflict.TargetPath)

	// The success channel carries the unchanged working directory so the
	// calling shell does not move.
	assert.Equal(t, "/repo/proj-feature\n", f.out.String())
	assert.Equal(t, []string{"p1.beforeMerge"}, events)
	assert.Contains(t, f.log.String(), "CONFLICT (content)")
	assert.Contains(t, f.log.String(), "You remain in your worktree at /repo/proj-feature")
}

func TestMergeWorkTree_DefaultBranchGuard(t *testing.T) {
	cfg := testConfig()
	var events []string
	cfg.Plugins = []hooks.Plugin{recordingPlugin("p1", &events)}

	g, f := newTestGrove(t, cfg, "/repo/proj")
	f.expectRepository("/repo/proj", "/repo/proj", "main")
	f.git.EXPECT().CurrentBranch("/repo/proj").Return("main", nil)

	err := g.MergeWorkTree(false)
	assert.ErrorIs(t, err, ErrNothingToMerge)
	assert.Empty(t, events, "the guard must fire before any hook runs")
	assert.Empty(t, f.out.String())
}

func TestMergeWorkTree_PrimaryWorktreeMissing(t *testing.T) {
	g, f := newTestGrove(t, testConfig(), "/repo/proj-feature")
	f.expectRepository("/repo/proj-feature", "/repo/proj", "main")
	f.git.EXPECT().CurrentBranch("/repo/proj-feature").Return("feature", nil)
	f.git.EXPECT().ListWorktrees("/repo/proj").Return([]git.Worktree{
		{Path: "/repo/proj-feature", Branch: "feature"},
	}, nil)

	err := g.MergeWorkTree(false)
	assert.ErrorIs(t, err, ErrPrimaryWorktreeNotFound)
	assert.Empty(t, f.out.String())
}

func TestMergeWorkTree_TeardownFailuresAreAdvisory(t *testing.T) {
	cfg := testConfig()
	var events []string
	cfg.Plugins = []hooks.Plugin{recordingPlugin("p1", &events)}

	g, f := newTestGrove(t, cfg, "/repo/proj-feature")
	f.expectRepository("/repo/proj-feature", "/repo/proj", "main")
	f.git.EXPECT().CurrentBranch("/repo/proj-feature").Return("feature", nil)
	f.git.EXPECT().ListWorktrees("/repo/proj").Return(mergeWorktrees(), nil)
	f.git.EXPECT().Merge("/repo/proj", "feature").Return("Updating abc..def", nil)
	f.git.EXPECT().RemoveWorktree("/repo/proj", "/repo/proj-feature", false).
		Return(errors.New("worktree contains modified files"))
	f.git.EXPECT().DeleteBranch("/repo/proj", "feature", false).
		Return(errors.New("branch not fully merged"))

	err := g.MergeWorkTree(false)
	require.NoError(t, err, "teardown failures after a successful merge are advisory")
	assert.Contains(t, f.log.String(), "Warning: failed to remove worktree /repo/proj-feature")
	assert.Contains(t, f.log.String(), "Warning: failed to delete branch feature")
	assert.Equal(t, []string{
		"p1.beforeMerge",
		"p1.beforeRemove",
		"p1.afterRemove",
		"p1.afterMerge",
	}, events)
	assert.Equal(t, "/repo/proj\n", f.out.String())
}

func TestMergeWorkTree_HookContextTargetsPrimary(t *testing.T) {
	cfg := testConfig()
	var got hooks.Context
	cfg.Plugins = []hooks.Plugin{{
		Name: "capture",
		Hooks: hooks.Map{
			hooks.BeforeMerge: hooks.Function(func(ctx hooks.Context) error {
				got = ctx
				return nil
			}),
		},
	}}

	g, f := newTestGrove(t, cfg, "/repo/proj-feature")
	f.expectRepository("/repo/proj-feature", "/repo/proj", "main")
	f.git.EXPECT().CurrentBranch("/repo/proj-feature").Return("feature", nil)
	f.git.EXPECT().ListWorktrees("/repo/proj").Return(mergeWorktrees(), nil)
	f.git.EXPECT().Merge("/repo/proj", "feature").Return("", nil)

	require.NoError(t, g.MergeWorkTree(true))
	assert.Equal(t, "feature", got.Branch)
	assert.Equal(t, "/repo/proj-feature", got.WorktreePath)
	assert.Equal(t, "/repo/proj", got.TargetWorktreePath)
}
