//go:build unit

package grove

import (
	"errors"
	"testing"

	"github.com/grovekit/grove/pkg/git"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListWorkTrees(t *testing.T) {
	g, f := newTestGrove(t, testConfig(), "/repo/proj")
	f.expectRepository("/repo/proj", "/repo/proj", "main")
	f.git.EXPECT().ListWorktrees("/repo/proj").Return([]git.Worktree{
		{Path: "/repo/proj", Branch: "main"},
		{Path: "/repo/proj-feature", Branch: "feature"},
		{Path: "/repo/proj-detached", IsDetached: true},
	}, nil)

	f.git.EXPECT().UncommittedCount("/repo/proj").Return(0, nil)
	f.git.EXPECT().UncommittedCount("/repo/proj-feature").Return(2, nil)
	f.git.EXPECT().UncommittedCount("/repo/proj-detached").Return(1, nil)
	f.git.EXPECT().AheadBehind("/repo/proj", "feature", "main").Return(3, 1, nil)

	infos, err := g.ListWorkTrees()
	require.NoError(t, err)
	require.Len(t, infos, 3)

	assert.Equal(t, WorktreeInfo{
		Path: "/repo/proj", Branch: "main", IsPrimary: true,
	}, infos[0])
	assert.Equal(t, WorktreeInfo{
		Path: "/repo/proj-feature", Branch: "feature",
		Ahead: 3, Behind: 1, Uncommitted: 2,
	}, infos[1])
	assert.Equal(t, WorktreeInfo{
		Path: "/repo/proj-detached", IsDetached: true, Uncommitted: 1,
	}, infos[2])
}

func TestListWorkTrees_DivergenceLookupIsBestEffort(t *testing.T) {
	g, f := newTestGrove(t, testConfig(), "/repo/proj")
	f.expectRepository("/repo/proj", "/repo/proj", "main")
	f.git.EXPECT().ListWorktrees("/repo/proj").Return([]git.Worktree{
		{Path: "/repo/proj-feature", Branch: "feature"},
	}, nil)
	f.git.EXPECT().UncommittedCount("/repo/proj-feature").Return(0, errors.New("stat failed"))
	f.git.EXPECT().AheadBehind("/repo/proj", "feature", "main").Return(0, 0, errors.New("unknown revision"))

	infos, err := g.ListWorkTrees()
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, WorktreeInfo{Path: "/repo/proj-feature", Branch: "feature"}, infos[0])
	assert.Contains(t, f.log.String(), "Warning:")
}

func TestListWorkTrees_ListFails(t *testing.T) {
	g, f := newTestGrove(t, testConfig(), "/repo/proj")
	f.expectRepository("/repo/proj", "/repo/proj", "main")
	f.git.EXPECT().ListWorktrees("/repo/proj").Return(nil, errors.New("not a git repository"))

	_, err := g.ListWorkTrees()
	assert.ErrorContains(t, err, "failed to list worktrees")
}
