package repo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitlet-go/gitlet/internal/gitlettest"
	"github.com/gitlet-go/gitlet/internal/index"
)

func TestRmFailsWhenNeitherStagedNorTracked(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	err := r.Rm("nope.txt")
	require.ErrorContains(t, err, "No reason to remove the file.")
}

func TestRmUnstagesAddedFile(t *testing.T) {
	r, cfg := gitlettest.NewMemRepo(t)
	gitlettest.WriteWorkingFile(t, r, "a.txt", "hello")
	require.NoError(t, r.Add("a.txt"))

	require.NoError(t, r.Rm("a.txt"))

	idx, err := index.Load(cfg)
	require.NoError(t, err)
	require.NotContains(t, idx.Add, "a.txt")

	exists, err := r.Tree.Exists("a.txt")
	require.NoError(t, err)
	require.True(t, exists, "rm of a never-committed staged file should not delete it from the working tree")
}

func TestRmTrackedFileDeletesFromWorkingTreeAndStagesRemoval(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	gitlettest.WriteWorkingFile(t, r, "a.txt", "hello")
	require.NoError(t, r.Add("a.txt"))
	_, err := r.Commit("add a")
	require.NoError(t, err)

	require.NoError(t, r.Rm("a.txt"))

	exists, err := r.Tree.Exists("a.txt")
	require.NoError(t, err)
	require.False(t, exists)

	_, err = r.Commit("remove a")
	require.NoError(t, err)
	c, _, err := r.HeadCommit()
	require.NoError(t, err)
	require.NotContains(t, c.FileMap, "a.txt")
}
