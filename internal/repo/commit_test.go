package repo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitlet-go/gitlet/internal/gitlettest"
	"github.com/gitlet-go/gitlet/internal/index"
)

func TestCommitFailsWithEmptyMessage(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	gitlettest.WriteWorkingFile(t, r, "a.txt", "hello")
	require.NoError(t, r.Add("a.txt"))

	_, err := r.Commit("")
	require.ErrorContains(t, err, "Please enter a commit message.")
}

func TestCommitFailsWithNoStagedChanges(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	_, err := r.Commit("nothing to see here")
	require.ErrorContains(t, err, "No changes added to the commit.")
}

func TestCommitInheritsHeadFileMapAndAppliesStaged(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	gitlettest.WriteWorkingFile(t, r, "a.txt", "1")
	gitlettest.WriteWorkingFile(t, r, "b.txt", "2")
	require.NoError(t, r.Add("a.txt"))
	require.NoError(t, r.Add("b.txt"))
	_, err := r.Commit("add a and b")
	require.NoError(t, err)

	require.NoError(t, r.Rm("a.txt"))
	gitlettest.WriteWorkingFile(t, r, "c.txt", "3")
	require.NoError(t, r.Add("c.txt"))
	_, err = r.Commit("remove a, add c")
	require.NoError(t, err)

	c, _, err := r.HeadCommit()
	require.NoError(t, err)
	require.NotContains(t, c.FileMap, "a.txt")
	require.Contains(t, c.FileMap, "b.txt")
	require.Contains(t, c.FileMap, "c.txt")
}

func TestCommitClearsIndex(t *testing.T) {
	r, cfg := gitlettest.NewMemRepo(t)
	gitlettest.WriteWorkingFile(t, r, "a.txt", "1")
	require.NoError(t, r.Add("a.txt"))
	_, err := r.Commit("add a")
	require.NoError(t, err)

	idx, err := index.Load(cfg)
	require.NoError(t, err)
	require.True(t, idx.IsEmpty())
}
