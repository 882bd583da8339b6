package repo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitlet-go/gitlet/internal/gitlettest"
)

func TestResetMovesCurrentBranchAndWorkingTree(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	gitlettest.WriteWorkingFile(t, r, "a.txt", "v1")
	require.NoError(t, r.Add("a.txt"))
	firstID, err := r.Commit("v1")
	require.NoError(t, err)

	gitlettest.WriteWorkingFile(t, r, "b.txt", "v2 file")
	require.NoError(t, r.Add("b.txt"))
	_, err = r.Commit("v2")
	require.NoError(t, err)

	require.NoError(t, r.Reset(firstID))

	c, headID, err := r.HeadCommit()
	require.NoError(t, err)
	require.Equal(t, firstID, headID)
	require.NotContains(t, c.FileMap, "b.txt")

	exists, err := r.Tree.Exists("b.txt")
	require.NoError(t, err)
	require.False(t, exists)
}

func TestResetFailsOnUnknownCommit(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)
	err := r.Reset("deadbeefdeadbeefdeadbeefdeadbeefdeadbeef")
	require.ErrorContains(t, err, "No commit with that id exists.")
}
