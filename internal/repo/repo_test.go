package repo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gitlet-go/gitlet/internal/gitlettest"
	"github.com/gitlet-go/gitlet/internal/repo"
)

func TestInitCreatesMasterAtInitialCommit(t *testing.T) {
	r, _ := gitlettest.NewMemRepo(t)

	branch, err := r.CurrentBranch()
	require.NoError(t, err)
	require.Equal(t, "master", branch)

	c, id, err := r.HeadCommit()
	require.NoError(t, err)
	require.Equal(t, "initial commit", c.Message)
	require.Empty(t, c.Parent)
	require.Empty(t, c.FileMap)
	require.Len(t, id, 40)
}

func TestInitialCommitIDIsDeterministic(t *testing.T) {
	_, cfg1 := gitlettest.NewMemRepo(t)
	_, cfg2 := gitlettest.NewMemRepo(t)

	r1, err := repo.Open(cfg1)
	require.NoError(t, err)
	r2, err := repo.Open(cfg2)
	require.NoError(t, err)

	_, id1, err := r1.HeadCommit()
	require.NoError(t, err)
	_, id2, err := r2.HeadCommit()
	require.NoError(t, err)
	require.Equal(t, id1, id2, "two fresh repositories must produce the same initial commit id")
}

func TestInitFailsIfAlreadyInitialized(t *testing.T) {
	_, cfg := gitlettest.NewMemRepo(t)
	_, err := repo.Init(cfg)
	require.ErrorContains(t, err, "already exists")
}

func TestOpenFailsWithoutInit(t *testing.T) {
	cfg := gitlettest.NewUninitializedConfig(t)
	_, err := repo.Open(cfg)
	require.ErrorContains(t, err, "Not in an initialized")
}
