package refstore

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/gitlet-go/gitlet/internal/config"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(config.NewWithFS(memfs.New()))
}

func TestWriteReadBranch(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteBranch("master", "abc123"))

	id, err := s.ReadBranch("master")
	require.NoError(t, err)
	require.Equal(t, "abc123", id)
}

func TestReadBranchNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.ReadBranch("nope")
	require.ErrorIs(t, err, ErrBranchNotFound)
}

func TestHeadPointsAtBranchNotCommit(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteBranch("master", "abc123"))
	require.NoError(t, s.WriteHead("master"))

	head, err := s.ReadHead()
	require.NoError(t, err)
	require.Equal(t, "master", head)
}

func TestWriteHeadValidatesBranchExists(t *testing.T) {
	s := newTestStore(t)
	err := s.WriteHead("ghost")
	require.Error(t, err)
}

func TestDeleteBranch(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteBranch("feature", "abc123"))
	require.NoError(t, s.DeleteBranch("feature"))
	_, err := s.ReadBranch("feature")
	require.ErrorIs(t, err, ErrBranchNotFound)
}

func TestDeleteBranchNotFound(t *testing.T) {
	s := newTestStore(t)
	err := s.DeleteBranch("ghost")
	require.ErrorIs(t, err, ErrBranchNotFound)
}

func TestListBranchesIncludesRemoteTracking(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteBranch("master", "c1"))
	require.NoError(t, s.WriteBranch("zzz", "c2"))
	require.NoError(t, s.WriteBranch("origin/main", "c3"))

	names, err := s.ListBranches()
	require.NoError(t, err)
	require.Equal(t, []string{"master", "origin/main", "zzz"}, names)
}

func TestRemoteTrackingBranchRoundTrip(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.WriteBranch("origin/main", "deadbeef"))
	id, err := s.ReadBranch("origin/main")
	require.NoError(t, err)
	require.Equal(t, "deadbeef", id)
}
