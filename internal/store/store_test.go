package store

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/gitlet-go/gitlet/internal/config"
	"github.com/gitlet-go/gitlet/internal/objects"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	cfg := config.NewWithFS(memfs.New())
	return New(cfg)
}

func TestPutGetBlob(t *testing.T) {
	s := newTestStore(t)
	id, err := s.PutBlob([]byte("This is a wug."))
	require.NoError(t, err)
	require.Len(t, id, objects.IDLength)

	got, err := s.GetBlob(id)
	require.NoError(t, err)
	require.Equal(t, []byte("This is a wug."), got.Content)
}

func TestPutBlobIdempotent(t *testing.T) {
	s := newTestStore(t)
	id1, err := s.PutBlob([]byte("same"))
	require.NoError(t, err)
	id2, err := s.PutBlob([]byte("same"))
	require.NoError(t, err)
	require.Equal(t, id1, id2)
}

func TestPutGetCommit(t *testing.T) {
	s := newTestStore(t)
	c := objects.Commit{Message: "c1", Timestamp: 10, FileMap: map[string]string{"a": "id-a"}}
	id, err := s.PutCommit(c)
	require.NoError(t, err)

	got, full, err := s.GetCommit(id)
	require.NoError(t, err)
	require.Equal(t, id, full)
	require.Equal(t, c, got)
}

func TestResolvePrefix(t *testing.T) {
	s := newTestStore(t)
	c := objects.Commit{Message: "c1", Timestamp: 10, FileMap: map[string]string{}}
	id, err := s.PutCommit(c)
	require.NoError(t, err)

	full, err := s.ResolvePrefix(id[:7])
	require.NoError(t, err)
	require.Equal(t, id, full)

	full, err = s.ResolvePrefix(id)
	require.NoError(t, err)
	require.Equal(t, id, full)

	_, err = s.ResolvePrefix(id + "ab")
	require.ErrorIs(t, err, ErrNotFound)

	_, err = s.ResolvePrefix("0000000")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestAllCommitIDs(t *testing.T) {
	s := newTestStore(t)
	id1, err := s.PutCommit(objects.Commit{Message: "one", FileMap: map[string]string{}})
	require.NoError(t, err)
	id2, err := s.PutCommit(objects.Commit{Message: "two", FileMap: map[string]string{}})
	require.NoError(t, err)

	ids, err := s.AllCommitIDs()
	require.NoError(t, err)
	require.ElementsMatch(t, []string{id1, id2}, ids)
}
