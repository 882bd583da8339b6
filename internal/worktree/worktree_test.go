package worktree

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/gitlet-go/gitlet/internal/config"
)

func newTestTree(t *testing.T) *Tree {
	t.Helper()
	return New(config.NewWithFS(memfs.New()))
}

func TestWriteReadDelete(t *testing.T) {
	tr := newTestTree(t)
	require.NoError(t, tr.Write("a.txt", []byte("hello")))

	content, err := tr.Read("a.txt")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), content)

	ok, err := tr.Exists("a.txt")
	require.NoError(t, err)
	require.True(t, ok)

	require.NoError(t, tr.Delete("a.txt"))
	ok, err = tr.Exists("a.txt")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestDeleteMissingIsNotError(t *testing.T) {
	tr := newTestTree(t)
	require.NoError(t, tr.Delete("ghost.txt"))
}

func TestListFilesSkipsDirectories(t *testing.T) {
	tr := newTestTree(t)
	require.NoError(t, tr.Write("b.txt", []byte("b")))
	require.NoError(t, tr.Write("a.txt", []byte("a")))
	require.NoError(t, tr.Write(".gitlet/HEAD", []byte("ref: refs/heads/master")))

	names, err := tr.ListFiles(".")
	require.NoError(t, err)
	require.Equal(t, []string{"a.txt", "b.txt"}, names)
}
