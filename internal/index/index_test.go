package index

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/gitlet-go/gitlet/internal/config"
)

func newTestConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.NewWithFS(memfs.New())
}

func TestStageAddRemovesFromRemoveSet(t *testing.T) {
	idx := New(newTestConfig(t))
	idx.StageRemove("a.txt")
	idx.StageAdd("a.txt", "blob1")

	require.Equal(t, "blob1", idx.Add["a.txt"])
	require.False(t, idx.Remove["a.txt"])
}

func TestStageRemoveRemovesFromAddSet(t *testing.T) {
	idx := New(newTestConfig(t))
	idx.StageAdd("a.txt", "blob1")
	idx.StageRemove("a.txt")

	_, staged := idx.Add["a.txt"]
	require.False(t, staged)
	require.True(t, idx.Remove["a.txt"])
}

func TestSaveLoadRoundTrip(t *testing.T) {
	cfg := newTestConfig(t)
	idx := New(cfg)
	idx.StageAdd("a.txt", "id-a")
	idx.StageRemove("b.txt")
	require.NoError(t, idx.Save())

	loaded, err := Load(cfg)
	require.NoError(t, err)
	require.Equal(t, idx.Add, loaded.Add)
	require.Equal(t, idx.Remove, loaded.Remove)
}

func TestLoadMissingIndexIsEmpty(t *testing.T) {
	cfg := newTestConfig(t)
	idx, err := Load(cfg)
	require.NoError(t, err)
	require.True(t, idx.IsEmpty())
}

func TestClearEmptiesBothSets(t *testing.T) {
	cfg := newTestConfig(t)
	idx := New(cfg)
	idx.StageAdd("a.txt", "id-a")
	idx.StageRemove("b.txt")
	require.NoError(t, idx.Clear())
	require.True(t, idx.IsEmpty())

	loaded, err := Load(cfg)
	require.NoError(t, err)
	require.True(t, loaded.IsEmpty())
}
