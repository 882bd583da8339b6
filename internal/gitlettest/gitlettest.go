// Package gitlettest provides throwaway-repository helpers shared by every
// internal package's tests, generalizing the teacher's setupTempDir /
// setupTestRepo helpers onto the config.Config/repo.Repository split.
package gitlettest

import (
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/stretchr/testify/require"

	"github.com/gitlet-go/gitlet/internal/config"
	"github.com/gitlet-go/gitlet/internal/repo"
)

// NewRepo builds an initialized repository rooted at a fresh t.TempDir() on
// the real filesystem, for tests that need a genuine on-disk .gitlet tree
// (e.g. CLI-level or remote-mirror tests that open two repository roots at
// once).
func NewRepo(t *testing.T) (*repo.Repository, *config.Config) {
	t.Helper()
	cfg := config.New(t.TempDir())
	r, err := repo.Init(cfg)
	require.NoError(t, err)
	return r, cfg
}

// NewMemRepo builds an initialized repository over an in-memory memfs, for
// fast unit tests of the object store, refs, index and command core that
// never need to inspect real files on disk.
func NewMemRepo(t *testing.T) (*repo.Repository, *config.Config) {
	t.Helper()
	cfg := config.NewWithFS(memfs.New())
	r, err := repo.Init(cfg)
	require.NoError(t, err)
	return r, cfg
}

// NewUninitializedConfig builds a Config over a fresh in-memory filesystem
// with no .gitlet directory, for tests that exercise the "not initialized"
// precondition.
func NewUninitializedConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.NewWithFS(memfs.New())
}

// WriteWorkingFile writes content to name in the repository's working tree,
// creating any needed directories — a convenience for tests.
func WriteWorkingFile(t *testing.T, r *repo.Repository, name, content string) {
	t.Helper()
	require.NoError(t, r.Tree.Write(name, []byte(content)))
}
