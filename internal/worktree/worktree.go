// Package worktree implements working-tree operations: materializing a
// blob to a path, deleting a path, and listing plain files directly under
// a directory, per spec §2's "Working tree ops" component.
package worktree

import (
	"fmt"

	"github.com/go-git/go-billy/v5"

	"github.com/gitlet-go/gitlet/internal/config"
	"github.com/gitlet-go/gitlet/internal/fsutil"
)

// Tree is the working-tree operations handle, rooted at the same
// filesystem the repository's object store and refs live under (the spec
// tracks only plain files directly under the working directory root, never
// subdirectories).
type Tree struct {
	fs billy.Filesystem
}

func New(cfg *config.Config) *Tree {
	return &Tree{fs: cfg.FS}
}

// Write materializes content at name, creating the file if absent and
// overwriting it otherwise.
func (t *Tree) Write(name string, content []byte) error {
	if err := fsutil.WriteFileExact(t.fs, name, content); err != nil {
		return fmt.Errorf("worktree: Write %v: %w", name, err)
	}
	return nil
}

// Read returns the current working-tree content of name.
func (t *Tree) Read(name string) ([]byte, error) {
	data, err := fsutil.ReadFile(t.fs, name)
	if err != nil {
		return nil, fmt.Errorf("worktree: Read %v: %w", name, err)
	}
	return data, nil
}

// Exists reports whether name is present in the working directory.
func (t *Tree) Exists(name string) (bool, error) {
	ok, err := fsutil.Exists(t.fs, name)
	if err != nil {
		return false, fmt.Errorf("worktree: Exists %v: %w", name, err)
	}
	return ok, nil
}

// Delete removes name from the working directory. Deleting an absent file
// is not an error, matching the teacher's restrictedDelete tolerance.
func (t *Tree) Delete(name string) error {
	if err := fsutil.RemoveIfExists(t.fs, name); err != nil {
		return fmt.Errorf("worktree: Delete %v: %w", name, err)
	}
	return nil
}

// ListFiles returns the sorted names of every plain file directly under
// dir (conventionally "."), skipping any subdirectories (including the
// repository metadata directory, which is a directory and so never
// returned) — the spec tracks "only plain files directly under the working
// directory root".
func (t *Tree) ListFiles(dir string) ([]string, error) {
	names, err := fsutil.ListPlainFiles(t.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("worktree: ListFiles %v: %w", dir, err)
	}
	return names, nil
}
