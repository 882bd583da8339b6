// Package refstore implements branch refs and the HEAD pointer, per spec
// §4.2. HEAD is always symbolic (a path to a branch ref file), never a raw
// commit id, matching the teacher's HEAD-file-contains-a-path design.
package refstore

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/gitlet-go/gitlet/internal/config"
	"github.com/gitlet-go/gitlet/internal/fsutil"
)

// ErrBranchNotFound is returned by ReadBranch when the named branch has no
// ref file.
var ErrBranchNotFound = errors.New("refstore: branch not found")

// Store is the refs store.
type Store struct {
	fs     billy.Filesystem
	layout config.Layout
}

func New(cfg *config.Config) *Store {
	return &Store{fs: cfg.FS, layout: cfg.Layout}
}

// branchPath returns the ref file path for name, which may be a plain local
// branch ("master") or a namespaced remote-tracking branch ("origin/main").
// Namespaced names are nested under refs/remotes, matching §3's "branch ref
// files under a namespace prefix live in a nested directory" invariant.
func (s *Store) branchPath(name string) string {
	if remote, branch, ok := strings.Cut(name, "/"); ok {
		return filepath.Join(s.layout.RefsRemotes, remote, branch)
	}
	return filepath.Join(s.layout.RefsHeads, name)
}

// ReadHead returns the name of the branch HEAD currently points to.
func (s *Store) ReadHead() (string, error) {
	headTarget, err := fsutil.ReadString(s.fs, s.layout.Head)
	if err != nil {
		return "", fmt.Errorf("refstore: ReadHead: %w", err)
	}
	return s.branchNameFromPath(headTarget), nil
}

// branchNameFromPath recovers the logical branch name ("master", or
// "origin/main") from a ref file path written under RefsHeads/RefsRemotes.
func (s *Store) branchNameFromPath(path string) string {
	if rel, err := filepath.Rel(s.layout.RefsRemotes, path); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.Base(path)
}

// WriteHead retargets HEAD at branch, failing if branch does not exist.
func (s *Store) WriteHead(branch string) error {
	if _, err := s.ReadBranch(branch); err != nil {
		return fmt.Errorf("refstore: WriteHead: %w", err)
	}
	if err := fsutil.WriteFile(s.fs, s.layout.Head, []byte(s.branchPath(branch))); err != nil {
		return fmt.Errorf("refstore: WriteHead: %w", err)
	}
	return nil
}

// ReadBranch returns the commit id branch currently points to, or
// ErrBranchNotFound.
func (s *Store) ReadBranch(branch string) (string, error) {
	id, err := fsutil.ReadString(s.fs, s.branchPath(branch))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", ErrBranchNotFound
		}
		return "", fmt.Errorf("refstore: ReadBranch %v: %w", branch, err)
	}
	return id, nil
}

// WriteBranch creates or moves branch to point at commitID, creating any
// nested directories a namespaced name needs.
func (s *Store) WriteBranch(branch, commitID string) error {
	if err := fsutil.WriteFile(s.fs, s.branchPath(branch), []byte(commitID)); err != nil {
		return fmt.Errorf("refstore: WriteBranch %v: %w", branch, err)
	}
	return nil
}

// DeleteBranch removes branch's ref file.
func (s *Store) DeleteBranch(branch string) error {
	exists, err := fsutil.Exists(s.fs, s.branchPath(branch))
	if err != nil {
		return fmt.Errorf("refstore: DeleteBranch %v: %w", branch, err)
	}
	if !exists {
		return ErrBranchNotFound
	}
	if err := s.fs.Remove(s.branchPath(branch)); err != nil {
		return fmt.Errorf("refstore: DeleteBranch %v: %w", branch, err)
	}
	return nil
}

// ListBranches returns every branch and remote-tracking ref, sorted
// lexicographically, remote-tracking names in "remote/branch" form.
func (s *Store) ListBranches() ([]string, error) {
	var names []string

	heads, err := fsutil.ListNames(s.fs, s.layout.RefsHeads)
	if err != nil {
		return nil, fmt.Errorf("refstore: ListBranches: %w", err)
	}
	names = append(names, heads...)

	remotes, err := fsutil.ListNames(s.fs, s.layout.RefsRemotes)
	if err != nil {
		return nil, fmt.Errorf("refstore: ListBranches: %w", err)
	}
	for _, remote := range remotes {
		branches, err := fsutil.ListNames(s.fs, filepath.Join(s.layout.RefsRemotes, remote))
		if err != nil {
			return nil, fmt.Errorf("refstore: ListBranches: %w", err)
		}
		for _, branch := range branches {
			names = append(names, remote+"/"+branch)
		}
	}

	sort.Strings(names)
	return names, nil
}
