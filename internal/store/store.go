// Package store implements the content-addressed object store: blobs and
// commits keyed by their 40-hex digest, per spec §4.1.
package store

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"

	"github.com/gitlet-go/gitlet/internal/config"
	"github.com/gitlet-go/gitlet/internal/fsutil"
	"github.com/gitlet-go/gitlet/internal/objects"
)

// Store is the object store, backed by a billy.Filesystem rather than
// direct os calls.
type Store struct {
	fs     billy.Filesystem
	layout config.Layout
	hasher objects.Hasher
}

// New builds a Store over cfg's filesystem and layout, using the
// production SHA-1 hasher.
func New(cfg *config.Config) *Store {
	return &Store{fs: cfg.FS, layout: cfg.Layout, hasher: objects.SHA1Hasher{}}
}

func (s *Store) blobPath(id string) string {
	return filepath.Join(s.layout.ObjectsBlobs, id)
}

func (s *Store) commitPath(id string) string {
	return filepath.Join(s.layout.ObjectsCommit, id)
}

// BlobIDFor returns the id content would be stored under, without writing
// it — used by status to classify modifications without touching the
// store.
func (s *Store) BlobIDFor(content []byte) string {
	return objects.Blob{Content: content}.ID(s.hasher)
}

// PutBlob stores b and returns its id. Put is idempotent: writing the same
// content twice is a no-op the second time, per the append-only invariant.
func (s *Store) PutBlob(content []byte) (string, error) {
	b := objects.Blob{Content: content}
	id := b.ID(s.hasher)
	exists, err := fsutil.Exists(s.fs, s.blobPath(id))
	if err != nil {
		return "", fmt.Errorf("store: PutBlob: %w", err)
	}
	if exists {
		return id, nil
	}
	if err := fsutil.WriteFileExact(s.fs, s.blobPath(id), b.Encode()); err != nil {
		return "", fmt.Errorf("store: PutBlob: %w", err)
	}
	return id, nil
}

// GetBlob reads back the blob stored at id.
func (s *Store) GetBlob(id string) (objects.Blob, error) {
	data, err := fsutil.ReadFile(s.fs, s.blobPath(id))
	if err != nil {
		return objects.Blob{}, fmt.Errorf("store: GetBlob %v: %w", id, err)
	}
	return objects.DecodeBlob(data), nil
}

// HasBlob reports whether a blob with the given id is present.
func (s *Store) HasBlob(id string) (bool, error) {
	return fsutil.Exists(s.fs, s.blobPath(id))
}

// PutCommit stores c and returns its id.
func (s *Store) PutCommit(c objects.Commit) (string, error) {
	id, err := c.ID(s.hasher)
	if err != nil {
		return "", fmt.Errorf("store: PutCommit: %w", err)
	}
	exists, err := fsutil.Exists(s.fs, s.commitPath(id))
	if err != nil {
		return "", fmt.Errorf("store: PutCommit: %w", err)
	}
	if exists {
		return id, nil
	}
	data, err := c.Encode()
	if err != nil {
		return "", fmt.Errorf("store: PutCommit: %w", err)
	}
	if err := fsutil.WriteFileExact(s.fs, s.commitPath(id), data); err != nil {
		return "", fmt.Errorf("store: PutCommit: %w", err)
	}
	return id, nil
}

// GetCommit reads back the commit stored at id. id may be a prefix, in
// which case it is resolved first.
func (s *Store) GetCommit(id string) (objects.Commit, string, error) {
	full, err := s.ResolvePrefix(id)
	if err != nil {
		return objects.Commit{}, "", err
	}
	data, err := fsutil.ReadFile(s.fs, s.commitPath(full))
	if err != nil {
		return objects.Commit{}, "", fmt.Errorf("store: GetCommit %v: %w", full, err)
	}
	c, err := objects.DecodeCommit(data)
	if err != nil {
		return objects.Commit{}, "", fmt.Errorf("store: GetCommit %v: %w", full, err)
	}
	return c, full, nil
}

// Parents returns the parent ids of the commit at id, satisfying
// graph.CommitSource so internal/graph's ancestor/split-point search can
// walk the store directly without internal/store depending on
// internal/graph.
func (s *Store) Parents(id string) (string, string, error) {
	c, _, err := s.GetCommit(id)
	if err != nil {
		return "", "", fmt.Errorf("store: Parents %v: %w", id, err)
	}
	return c.Parent, c.Parent2, nil
}

// HasCommit reports whether a full (40-hex) commit id is present.
func (s *Store) HasCommit(id string) (bool, error) {
	return fsutil.Exists(s.fs, s.commitPath(id))
}

// ErrNotFound is returned by ResolvePrefix (ambiguous prefixes are not an
// error: they resolve to the first match); callers that need the spec's
// exact user message translate it at the command boundary rather than here,
// since the same not-found case means different things to different
// callers ("No commit with that id exists." vs. "File does not exist in
// that commit.").
var (
	ErrNotFound = fmt.Errorf("store: no matching commit id")
)

// ResolvePrefix resolves a (possibly abbreviated) commit id against the
// commits directory. A prefix shorter than objects.IDLength is a lookup
// request; equal length is treated as exact; longer is never found.
// Ambiguous prefixes resolve to the first match in directory-listing order,
// per §4.1 and §6 ("a prefix matches the first id (in directory-listing
// order) that starts with it").
func (s *Store) ResolvePrefix(prefix string) (string, error) {
	if len(prefix) == objects.IDLength {
		ok, err := s.HasCommit(prefix)
		if err != nil {
			return "", err
		}
		if ok {
			return prefix, nil
		}
		return "", ErrNotFound
	}
	if len(prefix) > objects.IDLength {
		return "", ErrNotFound
	}
	ids, err := fsutil.ListPlainFiles(s.fs, s.layout.ObjectsCommit)
	if err != nil {
		return "", fmt.Errorf("store: ResolvePrefix: %w", err)
	}
	for _, id := range ids {
		if strings.HasPrefix(id, prefix) {
			return id, nil
		}
	}
	return "", ErrNotFound
}

// AllCommitIDs returns every commit id present in the store, in
// directory-listing order, for global-log/find to scan.
func (s *Store) AllCommitIDs() ([]string, error) {
	return fsutil.ListPlainFiles(s.fs, s.layout.ObjectsCommit)
}
