// Package repo implements the command core: init, add, commit, rm,
// checkout, reset, branch, rm-branch, status, log, global-log, find, per
// spec §4.4. Three-way merge (§4.5) and the remote mirror (§4.6) live in
// the sibling internal/merge and internal/remote packages, both built on
// top of the Repository type defined here.
package repo

import (
	"fmt"
	"time"

	"github.com/gitlet-go/gitlet/internal/config"
	"github.com/gitlet-go/gitlet/internal/fsutil"
	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/index"
	"github.com/gitlet-go/gitlet/internal/objects"
	"github.com/gitlet-go/gitlet/internal/refstore"
	"github.com/gitlet-go/gitlet/internal/store"
	"github.com/gitlet-go/gitlet/internal/worktree"
)

// Repository bundles the object store, refs store and working tree handles
// for one repository root. It is the receiver for every command in this
// package.
type Repository struct {
	Cfg   *config.Config
	Store *store.Store
	Refs  *refstore.Store
	Tree  *worktree.Tree
}

func newRepository(cfg *config.Config) *Repository {
	return &Repository{
		Cfg:   cfg,
		Store: store.New(cfg),
		Refs:  refstore.New(cfg),
		Tree:  worktree.New(cfg),
	}
}

// Open binds a Repository to an existing .gitlet directory, failing with
// ErrNotInitialized if none exists — every command but init requires this.
func Open(cfg *config.Config) (*Repository, error) {
	exists, err := fsutil.Exists(cfg.FS, cfg.Layout.Root)
	if err != nil {
		return nil, fmt.Errorf("repo: Open: %w", err)
	}
	if !exists {
		return nil, gitliberr.New(gitliberr.ErrNotInitialized, "")
	}
	return newRepository(cfg), nil
}

// Init creates a fresh repository: the objects/refs/remotes skeleton, the
// initial commit, a "master" branch pointing at it, HEAD pointing at
// master, and an empty index. Fails if a repository already exists here.
func Init(cfg *config.Config) (*Repository, error) {
	exists, err := fsutil.Exists(cfg.FS, cfg.Layout.Root)
	if err != nil {
		return nil, fmt.Errorf("repo: Init: %w", err)
	}
	if exists {
		return nil, gitliberr.New(gitliberr.ErrAlreadyInit, "")
	}

	for _, dir := range []string{cfg.Layout.ObjectsBlobs, cfg.Layout.ObjectsCommit, cfg.Layout.RefsHeads, cfg.Layout.Remotes} {
		if err := cfg.FS.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("repo: Init: %w", err)
		}
	}

	r := newRepository(cfg)

	initial := objects.Commit{
		Message:   "initial commit",
		Timestamp: time.Unix(0, 0).UTC().Unix(),
		FileMap:   map[string]string{},
	}
	initialID, err := r.Store.PutCommit(initial)
	if err != nil {
		return nil, fmt.Errorf("repo: Init: %w", err)
	}
	if err := r.Refs.WriteBranch("master", initialID); err != nil {
		return nil, fmt.Errorf("repo: Init: %w", err)
	}
	if err := r.Refs.WriteHead("master"); err != nil {
		return nil, fmt.Errorf("repo: Init: %w", err)
	}
	if err := index.ClearNew(cfg); err != nil {
		return nil, fmt.Errorf("repo: Init: %w", err)
	}
	return r, nil
}

// HeadCommit resolves the current branch's head commit.
func (r *Repository) HeadCommit() (objects.Commit, string, error) {
	branch, err := r.Refs.ReadHead()
	if err != nil {
		return objects.Commit{}, "", fmt.Errorf("repo: HeadCommit: %w", err)
	}
	id, err := r.Refs.ReadBranch(branch)
	if err != nil {
		return objects.Commit{}, "", fmt.Errorf("repo: HeadCommit: %w", err)
	}
	c, full, err := r.Store.GetCommit(id)
	if err != nil {
		return objects.Commit{}, "", fmt.Errorf("repo: HeadCommit: %w", err)
	}
	return c, full, nil
}

// CurrentBranch returns the name of the branch HEAD points at.
func (r *Repository) CurrentBranch() (string, error) {
	branch, err := r.Refs.ReadHead()
	if err != nil {
		return "", fmt.Errorf("repo: CurrentBranch: %w", err)
	}
	return branch, nil
}

// writeCommit stores c, advances the named branch to the new commit, and
// clears the index, in that order — object-store writes precede ref
// updates precede index clears, per §5's ordering guarantee.
func (r *Repository) writeCommit(branch string, c objects.Commit) (string, error) {
	id, err := r.Store.PutCommit(c)
	if err != nil {
		return "", fmt.Errorf("repo: writeCommit: %w", err)
	}
	if err := r.Refs.WriteBranch(branch, id); err != nil {
		return "", fmt.Errorf("repo: writeCommit: %w", err)
	}
	idx, err := index.Load(r.Cfg)
	if err != nil {
		return "", fmt.Errorf("repo: writeCommit: %w", err)
	}
	if err := idx.Clear(); err != nil {
		return "", fmt.Errorf("repo: writeCommit: %w", err)
	}
	return id, nil
}

// UntrackedInTheWay reports whether applying target over current would
// silently clobber a working-tree file that HEAD does not track — the
// precondition check shared by checkout <branch>, reset, merge, and push.
func (r *Repository) UntrackedInTheWay(current, target objects.Commit) (bool, error) {
	wdFiles, err := r.Tree.ListFiles(".")
	if err != nil {
		return false, fmt.Errorf("repo: untrackedInTheWay: %w", err)
	}
	for _, file := range wdFiles {
		_, tracked := current.FileMap[file]
		_, overwritten := target.FileMap[file]
		if !tracked && overwritten {
			return true, nil
		}
	}
	return false, nil
}

// ApplyCommitToWorkingTree writes every file in target to the working tree
// and deletes every file tracked by current but absent from target. Callers
// must call UntrackedInTheWay first.
func (r *Repository) ApplyCommitToWorkingTree(current, target objects.Commit) error {
	for name, blobID := range target.FileMap {
		b, err := r.Store.GetBlob(blobID)
		if err != nil {
			return fmt.Errorf("repo: applyCommitToWorkingTree: %w", err)
		}
		if err := r.Tree.Write(name, b.Content); err != nil {
			return fmt.Errorf("repo: applyCommitToWorkingTree: %w", err)
		}
	}
	for name := range current.FileMap {
		if _, ok := target.FileMap[name]; !ok {
			if err := r.Tree.Delete(name); err != nil {
				return fmt.Errorf("repo: applyCommitToWorkingTree: %w", err)
			}
		}
	}
	return nil
}
