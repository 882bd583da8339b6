// Package remote implements the remote mirror protocol, per spec §4.6:
// named aliases to another repository's .gitlet root, and push/fetch/pull
// over that alias.
package remote

import (
	"bytes"
	"encoding/gob"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gitlet-go/gitlet/internal/config"
	"github.com/gitlet-go/gitlet/internal/diag"
	"github.com/gitlet-go/gitlet/internal/fsutil"
	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/graph"
	"github.com/gitlet-go/gitlet/internal/index"
	"github.com/gitlet-go/gitlet/internal/merge"
	"github.com/gitlet-go/gitlet/internal/refstore"
	"github.com/gitlet-go/gitlet/internal/repo"
)

// Record is the on-disk encoding of a remote alias: a name and the absolute
// path to another repository's .gitlet root.
type Record struct {
	Name string
	Path string
}

func recordPath(cfg *config.Config, name string) string {
	return filepath.Join(cfg.Layout.Remotes, name)
}

// AddRemote stores a new alias. Fails if one with that name already exists.
func AddRemote(cfg *config.Config, name, path string) error {
	exists, err := fsutil.Exists(cfg.FS, recordPath(cfg, name))
	if err != nil {
		return fmt.Errorf("remote: AddRemote: %w", err)
	}
	if exists {
		return gitliberr.New(gitliberr.ErrRemoteAlreadyExists, "")
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(Record{Name: name, Path: path}); err != nil {
		return fmt.Errorf("remote: AddRemote: encode: %w", err)
	}
	if err := fsutil.WriteFileExact(cfg.FS, recordPath(cfg, name), buf.Bytes()); err != nil {
		return fmt.Errorf("remote: AddRemote: %w", err)
	}
	return nil
}

// RmRemote deletes a remote alias. Fails if it does not exist.
func RmRemote(cfg *config.Config, name string) error {
	exists, err := fsutil.Exists(cfg.FS, recordPath(cfg, name))
	if err != nil {
		return fmt.Errorf("remote: RmRemote: %w", err)
	}
	if !exists {
		return gitliberr.New(gitliberr.ErrRemoteDoesNotExist, "")
	}
	if err := cfg.FS.Remove(recordPath(cfg, name)); err != nil {
		return fmt.Errorf("remote: RmRemote: %w", err)
	}
	return nil
}

// readRecord loads the alias named name.
func readRecord(cfg *config.Config, name string) (Record, error) {
	data, err := fsutil.ReadFile(cfg.FS, recordPath(cfg, name))
	if err != nil {
		return Record{}, gitliberr.New(gitliberr.ErrRemoteDoesNotExist, "")
	}
	var rec Record
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&rec); err != nil {
		return Record{}, fmt.Errorf("remote: readRecord: decode: %w", err)
	}
	return rec, nil
}

// openRemote resolves the alias named name to an opened Repository rooted
// at the remote's working directory, failing with the spec's
// "Remote directory not found." if the alias's path does not hold an
// initialized repository. The remote is reached by chrooting into the
// local Config's own filesystem rather than opening a second OS-level
// root, following the pack's convention for "another repository at a
// path" (kmrtdsii-playwithantigravity's session/clone/worktree code all
// resolve a second repo root via fs.Chroot rather than a fresh osfs.New).
func openRemote(cfg *config.Config, name string) (*repo.Repository, error) {
	rec, err := readRecord(cfg, name)
	if err != nil {
		return nil, err
	}
	remoteFS, err := cfg.FS.Chroot(filepath.Dir(rec.Path))
	if err != nil {
		return nil, fmt.Errorf("remote: openRemote: %w", err)
	}
	remoteCfg := config.NewWithFS(remoteFS)
	remoteRepo, err := repo.Open(remoteCfg)
	if err != nil {
		return nil, gitliberr.New(gitliberr.ErrRemoteDirNotFound, "")
	}
	return remoteRepo, nil
}

// Push copies HEAD's first-parent history and referenced blobs to the
// remote's object store, advances the remote's named branch to HEAD, and —
// if that branch is the remote's currently checked-out branch — materializes
// HEAD's file set into the remote's working directory.
func Push(r *repo.Repository, remoteName, branch string) error {
	remoteRepo, err := openRemote(r.Cfg, remoteName)
	if err != nil {
		return err
	}

	head, headID, err := r.HeadCommit()
	if err != nil {
		return fmt.Errorf("remote: Push: %w", err)
	}

	remoteTip, err := remoteRepo.Refs.ReadBranch(branch)
	if err != nil {
		if err != refstore.ErrBranchNotFound {
			return fmt.Errorf("remote: Push: %w", err)
		}
		remoteTip = ""
	}

	if remoteTip != "" {
		ancestors, err := graph.Ancestors(r.Store, headID)
		if err != nil {
			return fmt.Errorf("remote: Push: %w", err)
		}
		if !ancestors[remoteTip] {
			return gitliberr.New(gitliberr.ErrPullBeforePush, "")
		}
	}

	if err := copyFirstParentChain(r, remoteRepo, headID, remoteTip); err != nil {
		return fmt.Errorf("remote: Push: %w", err)
	}

	remoteCurrentBranch, err := remoteRepo.CurrentBranch()
	if err != nil {
		return fmt.Errorf("remote: Push: %w", err)
	}
	if remoteCurrentBranch != branch {
		if err := remoteRepo.Refs.WriteBranch(branch, headID); err != nil {
			return fmt.Errorf("remote: Push: %w", err)
		}
		return nil
	}

	remoteHead, _, err := remoteRepo.HeadCommit()
	if err != nil {
		return fmt.Errorf("remote: Push: %w", err)
	}
	inTheWay, err := remoteRepo.UntrackedInTheWay(remoteHead, head)
	if err != nil {
		return fmt.Errorf("remote: Push: %w", err)
	}
	if inTheWay {
		return gitliberr.New(gitliberr.ErrUntrackedInTheWay, "")
	}
	if err := remoteRepo.Refs.WriteBranch(branch, headID); err != nil {
		return fmt.Errorf("remote: Push: %w", err)
	}
	if err := remoteRepo.ApplyCommitToWorkingTree(remoteHead, head); err != nil {
		return fmt.Errorf("remote: Push: %w", err)
	}
	remoteIdx, err := index.Load(remoteRepo.Cfg)
	if err != nil {
		return fmt.Errorf("remote: Push: %w", err)
	}
	if err := remoteIdx.Clear(); err != nil {
		return fmt.Errorf("remote: Push: %w", err)
	}
	return nil
}

// Fetch copies commits and blobs along the remote branch's first-parent
// chain into the local store and creates/updates a local remote-tracking
// ref `<remote>/<branch>` at the remote tip. It never touches the working
// directory.
func Fetch(r *repo.Repository, remoteName, branch string) error {
	remoteRepo, err := openRemote(r.Cfg, remoteName)
	if err != nil {
		return err
	}

	remoteTip, err := remoteRepo.Refs.ReadBranch(branch)
	if err != nil {
		if err == refstore.ErrBranchNotFound {
			return gitliberr.New(gitliberr.ErrRemoteNoSuchBranch, "")
		}
		return fmt.Errorf("remote: Fetch: %w", err)
	}

	localTrackingID, err := r.Refs.ReadBranch(remoteName + "/" + branch)
	if err != nil {
		if err != refstore.ErrBranchNotFound {
			return fmt.Errorf("remote: Fetch: %w", err)
		}
		localTrackingID = ""
	}

	if err := copyFirstParentChain(remoteRepo, r, remoteTip, localTrackingID); err != nil {
		return fmt.Errorf("remote: Fetch: %w", err)
	}

	if err := r.Refs.WriteBranch(remoteName+"/"+branch, remoteTip); err != nil {
		return fmt.Errorf("remote: Fetch: %w", err)
	}
	return nil
}

// Pull fetches, then merges the resulting remote-tracking branch into the
// current branch.
func Pull(r *repo.Repository, remoteName, branch string) error {
	if err := Fetch(r, remoteName, branch); err != nil {
		return err
	}
	_, err := merge.Merge(r, remoteName+"/"+branch)
	return err
}

// copyFirstParentChain walks from's first-parent chain starting at tip back
// to (and excluding) stopAt, copying each commit and every blob its file map
// references into to's store. An empty stopAt walks all the way to the
// initial commit.
func copyFirstParentChain(from, to *repo.Repository, tip, stopAt string) error {
	id := tip
	for id != "" && id != stopAt {
		c, _, err := from.Store.GetCommit(id)
		if err != nil {
			return fmt.Errorf("copyFirstParentChain: %w", err)
		}
		for _, blobID := range c.FileMap {
			has, err := to.Store.HasBlob(blobID)
			if err != nil {
				return fmt.Errorf("copyFirstParentChain: %w", err)
			}
			if !has {
				b, err := from.Store.GetBlob(blobID)
				if err != nil {
					return fmt.Errorf("copyFirstParentChain: %w", err)
				}
				if _, err := to.Store.PutBlob(b.Content); err != nil {
					return fmt.Errorf("copyFirstParentChain: %w", err)
				}
			}
		}
		if _, err := to.Store.PutCommit(c); err != nil {
			return fmt.Errorf("copyFirstParentChain: %w", err)
		}
		diag.RemoteCopy("copy", id)
		id = c.Parent
	}
	if id != stopAt {
		return errors.New("copyFirstParentChain: chain never reached the expected stop point")
	}
	return nil
}
