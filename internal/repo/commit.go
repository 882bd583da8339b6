package repo

import (
	"fmt"
	"time"

	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/index"
	"github.com/gitlet-go/gitlet/internal/objects"
)

// Commit builds a new commit from the current HEAD plus whatever is
// staged, per §4.4. Fails on an empty message or an empty index.
func (r *Repository) Commit(message string) (string, error) {
	if message == "" {
		return "", gitliberr.New(gitliberr.ErrEmptyCommitMessage, "")
	}

	idx, err := index.Load(r.Cfg)
	if err != nil {
		return "", fmt.Errorf("repo: Commit: %w", err)
	}
	if idx.IsEmpty() {
		return "", gitliberr.New(gitliberr.ErrNoChangesToCommit, "")
	}

	head, headID, err := r.HeadCommit()
	if err != nil {
		return "", fmt.Errorf("repo: Commit: %w", err)
	}

	c := applyStaged(head, idx)
	c.Message = message
	c.Timestamp = time.Now().Unix()
	c.Parent = headID

	branch, err := r.CurrentBranch()
	if err != nil {
		return "", fmt.Errorf("repo: Commit: %w", err)
	}
	id, err := r.writeCommit(branch, c)
	if err != nil {
		return "", fmt.Errorf("repo: Commit: %w", err)
	}
	return id, nil
}

// MergeCommit builds a merge commit: the same file-map construction as a
// regular commit, but with a second parent and the standard merge message.
// Exported for internal/merge, which computes the staged file map itself
// via the three-way classification table before calling this.
func (r *Repository) MergeCommit(otherBranch, otherID string) (string, error) {
	idx, err := index.Load(r.Cfg)
	if err != nil {
		return "", fmt.Errorf("repo: MergeCommit: %w", err)
	}

	head, headID, err := r.HeadCommit()
	if err != nil {
		return "", fmt.Errorf("repo: MergeCommit: %w", err)
	}
	currentBranch, err := r.CurrentBranch()
	if err != nil {
		return "", fmt.Errorf("repo: MergeCommit: %w", err)
	}

	c := applyStaged(head, idx)
	c.Message = fmt.Sprintf("Merged %s into %s.", otherBranch, currentBranch)
	c.Timestamp = time.Now().Unix()
	c.Parent = headID
	c.Parent2 = otherID

	id, err := r.writeCommit(currentBranch, c)
	if err != nil {
		return "", fmt.Errorf("repo: MergeCommit: %w", err)
	}
	return id, nil
}

// applyStaged builds the file map for a new commit by inheriting head's
// file map, applying every staged add (overwrite) and then every staged
// remove (delete), per §4.4.
func applyStaged(head objects.Commit, idx *index.Index) objects.Commit {
	fileMap := make(map[string]string, len(head.FileMap))
	for name, id := range head.FileMap {
		fileMap[name] = id
	}
	for name, id := range idx.Add {
		fileMap[name] = id
	}
	for name := range idx.Remove {
		delete(fileMap, name)
	}
	return objects.Commit{FileMap: fileMap}
}
