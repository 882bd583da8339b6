package repo

import (
	"fmt"

	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/refstore"
)

// Branch creates a new branch ref pointing at HEAD's commit. Fails if a
// branch with that name already exists.
func (r *Repository) Branch(name string) error {
	if _, err := r.Refs.ReadBranch(name); err == nil {
		return gitliberr.New(gitliberr.ErrBranchAlreadyExists, "")
	} else if err != refstore.ErrBranchNotFound {
		return fmt.Errorf("repo: Branch: %w", err)
	}

	_, headID, err := r.HeadCommit()
	if err != nil {
		return fmt.Errorf("repo: Branch: %w", err)
	}
	if err := r.Refs.WriteBranch(name, headID); err != nil {
		return fmt.Errorf("repo: Branch: %w", err)
	}
	return nil
}

// RmBranch deletes a branch ref. Fails if the branch does not exist or is
// the current branch.
func (r *Repository) RmBranch(name string) error {
	current, err := r.CurrentBranch()
	if err != nil {
		return fmt.Errorf("repo: RmBranch: %w", err)
	}
	if name == current {
		return gitliberr.New(gitliberr.ErrRemoveCurrentBranch, "")
	}

	if err := r.Refs.DeleteBranch(name); err != nil {
		if err == refstore.ErrBranchNotFound {
			return gitliberr.New(gitliberr.ErrBranchDoesNotExist, "")
		}
		return fmt.Errorf("repo: RmBranch: %w", err)
	}
	return nil
}
