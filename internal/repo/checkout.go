package repo

import (
	"fmt"

	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/index"
	"github.com/gitlet-go/gitlet/internal/refstore"
)

// CheckoutFile writes HEAD's version of name into the working directory.
// Fails if HEAD does not track name.
func (r *Repository) CheckoutFile(name string) error {
	head, _, err := r.HeadCommit()
	if err != nil {
		return fmt.Errorf("repo: CheckoutFile: %w", err)
	}
	return r.checkoutFileFrom(head.FileMap, name, gitliberr.ErrFileNotInCommit)
}

// CheckoutFileFromCommit writes the named file's version from the resolved
// commit id (a full id or prefix) into the working directory. Fails if
// commitID does not resolve or the commit does not track name.
func (r *Repository) CheckoutFileFromCommit(commitID, name string) error {
	c, _, err := r.Store.GetCommit(commitID)
	if err != nil {
		return gitliberr.New(gitliberr.ErrNoCommitWithID, "")
	}
	return r.checkoutFileFrom(c.FileMap, name, gitliberr.ErrFileNotInCommit)
}

func (r *Repository) checkoutFileFrom(fileMap map[string]string, name string, notFound error) error {
	blobID, ok := fileMap[name]
	if !ok {
		return gitliberr.New(notFound, "")
	}
	b, err := r.Store.GetBlob(blobID)
	if err != nil {
		return fmt.Errorf("repo: checkoutFileFrom: %w", err)
	}
	if err := r.Tree.Write(name, b.Content); err != nil {
		return fmt.Errorf("repo: checkoutFileFrom: %w", err)
	}
	return nil
}

// CheckoutBranch switches HEAD and the working tree to branch. Fails if the
// branch does not exist, is already current, or would silently clobber an
// untracked working file.
func (r *Repository) CheckoutBranch(branch string) error {
	current, err := r.CurrentBranch()
	if err != nil {
		return fmt.Errorf("repo: CheckoutBranch: %w", err)
	}
	if branch == current {
		return gitliberr.New(gitliberr.ErrAlreadyOnBranch, "")
	}

	targetID, err := r.Refs.ReadBranch(branch)
	if err != nil {
		if err == refstore.ErrBranchNotFound {
			return gitliberr.New(gitliberr.ErrNoSuchBranch, "")
		}
		return fmt.Errorf("repo: CheckoutBranch: %w", err)
	}
	target, _, err := r.Store.GetCommit(targetID)
	if err != nil {
		return fmt.Errorf("repo: CheckoutBranch: %w", err)
	}

	currentCommit, _, err := r.HeadCommit()
	if err != nil {
		return fmt.Errorf("repo: CheckoutBranch: %w", err)
	}

	inTheWay, err := r.UntrackedInTheWay(currentCommit, target)
	if err != nil {
		return fmt.Errorf("repo: CheckoutBranch: %w", err)
	}
	if inTheWay {
		return gitliberr.New(gitliberr.ErrUntrackedInTheWay, "")
	}

	if err := r.ApplyCommitToWorkingTree(currentCommit, target); err != nil {
		return fmt.Errorf("repo: CheckoutBranch: %w", err)
	}
	if err := r.Refs.WriteHead(branch); err != nil {
		return fmt.Errorf("repo: CheckoutBranch: %w", err)
	}
	idx, err := index.Load(r.Cfg)
	if err != nil {
		return fmt.Errorf("repo: CheckoutBranch: %w", err)
	}
	if err := idx.Clear(); err != nil {
		return fmt.Errorf("repo: CheckoutBranch: %w", err)
	}
	return nil
}
