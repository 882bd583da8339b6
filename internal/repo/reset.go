package repo

import (
	"fmt"

	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/index"
)

// Reset applies the same overwrite/delete logic as CheckoutBranch against
// the resolved commit id, but retargets the current branch ref rather than
// HEAD itself.
func (r *Repository) Reset(commitID string) error {
	target, fullID, err := r.Store.GetCommit(commitID)
	if err != nil {
		return gitliberr.New(gitliberr.ErrNoCommitWithID, "")
	}

	current, _, err := r.HeadCommit()
	if err != nil {
		return fmt.Errorf("repo: Reset: %w", err)
	}

	inTheWay, err := r.UntrackedInTheWay(current, target)
	if err != nil {
		return fmt.Errorf("repo: Reset: %w", err)
	}
	if inTheWay {
		return gitliberr.New(gitliberr.ErrUntrackedInTheWay, "")
	}

	if err := r.ApplyCommitToWorkingTree(current, target); err != nil {
		return fmt.Errorf("repo: Reset: %w", err)
	}

	branch, err := r.CurrentBranch()
	if err != nil {
		return fmt.Errorf("repo: Reset: %w", err)
	}
	if err := r.Refs.WriteBranch(branch, fullID); err != nil {
		return fmt.Errorf("repo: Reset: %w", err)
	}

	idx, err := index.Load(r.Cfg)
	if err != nil {
		return fmt.Errorf("repo: Reset: %w", err)
	}
	if err := idx.Clear(); err != nil {
		return fmt.Errorf("repo: Reset: %w", err)
	}
	return nil
}
