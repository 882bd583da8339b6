package repo

import (
	"fmt"

	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/index"
)

// Rm unstages name and, if HEAD tracks it, stages it for removal and
// deletes it from the working tree. Fails if name is neither staged nor
// tracked by HEAD.
func (r *Repository) Rm(name string) error {
	idx, err := index.Load(r.Cfg)
	if err != nil {
		return fmt.Errorf("repo: Rm: %w", err)
	}
	head, _, err := r.HeadCommit()
	if err != nil {
		return fmt.Errorf("repo: Rm: %w", err)
	}

	_, staged := idx.Add[name]
	_, tracked := head.FileMap[name]
	if !staged && !tracked {
		return gitliberr.New(gitliberr.ErrNoReasonToRemove, "")
	}

	if tracked {
		idx.StageRemove(name)
		if err := r.Tree.Delete(name); err != nil {
			return fmt.Errorf("repo: Rm: %w", err)
		}
	} else {
		idx.UnstageAdd(name)
	}

	if err := idx.Save(); err != nil {
		return fmt.Errorf("repo: Rm: %w", err)
	}
	return nil
}
