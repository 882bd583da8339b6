package repo

import (
	"fmt"

	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/index"
)

// Add stages name for the next commit, per spec §4.4. Fails if name does
// not exist as a plain file in the working directory. If the content
// matches what HEAD already tracks, name is unstaged instead of staged
// (staging a file back to its committed content is a no-op, not a stage).
func (r *Repository) Add(name string) error {
	exists, err := r.Tree.Exists(name)
	if err != nil {
		return fmt.Errorf("repo: Add: %w", err)
	}
	if !exists {
		return gitliberr.New(gitliberr.ErrFileNotExist, "")
	}

	content, err := r.Tree.Read(name)
	if err != nil {
		return fmt.Errorf("repo: Add: %w", err)
	}

	head, _, err := r.HeadCommit()
	if err != nil {
		return fmt.Errorf("repo: Add: %w", err)
	}

	idx, err := index.Load(r.Cfg)
	if err != nil {
		return fmt.Errorf("repo: Add: %w", err)
	}

	id, err := r.Store.PutBlob(content)
	if err != nil {
		return fmt.Errorf("repo: Add: %w", err)
	}

	if head.FileMap[name] == id {
		idx.UnstageAdd(name)
	} else {
		idx.StageAdd(name, id)
	}
	delete(idx.Remove, name)

	if err := idx.Save(); err != nil {
		return fmt.Errorf("repo: Add: %w", err)
	}
	return nil
}
