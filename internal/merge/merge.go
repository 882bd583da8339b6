// Package merge implements the three-way merge engine, per spec §4.5: split
// point discovery over a possibly diamond-shaped DAG, the per-file
// classification table, conflict markers, and the resulting merge commit.
package merge

import (
	"fmt"

	"github.com/gitlet-go/gitlet/internal/diag"
	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/graph"
	"github.com/gitlet-go/gitlet/internal/index"
	"github.com/gitlet-go/gitlet/internal/objects"
	"github.com/gitlet-go/gitlet/internal/refstore"
	"github.com/gitlet-go/gitlet/internal/repo"
)

// conflictTemplate is the literal conflict-marker text, with a missing side
// rendered as the empty string, per §4.5.
const conflictTemplate = "<<<<<<< HEAD\n%s=======\n%s>>>>>>>\n"

// Merge runs "merge <branch>" against r's current branch. It returns the id
// of the merge commit it created, and a non-nil error both for genuine
// failures (uncommitted changes, self-merge, missing branch, untracked file
// in the way) and for the three non-fatal completion notices spec §4.5
// defines (ancestor, fast-forward, conflict) — all share the same
// "print one line and stop" shape via *gitliberr.CommandError, so callers
// can treat them uniformly.
func Merge(r *repo.Repository, branchName string) (string, error) {
	idx, err := index.Load(r.Cfg)
	if err != nil {
		return "", fmt.Errorf("merge: Merge: %w", err)
	}
	if !idx.IsEmpty() {
		return "", gitliberr.New(gitliberr.ErrUncommittedChanges, "")
	}

	currentBranch, err := r.CurrentBranch()
	if err != nil {
		return "", fmt.Errorf("merge: Merge: %w", err)
	}
	if branchName == currentBranch {
		return "", gitliberr.New(gitliberr.ErrMergeSelf, "")
	}

	gID, err := r.Refs.ReadBranch(branchName)
	if err != nil {
		if err == refstore.ErrBranchNotFound {
			return "", gitliberr.New(gitliberr.ErrBranchDoesNotExist, "")
		}
		return "", fmt.Errorf("merge: Merge: %w", err)
	}

	h, hID, err := r.HeadCommit()
	if err != nil {
		return "", fmt.Errorf("merge: Merge: %w", err)
	}
	g, _, err := r.Store.GetCommit(gID)
	if err != nil {
		return "", fmt.Errorf("merge: Merge: %w", err)
	}

	splitID, err := graph.SplitPoint(r.Store, hID, gID)
	if err != nil {
		return "", fmt.Errorf("merge: Merge: %w", err)
	}
	diag.SplitPoint(hID, gID, splitID)

	if splitID == gID {
		return "", gitliberr.New(gitliberr.MsgAncestor, "")
	}
	if splitID == hID {
		diag.FastForward(hID, gID)
		if err := r.Reset(gID); err != nil {
			return "", fmt.Errorf("merge: Merge: %w", err)
		}
		return "", gitliberr.New(gitliberr.MsgFastForwarded, "")
	}
	split, _, err := r.Store.GetCommit(splitID)
	if err != nil {
		return "", fmt.Errorf("merge: Merge: %w", err)
	}

	inTheWay, err := r.UntrackedInTheWay(h, g)
	if err != nil {
		return "", fmt.Errorf("merge: Merge: %w", err)
	}
	if inTheWay {
		return "", gitliberr.New(gitliberr.ErrUntrackedInTheWay, "")
	}

	conflicted, err := applyMerge(r, idx, split, h, g)
	if err != nil {
		return "", fmt.Errorf("merge: Merge: %w", err)
	}
	if err := idx.Save(); err != nil {
		return "", fmt.Errorf("merge: Merge: %w", err)
	}

	commitID, err := r.MergeCommit(branchName, gID)
	if err != nil {
		return "", fmt.Errorf("merge: Merge: %w", err)
	}

	if conflicted {
		return commitID, gitliberr.New(gitliberr.MsgMergeConflict, "")
	}
	return commitID, nil
}

// applyMerge classifies every file across split/h/g and mutates the working
// tree and index accordingly, returning whether any file conflicted.
func applyMerge(r *repo.Repository, idx *index.Index, split, h, g objects.Commit) (bool, error) {
	files := make(map[string]bool)
	for name := range split.FileMap {
		files[name] = true
	}
	for name := range h.FileMap {
		files[name] = true
	}
	for name := range g.FileMap {
		files[name] = true
	}

	conflicted := false
	for name := range files {
		splitID, inSplit := split.FileMap[name]
		hID, inH := h.FileMap[name]
		gID, inG := g.FileMap[name]

		modifiedInH := (inSplit && !inH) || (inSplit && inH && hID != splitID) || (!inSplit && inH)
		modifiedInG := (inSplit && !inG) || (inSplit && inG && gID != splitID) || (!inSplit && inG)

		switch {
		case modifiedInG && !modifiedInH:
			if !inG {
				if err := removeFile(r, idx, name); err != nil {
					return false, err
				}
				continue
			}
			if err := takeOther(r, idx, name, gID); err != nil {
				return false, err
			}

		case modifiedInH && !modifiedInG:
			// Current branch's version already wins; nothing to do.

		case modifiedInH && modifiedInG:
			if !inH && !inG {
				continue // both sides removed it
			}
			if inH && inG && hID == gID {
				continue // changed identically on both sides
			}
			if err := recordConflict(r, idx, name, hID, inH, gID, inG); err != nil {
				return false, err
			}
			conflicted = true
		}
	}
	return conflicted, nil
}

func takeOther(r *repo.Repository, idx *index.Index, name, blobID string) error {
	b, err := r.Store.GetBlob(blobID)
	if err != nil {
		return fmt.Errorf("merge: takeOther: %w", err)
	}
	if err := r.Tree.Write(name, b.Content); err != nil {
		return fmt.Errorf("merge: takeOther: %w", err)
	}
	idx.StageAdd(name, blobID)
	return nil
}

func removeFile(r *repo.Repository, idx *index.Index, name string) error {
	if err := r.Tree.Delete(name); err != nil {
		return fmt.Errorf("merge: removeFile: %w", err)
	}
	idx.StageRemove(name)
	return nil
}

func recordConflict(r *repo.Repository, idx *index.Index, name string, hID string, inH bool, gID string, inG bool) error {
	var headContent, otherContent []byte
	if inH {
		b, err := r.Store.GetBlob(hID)
		if err != nil {
			return fmt.Errorf("merge: recordConflict: %w", err)
		}
		headContent = b.Content
	}
	if inG {
		b, err := r.Store.GetBlob(gID)
		if err != nil {
			return fmt.Errorf("merge: recordConflict: %w", err)
		}
		otherContent = b.Content
	}
	diag.Conflict(name)

	text := fmt.Sprintf(conflictTemplate, headSection(headContent), headSection(otherContent))
	if err := r.Tree.Write(name, []byte(text)); err != nil {
		return fmt.Errorf("merge: recordConflict: %w", err)
	}
	blobID, err := r.Store.PutBlob([]byte(text))
	if err != nil {
		return fmt.Errorf("merge: recordConflict: %w", err)
	}
	idx.StageAdd(name, blobID)
	return nil
}

// headSection normalizes a (possibly empty) side of a conflict into text
// that ends with a newline, so the marker lines stay on their own lines
// regardless of whether the file's own content already ended in one.
func headSection(content []byte) string {
	if len(content) == 0 {
		return ""
	}
	if content[len(content)-1] != '\n' {
		return string(content) + "\n"
	}
	return string(content)
}
