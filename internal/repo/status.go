package repo

import (
	"fmt"
	"sort"

	"github.com/gitlet-go/gitlet/internal/index"
)

// Status is the printable snapshot built by the "status" command, per
// §4.4. Every slice is sorted.
type Status struct {
	Branches        []string
	CurrentBranch   string
	StagedFiles     []string
	RemovedFiles    []string
	ModifiedNotStaged []string // each entry already carries its " (modified)"/" (deleted)" suffix
	UntrackedFiles  []string
}

// BuildStatus gathers every section of "status" in one pass.
func (r *Repository) BuildStatus() (Status, error) {
	var s Status

	branch, err := r.CurrentBranch()
	if err != nil {
		return Status{}, fmt.Errorf("repo: BuildStatus: %w", err)
	}
	s.CurrentBranch = branch

	branches, err := r.Refs.ListBranches()
	if err != nil {
		return Status{}, fmt.Errorf("repo: BuildStatus: %w", err)
	}
	s.Branches = branches

	idx, err := index.Load(r.Cfg)
	if err != nil {
		return Status{}, fmt.Errorf("repo: BuildStatus: %w", err)
	}
	for name := range idx.Add {
		s.StagedFiles = append(s.StagedFiles, name)
	}
	sort.Strings(s.StagedFiles)
	for name := range idx.Remove {
		s.RemovedFiles = append(s.RemovedFiles, name)
	}
	sort.Strings(s.RemovedFiles)

	head, _, err := r.HeadCommit()
	if err != nil {
		return Status{}, fmt.Errorf("repo: BuildStatus: %w", err)
	}
	wdFiles, err := r.Tree.ListFiles(".")
	if err != nil {
		return Status{}, fmt.Errorf("repo: BuildStatus: %w", err)
	}
	wdSet := make(map[string]bool, len(wdFiles))
	for _, f := range wdFiles {
		wdSet[f] = true
	}

	modified := map[string]string{}

	for name, headID := range head.FileMap {
		if idx.Remove[name] {
			continue
		}
		if _, staged := idx.Add[name]; staged {
			continue
		}
		if !wdSet[name] {
			modified[name] = "deleted"
			continue
		}
		content, err := r.Tree.Read(name)
		if err != nil {
			return Status{}, fmt.Errorf("repo: BuildStatus: %w", err)
		}
		if r.Store.BlobIDFor(content) != headID {
			modified[name] = "modified"
		}
	}
	for name, stagedID := range idx.Add {
		if !wdSet[name] {
			modified[name] = "deleted"
			continue
		}
		content, err := r.Tree.Read(name)
		if err != nil {
			return Status{}, fmt.Errorf("repo: BuildStatus: %w", err)
		}
		if r.Store.BlobIDFor(content) != stagedID {
			modified[name] = "modified"
		}
	}
	for name, suffix := range modified {
		s.ModifiedNotStaged = append(s.ModifiedNotStaged, fmt.Sprintf("%s (%s)", name, suffix))
	}
	sort.Strings(s.ModifiedNotStaged)

	for _, name := range wdFiles {
		_, tracked := head.FileMap[name]
		_, staged := idx.Add[name]
		if !tracked && !staged {
			s.UntrackedFiles = append(s.UntrackedFiles, name)
		}
	}
	sort.Strings(s.UntrackedFiles)

	return s, nil
}
