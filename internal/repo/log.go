package repo

import (
	"fmt"
	"time"

	"github.com/gitlet-go/gitlet/internal/config"
	"github.com/gitlet-go/gitlet/internal/gitliberr"
	"github.com/gitlet-go/gitlet/internal/objects"
)

// Entry is one formatted log line's worth of data, handed to internal/ui by
// cmd/gitlet for printing.
type Entry struct {
	ID     string
	Commit objects.Commit
}

// String renders an entry the way "log"/"global-log" print it, matching the
// teacher's commit.String layout with 7-hex parent prefixes per §4.4's
// merge-line requirement (the teacher uses 6; the spec's fixed-width
// parent-prefix format calls for 7).
func (e Entry) String() string {
	date := time.Unix(e.Commit.Timestamp, 0).In(config.Zone).Format(config.TimeFormat)
	if e.Commit.IsMerge() {
		return fmt.Sprintf(
			"===\ncommit %v\nMerge: %v %v\nDate: %v\n%v\n",
			e.ID, shortID(e.Commit.Parent), shortID(e.Commit.Parent2), date, e.Commit.Message,
		)
	}
	return fmt.Sprintf("===\ncommit %v\nDate: %v\n%v\n", e.ID, date, e.Commit.Message)
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}

// Log walks the first-parent chain from HEAD back to the initial commit.
func (r *Repository) Log() ([]Entry, error) {
	_, headID, err := r.HeadCommit()
	if err != nil {
		return nil, fmt.Errorf("repo: Log: %w", err)
	}

	var entries []Entry
	id := headID
	for id != "" {
		c, full, err := r.Store.GetCommit(id)
		if err != nil {
			return nil, fmt.Errorf("repo: Log: %w", err)
		}
		entries = append(entries, Entry{ID: full, Commit: c})
		id = c.Parent
	}
	return entries, nil
}

// GlobalLog returns every commit in the store, in directory-listing order.
func (r *Repository) GlobalLog() ([]Entry, error) {
	ids, err := r.Store.AllCommitIDs()
	if err != nil {
		return nil, fmt.Errorf("repo: GlobalLog: %w", err)
	}
	entries := make([]Entry, 0, len(ids))
	for _, id := range ids {
		c, full, err := r.Store.GetCommit(id)
		if err != nil {
			return nil, fmt.Errorf("repo: GlobalLog: %w", err)
		}
		entries = append(entries, Entry{ID: full, Commit: c})
	}
	return entries, nil
}

// Find returns the ids of every commit whose message equals message
// exactly. Fails if none match.
func (r *Repository) Find(message string) ([]string, error) {
	ids, err := r.Store.AllCommitIDs()
	if err != nil {
		return nil, fmt.Errorf("repo: Find: %w", err)
	}
	var found []string
	for _, id := range ids {
		c, _, err := r.Store.GetCommit(id)
		if err != nil {
			return nil, fmt.Errorf("repo: Find: %w", err)
		}
		if c.Message == message {
			found = append(found, id)
		}
	}
	if len(found) == 0 {
		return nil, gitliberr.New(gitliberr.ErrNoCommitWithMessage, "")
	}
	return found, nil
}
