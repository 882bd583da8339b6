// Package gitliberr defines the fixed user-facing error vocabulary shared by
// every command. Every string here is load-bearing: test suites match on it
// verbatim.
package gitliberr

import "errors"

// CommandError is a command failure that should be reported to the user and
// followed by a clean (status 0) process exit, per the preserved legacy
// behavior. It is always one of the sentinels below, optionally with extra
// context appended by the caller.
type CommandError struct {
	msg string
}

func (e *CommandError) Error() string { return e.msg }

// New wraps one of the sentinel messages below, optionally with a suffix
// (e.g. a filename) appended after the fixed string.
func New(sentinel error, suffix string) *CommandError {
	if suffix == "" {
		return &CommandError{msg: sentinel.Error()}
	}
	return &CommandError{msg: sentinel.Error() + suffix}
}

// Is reports whether err carries the same fixed message as sentinel, so
// callers can branch on the CLI boundary with errors.Is(err, ErrNoCommand).
func (e *CommandError) Is(target error) bool {
	return e.msg == target.Error()
}

var (
	// Preconditions.
	ErrNoCommand       = errors.New("Please enter a command.")
	ErrBadOperands     = errors.New("Incorrect operands.")
	ErrNotInitialized  = errors.New("Not in an initialized Gitlet directory.")
	ErrAlreadyInit     = errors.New("A Gitlet version-control system already exists in the current directory.")

	// Missing objects.
	ErrFileNotExist        = errors.New("File does not exist.")
	ErrFileNotInCommit     = errors.New("File does not exist in that commit.")
	ErrNoCommitWithID      = errors.New("No commit with that id exists.")
	ErrNoCommitWithMessage = errors.New("Found no commit with that message.")
	ErrNoSuchBranch        = errors.New("No such branch exists.")
	ErrBranchDoesNotExist  = errors.New("A branch with that name does not exist.")
	ErrRemoteNoSuchBranch  = errors.New("That remote does not have that branch.")
	ErrRemoteDirNotFound   = errors.New("Remote directory not found.")
	ErrRemoteDoesNotExist  = errors.New("A remote with that name does not exist.")

	// State conflicts.
	ErrBranchAlreadyExists = errors.New("A branch with that name already exists.")
	ErrRemoteAlreadyExists = errors.New("A remote with that name already exists.")
	ErrRemoveCurrentBranch = errors.New("Cannot remove the current branch.")
	ErrAlreadyOnBranch     = errors.New("No need to checkout the current branch.")
	ErrNoChangesToCommit   = errors.New("No changes added to the commit.")
	ErrEmptyCommitMessage  = errors.New("Please enter a commit message.")
	ErrNoReasonToRemove    = errors.New("No reason to remove the file.")
	ErrUncommittedChanges  = errors.New("You have uncommitted changes.")
	ErrMergeSelf           = errors.New("Cannot merge a branch with itself.")
	ErrUntrackedInTheWay   = errors.New("There is an untracked file in the way; delete it, or add and commit it first.")
	ErrPullBeforePush      = errors.New("Please pull down remote changes before pushing.")

	// Non-fatal completion messages (not errors, but share the "print one
	// line and stop" shape, so callers route them through the same type).
	MsgAncestor       = errors.New("Given branch is an ancestor of the current branch.")
	MsgFastForwarded  = errors.New("Current branch fast-forwarded.")
	MsgMergeConflict  = errors.New("Encountered a merge conflict.")
)
