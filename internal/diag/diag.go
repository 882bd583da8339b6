// Package diag is the core's internal diagnostic trace, kept strictly
// separate from the user-facing output in internal/ui: nothing logged here
// is ever one of the fixed strings in internal/gitliberr, so turning it on
// or off can never affect command output or test parity. Grounded on
// sirupsen/logrus, the one logging library the retrieval pack uses for
// exactly this "quiet unless asked" operational trace.
package diag

import (
	"io"

	"github.com/sirupsen/logrus"
)

var log = newLogger()

func newLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l
}

// Enable turns on diagnostic output to w (typically os.Stderr), for the
// CLI's -v flag or the GITLET_DEBUG environment variable.
func Enable(w io.Writer) {
	log.SetOutput(w)
	log.SetLevel(logrus.DebugLevel)
}

// SplitPoint traces a merge's split-point discovery.
func SplitPoint(current, other, split string) {
	log.WithFields(logrus.Fields{
		"current": shortID(current),
		"other":   shortID(other),
		"split":   shortID(split),
	}).Debug("merge: split point found")
}

// FastForward traces a merge resolving to a fast-forward.
func FastForward(from, to string) {
	log.WithFields(logrus.Fields{
		"from": shortID(from),
		"to":   shortID(to),
	}).Debug("merge: fast-forward")
}

// Conflict traces a single conflicting file during merge.
func Conflict(file string) {
	log.WithField("file", file).Debug("merge: conflict")
}

// RemoteCopy traces one commit copied during push/fetch.
func RemoteCopy(direction, commitID string) {
	log.WithFields(logrus.Fields{
		"direction": direction,
		"commit":    shortID(commitID),
	}).Debug("remote: copied commit")
}

func shortID(id string) string {
	if len(id) > 7 {
		return id[:7]
	}
	return id
}
