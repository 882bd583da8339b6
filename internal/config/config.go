// Package config resolves the handful of process-wide facts the rest of the
// core needs (repository root, timestamp zone) into an explicit value
// instead of package-level globals, per the spec's note that "global
// mutable state ... is captured as an explicit handle/configuration
// threaded through operations".
package config

import (
	"path/filepath"
	"time"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
)

// GitletDir is the name of the repository metadata directory under a
// working tree root, matching the teacher's constant.
const GitletDir = ".gitlet"

// Layout is the fixed set of paths inside a repository root, relative to
// GitletDir. Kept as named constants rather than scattering string
// literals, the way the teacher's package-level objectsDir/refsDir/... vars
// did, but grouped so a Config can hand them out without global state.
type Layout struct {
	Root          string // GitletDir itself, relative to the filesystem root.
	ObjectsBlobs  string
	ObjectsCommit string
	RefsHeads     string
	RefsRemotes   string
	Remotes       string
	Head          string
	Index         string
}

func newLayout() Layout {
	return Layout{
		Root:          GitletDir,
		ObjectsBlobs:  filepath.Join(GitletDir, "objects", "blobs"),
		ObjectsCommit: filepath.Join(GitletDir, "objects", "commits"),
		RefsHeads:     filepath.Join(GitletDir, "refs", "heads"),
		RefsRemotes:   filepath.Join(GitletDir, "refs", "remotes"),
		Remotes:       filepath.Join(GitletDir, "remotes"),
		Head:          filepath.Join(GitletDir, "HEAD"),
		Index:         filepath.Join(GitletDir, "index"),
	}
}

// Zone is the fixed zone every timestamp in the VCS's user-facing output is
// rendered in, per §6 ("a fixed negative-8-hour zone"). The teacher instead
// formats with time.Local, which makes its log output depend on the host's
// TZ; this is the one place the expansion deliberately diverges from the
// teacher's code to satisfy a spec requirement the teacher's test suite
// never exercised.
var Zone = time.FixedZone("PST", -8*60*60)

// TimeFormat is the Go reference-time layout matching "E MMM d HH:mm:ss y Z".
const TimeFormat = "Mon Jan 2 15:04:05 2006 -0700"

// Config bundles a repository's filesystem handle, working-directory root,
// and on-disk layout. It is constructed once per command invocation and
// threaded explicitly into every internal/repo, internal/merge and
// internal/remote call — never read from a package-level global, so that a
// local repository and a mirrored remote can both be open in the same
// process (internal/remote needs exactly that).
type Config struct {
	FS     billy.Filesystem
	Layout Layout
}

// New builds a Config rooted at dir on the real filesystem, using go-billy's
// osfs as the concrete filesystem abstraction the spec calls out as an
// external collaborator of the core.
func New(dir string) *Config {
	return &Config{
		FS:     osfs.New(dir),
		Layout: newLayout(),
	}
}

// NewWithFS builds a Config over an already-constructed billy.Filesystem,
// used by tests that want an in-memory backend (memfs) instead of the real
// disk.
func NewWithFS(fs billy.Filesystem) *Config {
	return &Config{FS: fs, Layout: newLayout()}
}
