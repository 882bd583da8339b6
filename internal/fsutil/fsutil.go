// Package fsutil collects the small billy.Filesystem read/write/list
// helpers every internal/* package needs, generalizing the teacher's
// utils.go (readContentsToBytes/writeContents/getFilenames) from raw os
// calls onto the go-billy filesystem abstraction.
package fsutil

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/go-git/go-billy/v5"
)

// ReadFile returns the full contents of path, or an error wrapping
// os.ErrNotExist if it does not exist (billy surfaces this the same way the
// standard library does).
func ReadFile(fs billy.Filesystem, path string) ([]byte, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fsutil: open %v: %w", path, err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return nil, fmt.Errorf("fsutil: read %v: %w", path, err)
	}
	return data, nil
}

// ReadString is ReadFile with trailing newlines trimmed, for the
// line-oriented ref/HEAD files (matching the teacher's
// readContentsToString, which always writes a trailing newline in
// WriteFile below and trims it back out on read).
func ReadString(fs billy.Filesystem, path string) (string, error) {
	data, err := ReadFile(fs, path)
	if err != nil {
		return "", err
	}
	return string(bytes.TrimRight(data, "\n")), nil
}

// WriteFile truncates and overwrites path in place with data, creating parent
// directories as needed, and appends a trailing newline the way the
// teacher's writeContents does.
func WriteFile(fs billy.Filesystem, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("fsutil: mkdir %v: %w", dir, err)
		}
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("fsutil: create %v: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("fsutil: write %v: %w", path, err)
	}
	if _, err := f.Write([]byte("\n")); err != nil {
		f.Close()
		return fmt.Errorf("fsutil: write %v: %w", path, err)
	}
	return f.Close()
}

// WriteFileExact is WriteFile without the trailing newline, used for object
// payloads whose bytes must match their digest exactly.
func WriteFileExact(fs billy.Filesystem, path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := fs.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("fsutil: mkdir %v: %w", dir, err)
		}
	}
	f, err := fs.Create(path)
	if err != nil {
		return fmt.Errorf("fsutil: create %v: %w", path, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		return fmt.Errorf("fsutil: write %v: %w", path, err)
	}
	return f.Close()
}

// Exists reports whether path exists in fs, distinguishing real errors from
// a plain not-found.
func Exists(fs billy.Filesystem, path string) (bool, error) {
	_, err := fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("fsutil: stat %v: %w", path, err)
}

// RemoveIfExists deletes path, treating "already gone" as success.
func RemoveIfExists(fs billy.Filesystem, path string) error {
	if err := fs.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("fsutil: remove %v: %w", path, err)
	}
	return nil
}

// ListPlainFiles returns the sorted names of regular files directly inside
// dir, skipping subdirectories — matching the teacher's getFilenames and
// the spec's "list plain files directly in a directory" working-tree op.
func ListPlainFiles(fs billy.Filesystem, dir string) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("fsutil: readdir %v: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if e.Mode().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// ListNames returns the sorted names of every entry (file or directory)
// directly inside dir. Used by the refs store to enumerate branch and
// remote-tracking ref names.
func ListNames(fs billy.Filesystem, dir string) ([]string, error) {
	entries, err := fs.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("fsutil: readdir %v: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names, nil
}
