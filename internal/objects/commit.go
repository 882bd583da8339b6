package objects

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"sort"
)

// Commit is the immutable snapshot object. FileMap is exposed as a plain
// map for callers' convenience, but Encode always canonicalizes it into a
// name-sorted slice first, so that two commits with the same logical
// contents always produce identical bytes (and therefore the same id)
// regardless of map iteration order or insertion order.
type Commit struct {
	Message   string
	Timestamp int64 // Unix seconds, UTC.
	Parent    string // Empty for the initial commit.
	Parent2   string // Empty unless this is a merge commit.
	FileMap   map[string]string
}

// fileEntry is the canonical on-the-wire shape of one FileMap pair.
type fileEntry struct {
	Name    string
	BlobID  string
}

// canonical is the struct actually handed to the encoder: a Commit with its
// map flattened into a deterministically ordered slice.
type canonical struct {
	Message   string
	Timestamp int64
	Parent    string
	Parent2   string
	Files     []fileEntry
}

func (c Commit) toCanonical() canonical {
	names := make([]string, 0, len(c.FileMap))
	for name := range c.FileMap {
		names = append(names, name)
	}
	sort.Strings(names)
	files := make([]fileEntry, 0, len(names))
	for _, name := range names {
		files = append(files, fileEntry{Name: name, BlobID: c.FileMap[name]})
	}
	return canonical{
		Message:   c.Message,
		Timestamp: c.Timestamp,
		Parent:    c.Parent,
		Parent2:   c.Parent2,
		Files:     files,
	}
}

// Encode returns the canonical serialized form of c, whose digest is the
// commit's identity. Any change to this function is a wire-format break.
func (c Commit) Encode() ([]byte, error) {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(c.toCanonical()); err != nil {
		return nil, fmt.Errorf("objects: encode commit: %w", err)
	}
	return buf.Bytes(), nil
}

// DecodeCommit is the inverse of Encode.
func DecodeCommit(data []byte) (Commit, error) {
	var can canonical
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&can); err != nil {
		return Commit{}, fmt.Errorf("objects: decode commit: %w", err)
	}
	fm := make(map[string]string, len(can.Files))
	for _, f := range can.Files {
		fm[f.Name] = f.BlobID
	}
	return Commit{
		Message:   can.Message,
		Timestamp: can.Timestamp,
		Parent:    can.Parent,
		Parent2:   can.Parent2,
		FileMap:   fm,
	}, nil
}

// ID returns the commit's content-addressed identity using the given hasher.
func (c Commit) ID(h Hasher) (string, error) {
	data, err := c.Encode()
	if err != nil {
		return "", err
	}
	return h.Sum(data), nil
}

// IsMerge reports whether c has a second parent.
func (c Commit) IsMerge() bool {
	return c.Parent2 != ""
}
