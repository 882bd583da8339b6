package graph

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// fakeSource is a tiny in-memory parent map for graph tests, independent of
// the real object store.
type fakeSource map[string][2]string

func (f fakeSource) Parents(id string) (string, string, error) {
	p := f[id]
	return p[0], p[1], nil
}

func TestAncestorsLinearChain(t *testing.T) {
	src := fakeSource{
		"c3": {"c2", ""},
		"c2": {"c1", ""},
		"c1": {"", ""},
	}
	got, err := Ancestors(src, "c3")
	require.NoError(t, err)
	require.Equal(t, map[string]bool{"c3": true, "c2": true, "c1": true}, got)
}

func TestAncestorsStopsOnCommonAncestor(t *testing.T) {
	// c1 -> c2 -> c4
	//   \-> c3 ->/
	src := fakeSource{
		"c4": {"c2", "c3"},
		"c2": {"c1", ""},
		"c3": {"c1", ""},
		"c1": {"", ""},
	}
	got, err := Ancestors(src, "c4")
	require.NoError(t, err)
	require.Len(t, got, 4)
}

func TestSplitPointLinearAncestry(t *testing.T) {
	// master: c1 -> c2 -> c3
	// dev branches from c2: c2 -> c4
	src := fakeSource{
		"c3": {"c2", ""},
		"c4": {"c2", ""},
		"c2": {"c1", ""},
		"c1": {"", ""},
	}
	split, err := SplitPoint(src, "c3", "c4")
	require.NoError(t, err)
	require.Equal(t, "c2", split)
}

func TestSplitPointGIsAncestorOfH(t *testing.T) {
	src := fakeSource{
		"c3": {"c2", ""},
		"c2": {"c1", ""},
		"c1": {"", ""},
	}
	split, err := SplitPoint(src, "c3", "c1")
	require.NoError(t, err)
	require.Equal(t, "c1", split, "split point equals g itself when g is an ancestor of h")
}

func TestSplitPointHIsAncestorOfG(t *testing.T) {
	src := fakeSource{
		"c3": {"c2", ""},
		"c2": {"c1", ""},
		"c1": {"", ""},
	}
	split, err := SplitPoint(src, "c1", "c3")
	require.NoError(t, err)
	require.Equal(t, "c1", split, "split point equals h itself, a fast-forward")
}

func TestSplitPointDiamondBreaksTowardFirstParent(t *testing.T) {
	// A diamond where g has two paths back to the split; the asymmetric
	// BFS-from-g-over-ancestors-of-h rule must prefer the path reached via
	// g's first parent first.
	//
	//      split
	//      /    \
	//   left    right
	//      \    /
	//        g  (parent=left, parent2=right)
	//
	// h descends only from "left".
	src := fakeSource{
		"h":     {"left", ""},
		"g":     {"left", "right"},
		"left":  {"split", ""},
		"right": {"split", ""},
		"split": {"", ""},
	}
	split, err := SplitPoint(src, "h", "g")
	require.NoError(t, err)
	require.Equal(t, "left", split, "h's ancestor set includes left, so BFS from g finds it via g's first parent before reaching split")
}
