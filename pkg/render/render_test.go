package render

import (
	"bytes"
	"strings"
	"testing"

	"arbor/pkg/tree"
)

type testEntry struct {
	path string
	dir  bool
}

func (e *testEntry) Path() string      { return e.path }
func (e *testEntry) IsDirectory() bool { return e.dir }

func entriesFromPaths(paths ...string) []tree.Entry {
	entries := make([]tree.Entry, len(paths))
	for i, p := range paths {
		entries[i] = &testEntry{path: p, dir: strings.HasSuffix(p, tree.Separator)}
	}
	return entries
}

func buildForest(t *testing.T, strat tree.Strategy, paths ...string) []*tree.Node {
	t.Helper()
	b := &tree.Builder{Strategy: strat}
	roots, err := b.Build(entriesFromPaths(paths...))
	if err != nil {
		t.Fatalf("Failed to build tree: %v", err)
	}
	return roots
}

func TestTreeOutput(t *testing.T) {
	roots := buildForest(t, tree.SeparatorSynthesis,
		"directory/", "directory/f/f", "directory/f/g", "directory/file.txt",
		"h", "h///i")

	var buf bytes.Buffer
	if err := Tree(&buf, roots); err != nil {
		t.Fatalf("Failed to render tree: %v", err)
	}

	want := `directory/
├── f/ (synthesized)
│   ├── f
│   └── g
└── file.txt
h
h///i
`
	if buf.String() != want {
		t.Errorf("Rendered tree mismatch.\nGot:\n%s\nWant:\n%s", buf.String(), want)
	}
}

func TestTreeLabelsKeepSeparators(t *testing.T) {
	// A flat forest shows entry paths verbatim, separators included.
	roots := buildForest(t, tree.DirectoryFlag, "a/b/c", "x//y")

	var buf bytes.Buffer
	if err := Tree(&buf, roots); err != nil {
		t.Fatalf("Failed to render tree: %v", err)
	}
	if buf.String() != "a/b/c\nx//y\n" {
		t.Errorf("Expected verbatim root labels, got:\n%s", buf.String())
	}
}

func TestMaxDepth(t *testing.T) {
	if d := MaxDepth(nil); d != 0 {
		t.Errorf("Expected depth 0 for an empty forest, got %d", d)
	}

	flat := buildForest(t, tree.DirectoryFlag, "a", "b", "c")
	if d := MaxDepth(flat); d != 1 {
		t.Errorf("Expected depth 1 for a flat forest, got %d", d)
	}

	nested := buildForest(t, tree.SeparatorSynthesis,
		"top/", "top/mid/leaf/deep")
	if d := MaxDepth(nested); d != 4 {
		t.Errorf("Expected depth 4 for the nested forest, got %d", d)
	}
}

func TestCollect(t *testing.T) {
	roots := buildForest(t, tree.SeparatorSynthesis,
		"directory/", "directory/f/f", "directory/f/g", "directory/file.txt",
		"h", "h///i")

	got := Collect(roots)
	want := Stats{Roots: 3, Nodes: 7, Directories: 2, Files: 5, Synthesized: 1, MaxDepth: 3}
	if got != want {
		t.Errorf("Collect() = %+v, want %+v", got, want)
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{Roots: 3, Nodes: 7, Directories: 2, Files: 5, Synthesized: 1, MaxDepth: 3}
	want := "3 roots, 7 nodes (2 directories, 5 files, 1 synthesized), depth 3"
	if s.String() != want {
		t.Errorf("Stats.String() = %q, want %q", s.String(), want)
	}
}
