package tree

import "fmt"

// largeListingThreshold is the entry count above which the directory index
// assumes only about a tenth of the entries declare directories. A sizing
// heuristic only; correctness never depends on it.
const largeListingThreshold = 1024

// directoryIndex maps declared directory paths to their nodes for the
// duration of one build. A single-slot cache keeps the most recently
// resolved pair, which pays off on runs of sibling entries sharing a parent.
type directoryIndex struct {
	nodes     map[string]*Node
	cacheKey  string
	cacheNode *Node
}

// newDirectoryIndex registers a node for every directory entry.
func newDirectoryIndex(entries []Entry) (*directoryIndex, error) {
	capacity := len(entries)
	if capacity > largeListingThreshold {
		capacity /= 10
	}
	ix := &directoryIndex{nodes: make(map[string]*Node, capacity)}
	for _, e := range entries {
		if !e.IsDirectory() {
			continue
		}
		path := e.Path()
		if _, ok := ix.nodes[path]; ok {
			return nil, fmt.Errorf("directory %q declared twice: %w", path, ErrDuplicateDirectory)
		}
		ix.nodes[path] = newNode(e)
	}
	return ix, nil
}

// lookup returns the node registered for a directory path. The cache is
// consulted before the map; hits refresh it, misses leave it untouched.
func (ix *directoryIndex) lookup(key string) (*Node, bool) {
	if ix.cacheNode != nil && key == ix.cacheKey {
		return ix.cacheNode, true
	}
	n, ok := ix.nodes[key]
	if ok {
		ix.cacheKey = key
		ix.cacheNode = n
	}
	return n, ok
}

// node returns the index node for a directory entry's own path without
// touching the cache, which stays reserved for resolved parents.
func (ix *directoryIndex) node(path string) (*Node, bool) {
	n, ok := ix.nodes[path]
	return n, ok
}

// IndexedBuilder reconstructs a hierarchy through a directory index instead
// of ancestor walking. It suits the strict convention behind DirectoryFlag:
// structural directories appear as explicit entries, conventionally with a
// trailing separator, so each entry's parent is its longest declared
// directory prefix. Every root-level entry hangs from one synthetic root
// node with an empty path and no payload.
type IndexedBuilder struct {
	// RequireDeclaredAncestors aborts the build with ErrInconsistentHierarchy
	// when an entry rests below a path segment no directory entry declares.
	// Left false, such entries attach under their nearest declared ancestor
	// or the synthetic root, matching the walk builder's tolerance.
	RequireDeclaredAncestors bool
}

// Build validates and sorts entries, then assembles the tree under the
// synthetic root. Sorting reorders the caller's slice in place.
func (b *IndexedBuilder) Build(entries []Entry) (*Node, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	SortByPath(entries)
	return b.buildPass(entries)
}

// BuildSorted assembles the tree from entries the caller already ordered
// with SortByPath. Sortedness is not re-checked.
func (b *IndexedBuilder) BuildSorted(entries []Entry) (*Node, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	return b.buildPass(entries)
}

// buildPass populates the index, then links every entry under its resolved
// parent in one pass.
func (b *IndexedBuilder) buildPass(entries []Entry) (*Node, error) {
	ix, err := newDirectoryIndex(entries)
	if err != nil {
		return nil, err
	}
	root := newSyntheticNode("")
	for _, e := range entries {
		path := e.Path()

		// Directory entries reuse the node registered in the index so later
		// descendants resolve to the same object.
		var node *Node
		if e.IsDirectory() {
			indexed, ok := ix.node(path)
			if !ok {
				return nil, fmt.Errorf("directory %q missing from index: %w", path, ErrInternalInvariant)
			}
			node = indexed
		} else {
			node = newNode(e)
		}

		if b.RequireDeclaredAncestors {
			if prefix := parentPrefix(path); prefix != "" {
				if _, ok := ix.lookup(prefix); !ok {
					return nil, fmt.Errorf("entry %q: ancestor %q not declared: %w", path, prefix, ErrInconsistentHierarchy)
				}
			}
		}

		// Strip segments from the right until a declared directory or the
		// root turns up. The first strip always removes the entry's own
		// trailing segment, so a directory never resolves to itself.
		parent := root
		for prefix := parentPrefix(path); prefix != ""; prefix = parentPrefix(prefix) {
			if p, ok := ix.lookup(prefix); ok {
				parent = p
				break
			}
		}
		parent.addChild(node)
	}
	return root, nil
}
