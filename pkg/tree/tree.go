// Package tree reconstructs the directory hierarchy implied by flat archive
// entry paths. Archives store entries as uniquely-keyed path strings with no
// native parent/child links; the builders here sort those entries and resolve
// each one's parent, either by walking ancestor chains or through a directory
// index, and hand back a tree of nodes for collaborators to render or measure.
package tree

// Separator is the hierarchy boundary character used in archive paths.
const Separator = "/"

// Entry is the read-only view of one archived path record. Implementations
// must return a non-empty path; the empty string is reserved for the
// synthetic root.
type Entry interface {
	// Path returns the entry's full archive path.
	Path() string
	// IsDirectory reports whether the entry denotes a container. Directory
	// paths conventionally end with Separator.
	IsDirectory() bool
}

// Node is one position in a reconstructed hierarchy. Consumers treat nodes
// as read-only after a build and navigate through Parent and Children only.
type Node struct {
	payload  Entry
	path     string
	dir      bool
	parent   *Node
	children []*Node
}

// newNode builds a node carrying an original entry.
func newNode(e Entry) *Node {
	return &Node{payload: e, path: e.Path(), dir: e.IsDirectory()}
}

// newSyntheticNode builds a payload-free directory node for a path no entry
// declared.
func newSyntheticNode(path string) *Node {
	return &Node{path: path, dir: true}
}

// Payload returns the entry this node was built from, or nil for nodes the
// builder synthesized: intermediate directories and the synthetic root.
func (n *Node) Payload() Entry { return n.payload }

// Path returns the node's canonical path. It never changes after creation.
func (n *Node) Path() string { return n.path }

// IsDirectory reports whether the node may own children.
func (n *Node) IsDirectory() bool { return n.dir }

// Parent returns the node's parent, or nil for root nodes.
func (n *Node) Parent() *Node { return n.parent }

// Children returns the node's children in insertion order, which is the
// order entries were processed, not necessarily lexicographic.
func (n *Node) Children() []*Node { return n.children }

// addChild links c under n and sets c's parent pointer. Every caller keeps
// the invariant that c's path extends n's path.
func (n *Node) addChild(c *Node) {
	n.children = append(n.children, c)
	c.parent = n
}
