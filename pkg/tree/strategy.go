package tree

import "strings"

// Strategy decides whether a node may directly contain another and performs
// the linking. The variant set is closed; use DirectoryFlag or
// SeparatorSynthesis.
type Strategy interface {
	// validParent reports whether child may attach directly under parent.
	validParent(parent, child *Node) bool

	// attach links child below parent, synthesizing intermediate directory
	// nodes when the variant calls for it, and returns the node that became
	// parent's direct child. The returned node's parent pointer is set.
	attach(parent, child *Node) *Node

	// String names the variant as it appears in configuration.
	String() string
}

var (
	// DirectoryFlag nests an entry only under an explicitly declared
	// directory entry whose path is a proper prefix of its own. Basenames
	// containing separator characters stay intact: the flag, not the
	// separator, marks hierarchy boundaries.
	DirectoryFlag Strategy = directoryFlagStrategy{}

	// SeparatorSynthesis treats every separator as a hierarchy boundary and
	// fabricates payload-free directory nodes for boundaries no entry
	// declared. The directory flag is not consulted; a parent qualifies by
	// ending in a separator.
	SeparatorSynthesis Strategy = separatorSynthesisStrategy{}
)

// extends reports whether childPath is a strict extension of parentPath.
// Equal paths do not qualify, which keeps duplicate entries siblings instead
// of nesting one inside the other.
func extends(childPath, parentPath string) bool {
	return len(childPath) > len(parentPath) && strings.HasPrefix(childPath, parentPath)
}

type directoryFlagStrategy struct{}

func (directoryFlagStrategy) validParent(parent, child *Node) bool {
	return parent.dir && extends(child.path, parent.path)
}

func (directoryFlagStrategy) attach(parent, child *Node) *Node {
	parent.addChild(child)
	return child
}

func (directoryFlagStrategy) String() string { return "flag" }

type separatorSynthesisStrategy struct{}

func (separatorSynthesisStrategy) validParent(parent, child *Node) bool {
	return strings.HasSuffix(parent.path, Separator) && extends(child.path, parent.path)
}

// attach hangs child below parent, materializing one directory node per
// separator boundary between them. The chain grows bottom-up; the top of the
// chain becomes parent's direct child and is returned.
func (separatorSynthesisStrategy) attach(parent, child *Node) *Node {
	top := child
	// Basename beyond parent, normalized to end in exactly one separator so
	// the scan below sees one boundary per segment.
	rel := strings.TrimSuffix(child.path[len(parent.path):], Separator) + Separator
	for {
		rel = prefixThrough(rel, 1)
		if rel == "" {
			break
		}
		syn := newSyntheticNode(parent.path + rel)
		syn.addChild(top)
		top = syn
	}
	parent.addChild(top)
	return top
}

func (separatorSynthesisStrategy) String() string { return "separator" }
