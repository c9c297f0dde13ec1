// Package render turns reconstructed archive trees into terminal output and
// summary statistics.
package render

import (
	"fmt"
	"io"

	"arbor/pkg/tree"
)

// Tree writes the forest as an indented tree with ASCII connectors. Roots
// print flush-left with their full paths; children follow in stored order.
func Tree(w io.Writer, roots []*tree.Node) error {
	for _, root := range roots {
		if _, err := fmt.Fprintf(w, "%s\n", label(root)); err != nil {
			return fmt.Errorf("write tree line: %w", err)
		}
		if err := writeChildren(w, root, ""); err != nil {
			return err
		}
	}
	return nil
}

func writeChildren(w io.Writer, n *tree.Node, prefix string) error {
	children := n.Children()
	for i, c := range children {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(children)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		if _, err := fmt.Fprintf(w, "%s%s%s\n", prefix, connector, label(c)); err != nil {
			return fmt.Errorf("write tree line: %w", err)
		}
		if err := writeChildren(w, c, childPrefix); err != nil {
			return err
		}
	}
	return nil
}

// label is the path a node adds beyond its parent, so entry names that
// contain separators render verbatim.
func label(n *tree.Node) string {
	text := n.Path()
	if p := n.Parent(); p != nil {
		text = text[len(p.Path()):]
	}
	if n.Payload() == nil {
		text += " (synthesized)"
	}
	return text
}

// MaxDepth returns the longest root-to-leaf chain in the forest; an empty
// forest is 0.
func MaxDepth(roots []*tree.Node) int {
	deepest := 0
	for _, r := range roots {
		if d := 1 + MaxDepth(r.Children()); d > deepest {
			deepest = d
		}
	}
	return deepest
}
