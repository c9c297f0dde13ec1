package render

import (
	"fmt"

	"arbor/pkg/tree"
)

// Stats aggregates what a build produced.
type Stats struct {
	Roots       int
	Nodes       int
	Directories int
	Files       int
	Synthesized int
	MaxDepth    int
}

// Collect walks the forest and tallies its composition.
func Collect(roots []*tree.Node) Stats {
	stats := Stats{Roots: len(roots), MaxDepth: MaxDepth(roots)}
	var walk func(n *tree.Node)
	walk = func(n *tree.Node) {
		stats.Nodes++
		if n.IsDirectory() {
			stats.Directories++
			if n.Payload() == nil {
				stats.Synthesized++
			}
		} else {
			stats.Files++
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	for _, r := range roots {
		walk(r)
	}
	return stats
}

// String formats the tally as a one-line summary.
func (s Stats) String() string {
	return fmt.Sprintf("%d roots, %d nodes (%d directories, %d files, %d synthesized), depth %d",
		s.Roots, s.Nodes, s.Directories, s.Files, s.Synthesized, s.MaxDepth)
}
