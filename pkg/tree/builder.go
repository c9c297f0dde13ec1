package tree

import (
	"fmt"
	"sort"
)

// SortByPath orders entries ascending by byte-wise comparison of their
// paths, stable for equal paths. The sort happens in place: the caller's
// slice is reordered. Archive writers emit entries in traversal order, which
// is already close to sorted, so the adaptive stable sort stays cheap on
// real listings. Sorting is the mandatory first step of every build because
// it places a directory immediately before the run of its descendants.
func SortByPath(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Path() < entries[j].Path()
	})
}

// validateEntries rejects nil entries and reserved empty paths before any
// node is created.
func validateEntries(entries []Entry) error {
	for i, e := range entries {
		if e == nil {
			return fmt.Errorf("entry %d: nil entry: %w", i, ErrInvalidInput)
		}
		if e.Path() == "" {
			return fmt.Errorf("entry %d: empty path is reserved: %w", i, ErrInvalidInput)
		}
	}
	return nil
}

// Builder reconstructs a hierarchy by walking ancestor chains. For each
// sorted entry it climbs from the previously placed node toward the root
// until the strategy accepts a parent; sorted input keeps that climb short,
// so the whole pass stays near linear on realistic listings.
type Builder struct {
	// Strategy selects the parent-resolution variant. Nil means DirectoryFlag.
	Strategy Strategy
}

// Build validates and sorts entries, then assembles the tree. Sorting
// reorders the caller's slice in place. The returned roots appear in
// processing order; on error no nodes are returned.
func (b *Builder) Build(entries []Entry) ([]*Node, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	SortByPath(entries)
	return b.buildPass(entries)
}

// BuildSorted assembles the tree from entries the caller already ordered
// with SortByPath. Sortedness is not re-checked; an unsorted slice yields a
// well-defined but different tree, which is the fast path's contract.
func (b *Builder) BuildSorted(entries []Entry) ([]*Node, error) {
	if err := validateEntries(entries); err != nil {
		return nil, err
	}
	return b.buildPass(entries)
}

// strategy returns the configured variant or the DirectoryFlag default.
func (b *Builder) strategy() Strategy {
	if b.Strategy == nil {
		return DirectoryFlag
	}
	return b.Strategy
}

// buildPass runs the single ancestor-walk pass over sorted entries.
func (b *Builder) buildPass(entries []Entry) ([]*Node, error) {
	strat := b.strategy()
	var roots []*Node
	var previous *Node
	placed := 0
	for _, e := range entries {
		candidate := newNode(e)

		// Climb from the previous entry's node until the strategy accepts a
		// parent. Every node on the chain was placed earlier, synthesized
		// intermediates included, so a longer walk means a corrupted parent
		// chain.
		current := previous
		for steps := 0; current != nil && !strat.validParent(current, candidate); steps++ {
			if steps > placed {
				return nil, fmt.Errorf("ancestor walk for %q exceeded %d steps: %w", e.Path(), placed, ErrInternalInvariant)
			}
			current = current.parent
		}

		if current == nil {
			// Reaching the sentinel makes the candidate a root. Roots attach
			// as-is under both strategies; nothing is synthesized above them.
			roots = append(roots, candidate)
		} else {
			strat.attach(current, candidate)
		}

		// The walk bound counts every materialized node: the candidate plus
		// any directories attach synthesized between current and candidate.
		placed++
		for n := candidate.parent; n != nil && n != current; n = n.parent {
			placed++
		}

		// The next walk starts from the original candidate, not from
		// whatever attach returned, so locality follows the entry order.
		previous = candidate
	}
	return roots, nil
}
