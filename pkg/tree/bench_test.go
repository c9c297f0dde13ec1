package tree

import (
	"fmt"
	"math/rand"
	"testing"
)

// benchmarkEntries builds a deterministic listing of directories with files
// beneath them, in the traversal order an archive writer would emit.
func benchmarkEntries(n int) []Entry {
	entries := make([]Entry, 0, n)
	dirs := n / 16
	if dirs == 0 {
		dirs = 1
	}
	for d := 0; d < dirs && len(entries) < n; d++ {
		dir := fmt.Sprintf("dir%05d/", d)
		entries = append(entries, &testEntry{path: dir, dir: true})
		for f := 0; f < 15 && len(entries) < n; f++ {
			entries = append(entries, &testEntry{path: fmt.Sprintf("%sfile%05d", dir, f)})
		}
	}
	return entries
}

// BenchmarkSortByPath measures the adaptive sort on traversal-ordered and
// shuffled listings.
func BenchmarkSortByPath(b *testing.B) {
	sizes := []int{1024, 65536}

	for _, size := range sizes {
		base := benchmarkEntries(size)

		b.Run(fmt.Sprintf("Traversal-%d", size), func(b *testing.B) {
			entries := make([]Entry, len(base))
			for i := 0; i < b.N; i++ {
				copy(entries, base)
				SortByPath(entries)
			}
		})

		b.Run(fmt.Sprintf("Shuffled-%d", size), func(b *testing.B) {
			rng := rand.New(rand.NewSource(1))
			shuffled := make([]Entry, len(base))
			copy(shuffled, base)
			rng.Shuffle(len(shuffled), func(i, j int) {
				shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
			})
			entries := make([]Entry, len(base))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(entries, shuffled)
				SortByPath(entries)
			}
		})
	}
}

// BenchmarkBuilder measures the ancestor-walk pass for both strategies on
// pre-sorted listings.
func BenchmarkBuilder(b *testing.B) {
	sizes := []int{1024, 65536}

	for _, size := range sizes {
		entries := benchmarkEntries(size)
		SortByPath(entries)

		for _, strat := range []Strategy{DirectoryFlag, SeparatorSynthesis} {
			b.Run(fmt.Sprintf("%s-%d", strat, size), func(b *testing.B) {
				builder := &Builder{Strategy: strat}
				for i := 0; i < b.N; i++ {
					if _, err := builder.BuildSorted(entries); err != nil {
						b.Fatalf("BuildSorted failed: %v", err)
					}
				}
			})
		}
	}
}

// BenchmarkIndexedBuilder measures the directory-index pass on pre-sorted
// listings.
func BenchmarkIndexedBuilder(b *testing.B) {
	sizes := []int{1024, 65536}

	for _, size := range sizes {
		entries := benchmarkEntries(size)
		SortByPath(entries)

		b.Run(fmt.Sprintf("Entries-%d", size), func(b *testing.B) {
			builder := &IndexedBuilder{}
			for i := 0; i < b.N; i++ {
				if _, err := builder.BuildSorted(entries); err != nil {
					b.Fatalf("BuildSorted failed: %v", err)
				}
			}
		})
	}
}
