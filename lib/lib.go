// Package lib provides tree reconstruction functions for archive listings.
// This package re-exports the functionality from the tree package for
// embedding without the CLI.
package lib

import (
	"arbor/pkg/progress"
	"arbor/pkg/tree"
)

// Separator re-exported from tree
const Separator = tree.Separator

// Entry re-exported from tree
type Entry = tree.Entry

// Node re-exported from tree
type Node = tree.Node

// Strategy re-exported from tree
type Strategy = tree.Strategy

// Builder re-exported from tree
type Builder = tree.Builder

// IndexedBuilder re-exported from tree
type IndexedBuilder = tree.IndexedBuilder

// Re-export parent resolution strategies
var (
	DirectoryFlag      = tree.DirectoryFlag
	SeparatorSynthesis = tree.SeparatorSynthesis
)

// Re-export sentinel errors
var (
	ErrInvalidInput          = tree.ErrInvalidInput
	ErrDuplicateDirectory    = tree.ErrDuplicateDirectory
	ErrInconsistentHierarchy = tree.ErrInconsistentHierarchy
	ErrInternalInvariant     = tree.ErrInternalInvariant
)

// InitProgress initializes the progress tracking system
func InitProgress() {
	progress.Init()
}

// StopProgress stops the progress tracking system
func StopProgress() {
	progress.Stop()
}

// SortByPath is a wrapper around tree.SortByPath
func SortByPath(entries []Entry) {
	tree.SortByPath(entries)
}

// BuildTree is a wrapper around tree.Builder.Build
func BuildTree(entries []Entry, strategy Strategy) ([]*Node, error) {
	b := &tree.Builder{Strategy: strategy}
	return b.Build(entries)
}

// BuildTreeIndexed is a wrapper around tree.IndexedBuilder.Build
func BuildTreeIndexed(entries []Entry) (*Node, error) {
	b := &tree.IndexedBuilder{}
	return b.Build(entries)
}
