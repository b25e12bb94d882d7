// Package treepart splits a large, uneven list of slash-delimited paths into
// partitions of similar weight, keeping paths that share a prefix together.
//
// The work is done by two packages: pkg/trie builds the weighted path trie and
// walks it, pkg/partition packs its subtrees greedily. This package wires them
// with the defaults used by the treepart command.
package treepart

import (
	"github.com/khalid-nowaf/treepart/pkg/partition"
	"github.com/khalid-nowaf/treepart/pkg/trie"
)

// Build creates a weighted path trie from lines, one path per line.
// Lines not starting with "/" are skipped.
func Build(lines []string) *trie.PathTrie {
	return trie.Build(lines, true)
}

// Partition splits tree into groups whose weights add up to about maxWeight.
// maxWeight must be positive.
func Partition(tree *trie.PathTrie, maxWeight int) []partition.Partition {
	return partition.Split(tree, maxWeight)
}

// Regex returns a regular expression matching every path of tree.
func Regex(tree *trie.PathTrie) string {
	return tree.Regex("")
}
