package partition

import (
	"log/slog"

	"github.com/khalid-nowaf/treepart/pkg/trie"
)

// Partitioner splits a weighted path trie into groups of bounded total weight.
type Partitioner struct {
	maxWeight int
	rootLabel string
	logger    *slog.Logger
}

// New creates a partitioner with maxWeight as the target weight per partition.
//
// Parameters:
//   - maxWeight: target sum of weights per partition, must be positive.
//     Callers that treat values <= 0 as "no partitioning" must check before calling.
//   - opts: see WithRootLabel and WithLogger.
func New(maxWeight int, opts ...Option) *Partitioner {
	p := DefaultOptions()
	p.maxWeight = maxWeight
	for _, opt := range opts {
		p = opt(p)
	}
	return p
}

// Split partitions tree with the default options.
func Split(tree *trie.PathTrie, maxWeight int) []Partition {
	return New(maxWeight).Partition(tree)
}

// frame is a pending unit of the depth-first walk.
type frame struct {
	label    string
	node     *trie.PathTrie
	residual int // weight of the paths that end at node itself, 0 for a regular node
}

// accumulator holds the state of one Partition call.
type accumulator struct {
	maxWeight  int
	remaining  int
	current    Partition
	partitions []Partition
	logger     *slog.Logger
}

// Partition walks the tree depth-first, siblings in lexical order, and greedily
// packs whole subtrees into partitions.
//
// A subtree whose weight fits the remaining budget is taken as one entry and not
// descended. A subtree that does not fit is descended so its children can be packed
// one by one. When the remaining budget reaches zero the partition is closed and a
// new one starts with the full budget.
//
// The cap is a soft target: a subtree that cannot be split (no children) and does
// not fit is moved to a fresh partition when it fits maxWeight, otherwise it is
// added to the current partition, which then closes over the cap.
//
// Paths that end exactly at a descended node (or were folded into it) are emitted
// before its children as a Terminal entry, so every inserted path ends up in
// exactly one partition.
//
// An empty tree gives no partitions.
func (p *Partitioner) Partition(tree *trie.PathTrie) []Partition {
	if tree == nil || tree.Weight() == 0 {
		return nil
	}

	acc := &accumulator{
		maxWeight: p.maxWeight,
		remaining: p.maxWeight,
		logger:    p.logger,
	}

	stack := []frame{{label: p.rootLabel, node: tree}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.residual > 0 {
			acc.addUnsplittable(Entry{Label: top.label, Weight: top.residual, Terminal: true})
			continue
		}

		weight := top.node.Weight()
		if weight <= acc.remaining {
			acc.add(Entry{Label: top.label, Weight: weight})
			continue
		}
		if top.node.IsLeaf() {
			acc.addUnsplittable(Entry{Label: top.label, Weight: weight})
			continue
		}

		// descend, pushing children in reverse so the first name pops first
		names := top.node.SortedChildNames()
		for i := len(names) - 1; i >= 0; i-- {
			stack = append(stack, frame{
				label: trie.JoinLabel(top.label, names[i]),
				node:  top.node.Child(names[i]),
			})
		}
		if residual := weight - top.node.ChildrenWeight(); residual > 0 {
			stack = append(stack, frame{label: top.label, node: top.node, residual: residual})
		}
	}

	if len(acc.current) > 0 {
		acc.close()
	}

	p.logger.Debug("tree partitioned",
		"max_weight", p.maxWeight,
		"total_weight", tree.Weight(),
		"partitions", len(acc.partitions))

	return acc.partitions
}

// add appends an entry that fits the remaining budget.
func (acc *accumulator) add(entry Entry) {
	acc.current = append(acc.current, entry)
	acc.remaining -= entry.Weight
	if acc.remaining <= 0 {
		acc.close()
	}
}

// addUnsplittable handles an entry that does not fit the remaining budget and cannot be split.
func (acc *accumulator) addUnsplittable(entry Entry) {
	if entry.Weight <= acc.remaining {
		acc.add(entry)
		return
	}
	if entry.Weight <= acc.maxWeight && len(acc.current) > 0 {
		acc.close()
		acc.add(entry)
		return
	}
	acc.logger.Debug("entry exceeds the partition size",
		"label", entry.Label,
		"weight", entry.Weight,
		"max_weight", acc.maxWeight)
	acc.add(entry)
}

// close moves the current partition to the results and resets the budget.
func (acc *accumulator) close() {
	acc.logger.Debug("partition closed",
		"index", len(acc.partitions),
		"entries", len(acc.current),
		"weight", acc.current.Weight())
	acc.partitions = append(acc.partitions, acc.current)
	acc.current = nil
	acc.remaining = acc.maxWeight
}
