package trie

import (
	"fmt"
	"strings"
)

// Order selects how Traverse walks the trie.
type Order int

const (
	DepthFirst Order = iota
	BreadthFirst
)

func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "depth-first"
	case BreadthFirst:
		return "breadth-first"
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// VisitFunc is called once per visited node with its qualified label.
// Returning false keeps Traverse from descending into the node's children.
type VisitFunc func(label string, node *PathTrie) bool

// labeledNode is a frontier entry: a node and its qualified label.
type labeledNode struct {
	label string
	node  *PathTrie
}

// Traverse visits the trie starting at the receiver, labeled with label.
//
// Siblings are always expanded in lexical order. DepthFirst finishes a
// sibling's whole subtree before moving to the next sibling, BreadthFirst
// visits every node of depth d before any node of depth d+1.
// The walk is iterative: memory is bound by the frontier, not by the depth.
func (t *PathTrie) Traverse(label string, visit VisitFunc, order Order) {
	switch order {
	case DepthFirst:
		t.depthFirst(label, visit)
	case BreadthFirst:
		t.breadthFirst(label, visit)
	default:
		panic("[BUG] Traverse: unknown traversal order " + order.String())
	}
}

func (t *PathTrie) depthFirst(label string, visit VisitFunc) {
	stack := []labeledNode{{label: label, node: t}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(top.label, top.node) {
			continue
		}
		// pushed in reverse so the first name pops first
		names := top.node.SortedChildNames()
		for i := len(names) - 1; i >= 0; i-- {
			stack = append(stack, labeledNode{
				label: JoinLabel(top.label, names[i]),
				node:  top.node.children[names[i]],
			})
		}
	}
}

func (t *PathTrie) breadthFirst(label string, visit VisitFunc) {
	queue := []labeledNode{{label: label, node: t}}
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		queue[head] = labeledNode{} // release the node for GC
		if !visit(current.label, current.node) {
			continue
		}
		for _, name := range current.node.SortedChildNames() {
			queue = append(queue, labeledNode{
				label: JoinLabel(current.label, name),
				node:  current.node.children[name],
			})
		}
	}
}

// JoinLabel appends a segment to a qualified label.
// Only the root label "/" is not followed by another separator, so the root
// joined with "fig" gives "/fig" while "/a" joined with "" gives "/a/" and
// "/a/" joined with "b" gives "/a//b".
func JoinLabel(label, name string) string {
	if label == Separator {
		return label + name
	}
	return label + Separator + name
}

// LabelDepth returns the printing depth of a qualified label:
// the number of separators minus one, never below zero.
func LabelDepth(label string) int {
	depth := strings.Count(label, Separator) - 1
	if depth < 0 {
		return 0
	}
	return depth
}
