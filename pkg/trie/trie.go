package trie

import "sort"

// PathTrie is a node in a weighted path trie.
// The weight counts every inserted path that passed through the node.
type PathTrie struct {
	weight   int                  // number of insertions that visited this node
	children map[string]*PathTrie // child nodes keyed by path segment
	order    []string             // child names in the order they were created
}

// NewTrie creates an empty root node with weight 0 and no children.
func NewTrie() *PathTrie {
	return &PathTrie{}
}

// Weight returns the number of inserted paths that passed through the node.
func (t *PathTrie) Weight() int {
	return t.weight
}

// Insert adds one path to the trie.
//
// Every node on the way down, the receiver included, gets its weight
// incremented by exactly one. When includeLeaf is false the last segment is
// folded into its parent: no child is created for it.
func (t *PathTrie) Insert(segments []string, includeLeaf bool) {
	node := t
	for {
		node.weight++
		if len(segments) == 0 || (!includeLeaf && len(segments) == 1) {
			return
		}
		node = node.attachChild(segments[0])
		segments = segments[1:]
	}
}

// attachChild returns the child for name, creating it if it does not exist yet.
// Only Insert mutates the children map.
func (t *PathTrie) attachChild(name string) *PathTrie {
	if child, ok := t.children[name]; ok {
		return child
	}
	if t.children == nil {
		t.children = make(map[string]*PathTrie)
	}
	child := NewTrie()
	t.children[name] = child
	t.order = append(t.order, name)
	return child
}

// Child returns the child node for name, or nil.
// Unlike insertion it never creates a node.
func (t *PathTrie) Child(name string) *PathTrie {
	return t.children[name]
}

// ChildNames returns the names of the direct children in creation order.
// Sort the result (or use SortedChildNames) when lexical order is required.
func (t *PathTrie) ChildNames() []string {
	names := make([]string, len(t.order))
	copy(names, t.order)
	return names
}

// SortedChildNames returns the names of the direct children in lexical order.
func (t *PathTrie) SortedChildNames() []string {
	names := t.ChildNames()
	sort.Strings(names)
	return names
}

// IsLeaf checks if the node has no children.
func (t *PathTrie) IsLeaf() bool {
	return len(t.children) == 0
}

// ChildrenWeight returns the sum of the direct children weights.
// It is lower than Weight when some paths ended at (or were folded into) this node.
func (t *PathTrie) ChildrenWeight() int {
	sum := 0
	for _, child := range t.children {
		sum += child.weight
	}
	return sum
}

// Find walks down the trie along segments without creating anything.
// It returns nil if the path does not exist.
func (t *PathTrie) Find(segments []string) *PathTrie {
	node := t
	for _, segment := range segments {
		node = node.Child(segment)
		if node == nil {
			return nil
		}
	}
	return node
}

// Size returns the number of nodes in the trie, the receiver included.
func (t *PathTrie) Size() int {
	size := 0
	t.Traverse("", func(_ string, _ *PathTrie) bool {
		size++
		return true
	}, BreadthFirst)
	return size
}

// LeafLabels returns the qualified labels of every leaf under the node,
// in depth-first lexical order.
func (t *PathTrie) LeafLabels(label string) []string {
	leafs := []string{}
	t.Traverse(label, func(current string, node *PathTrie) bool {
		if node.IsLeaf() {
			leafs = append(leafs, current)
		}
		return true
	}, DepthFirst)
	return leafs
}
