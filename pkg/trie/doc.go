// ## Overview
// Package trie implements a weighted path trie (prefix tree keyed by path segments).
// Every inserted path adds one to the weight of each node it passes through, so a
// node's weight is the number of paths under it. The package provides functions to
// build the trie from slash-delimited lines, look children up without mutating the
// trie, walk it depth-first or breadth-first with a visitor that decides whether to
// descend, print it, and render a subtree as a regular expression.
//
// ## Example usage:
//
//	root := trie.Build([]string{
//	    "/fig/leaf",
//	    "/the/cascades",
//	    "/the/easy/winners",
//	}, true)
//
//	fmt.Println(root.Weight())              // Output: 3
//	fmt.Println(root.Child("the").Weight()) // Output: 2
//
//	// Print the trie depth-first, the root is labeled "/"
//	root.Fprint(os.Stdout, "/", trie.DepthFirst)
//	// / 3
//	// /fig 1
//	//   /fig/leaf 1
//	// /the 2
//	//   /the/cascades 1
//	//   /the/easy 1
//	//     /the/easy/winners 1
//
//	// Stop descending under /the
//	root.Traverse("/", func(label string, node *trie.PathTrie) bool {
//	    fmt.Println(label, node.Weight())
//	    return label != "/the"
//	}, trie.BreadthFirst)
//
// The trie is built once and then only read; it is not safe for concurrent insertion.
package trie
