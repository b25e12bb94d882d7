package trie

import (
	"fmt"
	"io"
	"strings"
)

const indent = "  "

// Fprint writes one line per node, in the given order, as
// "<indent><label> <weight>", indenting two spaces per label depth.
func (t *PathTrie) Fprint(w io.Writer, label string, order Order) error {
	var err error
	t.Traverse(label, func(current string, node *PathTrie) bool {
		if err != nil {
			return false
		}
		_, err = fmt.Fprintf(w, "%s%s %d\n", strings.Repeat(indent, LabelDepth(current)), current, node.weight)
		return err == nil
	}, order)
	return err
}
