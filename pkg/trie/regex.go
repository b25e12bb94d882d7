package trie

import (
	"regexp"
	"strings"
)

// Regex returns a regular expression matching the root-to-leaf paths under
// the node, rooted at label.
//
// A leaf returns label as is. Otherwise the children, in creation order,
// become alternatives joined by "|", grouped only when there are several:
//
//	/know/slim/foo, /know/pat/bar, /know/pat/barf  ->  /know/(slim/foo|pat/(bar|barf))
//
// Segment names are escaped with regexp.QuoteMeta; label is not.
// Weights are not consulted.
func (t *PathTrie) Regex(label string) string {
	if t.IsLeaf() {
		return label
	}
	alternatives := make([]string, 0, len(t.order))
	for _, name := range t.order {
		alternatives = append(alternatives, t.children[name].Regex(regexp.QuoteMeta(name)))
	}
	group := strings.Join(alternatives, "|")
	if len(alternatives) > 1 {
		group = "(" + group + ")"
	}
	return label + Separator + group
}
