package partition

import (
	"fmt"
	"strings"

	"github.com/khalid-nowaf/treepart/pkg/trie"
)

// Entry is a subtree taken as a whole into a partition.
type Entry struct {
	Label    string `json:"label" yaml:"label"`                           // qualified label of the subtree root
	Weight   int    `json:"weight" yaml:"weight"`                         // number of paths in the subtree
	Terminal bool   `json:"terminal,omitempty" yaml:"terminal,omitempty"` // only the paths ending exactly at Label
}

func (e Entry) String() string {
	return fmt.Sprintf("%s %d", e.Label, e.Weight)
}

// Covers reports whether the inserted path (a qualified label) belongs to the entry.
func (e Entry) Covers(path string) bool {
	if path == e.Label {
		return true
	}
	if e.Terminal {
		return false
	}
	prefix := e.Label
	if prefix != trie.Separator {
		prefix += trie.Separator
	}
	return strings.HasPrefix(path, prefix)
}

// Partition is an ordered group of entries.
type Partition []Entry

// Weight returns the sum of the entry weights.
func (p Partition) Weight() int {
	sum := 0
	for _, entry := range p {
		sum += entry.Weight
	}
	return sum
}

func (p Partition) String() string {
	entries := make([]string, 0, len(p))
	for _, entry := range p {
		entries = append(entries, entry.String())
	}
	return fmt.Sprintf("[%s] weight=%d", strings.Join(entries, ", "), p.Weight())
}
