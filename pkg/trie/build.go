package trie

import "strings"

// Separator delimits path segments.
const Separator = "/"

// ParseLine splits a path record into its segments.
// Only lines starting with the separator are path records; anything else
// returns ok == false and should be skipped. Consecutive separators produce
// empty segments, which are valid child names.
func ParseLine(line string) (segments []string, ok bool) {
	if !strings.HasPrefix(line, Separator) {
		return nil, false
	}
	trimmed := strings.TrimLeft(strings.TrimSpace(line), Separator)
	return strings.Split(trimmed, Separator), true
}

// Builder accumulates path lines into a trie.
type Builder struct {
	root        *PathTrie
	includeLeaf bool
	lines       int
	skipped     int
}

// NewBuilder returns a builder for a fresh trie.
// See PathTrie.Insert for includeLeaf.
func NewBuilder(includeLeaf bool) *Builder {
	return &Builder{
		root:        NewTrie(),
		includeLeaf: includeLeaf,
	}
}

// Add parses and inserts one line, reporting whether it was a path record.
func (b *Builder) Add(line string) bool {
	b.lines++
	segments, ok := ParseLine(line)
	if !ok {
		b.skipped++
		return false
	}
	b.root.Insert(segments, b.includeLeaf)
	return true
}

// Tree returns the trie built so far.
func (b *Builder) Tree() *PathTrie {
	return b.root
}

// Lines returns the number of lines seen by Add.
func (b *Builder) Lines() int {
	return b.lines
}

// Skipped returns the number of lines that were not path records.
func (b *Builder) Skipped() int {
	return b.skipped
}

// Build creates a trie from a list of lines.
func Build(lines []string, includeLeaf bool) *PathTrie {
	builder := NewBuilder(includeLeaf)
	for _, line := range lines {
		builder.Add(line)
	}
	return builder.Tree()
}
