package cli

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/khalid-nowaf/treepart/pkg/trie"
)

// RegexCmd prints a regular expression matching every path of the tree, or of one subtree.
type RegexCmd struct {
	Input InputFlags `embed:""`
	Under string     `help:"Only match the paths under this prefix, e.g. /var/log." placeholder:"PREFIX"`
}

// Run executes the regex command.
func (cmd *RegexCmd) Run(ctx *Context) error {
	tree, err := buildTree(ctx, cmd.Input)
	if err != nil {
		return err
	}

	node, label := tree, ""
	if cmd.Under != "" {
		if !strings.HasPrefix(cmd.Under, trie.Separator) {
			return fmt.Errorf("%w: %q", ErrInvalidPrefix, cmd.Under)
		}
		// "/" and "/var/log/" select the same nodes as "" and "/var/log"
		if prefix := strings.TrimRight(cmd.Under, trie.Separator); prefix != "" {
			segments, _ := trie.ParseLine(prefix)
			if node = tree.Find(segments); node == nil {
				return fmt.Errorf("%w: %s", ErrPrefixNotFound, cmd.Under)
			}
			quoted := make([]string, 0, len(segments))
			for _, segment := range segments {
				quoted = append(quoted, regexp.QuoteMeta(segment))
			}
			label = trie.Separator + strings.Join(quoted, trie.Separator)
		}
	}

	_, err = fmt.Fprintln(ctx.Stdout, node.Regex(label))
	return err
}
