package cli

import (
	"fmt"

	"github.com/khalid-nowaf/treepart/pkg/partition"
	"github.com/khalid-nowaf/treepart/pkg/trie"
)

// SplitCmd partitions the path tree and optionally prints it first.
type SplitCmd struct {
	Input  InputFlags `embed:""`
	Size   int        `help:"Partition target size, 0 or less disables partitioning (default ${default})." default:"100" placeholder:"N"`
	DFS    bool       `name:"dfs" help:"Print the tree depth-first."`
	BFS    bool       `name:"bfs" help:"Print the tree breadth-first."`
	Format string     `help:"Partition output format (${enum})." enum:"text,json,yaml" default:"text"`
}

// Run executes the split command.
func (cmd *SplitCmd) Run(ctx *Context) error {
	tree, err := buildTree(ctx, cmd.Input)
	if err != nil {
		return err
	}

	if cmd.DFS {
		if err := tree.Fprint(ctx.Stdout, partition.DefaultRootLabel, trie.DepthFirst); err != nil {
			return fmt.Errorf("printing the tree: %w", err)
		}
	}
	if cmd.BFS {
		if err := tree.Fprint(ctx.Stdout, partition.DefaultRootLabel, trie.BreadthFirst); err != nil {
			return fmt.Errorf("printing the tree: %w", err)
		}
	}

	if cmd.Size <= 0 {
		ctx.Logger.Debug("partitioning disabled", "size", cmd.Size)
		return nil
	}

	writer, err := NewWriter(cmd.Format)
	if err != nil {
		return err
	}

	parts := partition.New(cmd.Size, partition.WithLogger(ctx.Logger)).Partition(tree)
	ctx.Stats.Partitions = len(parts)
	ctx.Logger.Info("paths partitioned", "size", cmd.Size, "partitions", len(parts))

	return writer.Write(ctx.Stdout, parts)
}
