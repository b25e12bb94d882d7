package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/khalid-nowaf/treepart/pkg/trie"
	"golang.org/x/text/encoding/charmap"
)

// InputFlags are the flags shared by every command that reads paths.
type InputFlags struct {
	Files      []string `arg:"" optional:"" type:"existingfile" help:"Files with one path per line, stdin when none is given."`
	FoldLeaves bool     `help:"Fold the last segment of each path into its parent node."`
	Encoding   string   `help:"Charset of the input (${enum})." enum:"utf-8,latin1,windows-1252" default:"utf-8"`
}

var charmaps = map[string]*charmap.Charmap{
	"latin1":       charmap.ISO8859_1,
	"windows-1252": charmap.Windows1252,
}

// decodeReader wraps r so that it yields UTF-8.
func decodeReader(r io.Reader, encoding string) (io.Reader, error) {
	switch encoding {
	case "", "utf-8":
		return r, nil
	}
	cm, ok := charmaps[encoding]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownEncoding, encoding)
	}
	return cm.NewDecoder().Reader(r), nil
}

// readLines calls onLine for every line of r.
func readLines(r io.Reader, onLine func(line string)) error {
	scanner := bufio.NewScanner(r)
	// log lines can be long
	scanner.Buffer(make([]byte, 1024), 10*1024*1024)
	for scanner.Scan() {
		onLine(scanner.Text())
	}
	return scanner.Err()
}

// parseInput decodes r and adds its lines to builder.
func parseInput(r io.Reader, encoding string, builder *trie.Builder) error {
	decoded, err := decodeReader(r, encoding)
	if err != nil {
		return err
	}
	return readLines(decoded, func(line string) {
		builder.Add(line)
	})
}

func parseFile(path string, encoding string, builder *trie.Builder) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := parseInput(file, encoding, builder); err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	return nil
}

// buildTree reads every input file, or stdin when there is none, into one trie.
func buildTree(ctx *Context, input InputFlags) (*trie.PathTrie, error) {
	builder := trie.NewBuilder(!input.FoldLeaves)

	if len(input.Files) == 0 {
		if err := parseInput(ctx.Stdin, input.Encoding, builder); err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
	}
	for _, file := range input.Files {
		var err error
		if file == "-" {
			err = parseInput(ctx.Stdin, input.Encoding, builder)
		} else {
			err = parseFile(file, input.Encoding, builder)
		}
		if err != nil {
			return nil, err
		}
		ctx.Stats.Files++
	}

	tree := builder.Tree()
	ctx.Stats.Lines = builder.Lines()
	ctx.Stats.Skipped = builder.Skipped()
	ctx.Stats.Paths = tree.Weight()
	ctx.Stats.Nodes = tree.Size()

	ctx.Logger.Info("path tree built",
		"files", ctx.Stats.Files,
		"lines", ctx.Stats.Lines,
		"skipped", ctx.Stats.Skipped,
		"paths", ctx.Stats.Paths,
		"nodes", ctx.Stats.Nodes)

	return tree, nil
}
