package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/khalid-nowaf/treepart/pkg/cli"
)

func main() {
	ctx := kong.Parse(&cli.CLI,
		kong.Name("treepart"),
		kong.Description("Split a list of paths into partitions of similar weight, keeping shared prefixes together."),
		kong.UsageOnError())

	logger := cli.NewLogger(os.Stderr, cli.CLI.Verbose)
	if err := ctx.Run(cli.NewContext(os.Stdin, os.Stdout, logger)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
