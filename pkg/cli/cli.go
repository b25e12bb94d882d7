package cli

import (
	"errors"
	"io"
	"log/slog"
)

var (
	ErrUnknownEncoding = errors.New("unknown input encoding")
	ErrUnknownFormat   = errors.New("unknown output format")
	ErrInvalidPrefix   = errors.New("prefix must start with /")
	ErrPrefixNotFound  = errors.New("prefix not found in the path tree")
)

// Context carries the process streams and logger to the commands.
type Context struct {
	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger
	Stats  *Stats
}

// Stats counts what a command read and produced.
type Stats struct {
	Files      int
	Lines      int
	Skipped    int
	Paths      int
	Nodes      int
	Partitions int
}

// NewContext builds a command context, a nil logger discards all logs.
func NewContext(stdin io.Reader, stdout io.Writer, logger *slog.Logger) *Context {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Context{
		Stdin:  stdin,
		Stdout: stdout,
		Logger: logger,
		Stats:  &Stats{},
	}
}

// NewLogger returns the stderr logger of the binary.
func NewLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Commands is the kong model of the command line.
type Commands struct {
	Verbose bool     `short:"v" help:"Log debug events to stderr."`
	Split   SplitCmd `cmd:"" default:"withargs" help:"Split paths into partitions of similar weight (default)."`
	Regex   RegexCmd `cmd:"" help:"Print a regular expression matching the paths."`
}

var CLI Commands
