package partition

import "log/slog"

type Option func(*Partitioner) *Partitioner

// DefaultRootLabel is the label of the trie root in partition entries.
const DefaultRootLabel = "/"

func DefaultOptions() *Partitioner {
	return &Partitioner{
		rootLabel: DefaultRootLabel,
		logger:    slog.Default(),
	}
}

// WithRootLabel sets the label the walk starts from.
func WithRootLabel(label string) Option {
	return func(p *Partitioner) *Partitioner {
		p.rootLabel = label
		return p
	}
}

// WithLogger sets the logger used for debug events; nil keeps the default.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Partitioner) *Partitioner {
		if logger != nil {
			p.logger = logger
		}
		return p
	}
}
