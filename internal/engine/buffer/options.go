package buffer

import (
	"github.com/strataedit/strata/internal/engine/chunktree"
	"github.com/tliron/commonlog"
)

// Option is a functional option for configuring a Buffer.
type Option func(*Buffer)

// WithConfig sets the chunk tree geometry used to build content. Invalid
// configurations are ignored and the defaults kept.
func WithConfig(cfg chunktree.Config) Option {
	return func(b *Buffer) {
		if cfg.Validate() == nil {
			b.cfg = cfg
		}
	}
}

// WithPath associates a file path with the buffer without reading it.
func WithPath(path string) Option {
	return func(b *Buffer) {
		b.path = path
	}
}

// WithLogger routes the buffer's I/O logging to a specific logger.
func WithLogger(log commonlog.Logger) Option {
	return func(b *Buffer) {
		b.log = log
	}
}
