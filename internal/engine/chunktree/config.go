package chunktree

import (
	"errors"
	"fmt"
)

// Default tree geometry. A 4 KiB chunk keeps leaves page-sized; a fan-out
// of 128 keeps even multi-gigabyte trees only a few levels deep.
const (
	DefaultChunkSize   = 4096
	DefaultMaxChildren = 128
)

// ErrInvalidConfig indicates a Config with unusable geometry.
var ErrInvalidConfig = errors.New("invalid chunktree config")

// Config controls leaf chunk sizing and internal-node fan-out. Every
// constructor takes a Config and trees carry it through their edits; there
// is no package-global default to mutate.
type Config struct {
	// ChunkSize is the target byte length of a leaf chunk. Leaves produced
	// by construction and edits never exceed it.
	ChunkSize int

	// MaxChildren is the maximum fan-out of an internal node. Internal
	// nodes off the rightmost path hold at least MaxChildren/2 children.
	MaxChildren int
}

// DefaultConfig returns the standard geometry.
func DefaultConfig() Config {
	return Config{ChunkSize: DefaultChunkSize, MaxChildren: DefaultMaxChildren}
}

// Validate reports whether the configuration is usable.
func (c Config) Validate() error {
	if c.ChunkSize < 1 {
		return fmt.Errorf("%w: chunk size %d", ErrInvalidConfig, c.ChunkSize)
	}
	if c.MaxChildren < 2 {
		return fmt.Errorf("%w: max children %d", ErrInvalidConfig, c.MaxChildren)
	}
	return nil
}

// withDefaults fills invalid fields so tree constructors never fail.
func (c Config) withDefaults() Config {
	if c.ChunkSize < 1 {
		c.ChunkSize = DefaultChunkSize
	}
	if c.MaxChildren < 2 {
		c.MaxChildren = DefaultMaxChildren
	}
	return c
}

// minChildren is the fan-out below which deletion rebalances an internal
// node.
func (c Config) minChildren() int {
	return c.MaxChildren / 2
}
