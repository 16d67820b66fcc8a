package buffer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/strataedit/strata/internal/engine/chunktree"
	"github.com/strataedit/strata/internal/engine/linecache"
	"github.com/strataedit/strata/internal/engine/snapshot"
	"github.com/tliron/commonlog"
)

// Errors returned by buffer operations.
var (
	ErrNoFilePath = errors.New("buffer has no file path")
)

// Buffer wraps the snapshot store with editor functionality: edits, clamped
// reads, streaming search, boundary scanning, position conversion, and a
// sparse line-number cache.
type Buffer struct {
	store    *snapshot.Store
	cache    *linecache.Cache
	cfg      chunktree.Config
	path     string
	modified bool
	log      commonlog.Logger
}

// New creates an empty buffer.
func New(opts ...Option) *Buffer {
	return newBuffer(nil, opts...)
}

// NewFromString creates a buffer with initial content.
func NewFromString(text string, opts ...Option) *Buffer {
	return newBuffer([]byte(text), opts...)
}

// NewFromReader creates a buffer from an io.Reader, consuming it fully.
func NewFromReader(r io.Reader, opts ...Option) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read content: %w", err)
	}
	return newBuffer(data, opts...), nil
}

// Open reads the file at path into a new buffer and associates the path
// with it for later Save calls.
func Open(path string, opts ...Option) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	b := newBuffer(data, opts...)
	b.path = path
	b.log.Debugf("opened %s (%d bytes)", path, len(data))
	return b, nil
}

func newBuffer(data []byte, opts ...Option) *Buffer {
	b := &Buffer{
		cfg:   chunktree.DefaultConfig(),
		cache: linecache.New(),
		log:   commonlog.GetLogger("strata.buffer"),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.store = snapshot.New(data, b.cfg)
	return b
}

// Persistence

// Save writes the buffer to its associated file path. It returns
// ErrNoFilePath if the buffer has none.
func (b *Buffer) Save() error {
	if b.path == "" {
		return ErrNoFilePath
	}
	return b.SaveTo(b.path)
}

// SaveTo writes the full content to path, associates the path with the
// buffer, and clears the modified flag on success.
func (b *Buffer) SaveTo(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	tree := b.store.Tree()
	if _, err := tree.WriteTo(f); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	b.path = path
	b.modified = false
	b.log.Debugf("saved %s (%d bytes)", path, tree.Len())
	return nil
}

// Write Operations

// Insert inserts text at pos, clamped to the buffer, and marks the buffer
// modified. Empty text is a no-op. The line cache is not touched; report
// the edit with HandleCacheInsertion afterward.
func (b *Buffer) Insert(pos int, text string) {
	if len(text) == 0 {
		return
	}
	b.store.Insert(pos, []byte(text))
	b.modified = true
}

// Delete removes the byte range [start, end), clamped to the buffer, and
// marks the buffer modified. An empty range is a no-op. The line cache is
// not touched; report the edit with HandleCacheDeletion afterward.
func (b *Buffer) Delete(start, end int) {
	if start >= end {
		return
	}
	b.store.Delete(start, end)
	b.modified = true
}

// Read Operations

// Len returns the buffer length in bytes.
func (b *Buffer) Len() int {
	return b.store.Len()
}

// IsEmpty reports whether the buffer holds no content.
func (b *Buffer) IsEmpty() bool {
	return b.store.Len() == 0
}

// Slice returns the byte range [start, end) decoded as UTF-8, with invalid
// sequences replaced by U+FFFD. Bounds are clamped; Slice never fails.
func (b *Buffer) Slice(start, end int) string {
	return strings.ToValidUTF8(string(b.SliceBytes(start, end)), "�")
}

// SliceBytes returns a copy of the byte range [start, end), clamped.
func (b *Buffer) SliceBytes(start, end int) []byte {
	if start < 0 {
		start = 0
	}
	if end < start {
		end = start
	}
	return b.store.Read(start, end-start)
}

// String returns the entire content, byte for byte.
func (b *Buffer) String() string {
	return b.store.Tree().String()
}

// CursorAt returns a byte cursor pinned to the current content version,
// positioned at pos (clamped).
func (b *Buffer) CursorAt(pos int) *chunktree.Cursor {
	return b.store.IterAt(pos)
}

// Buffer State

// Path returns the associated file path, empty if none.
func (b *Buffer) Path() string {
	return b.path
}

// SetPath associates a file path without saving.
func (b *Buffer) SetPath(path string) {
	b.path = path
}

// Modified reports whether the buffer changed since the last load or save.
func (b *Buffer) Modified() bool {
	return b.modified
}

// ClearModified marks the buffer as unmodified.
func (b *Buffer) ClearModified() {
	b.modified = false
}

// Revision returns the store's edit counter.
func (b *Buffer) Revision() uint64 {
	return b.store.Revision()
}

// Fingerprint returns a hash of the current content for cheap change
// detection.
func (b *Buffer) Fingerprint() uint64 {
	return b.store.Fingerprint()
}

// Snapshot returns the current immutable tree and revision pair. Safe to
// hand to other goroutines.
func (b *Buffer) Snapshot() snapshot.Snapshot {
	return b.store.Current()
}

// Config returns the chunk tree configuration in use.
func (b *Buffer) Config() chunktree.Config {
	return b.cfg
}

// Line Numbers
//
// The line cache is the only source of line-number information. Lookups
// scan forward from the nearest cached point; offsets too far from any
// cached entry come back tagged estimated instead of forcing a long scan.

// LineNumber resolves the line containing pos through the line cache.
func (b *Buffer) LineNumber(pos int) linecache.LineNumber {
	return b.cache.LineFor(pos, b.scanFrom)
}

// PopulateLineCache resolves the line at start and caches up to count line
// starts from there, returning the start line. Useful for pre-filling the
// cache for a viewport.
func (b *Buffer) PopulateLineCache(start, count int) linecache.LineNumber {
	return b.cache.Populate(start, count, b.scanFrom)
}

// CachedOffsetForLine returns the cached byte offset of line, if present.
// It never scans content.
func (b *Buffer) CachedOffsetForLine(line int) (int, bool) {
	return b.cache.OffsetForLine(line)
}

// InvalidateLineCacheFrom drops cached line entries at or after pos.
func (b *Buffer) InvalidateLineCacheFrom(pos int) {
	b.cache.InvalidateFrom(pos)
}

// HandleCacheInsertion shifts cached line entries for an insertion already
// applied to the content. Call it right after the matching Insert.
func (b *Buffer) HandleCacheInsertion(at, bytes, newlines int) {
	b.cache.HandleInsertion(at, bytes, newlines)
}

// HandleCacheDeletion drops and shifts cached line entries for a deletion
// already applied to the content. Call it right after the matching Delete.
func (b *Buffer) HandleCacheDeletion(at, bytes, newlines int) {
	b.cache.HandleDeletion(at, bytes, newlines)
}

// ClearLineCache drops the whole line cache, e.g. after reloading content.
func (b *Buffer) ClearLineCache() {
	b.cache.Clear()
}

// LineCacheLen returns the number of cached line entries.
func (b *Buffer) LineCacheLen() int {
	return b.cache.Len()
}

// scanFrom adapts the buffer's line iterator to the cache's scanner shape.
func (b *Buffer) scanFrom(offset int) linecache.LineScanner {
	return b.Lines(offset)
}
