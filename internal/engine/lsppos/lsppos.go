// Package lsppos converts between buffer byte offsets and LSP protocol
// positions, which address text by 0-indexed line and UTF-16 code unit.
//
// Out-of-range inputs clamp the same way the underlying buffer conversions
// do: lines past the end resolve to the buffer length, characters past the
// end of a line to the line end. Conversion never fails.
package lsppos

import (
	"github.com/strataedit/strata/internal/engine/buffer"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// Position converts a byte offset to an LSP position.
func Position(b *buffer.Buffer, offset int) protocol.Position {
	line, chr := b.PositionToLSP(offset)
	return protocol.Position{Line: uint32(line), Character: uint32(chr)}
}

// Offset converts an LSP position to a byte offset.
func Offset(b *buffer.Buffer, pos protocol.Position) int {
	return b.LSPToPosition(int(pos.Line), int(pos.Character))
}

// Range converts a byte offset pair to an LSP range.
func Range(b *buffer.Buffer, start, end int) protocol.Range {
	return protocol.Range{
		Start: Position(b, start),
		End:   Position(b, end),
	}
}

// FromRange converts an LSP range to a byte offset pair.
func FromRange(b *buffer.Buffer, r protocol.Range) (start, end int) {
	return Offset(b, r.Start), Offset(b, r.End)
}
