// Package flv recognizes FLV (Flash Video) containers held in memory.
//
// The package provides two building blocks for a demuxer:
//   - [Cursor], a bounded, seekable read position over a byte buffer with
//     big-endian scalar readers
//   - [ParseHeader], which validates and parses the 9-byte FLV header and
//     leaves the cursor at the first tag
//
// Tag parsing is left to the caller, which continues reading from the cursor.
//
// # Header Layout
//
// All multi-byte fields are big-endian:
//   - 3 bytes signature, "FLV"
//   - 1 byte version, passed through as is
//   - 1 byte type flags: bit 7 audio, bit 5 video, other bits preserved
//   - 4 bytes data offset, the absolute offset of the first tag
//
// # Basic Usage
//
//	c := flv.NewCursor(buf)
//	h, err := flv.ParseHeader(c)
//	if err != nil {
//		// c.Position() is unchanged; try another format.
//	}
//	// c.Position() == uint64(h.DataOffset)
//
// To accept captures archived as ZIP, Zstandard, LZ4 or Brotli, use [Open],
// which sniffs the packing and inflates the buffer before parsing:
//
//	c, h, err := flv.Open(buf, flv.WithStrictOffset(true))
//
// # Buffer Ownership
//
// A Cursor never copies its buffer. Slices returned by [Cursor.Read] and
// [Cursor.Peek] alias the buffer, which must not be modified while the cursor
// or those slices are in use. Many cursors may read the same buffer
// concurrently; a single cursor is not safe for concurrent use.
//
// # Seeking
//
// Seeking to an absolute position never fails, even past the end of the
// buffer; the next read there fails instead. This lets a header whose data
// offset lies beyond a truncated buffer still be parsed.
package flv
