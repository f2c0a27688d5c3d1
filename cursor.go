package flv

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Cursor is a read position over a caller-owned byte buffer.
//
// The cursor borrows buf: it never copies or modifies it, and every slice it
// returns aliases buf. The buffer must stay unmodified for as long as the
// cursor or any returned slice is in use.
//
// The position may point past the end of the buffer after a seek. Reads at
// such a position fail with ErrShortBuffer; the seek itself does not.
//
// A Cursor is not safe for concurrent use, but any number of cursors may share
// the same buffer.
type Cursor struct {
	buf []byte
	pos uint64
}

// NewCursor returns a cursor positioned at the start of buf.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// FromParts rebuilds a cursor from a buffer and a raw position, as returned by
// IntoParts. The position is taken as is, even if it lies past the end of buf.
func FromParts(buf []byte, pos uint64) *Cursor {
	return &Cursor{buf: buf, pos: pos}
}

// IntoParts returns the buffer and position backing c.
func (c *Cursor) IntoParts() ([]byte, uint64) {
	return c.buf, c.pos
}

func (c *Cursor) Position() uint64 { return c.pos }

// Len returns the length of the underlying buffer.
func (c *Cursor) Len() int { return len(c.buf) }

// Remaining returns the number of bytes between the position and the end of
// the buffer, or 0 when the position is at or past the end.
func (c *Cursor) Remaining() uint64 {
	n := uint64(len(c.buf))
	if c.pos >= n {
		return 0
	}
	return n - c.pos
}

// Read returns the next n bytes and advances the position past them.
// On failure the position is left unchanged.
func (c *Cursor) Read(n uint64) ([]byte, error) {
	start := c.pos
	end := start + n
	if end < start {
		return nil, fmt.Errorf("%w: read of %d bytes at %d overflows", ErrShortBuffer, n, start)
	}
	if end > uint64(len(c.buf)) {
		return nil, fmt.Errorf("%w: need %d bytes at %d, have %d", ErrShortBuffer, n, start, len(c.buf))
	}
	c.pos = end
	return c.buf[start:end], nil
}

// Peek behaves like Read but never moves the position.
func (c *Cursor) Peek(n uint64) ([]byte, error) {
	pos := c.pos
	b, err := c.Read(n)
	c.pos = pos
	return b, err
}

func (c *Cursor) ReadU8() (uint8, error) {
	b, err := c.Read(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (c *Cursor) ReadU16() (uint16, error) {
	b, err := c.Read(2)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (c *Cursor) ReadI16() (int16, error) {
	v, err := c.ReadU16()
	return int16(v), err
}

// ReadU24 reads a 3-byte big-endian integer into the low bits of a uint32.
func (c *Cursor) ReadU24() (uint32, error) {
	b, err := c.Read(3)
	if err != nil {
		return 0, err
	}
	return be24(b), nil
}

// PeekU24 is ReadU24 without advancing the position.
func (c *Cursor) PeekU24() (uint32, error) {
	b, err := c.Peek(3)
	if err != nil {
		return 0, err
	}
	return be24(b), nil
}

func (c *Cursor) ReadU32() (uint32, error) {
	b, err := c.Read(4)
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (c *Cursor) ReadF64() (float64, error) {
	b, err := c.Read(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(binary.BigEndian.Uint64(b)), nil
}

func be24(b []byte) uint32 {
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2])
}

type seekWhence uint8

const (
	seekStart seekWhence = iota
	seekCurrent
	seekEnd
)

// SeekMode describes a seek target. Build one with SeekStart, SeekCurrent or
// SeekEnd.
type SeekMode struct {
	whence seekWhence
	abs    uint64
	delta  int64
}

// SeekStart targets an absolute position. It always succeeds, including for
// positions past the end of the buffer.
func SeekStart(pos uint64) SeekMode {
	return SeekMode{whence: seekStart, abs: pos}
}

// SeekCurrent targets the current position plus delta.
func SeekCurrent(delta int64) SeekMode {
	return SeekMode{whence: seekCurrent, delta: delta}
}

// SeekEnd targets len(buf) minus delta: 0 is the end of the buffer and
// positive values move towards the start.
func SeekEnd(delta int64) SeekMode {
	return SeekMode{whence: seekEnd, delta: delta}
}

func (m SeekMode) String() string {
	switch m.whence {
	case seekStart:
		return fmt.Sprintf("start(%d)", m.abs)
	case seekCurrent:
		return fmt.Sprintf("current(%+d)", m.delta)
	default:
		return fmt.Sprintf("end(%d)", m.delta)
	}
}

// Seek moves the position according to m and returns the new position.
// On failure the position is left unchanged.
func (c *Cursor) Seek(m SeekMode) (uint64, error) {
	var next uint64
	var ok bool
	switch m.whence {
	case seekStart:
		next, ok = m.abs, true
	case seekCurrent:
		next, ok = offset(c.pos, magnitude(m.delta), m.delta < 0)
	case seekEnd:
		next, ok = offset(uint64(len(c.buf)), magnitude(m.delta), m.delta > 0)
	default:
		return c.pos, fmt.Errorf("%w: unknown mode", ErrInvalidSeek)
	}
	if !ok {
		return c.pos, fmt.Errorf("%w: %s from %d", ErrInvalidSeek, m, c.pos)
	}
	c.pos = next
	return next, nil
}

// magnitude returns |d| without overflowing on math.MinInt64.
func magnitude(d int64) uint64 {
	if d >= 0 {
		return uint64(d)
	}
	return uint64(-(d + 1)) + 1
}

// offset moves base by mag in the given direction, reporting false if the
// result is negative or does not fit in a uint64.
func offset(base, mag uint64, back bool) (uint64, bool) {
	if back {
		if mag > base {
			return 0, false
		}
		return base - mag, true
	}
	if mag > math.MaxUint64-base {
		return 0, false
	}
	return base + mag, true
}
