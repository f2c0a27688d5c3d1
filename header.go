package flv

import "fmt"

// ParseHeader reads an FLV header at the cursor's position.
//
// On success the cursor is left at h.DataOffset, where the first tag begins.
// Any bytes between the fixed header and DataOffset are skipped without being
// inspected, and DataOffset may lie past the end of the buffer.
//
// On failure the cursor is restored to where it was before the call, so a
// caller may try another decoder on the same cursor. ParseHeader returns
// ErrInvalidMagic if the signature does not match and an error wrapping both
// ErrInvalidHeader and ErrShortBuffer if the buffer ends inside the header.
func ParseHeader(c *Cursor) (Header, error) {
	start := c.Position()
	h, err := readHeader(c)
	if err == nil {
		_, err = c.Seek(SeekStart(uint64(h.DataOffset)))
	}
	if err != nil {
		c.pos = start
		return Header{}, err
	}
	return h, nil
}

func readHeader(c *Cursor) (Header, error) {
	sig, err := c.ReadU24()
	if err != nil {
		return Header{}, fmt.Errorf("%w: signature: %w", ErrInvalidHeader, err)
	}
	if sig != magicU24 {
		return Header{}, fmt.Errorf("%w: got %06x", ErrInvalidMagic, sig)
	}
	var h Header
	if h.Version, err = c.ReadU8(); err != nil {
		return Header{}, fmt.Errorf("%w: version: %w", ErrInvalidHeader, err)
	}
	flags, err := c.ReadU8()
	if err != nil {
		return Header{}, fmt.Errorf("%w: type flags: %w", ErrInvalidHeader, err)
	}
	h.TypeFlags = TypeFlags(flags)
	if h.DataOffset, err = c.ReadU32(); err != nil {
		return Header{}, fmt.Errorf("%w: data offset: %w", ErrInvalidHeader, err)
	}
	return h, nil
}

// Validate reports whether h could describe a complete container of bufLen
// bytes: the data offset must not point inside the fixed header or past the
// end of the buffer. ParseHeader does not call it; Open does when
// WithStrictOffset is set.
func (h Header) Validate(bufLen int) error {
	if h.DataOffset < HeaderSize {
		return fmt.Errorf("%w: data offset %d inside fixed header", ErrInvalidHeader, h.DataOffset)
	}
	if bufLen < 0 || uint64(h.DataOffset) > uint64(bufLen) {
		return fmt.Errorf("%w: data offset %d beyond buffer of %d bytes", ErrInvalidHeader, h.DataOffset, bufLen)
	}
	return nil
}
