package flv

import "bytes"

// Format identifies what a resident buffer holds.
type Format uint8

const (
	FormatUnknown Format = iota
	FormatFLV
	FormatZIP
	FormatZSTD
	FormatLZ4
)

var (
	zipMagic  = []byte{'P', 'K', 0x03, 0x04}
	zstdMagic = []byte{0x28, 0xB5, 0x2F, 0xFD}
	lz4Magic  = []byte{0x04, 0x22, 0x4D, 0x18}
)

func (f Format) String() string {
	switch f {
	case FormatFLV:
		return "flv"
	case FormatZIP:
		return "zip"
	case FormatZSTD:
		return "zstd"
	case FormatLZ4:
		return "lz4"
	default:
		return "unknown"
	}
}

// Compression returns the packing a format needs to be inflated with.
// It reports false for FormatFLV and FormatUnknown.
func (f Format) Compression() (Compression, bool) {
	switch f {
	case FormatZIP:
		return CompZIP, true
	case FormatZSTD:
		return CompZSTD, true
	case FormatLZ4:
		return CompLZ4, true
	default:
		return CompNone, false
	}
}

// Sniff classifies buf by its leading signature. Brotli streams carry no
// signature and are reported as FormatUnknown.
func Sniff(buf []byte) Format {
	c := NewCursor(buf)
	if sig, err := c.PeekU24(); err == nil && sig == magicU24 {
		return FormatFLV
	}
	lead, err := c.Peek(4)
	if err != nil {
		return FormatUnknown
	}
	switch {
	case bytes.Equal(lead, zipMagic):
		return FormatZIP
	case bytes.Equal(lead, zstdMagic):
		return FormatZSTD
	case bytes.Equal(lead, lz4Magic):
		return FormatLZ4
	}
	return FormatUnknown
}
