package flv

import (
	"fmt"
	"strings"
)

// HeaderSize is the size of the fixed FLV header in bytes.
const HeaderSize = 9

// Magic is the 3-byte FLV file signature.
var Magic = [3]byte{'F', 'L', 'V'}

const magicU24 uint32 = uint32('F')<<16 | uint32('L')<<8 | uint32('V')

// TypeFlags is the raw flags byte of an FLV header.
//
// Only FlagAudio and FlagVideo are named. Every other bit is kept as read so
// that headers written by newer encoders survive a parse unchanged.
type TypeFlags uint8

const (
	FlagAudio TypeFlags = 0x80
	FlagVideo TypeFlags = 0x20

	knownFlags = FlagAudio | FlagVideo
)

func (f TypeFlags) Has(mask TypeFlags) bool { return f&mask == mask }

func (f TypeFlags) HasAudio() bool { return f.Has(FlagAudio) }

func (f TypeFlags) HasVideo() bool { return f.Has(FlagVideo) }

// Reserved returns the bits that have no assigned meaning.
func (f TypeFlags) Reserved() TypeFlags { return f &^ knownFlags }

func (f TypeFlags) String() string {
	var parts []string
	if f.HasAudio() {
		parts = append(parts, "audio")
	}
	if f.HasVideo() {
		parts = append(parts, "video")
	}
	if r := f.Reserved(); r != 0 {
		parts = append(parts, fmt.Sprintf("0x%02x", uint8(r)))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// Header is the fixed-size record at the start of an FLV container.
type Header struct {
	Version    uint8
	TypeFlags  TypeFlags
	DataOffset uint32
}

type Compression uint8

const (
	CompNone Compression = 0x0
	CompZIP  Compression = 0x1
	CompZSTD Compression = 0x2
	CompLZ4  Compression = 0x3
	CompBR   Compression = 0x4
)

func (c Compression) String() string {
	switch c {
	case CompNone:
		return "none"
	case CompZIP:
		return "zip"
	case CompZSTD:
		return "zstd"
	case CompLZ4:
		return "lz4"
	case CompBR:
		return "brotli"
	default:
		return fmt.Sprintf("compression(%d)", uint8(c))
	}
}

// ParseCompression maps a name as printed by Compression.String back to its value.
func ParseCompression(s string) (Compression, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return CompNone, nil
	case "zip":
		return CompZIP, nil
	case "zstd":
		return CompZSTD, nil
	case "lz4":
		return CompLZ4, nil
	case "br", "brotli":
		return CompBR, nil
	default:
		return 0, fmt.Errorf("%w: unknown compression %q", ErrInvalidPayload, s)
	}
}
