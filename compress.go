package flv

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"math"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Function variables for testing injection.
var (
	newZstdReader = func(r io.Reader) (*zstd.Decoder, error) { return zstd.NewReader(r) }
	zipOpen       = func(zf *zip.File) (io.ReadCloser, error) { return zf.Open() }
	readAll       = io.ReadAll
)

// Inflate unpacks a compressed FLV capture into a resident buffer.
// The result is capped at limits.MaxUnpackedSize; zero limits take defaults.
// For CompNone, packed is returned as-is.
func Inflate(comp Compression, packed []byte, limits Limits) ([]byte, error) {
	limits = limits.withDefaults()
	if uint64(len(packed)) > limits.MaxPackedSize {
		return nil, fmt.Errorf("%w: packed buffer of %d bytes", ErrLimitExceeded, len(packed))
	}
	limit := limits.MaxUnpackedSize
	switch comp {
	case CompNone:
		return packed, nil
	case CompZIP:
		return zipInflate(packed, limit)
	case CompZSTD:
		return zstdInflate(packed, limit)
	case CompLZ4:
		return lz4Inflate(packed, limit)
	case CompBR:
		return brotliInflate(packed, limit)
	default:
		return nil, fmt.Errorf("%w: unknown compression %d", ErrInvalidPayload, comp)
	}
}

// readLimited reads r to EOF and fails if it yields more than limit bytes.
func readLimited(r io.Reader, limit uint64, name string) ([]byte, error) {
	n := int64(math.MaxInt64)
	if limit < math.MaxInt64 {
		n = int64(limit) + 1
	}
	b, err := readAll(io.LimitReader(r, n))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidPayload, name, err)
	}
	if uint64(len(b)) > limit {
		return nil, fmt.Errorf("%w: %s expanded beyond %d bytes", ErrLimitExceeded, name, limit)
	}
	return b, nil
}

// zipInflate extracts the only entry of a ZIP archive.
// The archive must hold exactly one regular file.
func zipInflate(zipBytes []byte, limit uint64) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return nil, fmt.Errorf("%w: zip: %v", ErrInvalidPayload, err)
	}
	if len(zr.File) != 1 {
		return nil, fmt.Errorf("%w: zip must contain exactly one entry", ErrInvalidPayload)
	}
	zf := zr.File[0]
	if zf.FileInfo().IsDir() {
		return nil, fmt.Errorf("%w: zip entry must be a file", ErrInvalidPayload)
	}
	if zf.UncompressedSize64 > limit {
		return nil, fmt.Errorf("%w: zip entry of %d bytes", ErrLimitExceeded, zf.UncompressedSize64)
	}
	rc, err := zipOpen(zf)
	if err != nil {
		return nil, fmt.Errorf("%w: zip: %v", ErrInvalidPayload, err)
	}
	defer rc.Close()
	return readLimited(rc, limit, "zip")
}

func zstdInflate(in []byte, limit uint64) ([]byte, error) {
	dec, err := newZstdReader(bytes.NewReader(in))
	if err != nil {
		return nil, fmt.Errorf("%w: zstd: %v", ErrInvalidPayload, err)
	}
	defer dec.Close()
	return readLimited(dec, limit, "zstd")
}

func lz4Inflate(in []byte, limit uint64) ([]byte, error) {
	return readLimited(lz4.NewReader(bytes.NewReader(in)), limit, "lz4")
}

func brotliInflate(in []byte, limit uint64) ([]byte, error) {
	return readLimited(brotli.NewReader(bytes.NewReader(in)), limit, "brotli")
}
