package flv

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"io/fs"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

func zipPack(t *testing.T, entries map[string][]byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, data := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := w.Write(data); err != nil {
			t.Fatal(err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func zstdPack(t *testing.T, data []byte) []byte {
	t.Helper()
	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	defer enc.Close()
	return enc.EncodeAll(data, nil)
}

func lz4Pack(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := lz4.NewWriter(&buf)
	if _, err := zw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func brotliPack(t *testing.T, data []byte) []byte {
	t.Helper()
	var buf bytes.Buffer
	bw := brotli.NewWriter(&buf)
	if _, err := bw.Write(data); err != nil {
		t.Fatal(err)
	}
	if err := bw.Close(); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func samplePayload() []byte {
	b := append(rawHeader(1, 0xA0, HeaderSize), 0, 0, 0, 0)
	return append(b, bytes.Repeat([]byte("tag-bytes "), 64)...)
}

func TestInflate_AllCompressions(t *testing.T) {
	in := samplePayload()
	packs := map[Compression][]byte{
		CompNone: in,
		CompZIP:  zipPack(t, map[string][]byte{"capture.flv": in}),
		CompZSTD: zstdPack(t, in),
		CompLZ4:  lz4Pack(t, in),
		CompBR:   brotliPack(t, in),
	}
	for comp, packed := range packs {
		out, err := Inflate(comp, packed, Limits{})
		if err != nil {
			t.Fatalf("%s: %v", comp, err)
		}
		if !bytes.Equal(out, in) {
			t.Fatalf("%s: output mismatch", comp)
		}
	}
}

func TestInflate_ExpansionGuards(t *testing.T) {
	in := samplePayload()
	small := Limits{MaxUnpackedSize: 16}
	packs := map[Compression][]byte{
		CompZIP:  zipPack(t, map[string][]byte{"capture.flv": in}),
		CompZSTD: zstdPack(t, in),
		CompLZ4:  lz4Pack(t, in),
		CompBR:   brotliPack(t, in),
	}
	for comp, packed := range packs {
		if _, err := Inflate(comp, packed, small); !errors.Is(err, ErrLimitExceeded) {
			t.Fatalf("%s: expected ErrLimitExceeded, got %v", comp, err)
		}
	}
}

func TestInflate_PackedSizeLimit(t *testing.T) {
	_, err := Inflate(CompNone, make([]byte, 32), Limits{MaxPackedSize: 31})
	if !errors.Is(err, ErrLimitExceeded) {
		t.Fatalf("expected ErrLimitExceeded, got %v", err)
	}
}

func TestInflate_UnknownCompression(t *testing.T) {
	if _, err := Inflate(Compression(0x7), []byte{1}, Limits{}); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}

func TestInflate_CorruptInput(t *testing.T) {
	garbage := []byte("definitely not compressed data")
	for _, comp := range []Compression{CompZIP, CompZSTD, CompLZ4} {
		if _, err := Inflate(comp, garbage, Limits{}); !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("%s: expected ErrInvalidPayload, got %v", comp, err)
		}
	}
}

func TestZipInflateErrors(t *testing.T) {
	// Multi-entry
	{
		packed := zipPack(t, map[string][]byte{"a.flv": []byte("a"), "b.flv": []byte("b")})
		if _, err := zipInflate(packed, 1<<20); !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	}
	// Empty archive
	{
		packed := zipPack(t, nil)
		if _, err := zipInflate(packed, 1<<20); !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	}
	// Entry is a directory
	{
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		h := &zip.FileHeader{Name: "capture.flv/"}
		h.SetMode(fs.ModeDir | 0o755)
		if _, err := zw.CreateHeader(h); err != nil {
			t.Fatal(err)
		}
		_ = zw.Close()
		if _, err := zipInflate(buf.Bytes(), 1<<20); !errors.Is(err, ErrInvalidPayload) {
			t.Fatalf("expected ErrInvalidPayload, got %v", err)
		}
	}
}

func TestInflate_InjectedFailures(t *testing.T) {
	in := samplePayload()

	origZstd := newZstdReader
	newZstdReader = func(io.Reader) (*zstd.Decoder, error) { return nil, io.ErrUnexpectedEOF }
	_, err := Inflate(CompZSTD, zstdPack(t, in), Limits{})
	newZstdReader = origZstd
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("zstd: expected ErrInvalidPayload, got %v", err)
	}

	origOpen := zipOpen
	zipOpen = func(*zip.File) (io.ReadCloser, error) { return nil, io.ErrClosedPipe }
	_, err = Inflate(CompZIP, zipPack(t, map[string][]byte{"capture.flv": in}), Limits{})
	zipOpen = origOpen
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("zip: expected ErrInvalidPayload, got %v", err)
	}

	origReadAll := readAll
	readAll = func(io.Reader) ([]byte, error) { return nil, io.ErrUnexpectedEOF }
	_, err = Inflate(CompLZ4, lz4Pack(t, in), Limits{})
	readAll = origReadAll
	if !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("lz4: expected ErrInvalidPayload, got %v", err)
	}
}

func TestParseCompression(t *testing.T) {
	for _, comp := range []Compression{CompNone, CompZIP, CompZSTD, CompLZ4, CompBR} {
		got, err := ParseCompression(comp.String())
		if err != nil || got != comp {
			t.Fatalf("%s: got %s, %v", comp, got, err)
		}
	}
	if got, err := ParseCompression(" BR "); err != nil || got != CompBR {
		t.Fatalf("got %s, %v", got, err)
	}
	if _, err := ParseCompression("gzip"); !errors.Is(err, ErrInvalidPayload) {
		t.Fatalf("expected ErrInvalidPayload, got %v", err)
	}
}
