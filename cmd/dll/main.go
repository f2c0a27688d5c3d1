// Package main provides C-compatible exports for the flv library.
// Build with: go build -buildmode=c-shared -o flv.dll
package main

/*
#include <stdlib.h>
#include <stdint.h>

// Result structure for operations that return data
typedef struct {
    char* data;
    int   data_len;
    char* error;
} FlvResult;
*/
import "C"

import (
	"encoding/json"
	"unsafe"

	"github.com/logicossoftware/go-flv"
)

func main() {}

// FlvHeaderSize returns the size of the fixed FLV header.
//
//export FlvHeaderSize
func FlvHeaderSize() C.int {
	return C.int(flv.HeaderSize)
}

// FlvFreeResult frees memory allocated by other Flv functions.
// Must be called to avoid memory leaks.
//
//export FlvFreeResult
func FlvFreeResult(result C.FlvResult) {
	if result.data != nil {
		C.free(unsafe.Pointer(result.data))
	}
	if result.error != nil {
		C.free(unsafe.Pointer(result.error))
	}
}

// FlvFreeString frees a C string allocated by Go.
//
//export FlvFreeString
func FlvFreeString(s *C.char) {
	if s != nil {
		C.free(unsafe.Pointer(s))
	}
}

// makeResult creates a result with data.
func makeResult(data []byte) C.FlvResult {
	var result C.FlvResult
	if len(data) > 0 {
		result.data = (*C.char)(C.CBytes(data))
		result.data_len = C.int(len(data))
	}
	return result
}

// makeError creates a result with an error message.
func makeError(err error) C.FlvResult {
	var result C.FlvResult
	result.error = C.CString(err.Error())
	return result
}

// FlvProbe recognizes an FLV container, inflating ZIP, Zstandard or LZ4
// packings first, and returns a JSON description of its header.
// Parameters:
//   - data: pointer to the candidate buffer
//   - dataLen: length of the data
//   - compression: 0 to sniff, otherwise the packing to force (1=ZIP, 2=ZSTD, 3=LZ4, 4=Brotli)
//
// Returns FlvResult with a JSON object or error. Call FlvFreeResult when done.
// The JSON object contains: version, flags, hasAudio, hasVideo, reservedFlags,
// dataOffset, length.
//
//export FlvProbe
func FlvProbe(data *C.char, dataLen C.int, compression C.uint8_t) C.FlvResult {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)

	var opts []flv.OpenOption
	if comp := flv.Compression(compression); comp != flv.CompNone {
		opts = append(opts, flv.WithCompression(comp))
	}
	c, h, err := flv.Open(goData, opts...)
	if err != nil {
		return makeError(err)
	}

	result := map[string]any{
		"version":       h.Version,
		"flags":         h.TypeFlags.String(),
		"hasAudio":      h.TypeFlags.HasAudio(),
		"hasVideo":      h.TypeFlags.HasVideo(),
		"reservedFlags": uint8(h.TypeFlags.Reserved()),
		"dataOffset":    h.DataOffset,
		"length":        c.Len(),
	}
	jsonBytes, err := json.Marshal(result)
	if err != nil {
		return makeError(err)
	}
	return makeResult(jsonBytes)
}

// FlvValidate checks that data holds an FLV header whose data offset lies
// within the buffer. Returns NULL on success, or an error message string on
// failure. Call FlvFreeString on the result if non-NULL.
//
//export FlvValidate
func FlvValidate(data *C.char, dataLen C.int) *C.char {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)

	if _, _, err := flv.Open(goData, flv.WithStrictOffset(true)); err != nil {
		return C.CString(err.Error())
	}
	return nil
}

// FlvGetDataOffset returns the offset of the first tag of an uncompressed FLV
// buffer. Returns -1 on error.
//
//export FlvGetDataOffset
func FlvGetDataOffset(data *C.char, dataLen C.int) C.longlong {
	goData := C.GoBytes(unsafe.Pointer(data), dataLen)

	h, err := flv.ParseHeader(flv.NewCursor(goData))
	if err != nil {
		return -1
	}
	return C.longlong(h.DataOffset)
}
