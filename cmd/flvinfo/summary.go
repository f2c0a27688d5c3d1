package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/logicossoftware/go-flv"
)

type summary struct {
	Path          string `json:"path"`
	Version       uint8  `json:"version"`
	Flags         string `json:"flags"`
	HasAudio      bool   `json:"has_audio"`
	HasVideo      bool   `json:"has_video"`
	ReservedFlags uint8  `json:"reserved_flags"`
	DataOffset    uint32 `json:"data_offset"`
	Length        int    `json:"length"`
	TagBytes      uint64 `json:"tag_bytes"`
}

func summarize(path string, c *flv.Cursor, h flv.Header) summary {
	return summary{
		Path:          path,
		Version:       h.Version,
		Flags:         h.TypeFlags.String(),
		HasAudio:      h.TypeFlags.HasAudio(),
		HasVideo:      h.TypeFlags.HasVideo(),
		ReservedFlags: uint8(h.TypeFlags.Reserved()),
		DataOffset:    h.DataOffset,
		Length:        c.Len(),
		TagBytes:      c.Remaining(),
	}
}

func (s summary) render(w io.Writer, format string) error {
	switch format {
	case "json":
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "text":
		_, err := fmt.Fprintf(w, "%s\n  version:     %d\n  flags:       %s\n  data offset: %d\n  length:      %d\n  tag bytes:   %d\n",
			s.Path, s.Version, s.Flags, s.DataOffset, s.Length, s.TagBytes)
		return err
	default:
		return fmt.Errorf("unknown output format %q (want text|json)", format)
	}
}
