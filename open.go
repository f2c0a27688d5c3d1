package flv

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Open recognizes an FLV container held in buf and returns a cursor
// positioned at its first tag together with the parsed header.
//
// The steps are:
//  1. Parse the header directly from buf
//  2. If the signature does not match, sniff buf for a ZIP, Zstandard or LZ4
//     packing, inflate it and parse the header from the result
//  3. With WithStrictOffset, check the header against the buffer length
//
// With WithCompression, step 1 is skipped and buf is always inflated with the
// given algorithm first.
//
// The returned cursor borrows either buf or, for packed input, a freshly
// allocated buffer holding the unpacked bytes.
//
// Open returns ErrUnknownFormat if buf is neither FLV nor a recognized
// packing, ErrLimitExceeded if inflating would exceed the configured
// Limits, and the errors of ParseHeader and Header.Validate otherwise.
func Open(buf []byte, opts ...OpenOption) (*Cursor, Header, error) {
	cfg := openConfig{limits: defaultLimits(), logger: zerolog.Nop()}
	for _, opt := range opts {
		opt(&cfg)
	}
	cfg.limits = cfg.limits.withDefaults()
	log := cfg.logger

	if cfg.forceComp {
		log.Debug().Str("compression", cfg.compression.String()).Int("packed", len(buf)).Msg("inflating requested packing")
		unpacked, err := Inflate(cfg.compression, buf, cfg.limits)
		if err != nil {
			return nil, Header{}, err
		}
		return openUnpacked(unpacked, cfg)
	}

	c, h, err := openUnpacked(buf, cfg)
	if err == nil || !errors.Is(err, ErrInvalidMagic) {
		return c, h, err
	}

	format := Sniff(buf)
	comp, ok := format.Compression()
	if !ok {
		log.Debug().Stringer("format", format).Msg("no container signature")
		return nil, Header{}, fmt.Errorf("%w: %v", ErrUnknownFormat, err)
	}
	log.Debug().Stringer("format", format).Int("packed", len(buf)).Msg("inflating sniffed packing")
	unpacked, err := Inflate(comp, buf, cfg.limits)
	if err != nil {
		return nil, Header{}, err
	}
	return openUnpacked(unpacked, cfg)
}

func openUnpacked(buf []byte, cfg openConfig) (*Cursor, Header, error) {
	c := NewCursor(buf)
	h, err := ParseHeader(c)
	if err != nil {
		cfg.logger.Debug().Err(err).Int("len", len(buf)).Msg("header not recognized")
		return nil, Header{}, err
	}
	if cfg.strictOffset {
		if err := h.Validate(len(buf)); err != nil {
			return nil, Header{}, err
		}
	}
	cfg.logger.Debug().
		Uint8("version", h.Version).
		Stringer("flags", h.TypeFlags).
		Uint32("data_offset", h.DataOffset).
		Msg("header parsed")
	return c, h, nil
}
