package flv

import "github.com/rs/zerolog"

type openConfig struct {
	limits       Limits
	compression  Compression
	forceComp    bool
	strictOffset bool
	logger       zerolog.Logger
}

type OpenOption func(*openConfig)

func WithLimits(l Limits) OpenOption {
	return func(c *openConfig) { c.limits = l }
}

// WithCompression makes Open inflate the buffer with comp instead of sniffing
// the packing. It is the only way to open Brotli input, which has no signature.
func WithCompression(comp Compression) OpenOption {
	return func(c *openConfig) { c.compression, c.forceComp = comp, true }
}

// WithStrictOffset makes Open reject headers whose data offset points inside
// the fixed header or past the end of the buffer.
func WithStrictOffset(v bool) OpenOption {
	return func(c *openConfig) { c.strictOffset = v }
}

// WithLogger sets the logger Open reports its sniffing steps to.
// The default discards everything.
func WithLogger(l zerolog.Logger) OpenOption {
	return func(c *openConfig) { c.logger = l }
}
