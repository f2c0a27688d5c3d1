package flv

type Limits struct {
	MaxPackedSize   uint64 // compressed input length
	MaxUnpackedSize uint64 // bytes after decompression
}

func defaultLimits() Limits {
	return Limits{
		MaxPackedSize:   1 << 30, // 1 GiB
		MaxUnpackedSize: 2 << 30, // 2 GiB
	}
}

// DefaultLimits returns the limits applied when a field is left at zero.
func DefaultLimits() Limits { return defaultLimits() }

func (l Limits) withDefaults() Limits {
	d := defaultLimits()
	if l.MaxPackedSize == 0 {
		l.MaxPackedSize = d.MaxPackedSize
	}
	if l.MaxUnpackedSize == 0 {
		l.MaxUnpackedSize = d.MaxUnpackedSize
	}
	return l
}
