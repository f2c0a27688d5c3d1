package flv

import "errors"

var (
	ErrShortBuffer    = errors.New("flv: short buffer")
	ErrInvalidSeek    = errors.New("flv: invalid seek")
	ErrInvalidMagic   = errors.New("flv: invalid magic")
	ErrInvalidHeader  = errors.New("flv: invalid header")
	ErrInvalidPayload = errors.New("flv: invalid payload")
	ErrLimitExceeded  = errors.New("flv: limit exceeded")
	ErrUnknownFormat  = errors.New("flv: unknown format")
)
