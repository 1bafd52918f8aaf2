package stream

import "errors"

var (
	// ErrInvalidFrameLength is returned when a reader is built with a frame
	// length < 1.
	ErrInvalidFrameLength = errors.New("stream: frame length must be >= 1")

	// ErrShortFrame is returned when the input ends inside a frame.
	ErrShortFrame = errors.New("stream: input ended inside a frame")

	// ErrFrameSize is returned when the caller's slice does not match the
	// reader's frame length.
	ErrFrameSize = errors.New("stream: frame size mismatch")
)
