package stream

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// bytesPerValue is the encoded size of one float64.
const bytesPerValue = 8

// Reader decodes fixed-length frames from an io.Reader.
type Reader struct {
	r        io.Reader
	frameLen int
	raw      []byte
	frames   int
}

// NewReader returns a Reader producing frames of frameLen values.
func NewReader(r io.Reader, frameLen int) (*Reader, error) {
	if frameLen < 1 {
		return nil, fmt.Errorf("NewReader(%d): %w", frameLen, ErrInvalidFrameLength)
	}

	return &Reader{r: r, frameLen: frameLen, raw: make([]byte, frameLen*bytesPerValue)}, nil
}

// FrameLen returns the number of values per frame.
func (rd *Reader) FrameLen() int { return rd.frameLen }

// Frames returns the number of complete frames read so far.
func (rd *Reader) Frames() int { return rd.frames }

// Read fills frame with the next frame.
// It returns io.EOF when the input ends exactly on a frame boundary and
// ErrShortFrame when it ends inside one.
func (rd *Reader) Read(frame []float64) error {
	if len(frame) != rd.frameLen {
		return fmt.Errorf("Read: len(frame)=%d, want %d: %w", len(frame), rd.frameLen, ErrFrameSize)
	}
	n, err := io.ReadFull(rd.r, rd.raw)
	switch {
	case errors.Is(err, io.EOF):
		return io.EOF
	case errors.Is(err, io.ErrUnexpectedEOF):
		return fmt.Errorf("Read: frame %d: got %d of %d bytes: %w", rd.frames, n, len(rd.raw), ErrShortFrame)
	case err != nil:
		return fmt.Errorf("Read: frame %d: %w", rd.frames, err)
	}
	for i := range frame {
		frame[i] = math.Float64frombits(binary.LittleEndian.Uint64(rd.raw[i*bytesPerValue:]))
	}
	rd.frames++

	return nil
}

// ReadAll decodes every complete value of r. A trailing partial value
// yields ErrShortFrame.
func ReadAll(r io.Reader) ([]float64, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("ReadAll: %w", err)
	}
	if len(raw)%bytesPerValue != 0 {
		return nil, fmt.Errorf("ReadAll: %d trailing bytes: %w", len(raw)%bytesPerValue, ErrShortFrame)
	}
	out := make([]float64, len(raw)/bytesPerValue)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(raw[i*bytesPerValue:]))
	}

	return out, nil
}
