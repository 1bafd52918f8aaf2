package stream

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Writer encodes frames to a buffered io.Writer.
// Callers must Flush once the last frame is written.
type Writer struct {
	w      *bufio.Writer
	raw    [bytesPerValue]byte
	frames int
}

// NewWriter wraps w in a buffered frame writer.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Frames returns the number of frames written so far.
func (wr *Writer) Frames() int { return wr.frames }

// Write encodes one frame of any length.
func (wr *Writer) Write(frame []float64) error {
	for _, v := range frame {
		binary.LittleEndian.PutUint64(wr.raw[:], math.Float64bits(v))
		if _, err := wr.w.Write(wr.raw[:]); err != nil {
			return fmt.Errorf("Write: frame %d: %w", wr.frames, err)
		}
	}
	wr.frames++

	return nil
}

// Flush writes any buffered data to the underlying io.Writer.
func (wr *Writer) Flush() error {
	if err := wr.w.Flush(); err != nil {
		return fmt.Errorf("Flush: %w", err)
	}

	return nil
}
