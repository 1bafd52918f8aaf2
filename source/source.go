package source

import (
	"fmt"
	"io"

	"github.com/katalvlaran/levinson/stream"
)

// InputSource produces consecutive frames of Size() values.
//
// Get fills buf with the next frame and returns io.EOF once the source is
// exhausted. len(buf) must equal Size().
type InputSource interface {
	Size() int
	Get(buf []float64) error
}

// ArraySource serves an in-memory slice in chunks of readSize values.
type ArraySource struct {
	data        []float64
	readSize    int
	zeroPadding bool
	pos         int
}

// NewArraySource returns a source over data. When zeroPadding is set a final
// partial chunk is served padded with zeros; otherwise it is dropped and Get
// reports io.EOF.
func NewArraySource(data []float64, readSize int, zeroPadding bool) (*ArraySource, error) {
	if readSize < 1 {
		return nil, fmt.Errorf("NewArraySource: read size %d: %w", readSize, ErrInvalidSource)
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("NewArraySource: empty data: %w", ErrInvalidSource)
	}

	return &ArraySource{data: data, readSize: readSize, zeroPadding: zeroPadding}, nil
}

// Size returns the chunk length.
func (s *ArraySource) Size() int { return s.readSize }

// Get copies the next chunk into buf.
func (s *ArraySource) Get(buf []float64) error {
	if len(buf) != s.readSize {
		return fmt.Errorf("ArraySource.Get: len(buf)=%d, want %d: %w", len(buf), s.readSize, ErrSizeMismatch)
	}
	rest := len(s.data) - s.pos
	if rest <= 0 || (rest < s.readSize && !s.zeroPadding) {
		return io.EOF
	}
	n := copy(buf, s.data[s.pos:])
	clear(buf[n:])
	s.pos += n

	return nil
}

// StreamSource reads frames from a binary float64 stream.
type StreamSource struct {
	rd *stream.Reader
}

// NewStreamSource returns a source of frames of size values read from r.
func NewStreamSource(r io.Reader, size int) (*StreamSource, error) {
	rd, err := stream.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("NewStreamSource: %v: %w", err, ErrInvalidSource)
	}

	return &StreamSource{rd: rd}, nil
}

// Size returns the frame length.
func (s *StreamSource) Size() int { return s.rd.FrameLen() }

// Frames returns the number of frames read so far.
func (s *StreamSource) Frames() int { return s.rd.Frames() }

// Get reads the next frame; stream errors are passed through unchanged so
// callers can match io.EOF and stream.ErrShortFrame.
func (s *StreamSource) Get(buf []float64) error {
	if len(buf) != s.rd.FrameLen() {
		return fmt.Errorf("StreamSource.Get: len(buf)=%d, want %d: %w", len(buf), s.rd.FrameLen(), ErrSizeMismatch)
	}

	return s.rd.Read(buf)
}
