package stream_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/katalvlaran/levinson/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failWriter rejects every write.
type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func encode(t *testing.T, frames ...[]float64) []byte {
	t.Helper()
	var b bytes.Buffer
	w := stream.NewWriter(&b)
	for _, f := range frames {
		require.NoError(t, w.Write(f))
	}
	require.NoError(t, w.Flush())

	return b.Bytes()
}

func TestNewReaderInvalidFrameLength(t *testing.T) {
	for _, n := range []int{0, -3} {
		_, err := stream.NewReader(bytes.NewReader(nil), n)
		require.ErrorIs(t, err, stream.ErrInvalidFrameLength)
	}
}

func TestWriterLittleEndian(t *testing.T) {
	raw := encode(t, []float64{1})
	// 1.0 = 0x3FF0000000000000
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0xf0, 0x3f}, raw)
}

func TestReadFrames(t *testing.T) {
	raw := encode(t, []float64{1, 2, 3}, []float64{-0.5, math.Inf(1), 1e-300})

	rd, err := stream.NewReader(bytes.NewReader(raw), 3)
	require.NoError(t, err)
	assert.Equal(t, 3, rd.FrameLen())

	frame := make([]float64, 3)
	require.NoError(t, rd.Read(frame))
	assert.Equal(t, []float64{1, 2, 3}, frame)
	require.NoError(t, rd.Read(frame))
	assert.Equal(t, []float64{-0.5, math.Inf(1), 1e-300}, frame)

	require.ErrorIs(t, rd.Read(frame), io.EOF)
	assert.Equal(t, 2, rd.Frames())
}

func TestReadEmptyInput(t *testing.T) {
	rd, err := stream.NewReader(bytes.NewReader(nil), 4)
	require.NoError(t, err)
	require.Equal(t, io.EOF, rd.Read(make([]float64, 4)))
	assert.Zero(t, rd.Frames())
}

func TestReadShortFrame(t *testing.T) {
	raw := encode(t, []float64{1, 2, 3, 4, 5})

	rd, err := stream.NewReader(bytes.NewReader(raw), 2)
	require.NoError(t, err)
	frame := make([]float64, 2)
	require.NoError(t, rd.Read(frame))
	require.NoError(t, rd.Read(frame))

	err = rd.Read(frame)
	require.ErrorIs(t, err, stream.ErrShortFrame)
	assert.NotErrorIs(t, err, io.EOF)
	assert.Equal(t, 2, rd.Frames())

	// A partial value is a short frame too.
	rd, err = stream.NewReader(bytes.NewReader(raw[:3]), 1)
	require.NoError(t, err)
	require.ErrorIs(t, rd.Read(make([]float64, 1)), stream.ErrShortFrame)
}

func TestReadFrameSizeMismatch(t *testing.T) {
	rd, err := stream.NewReader(bytes.NewReader(encode(t, []float64{1, 2})), 2)
	require.NoError(t, err)
	require.ErrorIs(t, rd.Read(make([]float64, 3)), stream.ErrFrameSize)
}

func TestReadAll(t *testing.T) {
	raw := encode(t, []float64{1, 2}, []float64{3})
	got, err := stream.ReadAll(bytes.NewReader(raw))
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 2, 3}, got)

	_, err = stream.ReadAll(bytes.NewReader(raw[:len(raw)-1]))
	require.ErrorIs(t, err, stream.ErrShortFrame)
}

func TestWriterErrors(t *testing.T) {
	w := stream.NewWriter(failWriter{})
	// Small frames stay buffered until Flush.
	require.NoError(t, w.Write([]float64{1, 2}))
	assert.Equal(t, 1, w.Frames())
	require.Error(t, w.Flush())

	big := make([]float64, 1024)
	require.Error(t, stream.NewWriter(failWriter{}).Write(big))
}
