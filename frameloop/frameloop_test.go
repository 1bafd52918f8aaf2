package frameloop_test

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/katalvlaran/levinson/frameloop"
	"github.com/katalvlaran/levinson/lpc"
	"github.com/katalvlaran/levinson/source"
	"github.com/katalvlaran/levinson/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// brokenPipe rejects every write.
type brokenPipe struct{}

func (brokenPipe) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

// frames of order-1 autocorrelation: stable, unstable, stable.
var mixed = []float64{
	4, 2,
	1, 2,
	1, 0.5,
}

func arraySource(t *testing.T, data []float64, size int) *source.ArraySource {
	t.Helper()
	src, err := source.NewArraySource(data, size, false)
	require.NoError(t, err)

	return src
}

func decode(t *testing.T, b *bytes.Buffer) []float64 {
	t.Helper()
	v, err := stream.ReadAll(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)

	return v
}

func TestForwardPolicies(t *testing.T) {
	ld, err := lpc.NewLevinsonDurbin(1, 0)
	require.NoError(t, err)

	cases := []struct {
		name    string
		policy  frameloop.WarningPolicy
		want    []float64
		wantLog string
		wantErr error
	}{
		{"ignore", frameloop.Ignore, []float64{1, -0.5, 1, -2, 1, -0.5}, "", nil},
		{"warn", frameloop.Warn, []float64{1, -0.5, 1, -2, 1, -0.5}, "1th frame is unstable!\n", nil},
		{"exit", frameloop.Exit, []float64{1, -0.5}, "1th frame is unstable!\n", frameloop.ErrUnstableFrame},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out, logs bytes.Buffer
			logger := log.New(&logs, "", 0)

			err := frameloop.Forward(arraySource(t, mixed, 2), stream.NewWriter(&out), ld, tc.policy, logger)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.InDeltaSlice(t, tc.want, decode(t, &out), 1e-12)
			assert.Equal(t, tc.wantLog, logs.String())
		})
	}
}

func TestForwardSingularKeepsEarlierFrames(t *testing.T) {
	ld, err := lpc.NewLevinsonDurbin(1, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	err = frameloop.Forward(arraySource(t, []float64{4, 2, 0, 1}, 2), stream.NewWriter(&out), ld, frameloop.Ignore, nil)
	require.ErrorIs(t, err, lpc.ErrSingular)
	assert.Contains(t, err.Error(), "frame 1")
	assert.InDeltaSlice(t, []float64{1, -0.5}, decode(t, &out), 1e-12)
}

func TestForwardValidation(t *testing.T) {
	ld, err := lpc.NewLevinsonDurbin(2, 0)
	require.NoError(t, err)
	var out bytes.Buffer

	err = frameloop.Forward(arraySource(t, mixed, 2), stream.NewWriter(&out), ld, frameloop.Ignore, nil)
	require.ErrorIs(t, err, frameloop.ErrFrameSize)

	err = frameloop.Forward(arraySource(t, mixed, 3), stream.NewWriter(&out), ld, frameloop.WarningPolicy(3), nil)
	require.ErrorIs(t, err, frameloop.ErrInvalidPolicy)
	assert.Zero(t, out.Len())
}

func TestForwardShortStream(t *testing.T) {
	ld, err := lpc.NewLevinsonDurbin(1, 0)
	require.NoError(t, err)

	var in bytes.Buffer
	w := stream.NewWriter(&in)
	require.NoError(t, w.Write([]float64{4, 2, 1}))
	require.NoError(t, w.Flush())

	src, err := source.NewStreamSource(bytes.NewReader(in.Bytes()), 2)
	require.NoError(t, err)
	var out bytes.Buffer
	err = frameloop.Forward(src, stream.NewWriter(&out), ld, frameloop.Ignore, nil)
	require.ErrorIs(t, err, stream.ErrShortFrame)
	require.ErrorIs(t, err, frameloop.ErrRead)
	assert.InDeltaSlice(t, []float64{1, -0.5}, decode(t, &out), 1e-12)
}

func TestReverseRoundTrip(t *testing.T) {
	const order = 2
	ld, err := lpc.NewLevinsonDurbin(order, 0, lpc.WithGain(lpc.FilterGain))
	require.NoError(t, err)
	rld, err := lpc.NewReverseLevinsonDurbin(order, 0, lpc.WithGain(lpc.FilterGain))
	require.NoError(t, err)

	in := []float64{4, 2, 1, 1, 0.5, 0.1, 10, -3, 2}
	var coeffs bytes.Buffer
	require.NoError(t, frameloop.Forward(arraySource(t, in, order+1), stream.NewWriter(&coeffs), ld, frameloop.Exit, nil))

	src, err := source.NewStreamSource(bytes.NewReader(coeffs.Bytes()), order+1)
	require.NoError(t, err)
	var back bytes.Buffer
	require.NoError(t, frameloop.Reverse(src, stream.NewWriter(&back), rld, nil))
	assert.InDeltaSlice(t, in, decode(t, &back), 1e-9)
}

func TestReverseUnstableInput(t *testing.T) {
	rld, err := lpc.NewReverseLevinsonDurbin(1, 0)
	require.NoError(t, err)

	var out, logs bytes.Buffer
	err = frameloop.Reverse(arraySource(t, []float64{1, -0.5, 1, 1.5}, 2), stream.NewWriter(&out), rld, log.New(&logs, "", 0))
	require.ErrorIs(t, err, lpc.ErrUnstableLPC)
	assert.True(t, strings.Contains(err.Error(), "frame 1"))
	// E_1 = 1 gives r = [4/3, 2/3] for the first frame.
	assert.InDeltaSlice(t, []float64{4.0 / 3, 2.0 / 3}, decode(t, &out), 1e-12)
	assert.Empty(t, logs.String())

	err = frameloop.Reverse(arraySource(t, []float64{1, 0, 0}, 3), stream.NewWriter(&out), rld, nil)
	require.ErrorIs(t, err, frameloop.ErrFrameSize)
}

func TestWriteFailure(t *testing.T) {
	ld, err := lpc.NewLevinsonDurbin(1, 0)
	require.NoError(t, err)
	err = frameloop.Forward(arraySource(t, mixed, 2), stream.NewWriter(brokenPipe{}), ld, frameloop.Ignore, nil)
	require.ErrorIs(t, err, frameloop.ErrWrite)

	rld, err := lpc.NewReverseLevinsonDurbin(1, 0)
	require.NoError(t, err)
	err = frameloop.Reverse(arraySource(t, []float64{1, 0.5}, 2), stream.NewWriter(brokenPipe{}), rld, nil)
	require.ErrorIs(t, err, frameloop.ErrWrite)
}
