package source_test

import (
	"bytes"
	"errors"
	"io"
	"math"
	"testing"

	"github.com/katalvlaran/levinson/source"
	"github.com/katalvlaran/levinson/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// drain collects every frame of src until io.EOF.
func drain(t *testing.T, src source.InputSource) [][]float64 {
	t.Helper()
	var out [][]float64
	for {
		buf := make([]float64, src.Size())
		err := src.Get(buf)
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		out = append(out, buf)
	}
}

func TestNewArraySourceInvalid(t *testing.T) {
	_, err := source.NewArraySource([]float64{1}, 0, false)
	require.ErrorIs(t, err, source.ErrInvalidSource)
	_, err = source.NewArraySource(nil, 2, true)
	require.ErrorIs(t, err, source.ErrInvalidSource)
}

func TestArraySource(t *testing.T) {
	data := []float64{1, 2, 3, 4, 5}

	t.Run("without padding", func(t *testing.T) {
		src, err := source.NewArraySource(data, 2, false)
		require.NoError(t, err)
		assert.Equal(t, 2, src.Size())
		assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, drain(t, src))
	})

	t.Run("with padding", func(t *testing.T) {
		src, err := source.NewArraySource(data, 2, true)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{1, 2}, {3, 4}, {5, 0}}, drain(t, src))
	})

	t.Run("exact multiple", func(t *testing.T) {
		src, err := source.NewArraySource(data, 5, true)
		require.NoError(t, err)
		assert.Equal(t, [][]float64{{1, 2, 3, 4, 5}}, drain(t, src))
	})

	t.Run("size mismatch", func(t *testing.T) {
		src, err := source.NewArraySource(data, 2, false)
		require.NoError(t, err)
		require.ErrorIs(t, src.Get(make([]float64, 3)), source.ErrSizeMismatch)
	})
}

func TestStreamSource(t *testing.T) {
	var b bytes.Buffer
	w := stream.NewWriter(&b)
	require.NoError(t, w.Write([]float64{1, 2, 3, 4}))
	require.NoError(t, w.Flush())

	src, err := source.NewStreamSource(bytes.NewReader(b.Bytes()), 2)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 2}, {3, 4}}, drain(t, src))
	assert.Equal(t, 2, src.Frames())

	_, err = source.NewStreamSource(bytes.NewReader(nil), 0)
	require.ErrorIs(t, err, source.ErrInvalidSource)

	short, err := source.NewStreamSource(bytes.NewReader(b.Bytes()[:20]), 2)
	require.NoError(t, err)
	buf := make([]float64, 2)
	require.NoError(t, short.Get(buf))
	require.ErrorIs(t, short.Get(buf), stream.ErrShortFrame)
	require.ErrorIs(t, short.Get(make([]float64, 1)), source.ErrSizeMismatch)
}

func TestFilterGainSource(t *testing.T) {
	data := []float64{2, 4, -1, 0.5, 1, 1}

	cases := []struct {
		kind source.GainKind
		want [][]float64
	}{
		{source.LinearGain, [][]float64{{2, 4, -1}, {0.5, 1, 1}}},
		{source.LogGain, [][]float64{{math.Exp(2), 4, -1}, {math.Exp(0.5), 1, 1}}},
		{source.UnityGain, [][]float64{{1, 4, -1}, {1, 1, 1}}},
		{source.UnityGainAllZero, [][]float64{{1, 2, -0.5}, {1, 2, 2}}},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			arr, err := source.NewArraySource(data, 3, false)
			require.NoError(t, err)
			src, err := source.NewFilterGainSource(tc.kind, arr)
			require.NoError(t, err)
			assert.Equal(t, tc.kind, src.Kind())
			assert.Equal(t, 3, src.Size())

			got := drain(t, src)
			require.Len(t, got, len(tc.want))
			for i := range got {
				assert.InDeltaSlice(t, tc.want[i], got[i], 1e-15)
			}
		})
	}
}

func TestFilterGainSourceErrors(t *testing.T) {
	_, err := source.NewFilterGainSource(source.LinearGain, nil)
	require.ErrorIs(t, err, source.ErrInvalidSource)

	arr, err := source.NewArraySource([]float64{0, 1}, 2, false)
	require.NoError(t, err)
	_, err = source.NewFilterGainSource(source.GainKind(9), arr)
	require.ErrorIs(t, err, source.ErrUnknownGainKind)

	src, err := source.NewFilterGainSource(source.UnityGainAllZero, arr)
	require.NoError(t, err)
	require.ErrorIs(t, src.Get(make([]float64, 2)), source.ErrZeroGain)

	// Exhaustion of the wrapped source is passed through.
	require.ErrorIs(t, src.Get(make([]float64, 2)), io.EOF)
}
