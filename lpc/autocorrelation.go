package lpc

import "fmt"

// Autocorrelation writes the biased autocorrelation of waveform into
// out[0..order]: r[k] = Σ_{n=0}^{N-1-k} x[n] x[n+k]. Lags at or beyond
// len(waveform) are zero.
//
// Errors:
//   - ErrInvalidOrder   — order < 0.
//   - ErrLengthMismatch — len(out) != order+1.
//
// Complexity: Time O(N·M).
func Autocorrelation(waveform []float64, order int, out []float64) error {
	if order < 0 {
		return fmt.Errorf("Autocorrelation(%d): %w", order, ErrInvalidOrder)
	}
	if len(out) != order+1 {
		return fmt.Errorf("Autocorrelation: len(out)=%d, want %d: %w", len(out), order+1, ErrLengthMismatch)
	}

	n := len(waveform)
	var sum float64
	for k := 0; k <= order; k++ {
		sum = 0
		for i := 0; i+k < n; i++ {
			sum += waveform[i] * waveform[i+k]
		}
		out[k] = sum
	}

	return nil
}
