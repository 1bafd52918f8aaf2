package lpc

import (
	"fmt"
	"math"
)

// Buffer is the scratch state of LevinsonDurbin.Run.
//
// It holds two alternating coefficient arrays of length order+1 (the
// order-(m-1) and order-m predictors), the reflection coefficients and the
// final prediction-error energy. The zero value is ready to use; Run resizes
// and resets it, so one Buffer can serve a whole stream of frames. A Buffer
// must not be shared by concurrent Run calls.
type Buffer struct {
	prev       []float64 // order-(m-1) predictor
	curr       []float64 // order-m predictor
	reflection []float64 // k_1..k_M
	energy     float64   // E_M after a successful Run
}

// Reflection returns the reflection coefficients k_1..k_M of the last Run.
// After a failed Run only the first orders reached are meaningful.
// The slice aliases the buffer and is overwritten by the next Run.
func (b *Buffer) Reflection() []float64 { return b.reflection }

// Energy returns the prediction-error energy reached by the last Run: E_M on
// success, E_{m-1} of the failing order on ErrSingular.
func (b *Buffer) Energy() float64 { return b.energy }

// reset sizes the arrays for order and clears them.
func (b *Buffer) reset(order int) {
	n := order + 1
	if cap(b.prev) < n || cap(b.curr) < n {
		b.prev = make([]float64, n)
		b.curr = make([]float64, n)
	}
	b.prev, b.curr = b.prev[:n], b.curr[:n]
	if cap(b.reflection) < order {
		b.reflection = make([]float64, order)
	}
	b.reflection = b.reflection[:order]
	clear(b.prev)
	clear(b.curr)
	clear(b.reflection)
	b.energy = 0
}

// LevinsonDurbin derives linear predictive coefficients from an
// autocorrelation sequence. It is immutable after construction and may be
// shared; all per-frame state lives in the caller's Buffer.
type LevinsonDurbin struct {
	order   int
	epsilon float64
	gain    GainMode
}

// NewLevinsonDurbin builds a forward recursion of the given order.
// epsilon is the minimum value of the determinant of the normal matrix: a
// prediction-error energy whose magnitude falls below it aborts Run.
//
// Errors:
//   - ErrInvalidOrder   — order < 0.
//   - ErrInvalidEpsilon — epsilon < 0, NaN or ±Inf.
func NewLevinsonDurbin(order int, epsilon float64, opts ...Option) (*LevinsonDurbin, error) {
	if order < 0 {
		return nil, fmt.Errorf("NewLevinsonDurbin(%d): %w", order, ErrInvalidOrder)
	}
	if epsilon < 0 || math.IsNaN(epsilon) || math.IsInf(epsilon, 0) {
		return nil, fmt.Errorf("NewLevinsonDurbin(%g): %w", epsilon, ErrInvalidEpsilon)
	}
	o := gatherOptions(opts...)

	return &LevinsonDurbin{order: order, epsilon: epsilon, gain: o.gain}, nil
}

// Order returns the prediction order M.
func (l *LevinsonDurbin) Order() int { return l.order }

// Epsilon returns the minimum determinant threshold.
func (l *LevinsonDurbin) Epsilon() float64 { return l.epsilon }

// Gain returns the gain convention used for lpc[0].
func (l *LevinsonDurbin) Gain() GainMode { return l.gain }

// Run solves the order-M normal equations for one frame.
//
// Algorithm (m = 1..M):
//  1. E_0 = r[0], a_0 = 1.
//  2. k_m = -(r[m] + Σ_{j=1}^{m-1} a_j r[m-j]) / E_{m-1}
//  3. a_j ← a_j + k_m a_{m-j} (j = 1..m-1), a_m = k_m
//  4. E_m = E_{m-1} (1 - k_m²)
//
// A reflection coefficient with |k_m| >= 1, or a non-finite one, marks the
// result unstable but the recursion still completes. lpc[0] receives the gain term (see GainMode) and
// lpc[1..M] the predictor. buf may be nil, in which case a call-local buffer
// is used.
//
// Errors:
//   - ErrLengthMismatch — len(autocorrelation) or len(lpc) != M+1.
//   - ErrSingular       — |E_{m-1}| < epsilon, or E_{m-1} == 0, at some order m.
//
// Complexity: Time O(M²), Space O(1) beyond the buffer.
func (l *LevinsonDurbin) Run(autocorrelation, lpc []float64, buf *Buffer) (stable bool, err error) {
	n := l.order + 1
	if len(autocorrelation) != n {
		return false, fmt.Errorf("Run: len(autocorrelation)=%d, want %d: %w", len(autocorrelation), n, ErrLengthMismatch)
	}
	if len(lpc) != n {
		return false, fmt.Errorf("Run: len(lpc)=%d, want %d: %w", len(lpc), n, ErrLengthMismatch)
	}
	if buf == nil {
		buf = &Buffer{}
	}
	buf.reset(l.order)

	r := autocorrelation
	prev, curr := buf.prev, buf.curr
	prev[0], curr[0] = 1, 1
	energy := r[0]
	stable = true

	var m, j int
	var sum, k float64
	for m = 1; m <= l.order; m++ {
		if energy == 0 || math.Abs(energy) < l.epsilon {
			buf.energy = energy

			return false, fmt.Errorf("Run: order %d: energy %g: %w", m, energy, ErrSingular)
		}

		sum = r[m]
		for j = 1; j < m; j++ {
			sum += prev[j] * r[m-j]
		}
		k = -sum / energy
		// NaN and ±Inf fail the comparison too.
		if !(math.Abs(k) < 1) {
			stable = false
		}
		buf.reflection[m-1] = k

		for j = 1; j < m; j++ {
			curr[j] = prev[j] + k*prev[m-j]
		}
		curr[m] = k
		energy *= 1 - k*k

		prev, curr = curr, prev
	}
	buf.prev, buf.curr = prev, curr
	buf.energy = energy

	switch l.gain {
	case FilterGain:
		lpc[0] = math.Sqrt(math.Abs(energy))
	default:
		lpc[0] = 1
	}
	copy(lpc[1:], prev[1:n])

	return stable, nil
}
