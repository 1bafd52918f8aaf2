package lpc

import (
	"fmt"
	"math"

	"github.com/katalvlaran/levinson/matrix"
)

// ReverseBuffer is the scratch state of ReverseLevinsonDurbin.
//
// coefficients is an (M+1)×(M+1) table whose row m holds the order-m
// predictor a^{(m)}_0..m (the upper triangle is unused). rows caches the row
// slices of the table and is rebuilt whenever the table is reallocated.
// The zero value is ready to use; a ReverseBuffer must not be shared by
// concurrent Run calls.
type ReverseBuffer struct {
	coefficients *matrix.Dense
	rows         [][]float64
	reflection   []float64 // k_1..k_M
	energy       []float64 // E_0..E_M
}

// Reflection returns the reflection coefficients k_1..k_M recovered by the
// last call. The slice aliases the buffer.
func (b *ReverseBuffer) Reflection() []float64 { return b.reflection }

// Energies returns the prediction-error energies E_0..E_M of the last
// successful call. The slice aliases the buffer.
func (b *ReverseBuffer) Energies() []float64 { return b.energy }

// Coefficients returns the per-order predictor table of the last call.
func (b *ReverseBuffer) Coefficients() *matrix.Dense { return b.coefficients }

// reset sizes the table for order and clears all scratch state.
func (b *ReverseBuffer) reset(order int) error {
	n := order + 1
	switch {
	case b.coefficients == nil:
		m, err := matrix.NewDense(n, n)
		if err != nil {
			return err
		}
		b.coefficients = m
		b.rows = nil
	case b.coefficients.Rows() != n || b.coefficients.Cols() != n:
		if err := b.coefficients.Resize(n, n); err != nil {
			return err
		}
		b.rows = nil
	default:
		b.coefficients.FillZero()
	}
	if len(b.rows) != n {
		b.rows = make([][]float64, n)
		for i := 0; i < n; i++ {
			row, err := b.coefficients.Row(i)
			if err != nil {
				return err
			}
			b.rows[i] = row
		}
	}

	if cap(b.reflection) < order {
		b.reflection = make([]float64, order)
	}
	b.reflection = b.reflection[:order]
	if cap(b.energy) < n {
		b.energy = make([]float64, n)
	}
	b.energy = b.energy[:n]
	clear(b.reflection)
	clear(b.energy)

	return nil
}

// ReverseLevinsonDurbin reconstructs the autocorrelation sequence that a
// forward recursion would have turned into the given LPC coefficients.
type ReverseLevinsonDurbin struct {
	order   int
	epsilon float64
	gain    GainMode
}

// NewReverseLevinsonDurbin builds a reverse recursion of the given order.
// epsilon is the minimum determinant: a recovered prediction-error energy
// E_0..E_{M-1} whose magnitude is below it (or zero) fails the call, since
// the forward recursion would have rejected the reconstructed sequence.
//
// Errors:
//   - ErrInvalidOrder   — order < 0.
//   - ErrInvalidEpsilon — epsilon < 0, NaN or ±Inf.
func NewReverseLevinsonDurbin(order int, epsilon float64, opts ...Option) (*ReverseLevinsonDurbin, error) {
	if order < 0 {
		return nil, fmt.Errorf("NewReverseLevinsonDurbin(%d): %w", order, ErrInvalidOrder)
	}
	if epsilon < 0 || math.IsNaN(epsilon) || math.IsInf(epsilon, 0) {
		return nil, fmt.Errorf("NewReverseLevinsonDurbin(%g): %w", epsilon, ErrInvalidEpsilon)
	}
	o := gatherOptions(opts...)

	return &ReverseLevinsonDurbin{order: order, epsilon: epsilon, gain: o.gain}, nil
}

// Order returns the prediction order M.
func (r *ReverseLevinsonDurbin) Order() int { return r.order }

// Epsilon returns the minimum determinant threshold.
func (r *ReverseLevinsonDurbin) Epsilon() float64 { return r.epsilon }

// Gain returns the gain convention used to read lpc[0].
func (r *ReverseLevinsonDurbin) Gain() GainMode { return r.gain }

// Run reconstructs autocorrelation[0..M] from lpc[0..M].
//
// The final energy E_M is taken from lpc[0] according to the gain
// convention: 1 under UnityGain (lpc[0] is ignored), lpc[0]² under
// FilterGain. Use RunWithEnergy to supply E_M explicitly.
//
// Errors: see RunWithEnergy.
func (r *ReverseLevinsonDurbin) Run(lpc, autocorrelation []float64, buf *ReverseBuffer) error {
	if len(lpc) != r.order+1 {
		return fmt.Errorf("Run: len(lpc)=%d, want %d: %w", len(lpc), r.order+1, ErrLengthMismatch)
	}
	energy := 1.0
	if r.gain == FilterGain {
		energy = lpc[0] * lpc[0]
	}

	return r.RunWithEnergy(lpc, energy, autocorrelation, buf)
}

// RunWithEnergy reconstructs autocorrelation[0..M] from lpc[1..M] and the
// final prediction-error energy E_M; lpc[0] is ignored.
//
// Algorithm:
//  1. Step down, m = M..1: k_m = a^{(m)}_m,
//     a^{(m-1)}_j = (a^{(m)}_j - k_m a^{(m)}_{m-j}) / (1 - k_m²).
//  2. Energies, m = M..1: E_{m-1} = E_m / (1 - k_m²).
//  3. Step up: r[0] = E_0,
//     r[m] = -(k_m E_{m-1} + Σ_{j=1}^{m-1} a^{(m-1)}_j r[m-j]).
//
// buf may be nil, in which case a call-local buffer is used.
//
// Errors:
//   - ErrLengthMismatch — len(lpc) or len(autocorrelation) != M+1.
//   - ErrInvalidEnergy  — energy is NaN or ±Inf.
//   - ErrUnstableLPC    — |k_m| >= 1 or k_m non-finite at some order.
//   - ErrSingular       — |E_{m-1}| < epsilon or E_{m-1} == 0 at some order.
//
// Complexity: Time O(M²), Space O(M²) in the buffer.
func (r *ReverseLevinsonDurbin) RunWithEnergy(lpc []float64, energy float64, autocorrelation []float64, buf *ReverseBuffer) error {
	n := r.order + 1
	if len(lpc) != n {
		return fmt.Errorf("RunWithEnergy: len(lpc)=%d, want %d: %w", len(lpc), n, ErrLengthMismatch)
	}
	if len(autocorrelation) != n {
		return fmt.Errorf("RunWithEnergy: len(autocorrelation)=%d, want %d: %w", len(autocorrelation), n, ErrLengthMismatch)
	}
	if math.IsNaN(energy) || math.IsInf(energy, 0) {
		return fmt.Errorf("RunWithEnergy: energy %g: %w", energy, ErrInvalidEnergy)
	}
	if buf == nil {
		buf = &ReverseBuffer{}
	}
	if err := buf.reset(r.order); err != nil {
		return fmt.Errorf("RunWithEnergy: %w", err)
	}

	rows := buf.rows
	top := rows[r.order]
	top[0] = 1
	copy(top[1:], lpc[1:])

	var m, j int
	var k, d float64
	for m = r.order; m >= 1; m-- {
		curr, prev := rows[m], rows[m-1]
		k = curr[m]
		if !(math.Abs(k) < 1) {
			return fmt.Errorf("RunWithEnergy: order %d: reflection %g: %w", m, k, ErrUnstableLPC)
		}
		buf.reflection[m-1] = k
		d = 1 - k*k
		prev[0] = 1
		for j = 1; j < m; j++ {
			prev[j] = (curr[j] - k*curr[m-j]) / d
		}
	}

	e := buf.energy
	e[r.order] = energy
	for m = r.order; m >= 1; m-- {
		k = buf.reflection[m-1]
		e[m-1] = e[m] / (1 - k*k)
		if e[m-1] == 0 || math.Abs(e[m-1]) < r.epsilon {
			return fmt.Errorf("RunWithEnergy: order %d: energy %g: %w", m, e[m-1], ErrSingular)
		}
	}

	out := autocorrelation
	out[0] = e[0]
	var sum float64
	for m = 1; m <= r.order; m++ {
		prev := rows[m-1]
		sum = buf.reflection[m-1] * e[m-1]
		for j = 1; j < m; j++ {
			sum += prev[j] * out[m-j]
		}
		out[m] = -sum
	}

	return nil
}
