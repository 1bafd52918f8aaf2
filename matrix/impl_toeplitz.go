// SPDX-License-Identifier: MIT

package matrix

import "fmt"

const opToeplitz = "NewToeplitz"

// NewToeplitz builds the symmetric n×n Toeplitz matrix T[i][j] = seq[|i-j|],
// n = len(seq). With seq = r[0..M] this is the autocorrelation (normal)
// matrix of an order-M linear predictor.
//
// Errors:
//   - ErrEmptySequence when seq is empty.
//   - ErrNaNInf when the numeric policy is on and seq holds a non-finite value.
//
// Complexity:
//   - Time O(n²), Space O(n²).
func NewToeplitz(seq []float64, opts ...Option) (*Dense, error) {
	n := len(seq)
	if n == 0 {
		return nil, matrixErrorf(opToeplitz, ErrEmptySequence)
	}
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opToeplitz, err)
	}
	if m.validateNaNInf {
		for idx, v := range seq {
			if isNonFinite(v) {
				return nil, matrixErrorf(opToeplitz, fmt.Errorf("seq[%d]: %w", idx, ErrNaNInf))
			}
		}
	}

	var i, j, base int
	for i = 0; i < n; i++ {
		base = i * n
		for j = 0; j < n; j++ {
			if i >= j {
				m.data[base+j] = seq[i-j]
			} else {
				m.data[base+j] = seq[j-i]
			}
		}
	}

	return m, nil
}
