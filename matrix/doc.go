// SPDX-License-Identifier: MIT

// Package matrix provides a small dense linear-algebra toolkit.
//
// 🚀 What is in here?
//
//	Dense is a row-major matrix over a single flat []float64 buffer. Rows are
//	addressed through a computed stride (offset = i*cols + j), so a copy never
//	aliases another matrix's storage and a Resize simply swaps the buffer.
//
// ✨ Key features:
//   - bounds-checked At/Set/Row returning ErrOutOfRange instead of panicking
//   - Resize, Fill/FillZero, Clone/CopyFrom
//   - Add, Sub, Mul, Scale, MatVec with a *Dense fast path
//   - Transpose / TransposeTo (into a caller-supplied matrix)
//   - Submatrix (copy) with offset + extent bounds checks
//   - NewToeplitz for symmetric Toeplitz systems (autocorrelation matrices)
//   - Equal / AllClose comparisons
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/levinson/matrix"
//
//	a, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
//	at, _ := matrix.Transpose(a)  // 3×2
//	p, _ := matrix.Mul(a, at)     // 2×2
//	fmt.Print(p)
//
// Zero-sized matrices (0×N, N×0) are legal; negative dimensions are not.
//
// Performance:
//
//   - At/Set/Row: O(1)
//   - Add/Sub/Scale/Transpose/Clone: O(r·c)
//   - Mul: O(r·n·c)
package matrix
