// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set/Row return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Support copy-based submatrix extraction (Submatrix) and reallocation (Resize).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone/CopyFrom: O(r*c);
//     Resize: O(r'*c'); Submatrix: O(r'*c').

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"        // method tag used in error wrappers
	ctxSet       = "Set"       // method tag used in error wrappers
	ctxRow       = "Row"       // method tag used in error wrappers
	ctxFill      = "Fill"      // method tag used in error wrappers
	ctxApply     = "Apply"     // method tag used in error wrappers
	ctxResize    = "Resize"    // method tag used in error wrappers
	ctxCopyFrom  = "CopyFrom"  // method tag used in error wrappers
	ctxSubmatrix = "Submatrix" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
//
// Complexity:
//   - Time O(1), Space O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols), both >= 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set/Fill/Apply.
type Dense struct {
	r, c           int       // row and column counts (>=0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with shape validation and numeric policy.
//
// Implementation:
//   - Stage 1: validate rows>=0 && cols>=0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer of len rows*cols.
//   - Stage 3: set numeric policy from opts (defaults from options.go).
//
// Behavior highlights:
//   - 0×N and N×0 are legal and own a zero-length buffer.
//   - No panics on user errors; returns sentinel errors.
//
// Errors:
//   - ErrInvalidDimensions (negative rows or cols).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	// make() zero-fills deterministically.
	return &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom creates an r×c matrix pre-filled from a flat row-major slice.
// The slice is copied; the matrix never aliases data.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//   - ErrDimensionMismatch when len(data) != rows*cols.
//   - ErrNaNInf when the numeric policy is on and data holds a non-finite value.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	m, err := NewDense(rows, cols, opts...)
	if err != nil {
		return nil, err
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("NewDenseFrom: len(data)=%d, want %d: %w", len(data), rows*cols, ErrDimensionMismatch)
	}
	if m.validateNaNInf {
		for idx, v := range data {
			if isNonFinite(v) {
				return nil, fmt.Errorf("NewDenseFrom: data[%d]: %w", idx, ErrNaNInf)
			}
		}
	}
	copy(m.data, data)

	return m, nil
}

// NewIdentity returns the n×n identity matrix.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	m, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}

	return m, nil
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf bounds-checks (row,col) and computes the row-major offset.
// Returns a bare ErrOutOfRange; public methods wrap it with coordinates.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// MAIN DESCRIPTION:
//   - Safe element read at coordinates.
//
// Implementation:
//   - Stage 1: compute offset via indexOf (bounds check).
//   - Stage 2: load from flat buffer.
//
// Errors:
//   - ErrOutOfRange when row >= Rows(), col >= Cols() or either is negative.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for non-finite v when the policy is on.
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err)
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v

	return nil
}

// Row returns row i as a slice aliasing the backing buffer.
// MAIN DESCRIPTION:
//   - Row-stride accessor: data[i*c : (i+1)*c].
//
// Behavior highlights:
//   - Writes through the slice bypass the numeric policy.
//   - The slice is invalidated by Resize (the buffer is replaced).
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Complexity:
//   - Time O(1), Space O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	// Full slice expression caps the row so append cannot spill into row i+1.
	return m.data[base : base+m.c : base+m.c], nil
}

// Resize reallocates the matrix to rows×cols and zero-fills it.
// MAIN DESCRIPTION:
//   - Replace the backing buffer; previous contents are discarded.
//
// Behavior highlights:
//   - Every slice previously returned by Row is invalidated.
//   - Numeric policy is preserved.
//
// Errors:
//   - ErrInvalidDimensions (negative shape).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Resize(rows, cols int) error {
	if rows < 0 || cols < 0 {
		return denseErrorf(ctxResize, rows, cols, ErrInvalidDimensions)
	}
	m.r, m.c = rows, cols
	m.data = make([]float64, rows*cols)

	return nil
}

// Fill sets every element to v.
//
// Errors:
//   - ErrNaNInf when v is non-finite and the numeric policy is on.
func (m *Dense) Fill(v float64) error {
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxFill, m.r, m.c, ErrNaNInf)
	}
	for idx := range m.data {
		m.data[idx] = v
	}

	return nil
}

// FillZero sets every element to 0.
func (m *Dense) FillZero() {
	for idx := range m.data {
		m.data[idx] = 0
	}
}

// Clone returns a deep copy (new buffer, same numeric policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the concrete-typed Clone used by package kernels.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf,
	}
}

// CopyFrom makes m a deep copy of src (assignment semantics).
// MAIN DESCRIPTION:
//   - Reallocate m when the shape differs, then copy values and policy.
//
// Behavior highlights:
//   - m never aliases src afterwards; self-copy is a no-op.
//
// Errors:
//   - ErrNilMatrix when src is nil.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) when reallocation is needed.
func (m *Dense) CopyFrom(src *Dense) error {
	if src == nil {
		return denseErrorf(ctxCopyFrom, 0, 0, ErrNilMatrix)
	}
	if m == src {
		return nil
	}
	if m.r != src.r || m.c != src.c || len(m.data) != len(src.data) {
		m.r, m.c = src.r, src.c
		m.data = make([]float64, len(src.data))
	}
	copy(m.data, src.data)
	m.validateNaNInf = src.validateNaNInf

	return nil
}

// Submatrix copies the window [rowOff:rowOff+rows, colOff:colOff+cols).
// MAIN DESCRIPTION:
//   - Materialize an independent rows×cols copy of a window of m.
//
// Implementation:
//   - Stage 1: validate offsets and extents against m's shape.
//   - Stage 2: allocate the result and copy row by row.
//
// Behavior highlights:
//   - Zero-area windows are legal; numeric policy is preserved.
//
// Errors:
//   - ErrOutOfRange when any offset/extent is negative or the window exceeds m.
//
// Complexity:
//   - Time O(rows*cols), Space O(rows*cols).
func (m *Dense) Submatrix(rowOff, rows, colOff, cols int) (*Dense, error) {
	if rowOff < 0 || colOff < 0 || rows < 0 || cols < 0 || rowOff+rows > m.r || colOff+cols > m.c {
		return nil, fmt.Errorf("Dense.%s(%d,%d,%d,%d): %w", ctxSubmatrix, rowOff, rows, colOff, cols, ErrOutOfRange)
	}
	res := &Dense{
		r:              rows,
		c:              cols,
		data:           make([]float64, rows*cols),
		validateNaNInf: m.validateNaNInf,
	}
	var i, src int
	for i = 0; i < rows; i++ {
		src = (rowOff+i)*m.c + colOff
		copy(res.data[i*cols:(i+1)*cols], m.data[src:src+cols])
	}

	return res, nil
}

// String renders rows as lines with comma-separated values, for diagnostics.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for formatting.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Stops early when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// Apply replaces each element with f(i,j,v) in-place.
// Elements written before an ErrNaNInf abort remain updated.
func (m *Dense) Apply(f func(i, j int, v float64) float64) error {
	var i, j, base int
	var nv float64
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			nv = f(i, j, m.data[base+j])
			if m.validateNaNInf && (math.IsNaN(nv) || math.IsInf(nv, 0)) {
				return denseErrorf(ctxApply, i, j, ErrNaNInf)
			}
			m.data[base+j] = nv
		}
	}

	return nil
}
