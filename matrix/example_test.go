package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/levinson/matrix"
)

// ExampleTranspose multiplies a matrix by its own transpose.
func ExampleTranspose() {
	a, _ := matrix.NewDenseFrom(2, 3, []float64{1, 2, 3, 4, 5, 6})
	at, _ := matrix.Transpose(a)
	p, _ := matrix.Mul(a, at)
	fmt.Print(p)
	// Output:
	// [14, 32]
	// [32, 77]
}

// ExampleDense_Submatrix extracts the lower-right 2×2 block.
func ExampleDense_Submatrix() {
	a, _ := matrix.NewDenseFrom(3, 3, []float64{1, 2, 3, 4, 5, 6, 7, 8, 9})
	s, _ := a.Submatrix(1, 2, 1, 2)
	fmt.Print(s)
	// Output:
	// [5, 6]
	// [8, 9]
}

// ExampleNewToeplitz builds the normal matrix of an order-2 predictor.
func ExampleNewToeplitz() {
	r, _ := matrix.NewToeplitz([]float64{4, 2, 1})
	fmt.Print(r)
	// Output:
	// [4, 2, 1]
	// [2, 4, 2]
	// [1, 2, 4]
}
