package lpc_test

import (
	"fmt"

	"github.com/katalvlaran/levinson/lpc"
)

// ExampleLevinsonDurbin_Run solves an order-2 system and inverts it again.
func ExampleLevinsonDurbin_Run() {
	r := []float64{1, 0.5, 0.1}

	ld, _ := lpc.NewLevinsonDurbin(2, 0)
	var buf lpc.Buffer
	a := make([]float64, 3)
	stable, err := ld.Run(r, a, &buf)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("lpc=%.4f stable=%v\n", a, stable)
	fmt.Printf("k=%.4f E=%.4f\n", buf.Reflection(), buf.Energy())

	rld, _ := lpc.NewReverseLevinsonDurbin(2, 0)
	back := make([]float64, 3)
	if err = rld.RunWithEnergy(a, buf.Energy(), back, nil); err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("r=%.4f\n", back)

	// Output:
	// lpc=[1.0000 -0.6000 0.2000] stable=true
	// k=[-0.5000 0.2000] E=0.7200
	// r=[1.0000 0.5000 0.1000]
}

// ExampleWithGain shows the filter-gain convention for coefficient 0.
func ExampleWithGain() {
	ld, _ := lpc.NewLevinsonDurbin(1, 0, lpc.WithGain(lpc.FilterGain))
	a := make([]float64, 2)
	_, _ = ld.Run([]float64{4, 2}, a, nil)
	fmt.Printf("%.4f\n", a)

	// Output:
	// [1.7321 -0.5000]
}
