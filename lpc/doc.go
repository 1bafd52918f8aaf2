// Package lpc solves the symmetric Toeplitz normal equations of linear
// prediction with the Levinson-Durbin recursion, and inverts it.
//
// 🚀 What is Levinson-Durbin?
//
//	Given the autocorrelation r[0..M] of a frame, the order-M linear
//	predictor a[1..M] minimizing the prediction error solves
//
//	  | r0 r1 .. rM-1 | | a1 |     | r1 |
//	  | r1 r0 .. rM-2 | | a2 | = - | r2 |
//	  | .. .. .. ..   | | .. |     | .. |
//	  | rM-1  ..   r0 | | aM |     | rM |
//
//	The recursion builds the order-m solution from the order-(m-1) one in
//	O(M²) time, producing one reflection (PARCOR) coefficient k_m and one
//	prediction-error energy E_m per order.
//
// ✨ Key features:
//   - LevinsonDurbin: autocorrelation → LPC, stability flag, final energy
//   - ReverseLevinsonDurbin: LPC → autocorrelation
//   - caller-owned Buffer / ReverseBuffer reused across frames (no per-frame allocation)
//   - minimum-determinant guard (epsilon) on the prediction-error energy
//   - two gain conventions for coefficient 0: UnityGain and FilterGain
//
// ⚙️ Usage:
//
//	ld, err := lpc.NewLevinsonDurbin(2, 0)
//	if err != nil {
//	  // ErrInvalidOrder / ErrInvalidEpsilon
//	}
//	var buf lpc.Buffer
//	a := make([]float64, 3)
//	stable, err := ld.Run([]float64{4, 2, 1}, a, &buf)
//	// a == [1, -0.5, 0], stable == true, buf.Energy() == 3
//
//	rld, _ := lpc.NewReverseLevinsonDurbin(2, 0)
//	r := make([]float64, 3)
//	err = rld.RunWithEnergy(a, buf.Energy(), r, nil)
//	// r == [4, 2, 1]
//
// Gain conventions:
//
//   - UnityGain (default): the forward recursion writes lpc[0] = 1; the
//     reverse recursion's Run assumes a final energy E_M = 1, so a round
//     trip reproduces the autocorrelation normalized to unit residual
//     energy. Use RunWithEnergy with Buffer.Energy() for an exact round trip.
//   - FilterGain: lpc[0] = sqrt(E_M), the gain of the all-pole synthesis
//     filter; Run recovers E_M = lpc[0]².
//
// Performance:
//
//   - Time:   O(M²) per frame in both directions
//   - Memory: O(M) (forward), O(M²) coefficient table (reverse)
package lpc
