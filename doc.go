// Package levinson is a small toolkit for linear-prediction analysis built
// around the Levinson-Durbin recursion.
//
// What is inside?
//
//	• lpc/       — forward recursion (autocorrelation → LPC) and reverse
//	               recursion (LPC → autocorrelation), plus Autocorrelation
//	• matrix/    — dense row-major matrices, Toeplitz construction and the
//	               linear algebra used to verify normal equations
//	• stream/    — raw little-endian float64 frame reader/writer
//	• source/    — frame sources: in-memory, stream-backed, filter-gain
//	               preprocessing
//	• frameloop/ — drives a recursion over every frame of a source
//	• cmd/       — the levdur and rlevdur command-line filters
//
// Quick example (order 2):
//
//	r = [4, 2, 1]  ──levdur──▶  a = [1, -0.5, 0], E = 3
//	a, E = 3       ──rlevdur─▶  r = [4, 2, 1]
//
// Everything is sequential and pure Go; recursions are immutable and all
// per-frame state lives in caller-owned buffers.
//
//	go get github.com/katalvlaran/levinson/lpc
package levinson
