package lpc

import "errors"

var (
	// ErrInvalidOrder indicates a negative prediction order at construction.
	ErrInvalidOrder = errors.New("lpc: order must be non-negative")

	// ErrInvalidEpsilon indicates a negative or non-finite minimum determinant.
	ErrInvalidEpsilon = errors.New("lpc: epsilon must be finite and non-negative")

	// ErrLengthMismatch indicates an input or output sequence whose length is not order+1.
	ErrLengthMismatch = errors.New("lpc: sequence length must be order+1")

	// ErrSingular indicates that the prediction-error energy fell below the
	// minimum determinant of the normal matrix (or reached zero).
	ErrSingular = errors.New("lpc: normal matrix is singular")

	// ErrUnstableLPC indicates a reflection coefficient with |k| >= 1 during the
	// reverse recursion; such a filter has no autocorrelation to recover.
	ErrUnstableLPC = errors.New("lpc: unstable linear predictive coefficients")

	// ErrInvalidEnergy indicates a non-finite final energy passed to RunWithEnergy.
	ErrInvalidEnergy = errors.New("lpc: final energy must be finite")
)
