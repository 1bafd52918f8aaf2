package source

import "errors"

var (
	// ErrInvalidSource indicates a source built from unusable arguments:
	// nil wrapped source, non-positive size or empty data.
	ErrInvalidSource = errors.New("source: invalid source")

	// ErrSizeMismatch indicates a Get buffer whose length differs from Size().
	ErrSizeMismatch = errors.New("source: buffer size mismatch")

	// ErrZeroGain indicates a frame whose gain term is zero under
	// UnityGainAllZero normalization.
	ErrZeroGain = errors.New("source: zero gain")

	// ErrUnknownGainKind indicates a GainKind outside the defined set.
	ErrUnknownGainKind = errors.New("source: unknown gain kind")
)
