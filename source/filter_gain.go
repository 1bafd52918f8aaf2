package source

import (
	"fmt"
	"math"
)

// GainKind names the representation of the gain term buf[0] in the frames
// of a wrapped source.
type GainKind int

const (
	// LinearGain leaves frames untouched.
	LinearGain GainKind = iota
	// LogGain holds ln K; it is converted to K.
	LogGain
	// UnityGain replaces the gain term with 1.
	UnityGain
	// UnityGainAllZero divides every value by the gain term, so that the
	// frame is normalized to a unit gain.
	UnityGainAllZero
)

// String returns the kind name.
func (k GainKind) String() string {
	switch k {
	case LinearGain:
		return "linear"
	case LogGain:
		return "log"
	case UnityGain:
		return "unity"
	case UnityGainAllZero:
		return "unity-all"
	default:
		return "unknown"
	}
}

// FilterGainSource rewrites the gain term of each frame of another source.
type FilterGainSource struct {
	kind GainKind
	src  InputSource
}

// NewFilterGainSource wraps src.
func NewFilterGainSource(kind GainKind, src InputSource) (*FilterGainSource, error) {
	if src == nil {
		return nil, fmt.Errorf("NewFilterGainSource: nil source: %w", ErrInvalidSource)
	}
	if kind < LinearGain || kind > UnityGainAllZero {
		return nil, fmt.Errorf("NewFilterGainSource(%d): %w", kind, ErrUnknownGainKind)
	}

	return &FilterGainSource{kind: kind, src: src}, nil
}

// Kind returns the gain representation handled by the source.
func (s *FilterGainSource) Kind() GainKind { return s.kind }

// Size returns the size of the wrapped source.
func (s *FilterGainSource) Size() int { return s.src.Size() }

// Get reads a frame from the wrapped source and converts its gain term.
func (s *FilterGainSource) Get(buf []float64) error {
	if err := s.src.Get(buf); err != nil {
		return err
	}

	switch s.kind {
	case LogGain:
		buf[0] = math.Exp(buf[0])
	case UnityGain:
		buf[0] = 1
	case UnityGainAllZero:
		if buf[0] == 0 {
			return fmt.Errorf("FilterGainSource.Get: %w", ErrZeroGain)
		}
		g := buf[0]
		for i := range buf {
			buf[i] /= g
		}
	}

	return nil
}
