package lpc

// GainMode selects how coefficient 0 of an LPC vector is interpreted.
//
//   - UnityGain  — lpc[0] = 1; the final prediction-error energy is not carried
//     by the coefficient vector (the reverse recursion assumes E_M = 1).
//
//   - FilterGain — lpc[0] = sqrt(E_M), the gain of the all-pole synthesis filter.
type GainMode int

const (
	// UnityGain writes/assumes a unit gain term.
	UnityGain GainMode = iota

	// FilterGain writes/reads sqrt of the final prediction-error energy.
	FilterGain
)

// Defaults shared by both recursions.
const (
	// DefaultOrder is the prediction order used by the command-line tools.
	DefaultOrder = 25

	// DefaultEpsilon is the default minimum determinant of the normal matrix.
	DefaultEpsilon = 0.0

	// DefaultGain is the default gain convention.
	DefaultGain = UnityGain
)

const panicGainInvalid = "lpc: WithGain: unknown gain mode"

// Option configures a recursion at construction time.
type Option func(*options)

type options struct {
	gain GainMode
}

// WithGain selects the gain convention for coefficient 0.
// Panics on an unknown mode (programmer error).
func WithGain(mode GainMode) Option {
	if mode != UnityGain && mode != FilterGain {
		panic(panicGainInvalid)
	}

	return func(o *options) { o.gain = mode }
}

func gatherOptions(opts ...Option) options {
	o := options{gain: DefaultGain}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}

// String returns the mode name.
func (g GainMode) String() string {
	switch g {
	case UnityGain:
		return "unity"
	case FilterGain:
		return "filter"
	default:
		return "unknown"
	}
}
