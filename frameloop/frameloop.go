// Package frameloop drives a recursion over every frame of an input source.
//
// Frames are processed strictly in order, one at a time, with a single
// recursion buffer reused for the whole stream. Results are written to a
// stream.Writer which is flushed before the loop returns successfully.
package frameloop

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/katalvlaran/levinson/lpc"
	"github.com/katalvlaran/levinson/source"
	"github.com/katalvlaran/levinson/stream"
)

// WarningPolicy decides what happens when a frame yields an unstable filter.
type WarningPolicy int

const (
	// Ignore writes the coefficients and says nothing.
	Ignore WarningPolicy = iota
	// Warn logs the frame index and continues.
	Warn
	// Exit logs the frame index and stops with ErrUnstableFrame.
	Exit
)

var (
	// ErrUnstableFrame is returned under the Exit policy.
	ErrUnstableFrame = errors.New("frameloop: unstable frame")

	// ErrInvalidPolicy indicates a WarningPolicy outside the defined set.
	ErrInvalidPolicy = errors.New("frameloop: invalid warning policy")

	// ErrRead wraps failures of the input source other than exhaustion.
	ErrRead = errors.New("frameloop: read failed")

	// ErrWrite wraps failures of the output writer.
	ErrWrite = errors.New("frameloop: write failed")

	// ErrFrameSize indicates a source whose frame size differs from the
	// recursion order + 1.
	ErrFrameSize = errors.New("frameloop: source size does not match order")
)

// Valid reports whether p is a defined policy.
func (p WarningPolicy) Valid() bool { return p >= Ignore && p <= Exit }

// discard is used when the caller passes a nil logger.
var discard = log.New(io.Discard, "", 0)

// flushQuietly pushes out the frames written before a failure; the flush
// error is only logged so the original failure is the one reported.
func flushQuietly(w *stream.Writer, logger *log.Logger) {
	if err := w.Flush(); err != nil {
		logger.Printf("%v", err)
	}
}

// Forward converts autocorrelation frames to LPC frames.
//
// Exit stops the loop before the unstable frame is written, so the output
// ends with the last stable frame. On any failure the frames converted so
// far are flushed to w.
func Forward(src source.InputSource, w *stream.Writer, ld *lpc.LevinsonDurbin, policy WarningPolicy, logger *log.Logger) error {
	if !policy.Valid() {
		return fmt.Errorf("Forward: policy %d: %w", policy, ErrInvalidPolicy)
	}
	if logger == nil {
		logger = discard
	}
	n := ld.Order() + 1
	if src.Size() != n {
		return fmt.Errorf("Forward: size %d, order %d: %w", src.Size(), ld.Order(), ErrFrameSize)
	}

	var buf lpc.Buffer
	r := make([]float64, n)
	a := make([]float64, n)
	for frame := 0; ; frame++ {
		if err := src.Get(r); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			flushQuietly(w, logger)

			return fmt.Errorf("Forward: frame %d: %w: %w", frame, ErrRead, err)
		}

		stable, err := ld.Run(r, a, &buf)
		if err != nil {
			flushQuietly(w, logger)

			return fmt.Errorf("Forward: frame %d: %w", frame, err)
		}
		if !stable && policy != Ignore {
			logger.Printf("%dth frame is unstable!", frame)
			if policy == Exit {
				if err = w.Flush(); err != nil {
					return fmt.Errorf("Forward: %w: %w", ErrWrite, err)
				}

				return fmt.Errorf("Forward: frame %d: %w", frame, ErrUnstableFrame)
			}
		}
		if err = w.Write(a); err != nil {
			return fmt.Errorf("Forward: %w: %w", ErrWrite, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("Forward: %w: %w", ErrWrite, err)
	}

	return nil
}

// Reverse converts LPC frames back to autocorrelation frames.
// Any recursion failure stops the loop. A nil logger discards diagnostics.
func Reverse(src source.InputSource, w *stream.Writer, rld *lpc.ReverseLevinsonDurbin, logger *log.Logger) error {
	if logger == nil {
		logger = discard
	}
	n := rld.Order() + 1
	if src.Size() != n {
		return fmt.Errorf("Reverse: size %d, order %d: %w", src.Size(), rld.Order(), ErrFrameSize)
	}

	var buf lpc.ReverseBuffer
	a := make([]float64, n)
	r := make([]float64, n)
	for frame := 0; ; frame++ {
		if err := src.Get(a); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			flushQuietly(w, logger)

			return fmt.Errorf("Reverse: frame %d: %w: %w", frame, ErrRead, err)
		}

		if err := rld.Run(a, r, &buf); err != nil {
			flushQuietly(w, logger)

			return fmt.Errorf("Reverse: frame %d: %w", frame, err)
		}
		if err := w.Write(r); err != nil {
			return fmt.Errorf("Reverse: %w: %w", ErrWrite, err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("Reverse: %w: %w", ErrWrite, err)
	}

	return nil
}
