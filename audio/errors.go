// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDstSize    = errors.New("dst size must be multiple of channels")
	ErrInvalidRange      = errors.New("invalid time range")
	ErrInvalidSampleRate = errors.New("sample rate must be positive")
	ErrNoChannels        = errors.New("buffer must have at least one channel")
	ErrChannelLength     = errors.New("all channels must have the same length")
	ErrUnknownFormat     = errors.New("unknown audio format")
)

// InvalidRangeError reports a start/end pair that cannot be extracted
// from a buffer of the given duration.
type InvalidRangeError struct {
	Start    float64
	End      float64
	Duration float64
	Reason   string
}

func (e *InvalidRangeError) Error() string {
	return fmt.Sprintf("invalid range [%g, %g) for duration %g: %s",
		e.Start, e.End, e.Duration, e.Reason)
}

func (e *InvalidRangeError) Unwrap() error { return ErrInvalidRange }
