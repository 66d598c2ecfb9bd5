// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"errors"
	"fmt"
)

var (
	ErrEncoding        = errors.New("mp3 encoding failed")
	ErrInvalidBitrate  = errors.New("bitrate is not a valid MPEG-1 layer III bitrate")
	ErrUnknownLayout   = errors.New("unknown channel layout")
	ErrEncoderFinished = errors.New("encoder already flushed")
)

// EncodingError wraps a failure reported by the block encoder. Block is
// the zero based index of the failing block, or -1 for the flush.
type EncodingError struct {
	Block int
	Err   error
}

func (e *EncodingError) Error() string {
	if e.Block < 0 {
		return fmt.Sprintf("mp3 flush: %v", e.Err)
	}
	return fmt.Sprintf("mp3 block %d: %v", e.Block, e.Err)
}

func (e *EncodingError) Unwrap() []error { return []error{ErrEncoding, e.Err} }
