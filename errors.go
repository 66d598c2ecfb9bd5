// SPDX-License-Identifier: EPL-2.0

package audtrim

import (
	"errors"
	"fmt"
)

var (
	ErrNoBuffer          = errors.New("no audio loaded")
	ErrSuperseded        = errors.New("load superseded by a newer one")
	ErrDecode            = errors.New("audio decoding failed")
	ErrUnsupportedExport = errors.New("unsupported export format")
)

// DecodeError reports a file that could not be turned into a buffer.
type DecodeError struct {
	Name string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding %s: %v", e.Name, e.Err)
}

func (e *DecodeError) Unwrap() []error { return []error{ErrDecode, e.Err} }
