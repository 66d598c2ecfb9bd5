// SPDX-License-Identifier: EPL-2.0

package flac

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrNoChannels(t *testing.T) {
	t.Parallel()

	if !strings.Contains(ErrNoChannels.Error(), "flac") {
		t.Errorf("ErrNoChannels = %q, want the format named", ErrNoChannels)
	}

	wrapped := fmt.Errorf("decoding take.flac: %w", ErrNoChannels)
	if !errors.Is(wrapped, ErrNoChannels) {
		t.Error("wrapped ErrNoChannels does not match")
	}
}
