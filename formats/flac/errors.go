// SPDX-License-Identifier: EPL-2.0

package flac

import "errors"

var ErrNoChannels = errors.New("flac stream has no channels")
