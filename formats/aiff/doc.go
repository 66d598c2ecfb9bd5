// SPDX-License-Identifier: EPL-2.0

// Package aiff decodes uncompressed 8, 16, 24 and 32-bit PCM AIFF files
// through github.com/go-audio/aiff.
package aiff
