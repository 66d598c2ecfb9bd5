// SPDX-License-Identifier: EPL-2.0

// Package flac decodes FLAC streams using github.com/mewkiz/flac. Samples
// of any bit depth are scaled to [-1, 1].
package flac
