// SPDX-License-Identifier: EPL-2.0

package mp3

import (
	"fmt"
	"io"
)

const (
	// DefaultFilename is the name given to exported files when none is set.
	DefaultFilename = "audio_edite.mp3"
	// MIMEType of the exported data.
	MIMEType = "audio/mp3"
)

// Blob is encoded output kept as the ordered chunks the encoder emitted.
type Blob struct {
	chunks [][]byte
	size   int
}

// Append adds chunk at the end. Empty chunks are dropped.
func (b *Blob) Append(chunk []byte) {
	if len(chunk) == 0 {
		return
	}
	b.chunks = append(b.chunks, chunk)
	b.size += len(chunk)
}

// Chunks returns the chunks in emission order.
func (b *Blob) Chunks() [][]byte { return b.chunks }

// Len is the total size in bytes.
func (b *Blob) Len() int { return b.size }

// Bytes concatenates all chunks into one slice.
func (b *Blob) Bytes() []byte {
	out := make([]byte, 0, b.size)
	for _, c := range b.chunks {
		out = append(out, c...)
	}
	return out
}

// WriteTo writes the chunks to w in order.
func (b *Blob) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, c := range b.chunks {
		n, err := w.Write(c)
		total += int64(n)
		if err != nil {
			return total, fmt.Errorf("writing mp3 data: %w", err)
		}
	}
	return total, nil
}
