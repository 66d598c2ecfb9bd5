// SPDX-License-Identifier: EPL-2.0

package audtrim

import (
	"github.com/ik5/audtrim/audio"
	"github.com/ik5/audtrim/formats/aiff"
	"github.com/ik5/audtrim/formats/flac"
	"github.com/ik5/audtrim/formats/mp3"
	"github.com/ik5/audtrim/formats/vorbis"
	"github.com/ik5/audtrim/formats/wav"
)

// NewRegistry returns a registry with every bundled decoder, keyed by the
// file extensions they handle.
func NewRegistry() *audio.Registry {
	reg := audio.NewRegistry()
	reg.Register("wav", wav.Decoder{})
	reg.Register("wave", wav.Decoder{})
	reg.Register("mp3", mp3.Decoder{})
	reg.Register("ogg", vorbis.Decoder{})
	reg.Register("oga", vorbis.Decoder{})
	reg.Register("aiff", aiff.Decoder{})
	reg.Register("aif", aiff.Decoder{})
	reg.Register("flac", flac.Decoder{})

	return reg
}
