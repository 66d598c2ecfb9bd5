// SPDX-License-Identifier: EPL-2.0

package audtrim_test

import (
	"bytes"
	"context"
	"fmt"

	"github.com/ik5/audtrim"
	"github.com/ik5/audtrim/formats/wav"
)

// Example_trimAndExport loads a five second WAV, keeps seconds 1 to 3 and
// exports them as WAV.
func Example_trimAndExport() {
	ctx := context.Background()

	in := new(bytes.Buffer)
	_ = wav.WriteWAV16(in, 8000, 1, make([]int16, 8000*5))

	s := audtrim.NewSession()
	if err := s.Load(ctx, "input.wav", in); err != nil {
		fmt.Println("load:", err)
		return
	}
	fmt.Println(s.Status())

	if _, err := s.Trim(1, 3); err != nil {
		fmt.Println("trim:", err)
		return
	}
	fmt.Println(s.Status())

	out := new(bytes.Buffer)
	n, err := s.Export(ctx, out, audtrim.ExportOptions{Format: audtrim.FormatWAV})
	if err != nil {
		fmt.Println("export:", err)
		return
	}
	fmt.Printf("wrote %d bytes\n", n)

	// Output:
	// Total duration: 5.000 s
	// New duration: 2.000 s
	// Cut from 1.000 s to 3.000 s
	// wrote 32044 bytes
}

// Example_invalidRange shows that a rejected trim keeps the loaded audio.
func Example_invalidRange() {
	in := new(bytes.Buffer)
	_ = wav.WriteWAV16(in, 8000, 2, make([]int16, 8000*2*4))

	s := audtrim.NewSession()
	_ = s.Load(context.Background(), "input.wav", in)

	_, err := s.Trim(3, 1)
	fmt.Println(err)
	fmt.Println(s.Status())

	// Output:
	// invalid range [3, 1) for duration 4: start must be before end
	// Total duration: 4.000 s
}
