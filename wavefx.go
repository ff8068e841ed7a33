package wavefx

import (
	"io"

	"github.com/ik5/wavefx/transform"
	"github.com/ik5/wavefx/wave"
)

// Process is the high-level entry point: it decodes a complete stereo WAV
// container from r, applies the commands strictly in order, and encodes the
// result to w.
//
// Decoding materializes the whole sample payload in memory before any
// command runs, and nothing is written to w until every command has
// succeeded, so a failed run never produces partial output.
//
// Example:
//
//	err := wavefx.Process(os.Stdin, os.Stdout,
//	    transform.FadeIn{Duration: 2},
//	    transform.FadeOut{Duration: 2},
//	)
//
// With no commands, Process copies a well-formed input byte for byte.
func Process(r io.Reader, w io.Writer, cmds ...transform.Command) error {
	data, err := wave.Decode(r)
	if err != nil {
		return err
	}

	if err := transform.Apply(data, cmds...); err != nil {
		return err
	}

	return wave.Encode(w, data)
}
