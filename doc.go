// SPDX-License-Identifier: EPL-2.0

// Package wavefx decodes stereo PCM WAV files, applies a sequence of
// sample-domain transforms, and re-encodes the result.
//
// Only one container format is accepted: RIFF/WAVE, uncompressed PCM,
// stereo, 44.1kHz, 16-bit. Anything else is rejected with a distinct
// error at decode time.
//
// # Quick Start
//
// The simplest way to process a file is Process:
//
//	err := wavefx.Process(in, out,
//	    transform.Reverse{},
//	    transform.Volume{Scale: 0.5},
//	)
//
// Process decodes the whole file into memory, runs the transforms strictly
// in order, and writes the result only if every step succeeded.
//
// # Transforms
//
// The transform subpackage provides seven operations:
//   - Reverse: play the sound backwards
//   - ChangeSpeed: resample to play faster or slower
//   - FlipChannels: swap left and right
//   - FadeIn / FadeOut: squared-ramp volume envelopes
//   - Volume: scale every sample, with saturation
//   - Echo: extend the sound and mix in a delayed, scaled copy
//
// # Lower-level access
//
// For control over the individual stages, use the wave subpackage
// directly:
//
//	data, err := wave.Decode(in)
//	// inspect data.Header, data.Left, data.Right ...
//	err = transform.Apply(data, transform.Echo{Delay: 0.3, Scale: 0.5})
//	err = wave.Encode(out, data)
//
// wave.Data also bridges to the github.com/go-audio ecosystem through
// IntBuffer and FromIntBuffer.
//
// # Command line
//
// cmd/wavefx exposes the same pipeline as a filter:
//
//	wavefx -r -s 2.0 -e 0.5 0.5 < input.wav > output.wav
//
// Flags apply in argument order and may repeat. On any error the process
// prints a single diagnostic line to stderr, exits with status 1, and
// writes nothing to stdout.
package wavefx
