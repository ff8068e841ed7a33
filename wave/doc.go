// SPDX-License-Identifier: EPL-2.0

// Package wave decodes and encodes the fixed 44-byte RIFF/WAVE container
// used by wavefx: uncompressed PCM, stereo, 44.1kHz, 16-bit samples.
// Anything else is rejected at decode time rather than adapted.
//
// # Decoding
//
// Decode materializes the whole file in memory as a Data value holding the
// header and two equal-length channel buffers:
//
//	data, err := wave.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(data.NumSamples())
//
// Validation runs in file order and fails fast with a distinct sentinel
// error per check:
//   - ErrNotRiff: container ID is not "RIFF"
//   - ErrBadFormatChunk: bad "fmt " ID, size, or compression code
//   - ErrBadDataChunk: bad "data" ID
//   - ErrNotStereo: channel count is not 2
//   - ErrInvalidSampleRate: sample rate is not 44100
//   - ErrInvalidSampleSize: samples are not 16-bit
//   - ErrInvalidFileSize: stream shorter than the header declares
//
// # Encoding
//
// Encode writes the store back in the same layout, including any header
// size fields updated by transforms:
//
//	err := wave.Encode(out, data)
//
// Decoding and re-encoding an untouched store reproduces the input
// byte for byte.
//
// # go-audio interop
//
// Data converts to and from github.com/go-audio/audio interleaved buffers
// via IntBuffer and FromIntBuffer.
package wave
