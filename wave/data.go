// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"github.com/go-audio/audio"

	"github.com/ik5/wavefx/utils"
)

// Data is the decoded sample store: a header plus two channel buffers that
// are always the same length. Transforms mutate the buffers in place or
// swap in replacements through ReplaceSamples, which keeps the header's
// denormalized size fields in sync with the sample count.
type Data struct {
	Header Header
	Left   []int16
	Right  []int16
}

// New builds a Data holding the given channels under a freshly computed
// 44.1kHz stereo PCM header.
func New(left, right []int16) (*Data, error) {
	d := &Data{
		Header: Header{
			Fmt: FormatChunk{
				Size:          16,
				Compression:   CompressionPCM,
				Channels:      Channels,
				SampleRate:    SampleRate,
				ByteRate:      SampleRate * FrameSize,
				BlockAlign:    FrameSize,
				BitsPerSample: BitsPerSample,
			},
		},
	}
	if err := d.ReplaceSamples(left, right); err != nil {
		return nil, err
	}

	return d, nil
}

// NumSamples returns the per-channel sample count.
func (d *Data) NumSamples() int {
	return len(d.Left)
}

// ReplaceSamples swaps in new channel buffers and recomputes the header's
// size fields from the new count. Both buffers are replaced together; the
// previous buffers stay untouched until the replacement is complete.
func (d *Data) ReplaceSamples(left, right []int16) error {
	if len(left) != len(right) {
		return ErrChannelMismatch
	}

	d.Left = left
	d.Right = right
	d.Header.Size = uint32(HeaderSize + FrameSize*len(left))
	d.Header.Data.Size = uint32(FrameSize * len(left))

	return nil
}

// IntBuffer converts the store to a go-audio interleaved buffer, so the
// decoded samples can feed go-audio consumers directly.
func (d *Data) IntBuffer() *audio.IntBuffer {
	n := d.NumSamples()
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: Channels,
			SampleRate:  SampleRate,
		},
		Data:           make([]int, 2*n),
		SourceBitDepth: BitsPerSample,
	}
	for i := 0; i < n; i++ {
		buf.Data[2*i] = int(d.Left[i])
		buf.Data[2*i+1] = int(d.Right[i])
	}

	return buf
}

// FromIntBuffer builds a Data from a go-audio interleaved buffer. The
// buffer must be stereo at 44.1kHz; samples outside the 16-bit range are
// clamped.
func FromIntBuffer(buf *audio.IntBuffer) (*Data, error) {
	if buf.Format == nil || buf.Format.NumChannels != Channels {
		return nil, ErrNotStereo
	}
	if buf.Format.SampleRate != SampleRate {
		return nil, ErrInvalidSampleRate
	}

	n := len(buf.Data) / 2
	left := make([]int16, n)
	right := make([]int16, n)
	for i := 0; i < n; i++ {
		left[i] = utils.ClampInt16(buf.Data[2*i])
		right[i] = utils.ClampInt16(buf.Data[2*i+1])
	}

	return New(left, right)
}
