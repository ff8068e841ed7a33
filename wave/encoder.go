// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"encoding/binary"
	"io"
)

// Encode writes the header and the interleaved stereo frames to w in the
// fixed little-endian layout. Frames are flushed in chunks so large stores
// do not double their memory footprint on the way out.
func Encode(w io.Writer, d *Data) error {
	if err := EncodeHeader(w, d.Header); err != nil {
		return err
	}

	const chunkFrames = 4096

	n := d.NumSamples()
	buf := make([]byte, min(n, chunkFrames)*FrameSize)

	for start := 0; start < n; start += chunkFrames {
		end := min(start+chunkFrames, n)
		chunk := buf[:(end-start)*FrameSize]

		for i := start; i < end; i++ {
			off := (i - start) * FrameSize
			binary.LittleEndian.PutUint16(chunk[off:], uint16(d.Left[i]))
			binary.LittleEndian.PutUint16(chunk[off+2:], uint16(d.Right[i]))
		}

		if _, err := w.Write(chunk); err != nil {
			return err
		}
	}

	return nil
}
