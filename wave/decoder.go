// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"encoding/binary"
	"io"
)

// Decode reads a complete container from r: the 44-byte header followed by
// the interleaved 16-bit stereo frames the header declares. The whole
// sample payload is materialized in memory. A stream that ends before the
// declared data size is consumed yields ErrInvalidFileSize.
func Decode(r io.Reader) (*Data, error) {
	h, err := DecodeHeader(r)
	if err != nil {
		return nil, err
	}

	n := int(h.Data.Size / FrameSize)

	raw := make([]byte, n*FrameSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, ErrInvalidFileSize
	}

	left := make([]int16, n)
	right := make([]int16, n)
	for i := 0; i < n; i++ {
		// Each frame is left then right, little-endian.
		left[i] = int16(binary.LittleEndian.Uint16(raw[i*FrameSize:]))
		right[i] = int16(binary.LittleEndian.Uint16(raw[i*FrameSize+2:]))
	}

	return &Data{Header: h, Left: left, Right: right}, nil
}
