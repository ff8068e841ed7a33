// SPDX-License-Identifier: EPL-2.0

package wave

import (
	"bytes"
	"encoding/binary"
	"io"
)

// Container format constants.
const (
	// HeaderSize is the size of the fixed WAV header in bytes.
	HeaderSize = 44

	// CompressionPCM is the format code for uncompressed PCM.
	CompressionPCM = 1

	// SampleRate is the only sample rate the codec accepts, in Hz.
	SampleRate = 44100

	// BitsPerSample is the only sample width the codec accepts.
	BitsPerSample = 16

	// Channels is the only channel count the codec accepts.
	Channels = 2

	// FrameSize is the on-wire size of one stereo sample pair.
	FrameSize = 4
)

// Header holds the mutable fields of the fixed 44-byte container header.
// The chunk identifiers ("RIFF", "WAVE", "fmt ", "data") are validated on
// decode and re-emitted as constants on encode, so they are not stored.
type Header struct {
	Size uint32 // RIFF chunk size
	Fmt  FormatChunk
	Data DataChunk
}

// FormatChunk mirrors the canonical 16-byte "fmt " sub-chunk.
type FormatChunk struct {
	Size          uint32
	Compression   uint16
	Channels      uint16
	SampleRate    uint32
	ByteRate      uint32
	BlockAlign    uint16
	BitsPerSample uint16
}

// DataChunk holds the declared size of the "data" sub-chunk in bytes.
type DataChunk struct {
	Size uint32
}

// DecodeHeader reads and validates the fixed 44-byte header. Validation
// runs in file order and fails fast with the first matching sentinel error.
// A stream too short to hold a full header yields ErrInvalidFileSize.
func DecodeHeader(r io.Reader) (Header, error) {
	var h Header

	raw := make([]byte, HeaderSize)
	if _, err := io.ReadFull(r, raw); err != nil {
		return h, ErrInvalidFileSize
	}

	h.Size = binary.LittleEndian.Uint32(raw[4:8])
	h.Fmt = FormatChunk{
		Size:          binary.LittleEndian.Uint32(raw[16:20]),
		Compression:   binary.LittleEndian.Uint16(raw[20:22]),
		Channels:      binary.LittleEndian.Uint16(raw[22:24]),
		SampleRate:    binary.LittleEndian.Uint32(raw[24:28]),
		ByteRate:      binary.LittleEndian.Uint32(raw[28:32]),
		BlockAlign:    binary.LittleEndian.Uint16(raw[32:34]),
		BitsPerSample: binary.LittleEndian.Uint16(raw[34:36]),
	}
	h.Data.Size = binary.LittleEndian.Uint32(raw[40:44])

	if !bytes.Equal(raw[0:4], []byte("RIFF")) {
		return h, ErrNotRiff
	}

	if !bytes.Equal(raw[12:16], []byte("fmt ")) ||
		h.Fmt.Size != 16 ||
		h.Fmt.Compression != CompressionPCM {
		return h, ErrBadFormatChunk
	}

	if !bytes.Equal(raw[36:40], []byte("data")) {
		return h, ErrBadDataChunk
	}

	if h.Fmt.Channels != Channels {
		return h, ErrNotStereo
	}

	if h.Fmt.SampleRate != SampleRate {
		return h, ErrInvalidSampleRate
	}

	if h.Fmt.BitsPerSample != BitsPerSample {
		return h, ErrInvalidSampleSize
	}

	return h, nil
}

// EncodeHeader writes the header back in the fixed 44-byte layout,
// including any size fields updated by transforms.
func EncodeHeader(w io.Writer, h Header) error {
	raw := make([]byte, HeaderSize)

	copy(raw[0:4], "RIFF")
	binary.LittleEndian.PutUint32(raw[4:8], h.Size)
	copy(raw[8:12], "WAVE")

	copy(raw[12:16], "fmt ")
	binary.LittleEndian.PutUint32(raw[16:20], h.Fmt.Size)
	binary.LittleEndian.PutUint16(raw[20:22], h.Fmt.Compression)
	binary.LittleEndian.PutUint16(raw[22:24], h.Fmt.Channels)
	binary.LittleEndian.PutUint32(raw[24:28], h.Fmt.SampleRate)
	binary.LittleEndian.PutUint32(raw[28:32], h.Fmt.ByteRate)
	binary.LittleEndian.PutUint16(raw[32:34], h.Fmt.BlockAlign)
	binary.LittleEndian.PutUint16(raw[34:36], h.Fmt.BitsPerSample)

	copy(raw[36:40], "data")
	binary.LittleEndian.PutUint32(raw[40:44], h.Data.Size)

	if _, err := w.Write(raw); err != nil {
		return err
	}

	return nil
}
