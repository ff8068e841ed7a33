// SPDX-License-Identifier: EPL-2.0

// Package wavetest provides fixture builders for codec and transform tests.
package wavetest

import (
	"encoding/binary"
)

const headerSize = 44

// StereoFile serializes the given channels as a well-formed 44.1kHz stereo
// PCM container. The channels must be the same length.
func StereoFile(left, right []int16) []byte {
	if len(left) != len(right) {
		panic("wavetest: channel length mismatch")
	}

	n := len(left)
	dataSize := uint32(4 * n)

	b := make([]byte, headerSize+int(dataSize))

	copy(b[0:4], "RIFF")
	binary.LittleEndian.PutUint32(b[4:8], uint32(headerSize)+dataSize)
	copy(b[8:12], "WAVE")

	copy(b[12:16], "fmt ")
	binary.LittleEndian.PutUint32(b[16:20], 16)
	binary.LittleEndian.PutUint16(b[20:22], 1) // PCM
	binary.LittleEndian.PutUint16(b[22:24], 2)
	binary.LittleEndian.PutUint32(b[24:28], 44100)
	binary.LittleEndian.PutUint32(b[28:32], 44100*4)
	binary.LittleEndian.PutUint16(b[32:34], 4)
	binary.LittleEndian.PutUint16(b[34:36], 16)

	copy(b[36:40], "data")
	binary.LittleEndian.PutUint32(b[40:44], dataSize)

	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint16(b[headerSize+4*i:], uint16(left[i]))
		binary.LittleEndian.PutUint16(b[headerSize+4*i+2:], uint16(right[i]))
	}

	return b
}

// Silence returns n zero samples.
func Silence(n int) []int16 {
	return make([]int16, n)
}

// Ramp returns n samples rising linearly from 0 in the given step.
func Ramp(n int, step int16) []int16 {
	s := make([]int16, n)
	for i := range s {
		s[i] = int16(i) * step
	}

	return s
}
