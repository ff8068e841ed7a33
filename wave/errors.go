// SPDX-License-Identifier: EPL-2.0

package wave

import "errors"

var (
	ErrNotRiff           = errors.New("file is not a RIFF file")
	ErrBadFormatChunk    = errors.New("format chunk is corrupted")
	ErrBadDataChunk      = errors.New("data chunk is corrupted")
	ErrNotStereo         = errors.New("file is not stereo")
	ErrInvalidSampleRate = errors.New("file does not use 44,100Hz sample rate")
	ErrInvalidSampleSize = errors.New("file does not have 16-bit samples")
	ErrInvalidFileSize   = errors.New("file size does not match size in header")
	ErrChannelMismatch   = errors.New("left and right channels must have the same length")
)
