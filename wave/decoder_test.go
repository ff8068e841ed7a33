// SPDX-License-Identifier: EPL-2.0

package wave_test

import (
	"bytes"
	"errors"
	"slices"
	"testing"

	"github.com/ik5/wavefx/internal/wavetest"
	"github.com/ik5/wavefx/wave"
)

func TestDecode_Samples(t *testing.T) {
	t.Parallel()

	left := []int16{100, -100, 32767, -32768}
	right := []int16{50, -50, 0, 1}
	file := wavetest.StereoFile(left, right)

	d, err := wave.Decode(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if d.NumSamples() != 4 {
		t.Fatalf("NumSamples() = %d, want 4", d.NumSamples())
	}
	if !slices.Equal(d.Left, left) {
		t.Errorf("Left = %v, want %v", d.Left, left)
	}
	if !slices.Equal(d.Right, right) {
		t.Errorf("Right = %v, want %v", d.Right, right)
	}
}

func TestDecode_Empty(t *testing.T) {
	t.Parallel()

	file := wavetest.StereoFile(nil, nil)

	d, err := wave.Decode(bytes.NewReader(file))
	if err != nil {
		t.Fatalf("Decode() error = %v, want nil", err)
	}

	if d.NumSamples() != 0 {
		t.Errorf("NumSamples() = %d, want 0", d.NumSamples())
	}
}

func TestDecode_TruncatedData(t *testing.T) {
	t.Parallel()

	file := wavetest.StereoFile(wavetest.Ramp(10, 1), wavetest.Ramp(10, 2))

	// Cut the stream mid-sample-data, including mid-frame.
	for _, cut := range []int{1, 2, 3, 20, 39} {
		_, err := wave.Decode(bytes.NewReader(file[:len(file)-cut]))
		if !errors.Is(err, wave.ErrInvalidFileSize) {
			t.Errorf("Decode() with %d bytes missing error = %v, want ErrInvalidFileSize", cut, err)
		}
	}
}

func TestDecode_InvalidHeaderPropagates(t *testing.T) {
	t.Parallel()

	file := wavetest.StereoFile(wavetest.Silence(2), wavetest.Silence(2))
	copy(file[0:4], "OggS")

	_, err := wave.Decode(bytes.NewReader(file))
	if !errors.Is(err, wave.ErrNotRiff) {
		t.Errorf("Decode() error = %v, want ErrNotRiff", err)
	}
}
