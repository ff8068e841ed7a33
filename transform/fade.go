// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"

	"github.com/ik5/wavefx/utils"
	"github.com/ik5/wavefx/wave"
)

// FadeIn ramps the volume up from silence over the first Duration seconds,
// using a squared linear ramp. A zero Duration is a no-op. When the window
// is longer than the sound, only the available samples are written; the
// ramp keeps its full-window slope.
type FadeIn struct {
	Duration float64
}

func (f FadeIn) Apply(d *wave.Data) error {
	if f.Duration < 0 {
		return ErrInvalidTime
	}

	n := fadeWindow(d, f.Duration)
	if n == 0 {
		return nil
	}

	for i := 0; i < min(n, d.NumSamples()); i++ {
		factor := float64(i) / float64(n)
		d.Left[i] = utils.ScaleInt16(d.Left[i], factor*factor)
		d.Right[i] = utils.ScaleInt16(d.Right[i], factor*factor)
	}

	return nil
}

func (f FadeIn) String() string { return fmt.Sprintf("fade in %gs", f.Duration) }

// FadeOut ramps the volume down to silence over the last Duration seconds,
// mirroring FadeIn.
type FadeOut struct {
	Duration float64
}

func (f FadeOut) Apply(d *wave.Data) error {
	if f.Duration < 0 {
		return ErrInvalidTime
	}

	n := fadeWindow(d, f.Duration)
	if n == 0 {
		return nil
	}

	total := d.NumSamples()
	start := total - n

	for j := max(0, start); j < total; j++ {
		i := j - start
		factor := 1.0 - float64(i)/float64(n)
		d.Left[j] = utils.ScaleInt16(d.Left[j], factor*factor)
		d.Right[j] = utils.ScaleInt16(d.Right[j], factor*factor)
	}

	return nil
}

func (f FadeOut) String() string { return fmt.Sprintf("fade out %gs", f.Duration) }

// fadeWindow converts a duration in seconds to a sample count at the
// store's sample rate.
func fadeWindow(d *wave.Data, duration float64) int {
	return int(float64(d.Header.Fmt.SampleRate) * duration)
}
