// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"

	"github.com/ik5/wavefx/utils"
	"github.com/ik5/wavefx/wave"
)

// Echo extends the sound by Delay seconds and mixes a Scale-scaled copy of
// the original, offset by the delay, over the result. Both the scaled copy
// and the mix saturate instead of wrapping. The header's size fields grow
// with the new length. A delay shorter than one sample period is a no-op.
type Echo struct {
	Delay float64
	Scale float64
}

func (e Echo) Apply(d *wave.Data) error {
	if e.Delay < 0 || e.Scale < 0 {
		return ErrInvalidEcho
	}

	n := int(float64(d.Header.Fmt.SampleRate) * e.Delay)
	if n == 0 {
		return nil
	}

	total := d.NumSamples()
	left := make([]int16, total+n)
	right := make([]int16, total+n)

	for i := 0; i < total+n; i++ {
		if i < total {
			left[i] = d.Left[i]
			right[i] = d.Right[i]
		}
		if i >= n {
			left[i] = utils.AddInt16(left[i], utils.ScaleInt16(d.Left[i-n], e.Scale))
			right[i] = utils.AddInt16(right[i], utils.ScaleInt16(d.Right[i-n], e.Scale))
		}
	}

	return d.ReplaceSamples(left, right)
}

func (e Echo) String() string { return fmt.Sprintf("echo %gs ×%g", e.Delay, e.Scale) }
