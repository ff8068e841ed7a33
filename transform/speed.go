// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"

	"github.com/ik5/wavefx/wave"
)

// ChangeSpeed resamples the sound to play Factor times faster. The new
// length is floor(N / Factor) and output sample i copies input sample
// floor(i * Factor) — nearest-earlier resampling, no interpolation. The
// header's size fields are recomputed from the new length. A Factor large
// enough to produce an empty buffer is legal.
type ChangeSpeed struct {
	Factor float64
}

func (c ChangeSpeed) Apply(d *wave.Data) error {
	if c.Factor <= 0 {
		return ErrInvalidSpeed
	}

	n := d.NumSamples()
	length := int(float64(n) / c.Factor)

	left := make([]int16, length)
	right := make([]int16, length)
	for i := 0; i < length; i++ {
		j := int(float64(i) * c.Factor)
		if j >= n {
			// Float rounding can land one past the end.
			j = n - 1
		}

		left[i] = d.Left[j]
		right[i] = d.Right[j]
	}

	return d.ReplaceSamples(left, right)
}

func (c ChangeSpeed) String() string { return fmt.Sprintf("change speed ×%g", c.Factor) }
