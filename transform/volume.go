// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"fmt"

	"github.com/ik5/wavefx/utils"
	"github.com/ik5/wavefx/wave"
)

// Volume multiplies every sample by Scale with saturation. A Scale of 0
// produces silence.
type Volume struct {
	Scale float64
}

func (v Volume) Apply(d *wave.Data) error {
	if v.Scale < 0 {
		return ErrInvalidVolume
	}

	for i := 0; i < d.NumSamples(); i++ {
		d.Left[i] = utils.ScaleInt16(d.Left[i], v.Scale)
		d.Right[i] = utils.ScaleInt16(d.Right[i], v.Scale)
	}

	return nil
}

func (v Volume) String() string { return fmt.Sprintf("volume ×%g", v.Scale) }
