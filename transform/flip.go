// SPDX-License-Identifier: EPL-2.0

package transform

import "github.com/ik5/wavefx/wave"

// FlipChannels swaps the left and right channel buffers in constant time.
type FlipChannels struct{}

func (FlipChannels) Apply(d *wave.Data) error {
	d.Left, d.Right = d.Right, d.Left

	return nil
}

func (FlipChannels) String() string { return "flip channels" }
