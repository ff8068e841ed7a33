// SPDX-License-Identifier: EPL-2.0

package transform

import (
	"slices"

	"github.com/ik5/wavefx/wave"
)

// Reverse plays the sound backwards: each channel's samples are reversed
// independently. Count and header are untouched.
type Reverse struct{}

func (Reverse) Apply(d *wave.Data) error {
	slices.Reverse(d.Left)
	slices.Reverse(d.Right)

	return nil
}

func (Reverse) String() string { return "reverse" }
