// SPDX-License-Identifier: EPL-2.0

package transform

import "github.com/ik5/wavefx/wave"

// Command is one sample-domain operation. Each transform is a struct
// carrying exactly the arguments it needs, so dispatch is typed rather
// than keyed by flag letters.
type Command interface {
	// Apply runs the transform against the store, mutating it in place or
	// replacing its buffers. Argument validation happens here; a failed
	// command leaves the store unchanged.
	Apply(d *wave.Data) error
}

// Apply runs the commands strictly left to right against a single store,
// stopping at the first error.
func Apply(d *wave.Data, cmds ...Command) error {
	for _, c := range cmds {
		if err := c.Apply(d); err != nil {
			return err
		}
	}

	return nil
}
