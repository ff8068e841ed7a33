// SPDX-License-Identifier: EPL-2.0

// Package transform implements the sample-domain operations of wavefx and
// the pipeline that sequences them.
//
// Each transform is a Command value carrying its own arguments:
//
//	err := transform.Apply(data,
//	    transform.Reverse{},
//	    transform.Volume{Scale: 2},
//	    transform.Echo{Delay: 0.5, Scale: 0.5},
//	)
//
// Commands run strictly in order against a single wave.Data store; the
// first failing command aborts the pipeline and the store keeps whatever
// state the completed commands left it in. Numeric arguments are validated
// before any sample is touched, so a failed command never half-applies.
//
// All scaling (Volume, FadeIn, FadeOut, Echo) saturates to the 16-bit
// signed range rather than wrapping.
package transform
