// SPDX-License-Identifier: EPL-2.0

package transform_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/wavefx/transform"
)

// A duration of 0.0001s at 44.1kHz gives a 4-sample fade window.
const fourSamples = 0.0001

func TestFadeIn_SquaredRamp(t *testing.T) {
	t.Parallel()

	d := newData(t,
		[]int16{10000, 10000, 10000, 10000, 10000},
		[]int16{-10000, -10000, -10000, -10000, -10000},
	)

	require.NoError(t, transform.Apply(d, transform.FadeIn{Duration: fourSamples}))

	// Factors (i/4)^2 for i in [0,4): 0, 0.0625, 0.25, 0.5625.
	require.Equal(t, []int16{0, 625, 2500, 5625, 10000}, d.Left)
	require.Equal(t, []int16{0, -625, -2500, -5625, -10000}, d.Right)
}

func TestFadeOut_SquaredRamp(t *testing.T) {
	t.Parallel()

	d := newData(t,
		[]int16{10000, 10000, 10000, 10000, 10000},
		[]int16{-10000, -10000, -10000, -10000, -10000},
	)

	require.NoError(t, transform.Apply(d, transform.FadeOut{Duration: fourSamples}))

	// Factors (1-i/4)^2 over the last 4 samples: 1, 0.5625, 0.25, 0.0625.
	require.Equal(t, []int16{10000, 10000, 5625, 2500, 625}, d.Left)
	require.Equal(t, []int16{-10000, -10000, -5625, -2500, -625}, d.Right)
}

func TestFade_WindowLongerThanSound(t *testing.T) {
	t.Parallel()

	// 4-sample window against a 2-sample sound: only the available samples
	// are written, the ramp keeps its full-window slope.
	in := newData(t, []int16{10000, 10000}, []int16{10000, 10000})
	require.NoError(t, transform.Apply(in, transform.FadeIn{Duration: fourSamples}))
	require.Equal(t, []int16{0, 625}, in.Left)

	out := newData(t, []int16{10000, 10000}, []int16{10000, 10000})
	require.NoError(t, transform.Apply(out, transform.FadeOut{Duration: fourSamples}))
	require.Equal(t, []int16{2500, 625}, out.Left)
}

func TestFade_ZeroDurationIsNoOp(t *testing.T) {
	t.Parallel()

	d := newData(t, []int16{100, 200}, []int16{300, 400})

	require.NoError(t, transform.Apply(d,
		transform.FadeIn{Duration: 0},
		transform.FadeOut{Duration: 0},
	))

	require.Equal(t, []int16{100, 200}, d.Left)
	require.Equal(t, []int16{300, 400}, d.Right)
}

func TestFade_SubSampleDurationIsNoOp(t *testing.T) {
	t.Parallel()

	d := newData(t, []int16{100, 200}, []int16{300, 400})

	// Shorter than one sample period: the window rounds down to zero.
	require.NoError(t, transform.Apply(d,
		transform.FadeIn{Duration: 1e-9},
		transform.FadeOut{Duration: 1e-9},
	))

	require.Equal(t, []int16{100, 200}, d.Left)
	require.Equal(t, []int16{300, 400}, d.Right)
}

func TestFade_NegativeDuration(t *testing.T) {
	t.Parallel()

	d := newData(t, []int16{1}, []int16{2})

	require.ErrorIs(t, transform.Apply(d, transform.FadeIn{Duration: -1}), transform.ErrInvalidTime)
	require.ErrorIs(t, transform.Apply(d, transform.FadeOut{Duration: -0.5}), transform.ErrInvalidTime)
	require.Equal(t, []int16{1}, d.Left)
}
