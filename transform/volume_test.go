// SPDX-License-Identifier: EPL-2.0

package transform_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ik5/wavefx/transform"
)

func TestVolume_Double(t *testing.T) {
	t.Parallel()

	d := newData(t, []int16{100, -100}, []int16{50, -50})

	require.NoError(t, transform.Apply(d, transform.Volume{Scale: 2}))

	require.Equal(t, []int16{200, -200}, d.Left)
	require.Equal(t, []int16{100, -100}, d.Right)
}

func TestVolume_UnitScaleIsNoOp(t *testing.T) {
	t.Parallel()

	d := newData(t, []int16{32767, -32768, 0}, []int16{1, -1, 12345})

	require.NoError(t, transform.Apply(d, transform.Volume{Scale: 1}))

	require.Equal(t, []int16{32767, -32768, 0}, d.Left)
	require.Equal(t, []int16{1, -1, 12345}, d.Right)
}

func TestVolume_ZeroSilences(t *testing.T) {
	t.Parallel()

	d := newData(t, []int16{32767, -32768, 100}, []int16{-1, 1, -100})

	require.NoError(t, transform.Apply(d, transform.Volume{Scale: 0}))

	require.Equal(t, []int16{0, 0, 0}, d.Left)
	require.Equal(t, []int16{0, 0, 0}, d.Right)
}

func TestVolume_Saturates(t *testing.T) {
	t.Parallel()

	d := newData(t, []int16{30000, -30000, 1}, []int16{-1, 2, -2})

	require.NoError(t, transform.Apply(d, transform.Volume{Scale: 1e6}))

	require.Equal(t, []int16{math.MaxInt16, math.MinInt16, math.MaxInt16}, d.Left)
	require.Equal(t, []int16{math.MinInt16, math.MaxInt16, math.MinInt16}, d.Right)
}

func TestVolume_NegativeScale(t *testing.T) {
	t.Parallel()

	d := newData(t, []int16{100}, []int16{200})

	require.ErrorIs(t, transform.Apply(d, transform.Volume{Scale: -1}), transform.ErrInvalidVolume)
	require.Equal(t, []int16{100}, d.Left)
}
