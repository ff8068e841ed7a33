// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// ClampInt16 narrows v to the 16-bit signed range, saturating instead of
// wrapping.
func ClampInt16(v int) int16 {
	if v < math.MinInt16 {
		return math.MinInt16
	}
	if v > math.MaxInt16 {
		return math.MaxInt16
	}

	return int16(v)
}

// ScaleInt16 multiplies a sample by scale, truncates toward zero, and
// clamps the result to the 16-bit signed range.
func ScaleInt16(sample int16, scale float64) int16 {
	return ClampInt16(int(float64(sample) * scale))
}

// AddInt16 adds two samples with saturation.
func AddInt16(a, b int16) int16 {
	return ClampInt16(int(a) + int(b))
}
