// SPDX-License-Identifier: EPL-2.0

package utils

// PCMMax returns the largest positive sample value at the given bit depth.
func PCMMax(depth int) int32 {
	return int32(1)<<(depth-1) - 1
}

// PCMMin returns the most negative sample value at the given bit depth.
func PCMMin(depth int) int32 {
	return -(int32(1) << (depth - 1))
}

// Float64ToPCM converts a normalized sample to an integer sample at the
// given bit depth.
func Float64ToPCM(x float64, depth int) int32 {
	// Clamp and scale
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	v := int64(x * float64(int64(1)<<(depth-1)))

	// Use the positive max to avoid overflow at exactly +1.0
	if v > int64(PCMMax(depth)) {
		return PCMMax(depth)
	}
	if v < int64(PCMMin(depth)) {
		return PCMMin(depth)
	}
	return int32(v)
}

// PCMToFloat64 converts an integer sample at the given bit depth to a
// normalized value in [-1, 1).
func PCMToFloat64(v int32, depth int) float64 {
	return float64(v) / float64(int64(1)<<(depth-1))
}

// ShiftPCM rescales an integer sample between bit depths by shifting.
// Widening shifts in zero low bits; narrowing truncates them.
func ShiftPCM(v int32, from, to int) int32 {
	switch {
	case from == to:
		return v
	case from < to:
		return v << (to - from)
	default:
		return v >> (from - to)
	}
}
