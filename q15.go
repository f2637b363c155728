package q15

import "math"

// Q15 value range. MinVal/MaxVal correspond to -1.0 and 1.0-2^-15.
const (
	MinVal = -32768
	MaxVal = 32767
)

// fracBits is the number of fractional bits in the Q15 format.
const fracBits = 15

// scale is the Q15 scaling factor (2^15).
const scale = 1 << fracBits

// Saturate clamps a 32-bit intermediate to the Q15 range.
//
// Values above MaxVal become MaxVal, values below MinVal become MinVal,
// in-range values pass through unchanged. A 32-bit input is wide enough
// for any 16x16-bit product plus a 16-bit addend, so all kernel
// intermediates fit without overflow.
func Saturate(v int32) int16 {
	if v > MaxVal {
		return MaxVal
	}

	if v < MinVal {
		return MinVal
	}

	return int16(v)
}

// FromFloat64 converts a real value to Q15 with round-to-nearest and
// saturation. Inputs at or above 1.0 map to MaxVal, at or below -1.0
// to MinVal.
func FromFloat64(x float64) int16 {
	if x >= 1.0 {
		return MaxVal
	}

	if x <= -1.0 {
		return MinVal
	}

	return Saturate(int32(math.Round(x * scale)))
}

// ToFloat64 converts a Q15 value to its real value v/32768.
func ToFloat64(v int16) float64 {
	return float64(v) / scale
}
