package q15

import "testing"

func TestSaturate(t *testing.T) {
	tests := []struct {
		name string
		in   int32
		want int16
	}{
		{"zero", 0, 0},
		{"in-range positive", 12345, 12345},
		{"in-range negative", -12345, -12345},
		{"max", 32767, 32767},
		{"max+1", 32768, 32767},
		{"far above", 1 << 30, 32767},
		{"min", -32768, -32768},
		{"min-1", -32769, -32768},
		{"far below", -(1 << 30), -32768},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Saturate(tt.in); got != tt.want {
				t.Errorf("Saturate(%d) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFromFloat64(t *testing.T) {
	tests := []struct {
		in   float64
		want int16
	}{
		{0, 0},
		{0.5, 16384},
		{-0.5, -16384},
		{1.0, 32767},
		{2.0, 32767},
		{-1.0, -32768},
		{-2.0, -32768},
		{1.0 / 32768, 1},
		{-1.0 / 32768, -1},
	}

	for _, tt := range tests {
		if got := FromFloat64(tt.in); got != tt.want {
			t.Errorf("FromFloat64(%v) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestToFloat64(t *testing.T) {
	tests := []struct {
		in   int16
		want float64
	}{
		{0, 0},
		{16384, 0.5},
		{-32768, -1.0},
		{32767, 32767.0 / 32768},
	}

	for _, tt := range tests {
		if got := ToFloat64(tt.in); got != tt.want {
			t.Errorf("ToFloat64(%d) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestFloatRoundTrip(t *testing.T) {
	// Q15 values are dyadic rationals; the round trip is exact.
	for _, v := range []int16{-32768, -32767, -1, 0, 1, 16384, 32766, 32767} {
		if got := FromFloat64(ToFloat64(v)); got != v {
			t.Errorf("round trip %d: got %d", v, got)
		}
	}
}
