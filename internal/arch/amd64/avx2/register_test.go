//go:build amd64 && !purego

package avx2

import "testing"

func refAxpy(dst, a, b []int16, alpha int16) {
	for i := range dst {
		dst[i] = saturate(int32(a[i]) + (int32(alpha)*int32(b[i]))>>15)
	}
}

func TestAxpyMatchesReference(t *testing.T) {
	// Sizes around the unroll width, including tails.
	sizes := []int{0, 1, 7, 8, 9, 15, 16, 17, 64, 100}
	alphas := []int16{-32768, -16384, -1, 0, 1, 16384, 32767}

	for _, n := range sizes {
		a := make([]int16, n)
		b := make([]int16, n)
		for i := range a {
			a[i] = int16(i*2641 - 32768)
			b[i] = int16(32767 - i*1777)
		}

		for _, alpha := range alphas {
			got := make([]int16, n)
			want := make([]int16, n)

			axpy(got, a, b, alpha)
			refAxpy(want, a, b, alpha)

			for i := range got {
				if got[i] != want[i] {
					t.Fatalf("n=%d alpha=%d: axpy[%d] = %d, want %d", n, alpha, i, got[i], want[i])
				}
			}
		}
	}
}

func TestAddSatMatchesReference(t *testing.T) {
	n := 37
	a := make([]int16, n)
	b := make([]int16, n)
	for i := range a {
		a[i] = int16(i*3001 - 32768)
		b[i] = int16(i*2711 - 16384)
	}

	got := make([]int16, n)
	addSat(got, a, b)

	for i := range got {
		want := saturate(int32(a[i]) + int32(b[i]))
		if got[i] != want {
			t.Fatalf("addSat[%d] = %d, want %d", i, got[i], want)
		}
	}
}

func TestScaleSatMatchesReference(t *testing.T) {
	n := 37
	b := make([]int16, n)
	for i := range b {
		b[i] = int16(i*3449 - 32768)
	}

	for _, alpha := range []int16{-32768, -1, 0, 16384, 32767} {
		got := make([]int16, n)
		scaleSat(got, b, alpha)

		for i := range got {
			want := saturate((int32(alpha) * int32(b[i])) >> 15)
			if got[i] != want {
				t.Fatalf("alpha=%d: scaleSat[%d] = %d, want %d", alpha, i, got[i], want)
			}
		}
	}
}

func BenchmarkAxpyKernel(b *testing.B) {
	for _, n := range []int{256, 1024, 4096} {
		b.Run("n="+itoa(n), func(b *testing.B) {
			x := make([]int16, n)
			y := make([]int16, n)
			dst := make([]int16, n)
			for i := range x {
				x[i] = int16(i*2641 - 32768)
				y[i] = int16(32767 - i*1777)
			}

			b.SetBytes(int64(n * 2 * 3))
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				axpy(dst, x, y, 16384)
			}
		})
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	s := ""
	for n > 0 {
		s = string(rune('0'+n%10)) + s
		n /= 10
	}
	return s
}
