package q15

import (
	"math/rand"
	"testing"
)

// axpyRef recomputes the specified arithmetic inline, independent of
// any kernel package, so the reference itself is cross-checked.
func axpyRef(dst, a, b []int16, alpha int16) {
	for i := range dst {
		product := int32(alpha) * int32(b[i])
		scaled := product >> 15
		sum := int32(a[i]) + scaled
		dst[i] = Saturate(sum)
	}
}

func TestAxpyIdentityScaling(t *testing.T) {
	// alpha = 0 makes the product term vanish: y[i] == a[i].
	n := 64
	a := make([]int16, n)
	b := make([]int16, n)
	for i := range a {
		a[i] = int16(i*1021 - 32768)
		b[i] = int16(32767 - i*997)
	}

	dst := make([]int16, n)
	Axpy(dst, a, b, 0)

	for i := range dst {
		if dst[i] != a[i] {
			t.Fatalf("Axpy alpha=0 [%d] = %d, want %d", i, dst[i], a[i])
		}
	}
}

func TestAxpyShiftSignCorrectness(t *testing.T) {
	// product = -32768*1 = -32768; arithmetic shift floors to -1.
	dst := make([]int16, 1)
	Axpy(dst, []int16{0}, []int16{1}, -32768)

	if dst[0] != -1 {
		t.Fatalf("Axpy(a=0, b=1, alpha=-32768) = %d, want -1", dst[0])
	}

	// Same for the reference kernel.
	AxpyReference(dst, []int16{0}, []int16{1}, -32768)
	if dst[0] != -1 {
		t.Fatalf("AxpyReference(a=0, b=1, alpha=-32768) = %d, want -1", dst[0])
	}
}

func TestAxpyHalfScale(t *testing.T) {
	// 16384*32767 = 536854528; >>15 = floor(16383.5) = 16383.
	dst := make([]int16, 1)
	Axpy(dst, []int16{0}, []int16{32767}, 16384)

	if dst[0] != 16383 {
		t.Fatalf("Axpy(a=0, b=32767, alpha=16384) = %d, want 16383", dst[0])
	}
}

func TestAxpyFullRangeSaturation(t *testing.T) {
	// 32767 + (32767*32767)>>15 = 32767 + 32766 saturates to 32767.
	dst := make([]int16, 1)
	Axpy(dst, []int16{32767}, []int16{32767}, 32767)

	if dst[0] != 32767 {
		t.Fatalf("saturation case = %d, want 32767", dst[0])
	}
}

func TestAxpyMatchesReference(t *testing.T) {
	sizes := []int{0, 1, 2, 3, 4, 5, 7, 8, 15, 16, 17, 31, 32, 33, 100, 1000}
	alphas := []int16{-32768, -32767, -16384, -1, 0, 1, 16384, 32766, 32767}

	rng := rand.New(rand.NewSource(1))

	for _, n := range sizes {
		t.Run(sizeStr(n), func(t *testing.T) {
			a := make([]int16, n)
			b := make([]int16, n)
			for i := range a {
				a[i] = int16(rng.Intn(65536) - 32768)
				b[i] = int16(rng.Intn(65536) - 32768)
			}

			for _, alpha := range alphas {
				got := make([]int16, n)
				want := make([]int16, n)

				Axpy(got, a, b, alpha)
				axpyRef(want, a, b, alpha)

				for i := range got {
					if got[i] != want[i] {
						t.Fatalf("alpha=%d: Axpy[%d] = %d, want %d (a=%d b=%d)",
							alpha, i, got[i], want[i], a[i], b[i])
					}
				}
			}
		})
	}
}

// TestImplementationsEquivalence is the central correctness gate: every
// registered kernel variant must be bit-exact against the reference
// across random and boundary-value inputs.
func TestImplementationsEquivalence(t *testing.T) {
	impls := Implementations()
	if len(impls) == 0 {
		t.Fatal("no implementations registered")
	}

	boundary := []int16{-32768, -32767, -1, 0, 1, 32766, 32767}
	rng := rand.New(rand.NewSource(2))

	fill := func(v []int16) {
		for i := range v {
			if rng.Intn(4) == 0 {
				v[i] = boundary[rng.Intn(len(boundary))]
			} else {
				v[i] = int16(rng.Intn(65536) - 32768)
			}
		}
	}

	sizes := []int{1, 3, 5, 8, 9, 16, 17, 63, 64, 65, 255, 4096}
	alphas := append([]int16{-32768, 0, 16384, 32767}, int16(rng.Intn(65536)-32768))

	for _, impl := range impls {
		t.Run(impl.Name, func(t *testing.T) {
			for _, n := range sizes {
				a := make([]int16, n)
				b := make([]int16, n)
				fill(a)
				fill(b)

				for _, alpha := range alphas {
					got := make([]int16, n)
					want := make([]int16, n)

					impl.Axpy(got, a, b, alpha)
					axpyRef(want, a, b, alpha)

					for i := range got {
						if got[i] != want[i] {
							t.Fatalf("n=%d alpha=%d: %s[%d] = %d, want %d (a=%d b=%d)",
								n, alpha, impl.Name, i, got[i], want[i], a[i], b[i])
						}
					}

					impl.AddSat(got, a, b)
					for i := range got {
						if want := Saturate(int32(a[i]) + int32(b[i])); got[i] != want {
							t.Fatalf("n=%d: %s AddSat[%d] = %d, want %d", n, impl.Name, i, got[i], want)
						}
					}

					impl.ScaleSat(got, b, alpha)
					for i := range got {
						if want := Saturate((int32(alpha) * int32(b[i])) >> 15); got[i] != want {
							t.Fatalf("n=%d alpha=%d: %s ScaleSat[%d] = %d, want %d",
								n, alpha, impl.Name, i, got[i], want)
						}
					}
				}
			}
		})
	}
}

func TestAddSatSaturates(t *testing.T) {
	dst := make([]int16, 2)
	AddSat(dst, []int16{32767, -32768}, []int16{1, -1})

	if dst[0] != 32767 || dst[1] != -32768 {
		t.Fatalf("AddSat = %v, want [32767 -32768]", dst)
	}
}

func TestScaleSatMostNegativeSquare(t *testing.T) {
	dst := make([]int16, 1)
	ScaleSat(dst, []int16{-32768}, -32768)

	if dst[0] != 32767 {
		t.Fatalf("ScaleSat(-32768, alpha=-32768) = %d, want 32767", dst[0])
	}
}

func TestAxpyPanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Axpy should panic on mismatched lengths")
		}
	}()
	Axpy(make([]int16, 5), make([]int16, 5), make([]int16, 6), 0)
}

func TestAxpyReferencePanicsOnLengthMismatch(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("AxpyReference should panic on mismatched lengths")
		}
	}()
	AxpyReference(make([]int16, 4), make([]int16, 5), make([]int16, 5), 0)
}

func TestImplementationName(t *testing.T) {
	name := ImplementationName()
	if name == "" {
		t.Fatal("ImplementationName returned empty string")
	}

	found := false
	for _, impl := range Implementations() {
		if impl.Name == name {
			found = true
		}
	}

	if !found {
		t.Errorf("selected implementation %q not in Implementations()", name)
	}
}

func sizeStr(n int) string {
	return "n=" + itoa(n)
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
