package laplace

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_dehoog01 checks Testable Property 7 (§8): for the known Laplace pair
// H(p) = 1/(p+a) <-> h(t) = e^{-a t}, the inverse transform recovers h(t) on a
// logarithmic time grid within 1e-6 relative error.
func Test_dehoog01(tst *testing.T) {

	chk.PrintTitle("dehoog01: known Laplace pair 1/(p+a) <-> e^{-at}")

	const a = 2.0
	tmin, tmax, M := 1e-2, 1e2, 12

	grid, err := NewGrid(tmin, tmax, M)
	if err != nil {
		tst.Fatalf("NewGrid failed: %v", err)
	}

	pot := make([]complex128, grid.Np())
	for i, p := range grid.P {
		pot[i] = 1 / (p + complex(a, 0))
	}

	times := []float64{0.02, 0.1, 0.5, 1, 5, 20, 80}
	values, anyOutside := Invert(grid, pot, times)
	if anyOutside {
		tst.Fatalf("unexpected out-of-window time")
	}

	for i, t := range times {
		want := math.Exp(-a * t)
		got := values[i]
		relErr := math.Abs(got-want) / want
		if relErr > 1e-6 {
			tst.Errorf("t=%v: got %v, want %v (relErr=%v)", t, got, want, relErr)
		}
	}
}

// Test_dehoog02 checks the §4.2 zero-block shortcuts: a block whose first sample is
// negligible, or that contains an exact zero, must invert to exactly zero.
func Test_dehoog02(tst *testing.T) {

	chk.PrintTitle("dehoog02: zero-block shortcuts")

	M := 6
	n := 2*M + 1
	fp := make([]complex128, n)
	for i := range fp {
		fp[i] = complex(1e-25, 0)
	}
	tb := buildDeHoogTable(fp, 0, 1.0, M)
	if !tb.zero {
		tst.Fatalf("expected zero table for negligible first sample")
	}
	if v := tb.Evaluate(0.5); v != 0 {
		tst.Fatalf("expected 0, got %v", v)
	}

	fp2 := make([]complex128, n)
	for i := range fp2 {
		fp2[i] = complex(1, 0)
	}
	fp2[3] = 0
	tb2 := buildDeHoogTable(fp2, 0, 1.0, M)
	if !tb2.zero {
		tst.Fatalf("expected zero table when a sample is exactly zero")
	}
}

// Test_dehoog03 checks Invert reports anyOutside for a time beyond tmax.
func Test_dehoog03(tst *testing.T) {

	chk.PrintTitle("dehoog03: out-of-window time is flagged")

	grid, err := NewGrid(1e-2, 1e1, 8)
	if err != nil {
		tst.Fatalf("NewGrid failed: %v", err)
	}
	pot := make([]complex128, grid.Np())
	for i, p := range grid.P {
		pot[i] = 1 / (p + 1)
	}
	_, anyOutside := Invert(grid, pot, []float64{1e3})
	if !anyOutside {
		tst.Fatalf("expected anyOutside=true")
	}
}
