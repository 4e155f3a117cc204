package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Test_hantush01 checks W(u,0) reduces to the Theis well function (a leaky
// aquitard of infinite resistance behaves like a confined aquifer).
func Test_hantush01_reduces_to_theis(tst *testing.T) {

	chk.PrintTitle("hantush01: beta=0 reduces to Theis W(u)")

	for _, u := range []float64{1e-2, 0.1, 1.0} {
		got := leakyWellFunction(u, 0)
		want := wellFunction(u)
		if math.Abs(got-want)/want > 1e-3 {
			tst.Errorf("leakyWellFunction(%v,0) = %v, want %v", u, got, want)
		}
	}
}

// Test_hantush02 checks drawdown stabilises at late time (the hallmark of a
// leaky aquifer: steady-state recharge from the aquitard bounds drawdown,
// unlike the ever-growing Theis confined solution).
func Test_hantush02_late_time_stabilises(tst *testing.T) {

	chk.PrintTitle("hantush02: late-time drawdown stabilises")

	o := &Hantush{}
	o.Init(fun.Prms{&fun.Prm{N: "T", V: 500}, &fun.Prm{N: "S", V: 1e-4}, &fun.Prm{N: "c", V: 2000}, &fun.Prm{N: "Q", V: 1000}})

	s1 := o.Drawdown(50, 1e4)
	s2 := o.Drawdown(50, 1e6)
	if math.Abs(s2-s1)/s1 > 0.05 {
		tst.Errorf("expected late-time drawdown to stabilise: s(1e4)=%v s(1e6)=%v", s1, s2)
	}
}
