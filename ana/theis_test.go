package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Test_theis01 checks well-known W(u) reference values (Wenzel 1942 table).
func Test_theis01_well_function_table(tst *testing.T) {

	chk.PrintTitle("theis01: W(u) reference values")

	cases := []struct {
		u, want float64
	}{
		{1e-4, 8.6332},
		{1e-2, 4.0379},
		{1e-1, 1.8229},
		{1.0, 0.21938},
	}
	for _, c := range cases {
		got := wellFunction(c.u)
		if math.Abs(got-c.want)/c.want > 1e-3 {
			tst.Errorf("W(%v) = %v, want %v", c.u, got, c.want)
		}
	}
}

// Test_theis02 checks drawdown decreases with distance and increases with
// pumping time, the qualitative behaviour of the Theis solution.
func Test_theis02_monotonicity(tst *testing.T) {

	chk.PrintTitle("theis02: drawdown monotonicity")

	o := &Theis{}
	o.Init(fun.Prms{&fun.Prm{N: "T", V: 500}, &fun.Prm{N: "S", V: 1e-4}, &fun.Prm{N: "Q", V: 1000}})

	if o.Drawdown(10, 1) <= o.Drawdown(100, 1) {
		tst.Errorf("drawdown should decrease with distance")
	}
	if o.Drawdown(10, 10) <= o.Drawdown(10, 1) {
		tst.Errorf("drawdown should increase with elapsed time")
	}
}
