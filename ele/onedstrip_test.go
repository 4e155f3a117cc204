package ele

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lpeeterscsiro/ttim/modal"
)

// Test_onedstrip01 checks the infinite-strip formula reduces to zero beyond
// the x/|lab| >= 20 gate and decays monotonically before it (§4.3).
func Test_onedstrip01_infinite(tst *testing.T) {

	chk.PrintTitle("onedstrip01: infinite right boundary")

	aq := singleLayerAquifer(tst)
	o := NewPrescribedOneDStrip(aq, 0, true, 0, -20)

	ps := []complex128{complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0])}
	o.Init(ps, modes, 1)

	near := o.Potinf(0.1, 0, aq)
	far := o.Potinf(1e6, 0, aq)
	if cmplx.Abs(near[0][0][0]) == 0 {
		tst.Fatalf("expected nonzero influence near x=0")
	}
	if far[0][0][0] != 0 {
		tst.Errorf("expected zero influence far from x=0, got %v", far[0][0][0])
	}
	if cmplx.Abs(near[0][0][0]) <= cmplx.Abs(o.Potinf(1, 0, aq)[0][0][0]) {
		tst.Errorf("influence should decay with x")
	}
}

// Test_onedstrip02 checks the impermeable-boundary reflection formula gives a
// finite value at x=0 and x=L (no blow-up for a modest L/lab ratio).
func Test_onedstrip02_impermeable(tst *testing.T) {

	chk.PrintTitle("onedstrip02: impermeable right boundary")

	aq := singleLayerAquifer(tst)
	o := NewPrescribedOneDStrip(aq, 50, false, 0, -20)

	ps := []complex128{complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0])}
	o.Init(ps, modes, 1)

	at0 := o.Potinf(0, 0, aq)
	atL := o.Potinf(50, 0, aq)
	if cmplx.IsNaN(at0[0][0][0]) || cmplx.IsInf(at0[0][0][0]) {
		tst.Errorf("unexpected non-finite value at x=0: %v", at0[0][0][0])
	}
	if cmplx.IsNaN(atL[0][0][0]) || cmplx.IsInf(atL[0][0][0]) {
		tst.Errorf("unexpected non-finite value at x=L: %v", atL[0][0][0])
	}
}

// Test_onedstrip03 checks a strip does not respond for x<0 (§4.3: the strip
// only extends in x>=0).
func Test_onedstrip03_negative_x(tst *testing.T) {

	chk.PrintTitle("onedstrip03: no influence for x<0")

	aq := singleLayerAquifer(tst)
	o := NewPrescribedOneDStrip(aq, 0, true, 0, -20)

	ps := []complex128{complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0])}
	o.Init(ps, modes, 1)

	got := o.Potinf(-1, 0, aq)
	if got[0][0][0] != 0 {
		tst.Errorf("expected zero influence for x<0, got %v", got[0][0][0])
	}
}
