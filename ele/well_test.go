package ele

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lpeeterscsiro/ttim/inp"
	"github.com/lpeeterscsiro/ttim/modal"
)

func singleLayerAquifer(tst *testing.T) *inp.Aquifer {
	tst.Helper()
	aq, err := inp.NewAquiferMaq([]float64{10}, []float64{10, 0}, nil, []float64{1e-4}, nil, "imp", false)
	if err != nil {
		tst.Fatalf("NewAquiferMaq failed: %v", err)
	}
	return aq
}

// Test_well01 checks that a prescribed well's Potinf decays with distance and
// is clipped to zero beyond the Rzero radius (§4.3, GLOSSARY R_zero).
func Test_well01_rzero_clip(tst *testing.T) {

	chk.PrintTitle("well01: Rzero clip and monotone decay")

	aq := singleLayerAquifer(tst)
	w := NewPrescribedWell(aq, 0, 0, 0.1, []int{0}, []float64{-100}, Step)

	ps := []complex128{complex(1.0, 0), complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0]), modal.Compute(aq, ps[1])}
	w.Init(ps, modes, 2)

	near := w.Potinf(1, 0, aq)
	far := w.Potinf(1e6, 0, aq)

	if cmplx.Abs(near[0][0][0]) == 0 {
		tst.Fatalf("expected nonzero influence near the well")
	}
	if far[0][0][0] != 0 {
		tst.Errorf("expected zero influence beyond Rzero, got %v", far[0][0][0])
	}
	if cmplx.Abs(near[0][0][0]) <= cmplx.Abs(w.Potinf(10, 0, aq)[0][0][0]) {
		tst.Errorf("influence should decay with distance from the well")
	}
}

// Test_well02 checks a prescribed well's Params are filled directly from Q
// without entering the global solve (NumUnknowns()==0).
func Test_well02_prescribed_params(tst *testing.T) {

	chk.PrintTitle("well02: prescribed well fills Params from Q")

	aq := singleLayerAquifer(tst)
	w := NewPrescribedWell(aq, 0, 0, 0.1, []int{0}, []float64{-500}, Step)
	if w.NumUnknowns() != 0 {
		tst.Fatalf("expected 0 unknowns for a prescribed well")
	}

	ps := []complex128{complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0])}
	w.Init(ps, modes, 1)

	if len(w.Params) != 1 {
		tst.Fatalf("expected one parameter row, got %d", len(w.Params))
	}
	if real(w.Params[0][0]) != -500 {
		tst.Errorf("Params[0][0] = %v, want -500", w.Params[0][0])
	}
}

// Test_well03 checks FlowCoef matches the Step/Slug definitions of §4.3.
func Test_well03_flowcoef(tst *testing.T) {

	chk.PrintTitle("well03: FlowKind.FlowCoef")

	p := complex(2.5, -1.0)
	if Step.FlowCoef(p) != 1/p {
		tst.Errorf("Step.FlowCoef should be 1/p")
	}
	if Slug.FlowCoef(p) != 1 {
		tst.Errorf("Slug.FlowCoef should be 1")
	}
}

// Test_well04 checks a HeadEq well's Equation produces one row whose rhs
// matches hc*T/p exactly (§4.3).
func Test_well04_head_equation(tst *testing.T) {

	chk.PrintTitle("well04: Head equation rhs")

	aq := singleLayerAquifer(tst)
	w := &Well{Base: Base{Aq: aq}, X: 0, Y: 0, Rw: 0.1, Layers: []int{0}, Eq: HeadEq, Hc: 5}

	ps := []complex128{complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0])}
	w.Init(ps, modes, 1)

	elements := []Element{w}
	offsets := []int{0}
	block, rhs := w.Equation(elements, offsets, ps)

	wantRhs := complex(5, 0) * complex(aq.T[0], 0) / ps[0]
	if cmplx.Abs(rhs[0][0]-wantRhs) > 1e-9 {
		tst.Errorf("rhs[0][0] = %v, want %v", rhs[0][0], wantRhs)
	}
	if len(block) != 1 || len(block[0]) != 1 {
		tst.Fatalf("expected a 1x1 block, got %dx%d", len(block), len(block[0]))
	}
	if cmplx.Abs(block[0][0][0]) == 0 {
		tst.Errorf("expected a nonzero coefficient in the well's own column")
	}
}
