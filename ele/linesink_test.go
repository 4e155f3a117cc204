package ele

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lpeeterscsiro/ttim/modal"
)

// Test_linesink01 checks that a prescribed line-sink's influence is clipped
// beyond Rzero, mirroring the well's clip behaviour (§4.3).
func Test_linesink01_rzero_clip(tst *testing.T) {

	chk.PrintTitle("linesink01: Rzero clip")

	aq := singleLayerAquifer(tst)
	ls := NewPrescribedLineSink(aq, complex(-1, 0), complex(1, 0), 0, -50, Step)

	ps := []complex128{complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0])}
	ls.Init(ps, modes, 1)

	near := ls.Potinf(0, 1, aq)
	far := ls.Potinf(0, 1e6, aq)

	if cmplx.Abs(near[0][0][0]) == 0 {
		tst.Fatalf("expected nonzero influence near the segment")
	}
	if far[0][0][0] != 0 {
		tst.Errorf("expected zero influence beyond Rzero, got %v", far[0][0][0])
	}
}

// Test_linesink02 checks the segment length and control point are computed
// correctly for an off-origin segment.
func Test_linesink02_geometry(tst *testing.T) {

	chk.PrintTitle("linesink02: segment geometry")

	aq := singleLayerAquifer(tst)
	ls := NewPrescribedLineSink(aq, complex(0, 0), complex(3, 4), 0, -10, Step)

	if got, want := ls.length(), 5.0; got != want {
		tst.Errorf("length() = %v, want %v", got, want)
	}
	x, y := ls.controlPoint()
	if x != 1.5 || y != 2.0 {
		tst.Errorf("controlPoint() = (%v,%v), want (1.5,2.0)", x, y)
	}
}

// Test_linesink03 checks that the Resistance equation's rhs matches hc*T/p
// and that a resistance correction appears in the element's own column.
func Test_linesink03_resistance_equation(tst *testing.T) {

	chk.PrintTitle("linesink03: Resistance equation")

	aq := singleLayerAquifer(tst)
	ls := &LineSink{Base: Base{Aq: aq}, Z1: complex(-1, 0), Z2: complex(1, 0), Layer: 0, Eq: ResistanceEq, Hc: 3, Res: 0.5}

	ps := []complex128{complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0])}
	ls.Init(ps, modes, 1)

	elements := []Element{ls}
	offsets := []int{0}
	block, rhs := ls.Equation(elements, offsets, ps)

	wantRhs := complex(3, 0) * complex(aq.T[0], 0) / ps[0]
	if cmplx.Abs(rhs[0][0]-wantRhs) > 1e-9 {
		tst.Errorf("rhs[0][0] = %v, want %v", rhs[0][0], wantRhs)
	}
	if cmplx.Abs(block[0][0][0]) == 0 {
		tst.Errorf("expected a nonzero coefficient combining potinf and the resistance term")
	}
}
