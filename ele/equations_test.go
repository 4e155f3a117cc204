package ele

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lpeeterscsiro/ttim/inp"
	"github.com/lpeeterscsiro/ttim/modal"
)

// Test_equations01 checks neqTotal sums NumUnknowns across a mixed element
// list and that newBlockRhs allocates the expected shape.
func Test_equations01_neqtotal_and_alloc(tst *testing.T) {

	chk.PrintTitle("equations01: neqTotal and newBlockRhs shapes")

	aq := singleLayerAquifer(tst)
	w1 := &Well{Base: Base{Aq: aq}, Layers: []int{0}, Eq: HeadEq}
	w2 := &Well{Base: Base{Aq: aq}, Layers: []int{0, 0}, Eq: MscreenEq}
	elements := []Element{w1, w2}
	offsets := []int{0, 1}

	if got, want := neqTotal(elements, offsets), 3; got != want {
		tst.Errorf("neqTotal = %d, want %d", got, want)
	}

	block, rhs := newBlockRhs(2, 3, 4)
	if len(block) != 2 || len(block[0]) != 3 || len(block[0][0]) != 4 {
		tst.Fatalf("unexpected block shape: %d x %d x %d", len(block), len(block[0]), len(block[0][0]))
	}
	if len(rhs) != 2 || len(rhs[0]) != 4 {
		tst.Fatalf("unexpected rhs shape: %d x %d", len(rhs), len(rhs[0]))
	}
}

// Test_equations02 checks EmitMscreen's head-difference rows have zero rhs and
// its total-discharge row sums to Qtot/p across both of the well's columns.
func Test_equations02_mscreen(tst *testing.T) {

	chk.PrintTitle("equations02: Mscreen rows")

	aq, err := newTwoLayerAquifer()
	if err != nil {
		tst.Fatalf("aquifer build failed: %v", err)
	}
	w := &Well{Base: Base{Aq: aq}, X: 0, Y: 0, Rw: 0.1, Layers: []int{0, 1}, Eq: MscreenEq, Qtot: -80}

	ps := []complex128{complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0])}
	w.Init(ps, modes, 1)

	elements := []Element{w}
	offsets := []int{0}
	block, rhs := w.Equation(elements, offsets, ps)

	if rhs[0][0] != 0 {
		tst.Errorf("head-difference row rhs = %v, want 0", rhs[0][0])
	}
	wantRhs := complex(-80, 0) / ps[0]
	if cmplx.Abs(rhs[1][0]-wantRhs) > 1e-9 {
		tst.Errorf("total-discharge row rhs = %v, want %v", rhs[1][0], wantRhs)
	}
	if block[1][0][0] != 1 || block[1][1][0] != 1 {
		tst.Errorf("total-discharge row should have unit coefficients, got %v %v", block[1][0][0], block[1][1][0])
	}

	// Head-difference row values: aq's two layers have different T (kaq*Haq
	// differ), so the row must divide each column's own-layer potinflayer by
	// that layer's T before differencing, else it enforces potential equality
	// instead of head equality.
	if aq.T[0] == aq.T[1] {
		tst.Fatalf("test aquifer must have differing per-layer T to exercise this row, got T=%v", aq.T)
	}
	t := w.PotinfLayer(w.X, w.Y)
	wantCol0 := t[0][0][0]/complex(aq.T[0], 0) - t[0][1][0]/complex(aq.T[1], 0)
	wantCol1 := t[1][0][0]/complex(aq.T[0], 0) - t[1][1][0]/complex(aq.T[1], 0)
	if cmplx.Abs(block[0][0][0]-wantCol0) > 1e-9 {
		tst.Errorf("head-difference row col0 = %v, want %v (head, not potential)", block[0][0][0], wantCol0)
	}
	if cmplx.Abs(block[0][1][0]-wantCol1) > 1e-9 {
		tst.Errorf("head-difference row col1 = %v, want %v (head, not potential)", block[0][1][0], wantCol1)
	}
}

// Test_equations03 checks EmitInternalStorage's head-difference row and its
// casing term both divide by each layer's own T (same differing-T aquifer as
// Test_equations02).
func Test_equations03_internalstorage(tst *testing.T) {

	chk.PrintTitle("equations03: internal-storage rows")

	aq, err := newTwoLayerAquifer()
	if err != nil {
		tst.Fatalf("aquifer build failed: %v", err)
	}
	w := &Well{Base: Base{Aq: aq}, X: 0, Y: 0, Rw: 0.1, Layers: []int{0, 1}, Eq: InternalStorageEq, Qtot: -80, Rc: 0.2}

	ps := []complex128{complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0])}
	w.Init(ps, modes, 1)

	elements := []Element{w}
	offsets := []int{0}
	block, _ := w.Equation(elements, offsets, ps)

	t := w.PotinfLayer(w.X, w.Y)
	wantCol0 := t[0][0][0]/complex(aq.T[0], 0) - t[0][1][0]/complex(aq.T[1], 0)
	if cmplx.Abs(block[0][0][0]-wantCol0) > 1e-9 {
		tst.Errorf("head-difference row col0 = %v, want %v (head, not potential)", block[0][0][0], wantCol0)
	}

	area := w.Rc * w.Rc * 3.141592653589793
	wantCasing := complex(1, 0) - complex(area, 0)*ps[0]*t[0][0][0]/complex(aq.T[0], 0)
	if cmplx.Abs(block[1][0][0]-wantCasing) > 1e-9 {
		tst.Errorf("casing term col0 = %v, want %v (divided by T[layers[0]])", block[1][0][0], wantCasing)
	}
}

// Test_equations04 checks EmitHconn's head-difference row divides by T and its
// resistive correction carries no extraneous T/H factor.
func Test_equations04_hconn(tst *testing.T) {

	chk.PrintTitle("equations04: Hconn rows")

	aq, err := newTwoLayerAquifer()
	if err != nil {
		tst.Fatalf("aquifer build failed: %v", err)
	}
	w := &Well{Base: Base{Aq: aq}, X: 0, Y: 0, Rw: 0.1, Layers: []int{0, 1}, Eq: HconnEq, Res: []float64{2.5, 2.5}}

	ps := []complex128{complex(1.0, 0)}
	modes := []*modal.Modes{modal.Compute(aq, ps[0])}
	w.Init(ps, modes, 1)

	elements := []Element{w}
	offsets := []int{0}
	block, rhs := w.Equation(elements, offsets, ps)

	if rhs[0][0] != 0 {
		tst.Errorf("Hconn head-drop row rhs = %v, want 0", rhs[0][0])
	}

	t := w.PotinfLayer(w.X, w.Y)
	s := w.StrengthinfLayer()
	wantCol0 := t[0][0][0]/complex(aq.T[0], 0) - t[0][1][0]/complex(aq.T[1], 0) - complex(w.Res[0], 0)*s[0][0][0]
	if cmplx.Abs(block[0][0][0]-wantCol0) > 1e-9 {
		tst.Errorf("head-drop row col0 = %v, want %v (head, not potential; res with no T/H factor)", block[0][0][0], wantCol0)
	}
}

func newTwoLayerAquifer() (*inp.Aquifer, error) {
	return inp.NewAquiferMaq([]float64{10, 5}, []float64{12, 10, 7, 5}, []float64{100}, []float64{1e-4, 1e-4}, []float64{1e-6}, "imp", false)
}
