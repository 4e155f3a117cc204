package ele

import (
	"math"

	"github.com/cpmech/gosl/chk"

	"github.com/lpeeterscsiro/ttim/inp"
)

// EquationKind tags which row-emitter an element's unknowns are wired to,
// mirroring the original's multiple-inheritance equation mix-ins as a tagged
// variant instead of a class hierarchy (§9 "Multiple-inheritance equation
// mix-ins").
type EquationKind int

const (
	PrescribedEq EquationKind = iota // no unknowns: every strength is prescribed (zero value, used by the NewPrescribed* constructors)
	HeadEq
	ResistanceEq
	MscreenEq
	MscreenResEq
	InternalStorageEq
	InternalStorageSlugEq
	HconnEq
)

// neqTotal returns the total number of unknowns implied by offsets and the
// element list (offsets[i]+elements[i].NumUnknowns() for the last element).
func neqTotal(elements []Element, offsets []int) int {
	if len(elements) == 0 {
		return 0
	}
	last := len(elements) - 1
	return offsets[last] + elements[last].NumUnknowns()
}

// newBlockRhs allocates the [nrows][neq][np] block and [nrows][np] rhs Equation
// implementations share.
func newBlockRhs(nrows, neq, np int) (Tensor, [][]complex128) {
	block := make(Tensor, nrows)
	for r := range block {
		block[r] = make([][]complex128, neq)
		for c := range block[r] {
			block[r][c] = make([]complex128, np)
		}
	}
	rhs := make([][]complex128, nrows)
	for r := range rhs {
		rhs[r] = make([]complex128, np)
	}
	return block, rhs
}

// addPotinfLayerRow adds, into matrix row `row` (length neq per p), every
// element's potinflayer contribution at (x,y) for physical layer `layer`,
// scaled by `scale` (a plain real-valued multiplier, e.g. ±1).
func addPotinfLayerRow(row [][]complex128, elements []Element, offsets []int, x, y float64, layer int, scale float64, ps []complex128) {
	s := complex(scale, 0)
	for idx, el := range elements {
		t := el.PotinfLayer(x, y)
		off := offsets[idx]
		for i := range t {
			for j := range ps {
				row[off+i][j] += s * t[i][layer][j]
			}
		}
	}
}

// addPotinfLayerRowScaled is addPotinfLayerRow with a per-Laplace-parameter
// complex scale instead of one real scalar (needed where the row carries an
// explicit factor of p, e.g. the internal-storage casing term).
func addPotinfLayerRowScaled(row [][]complex128, elements []Element, offsets []int, x, y float64, layer int, scales []complex128) {
	for idx, el := range elements {
		t := el.PotinfLayer(x, y)
		off := offsets[idx]
		for i := range t {
			for j := range scales {
				row[off+i][j] += scales[j] * t[i][layer][j]
			}
		}
	}
}

// addStrengthinfLayerRow adds, into matrix row `row`, `el`'s own strengthinflayer
// contribution (restricted to the columns belonging to `el`) for layer `layer`,
// scaled by `scale`; used for the "own diagonal" resistance correction (§4.3).
func addStrengthinfLayerRow(row [][]complex128, el Element, offset, layer int, scale float64) {
	s := complex(scale, 0)
	t := el.StrengthinfLayer()
	for i := range t {
		for j := range t[i][layer] {
			row[offset+i][j] += s * t[i][layer][j]
		}
	}
}

// addStrengthinfLayerColumn is addStrengthinfLayerRow restricted to one of el's
// own unknown columns (col, 0-based within el), for elements like LineSinkDitch
// where only one segment's own strength enters a given row's resistance term.
func addStrengthinfLayerColumn(row [][]complex128, el Element, offset, col, layer int, scale float64) {
	s := complex(scale, 0)
	t := el.StrengthinfLayer()
	for j := range t[col][layer] {
		row[offset+col][j] += s * t[col][layer][j]
	}
}

// ownIndex finds an element's position within elements (by identity), panics if
// absent: every emitter is always called by an element present in its own model.
func ownIndex(elements []Element, self Element) int {
	for i, el := range elements {
		if el == self {
			return i
		}
	}
	chk.Panic("ele: element not found in its own element list")
	return -1
}

// EmitHead builds the Head equation (§4.3): potinflayer at the control point for
// the element's one layer, rhs = h_c·T/p.
func EmitHead(self Element, elements []Element, offsets []int, ps []complex128, aq *inp.Aquifer, x, y float64, layer int, hc float64) (Tensor, [][]complex128) {
	neq := neqTotal(elements, offsets)
	np := len(ps)
	block, rhs := newBlockRhs(1, neq, np)
	addPotinfLayerRow(block[0], elements, offsets, x, y, layer, 1, ps)
	T := complex(aq.T[layer], 0)
	for j, p := range ps {
		rhs[0][j] = complex(hc, 0) * T / p
	}
	return block, rhs
}

// EmitResistance builds the Resistance equation (§4.3): head minus c·strength
// (evaluated via the element's own strengthinflayer) equals h_c.
func EmitResistance(self Element, elements []Element, offsets []int, ps []complex128, aq *inp.Aquifer, x, y float64, layer int, hc, res float64) (Tensor, [][]complex128) {
	neq := neqTotal(elements, offsets)
	np := len(ps)
	block, rhs := newBlockRhs(1, neq, np)
	addPotinfLayerRow(block[0], elements, offsets, x, y, layer, 1, ps)
	selfIdx := ownIndex(elements, self)
	addStrengthinfLayerRow(block[0], self, offsets[selfIdx], layer, -res*aq.T[layer]/aq.Haq[layer])
	T := complex(aq.T[layer], 0)
	for j, p := range ps {
		rhs[0][j] = complex(hc, 0) * T / p
	}
	return block, rhs
}

// EmitMscreen builds the multi-screen, uniform-head, total-Q equation (§4.3):
// len(layers)-1 head-difference rows between adjacent screened layers, plus one
// row Σ strengths = Qtot/p. The rows enforce h_ℓ − h_{ℓ+1} = 0, so each
// layer's potinflayer contribution is divided by that layer's own T before
// differencing — skipping this would enforce potential equality instead of
// head equality whenever the two screened layers have different T.
func EmitMscreen(self Element, elements []Element, offsets []int, ps []complex128, aq *inp.Aquifer, x, y float64, layers []int, qtot float64) (Tensor, [][]complex128) {
	neq := neqTotal(elements, offsets)
	np := len(ps)
	n := len(layers)
	block, rhs := newBlockRhs(n, neq, np)
	for k := 0; k < n-1; k++ {
		addPotinfLayerRow(block[k], elements, offsets, x, y, layers[k], 1/aq.T[layers[k]], ps)
		addPotinfLayerRow(block[k], elements, offsets, x, y, layers[k+1], -1/aq.T[layers[k+1]], ps)
		// rhs[k] stays zero
	}
	selfIdx := ownIndex(elements, self)
	off := offsets[selfIdx]
	last := n - 1
	for i := 0; i < n; i++ {
		for j := range ps {
			block[last][off+i][j] += 1
		}
	}
	for j, p := range ps {
		rhs[last][j] = complex(qtot, 0) / p
	}
	return block, rhs
}

// EmitMscreenRes builds the multi-screen-with-resistance equation (§4.3): like
// Mscreen, but each head-difference row is corrected by the per-layer
// resistance times that layer's own strength (res has length len(layers)).
func EmitMscreenRes(self Element, elements []Element, offsets []int, ps []complex128, aq *inp.Aquifer, x, y float64, layers []int, qtot float64, res []float64) (Tensor, [][]complex128) {
	block, rhs := EmitMscreen(self, elements, offsets, ps, aq, x, y, layers, qtot)
	selfIdx := ownIndex(elements, self)
	off := offsets[selfIdx]
	for k := 0; k < len(layers)-1; k++ {
		scale := -res[k] * aq.T[layers[k]] / aq.Haq[layers[k]]
		addStrengthinfLayerRow(block[k], self, off, layers[k], scale)
	}
	return block, rhs
}

// EmitInternalStorage builds the internal-storage equation (§4.3): Mscreen-style
// head-difference rows, with the last row's total-discharge equation corrected
// by the well casing's own storage, π·rc²·p·h_top (h_top is the head, not the
// potential, at the well's own control point in its top screened layer).
func EmitInternalStorage(self Element, elements []Element, offsets []int, ps []complex128, aq *inp.Aquifer, x, y float64, layers []int, qtot, rc float64, slug bool) (Tensor, [][]complex128) {
	block, rhs := EmitMscreen(self, elements, offsets, ps, aq, x, y, layers, qtot)
	last := len(layers) - 1

	area := rc * rc * math.Pi
	scales := make([]complex128, len(ps))
	for j, p := range ps {
		scales[j] = complex(-area, 0) * p / complex(aq.T[layers[0]], 0)
	}
	addPotinfLayerRowScaled(block[last], elements, offsets, x, y, layers[0], scales)

	for j, p := range ps {
		if slug {
			rhs[last][j] = complex(qtot, 0)
		} else {
			rhs[last][j] = complex(qtot, 0) / p
		}
	}
	return block, rhs
}

// EmitHconn builds the Hconn (layer connector, net Q = 0) equation (§4.3): a
// cumulative head-drop accumulation using `disinf[0:i+1]` (cumulative from
// layer 0 through row i), following the physical derivation of the resistive
// drop across stacked connectors rather than a single layer's own strength.
// The resistive term is res[i]*disinf, with no T/H factor: res already
// carries the connector's resistance in head-drop-per-discharge units.
// TODO: revisit if a reference case ever disagrees with this reading.
func EmitHconn(self Element, elements []Element, offsets []int, ps []complex128, aq *inp.Aquifer, x, y float64, layers []int, res []float64) (Tensor, [][]complex128) {
	neq := neqTotal(elements, offsets)
	np := len(ps)
	n := len(layers)
	block, rhs := newBlockRhs(n, neq, np)
	selfIdx := ownIndex(elements, self)
	off := offsets[selfIdx]
	t := self.StrengthinfLayer()
	for i := 0; i < n-1; i++ {
		addPotinfLayerRow(block[i], elements, offsets, x, y, layers[i], 1/aq.T[layers[i]], ps)
		addPotinfLayerRow(block[i], elements, offsets, x, y, layers[i+1], -1/aq.T[layers[i+1]], ps)
		scale := complex(-res[i], 0)
		for k := 0; k <= i; k++ {
			for j := range ps {
				block[i][off+k][j] += scale * t[k][layers[i]][j]
			}
		}
	}
	last := n - 1
	for i := 0; i < n; i++ {
		for j := range ps {
			block[last][off+i][j] += 1
		}
	}
	// rhs stays zero: net discharge across the connector is zero
	return block, rhs
}
