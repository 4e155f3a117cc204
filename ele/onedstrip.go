package ele

import (
	"math/cmplx"

	"github.com/lpeeterscsiro/ttim/inp"
	"github.com/lpeeterscsiro/ttim/modal"
)

// OneDStrip is a one-dimensional source at x=0 with flow confined to the x
// direction, screened in one aquifer layer (§4.3 "OneD strip"). Its right
// boundary at x=L is either impermeable (reflecting) or infinite.
type OneDStrip struct {
	Base
	L           float64 // right-boundary location; Infinite ignores L
	Infinite    bool
	Layer       int
	Eq          EquationKind
	Hc          float64
	Qx          float64 // prescribed discharge at x=0, when the element has no unknowns
}

var _ Element = (*OneDStrip)(nil)

// NewPrescribedOneDStrip builds a strip with a known discharge at x=0.
func NewPrescribedOneDStrip(aq *inp.Aquifer, l float64, infinite bool, layer int, qx float64) *OneDStrip {
	return &OneDStrip{Base: Base{Aq: aq}, L: l, Infinite: infinite, Layer: layer, Qx: qx}
}

// NumUnknowns implements Element.
func (o *OneDStrip) NumUnknowns() int {
	if o.Eq == HeadEq {
		return 1
	}
	return 0
}

// Init implements Element.Init.
func (o *OneDStrip) Init(p []complex128, modes []*modal.Modes, npin int) {
	o.Base.Init(p, modes, npin)
	if o.NumUnknowns() == 0 {
		np := len(p)
		row := make([]complex128, np)
		for j := range row {
			row[j] = complex(o.Qx, 0)
		}
		o.Params = [][]complex128{row}
	}
}

// Potinf implements Element.Potinf — the impermeable/infinite formulas of §4.3.
func (o *OneDStrip) Potinf(x, y float64, aq *inp.Aquifer) Tensor {
	np := len(o.Modes)
	naq := o.Aq.Naq
	out := NewTensor(1, naq, np)
	if !o.SameAquifer(aq) {
		return out
	}
	if x < 0 {
		return out // the strip only extends in x >= 0 (§4.3)
	}

	for j := 0; j < np; j++ {
		m := o.Modes[j]
		start := o.Modes[o.intervalStart(j)]
		p := o.P[j]
		for mi := 0; mi < naq; mi++ {
			lab := m.Lab[mi]
			if x/cmplx.Abs(start.Lab[mi]) >= 20 {
				continue
			}
			var phi complex128
			if o.Infinite {
				phi = (lab / p) * cmplx.Exp(-complex(x, 0)/lab)
			} else {
				l := complex(o.L, 0)
				a := lab / (1 - cmplx.Exp(-2*l/lab))
				b := cmplx.Exp(-l/lab) * a
				phi = (a*cmplx.Exp(-complex(x, 0)/lab) + b*cmplx.Exp((complex(x, 0)-l)/lab)) * p
			}
			out[0][mi][j] = phi * m.C[o.Layer][mi]
		}
	}
	return out
}

// Dischargeinf implements Element.Dischargeinf.
func (o *OneDStrip) Dischargeinf() Tensor {
	np := len(o.Modes)
	naq := o.Aq.Naq
	out := NewTensor(1, naq, np)
	for j := 0; j < np; j++ {
		m := o.Modes[j]
		for mi := 0; mi < naq; mi++ {
			out[0][mi][j] = m.C[o.Layer][mi]
		}
	}
	return out
}

// Potential implements Element.Potential.
func (o *OneDStrip) Potential(x, y float64, aq *inp.Aquifer) [][]complex128 {
	return SumParameters(o.Params, o.PotinfLayer(x, y))
}

// PotinfLayer implements Element.PotinfLayer.
func (o *OneDStrip) PotinfLayer(x, y float64) Tensor {
	return o.ProjectLayers(o.Potinf(x, y, o.Aq))
}

// StrengthinfLayer implements Element.StrengthinfLayer.
func (o *OneDStrip) StrengthinfLayer() Tensor {
	return o.ProjectLayers(o.Dischargeinf())
}

// Equation implements Element.Equation.
func (o *OneDStrip) Equation(elements []Element, offsets []int, ps []complex128) (Tensor, [][]complex128) {
	if o.Eq == HeadEq {
		return EmitHead(o, elements, offsets, ps, o.Aq, 0, 0, o.Layer, o.Hc)
	}
	return nil, nil
}
