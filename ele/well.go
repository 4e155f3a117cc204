package ele

import (
	"math"
	"math/cmplx"

	"github.com/lpeeterscsiro/ttim/bessel"
	"github.com/lpeeterscsiro/ttim/inp"
	"github.com/lpeeterscsiro/ttim/modal"
)

// Well is a point source/sink screened in one or more aquifer layers (§4.3).
// Its N_param equals len(Layers): one discharge strength per screened layer.
type Well struct {
	Base
	X, Y   float64
	Rw     float64
	Layers []int    // screened physical layers, len = N_param
	Flow   FlowKind // Step (constant-rate pumping) or Slug (instantaneous)
	Eq     EquationKind
	Hc     float64   // target head, for HeadEq/ResistanceEq
	Qtot   float64   // total discharge, for MscreenEq/.../InternalStorage*Eq
	Q      []float64 // per-layer prescribed discharge, when the well has no unknowns
	Res    []float64 // per-layer resistance (ResistanceEq uses Res[0]; MscreenResEq one per layer)
	Rc     float64   // well-casing radius, for InternalStorage{,Slug}Eq
}

var _ Element = (*Well)(nil)

// NewPrescribedWell builds a well whose per-layer discharges Q are already
// known (no unknowns, no row contributed to the global system) — the common
// case of a pumping well with a specified rate.
func NewPrescribedWell(aq *inp.Aquifer, x, y, rw float64, layers []int, q []float64, flow FlowKind) *Well {
	w := &Well{Base: Base{Aq: aq}, X: x, Y: y, Rw: rw, Layers: layers, Flow: flow, Q: q}
	return w
}

// NumUnknowns implements Element.
func (w *Well) NumUnknowns() int {
	switch w.Eq {
	case HeadEq, ResistanceEq:
		return 1
	case MscreenEq, MscreenResEq, InternalStorageEq, InternalStorageSlugEq, HconnEq:
		return len(w.Layers)
	}
	return 0
}

// Init implements Element.Init; a prescribed well (no unknowns) has its Params
// filled immediately from Q since it never passes through the global solve.
func (w *Well) Init(p []complex128, modes []*modal.Modes, npin int) {
	w.Base.Init(p, modes, npin)
	if w.NumUnknowns() == 0 {
		np := len(p)
		w.Params = make([][]complex128, len(w.Q))
		for i, q := range w.Q {
			row := make([]complex128, np)
			for j := range row {
				row[j] = complex(q, 0)
			}
			w.Params[i] = row
		}
	}
}

// Potinf implements Element.Potinf — the Well influence formula of §4.3:
//
//	φ = -(1/2π) · (ℓ/rw) / K1(rw/ℓ) · K0(r/ℓ) · flowcoef(p) · C[mode][layer]
//
// clipped to zero once r/|ℓ at the interval's first sample| >= aq.Rzero.
func (w *Well) Potinf(x, y float64, aq *inp.Aquifer) Tensor {
	np := len(w.Modes)
	naq := w.Aq.Naq
	nparam := len(w.Layers)
	out := NewTensor(nparam, naq, np)
	if !w.SameAquifer(aq) {
		return out
	}

	r := math.Hypot(x-w.X, y-w.Y)
	if r < w.Rw {
		r = w.Rw
	}

	for j := 0; j < np; j++ {
		m := w.Modes[j]
		start := w.Modes[w.intervalStart(j)]
		fc := w.Flow.FlowCoef(w.P[j])
		for mi := 0; mi < naq; mi++ {
			lab := m.Lab[mi]
			clipLab := start.Lab[mi]
			if r/cmplx.Abs(clipLab) >= w.Aq.Rzero {
				continue
			}
			coef := -1 / (2 * math.Pi) * (lab / complex(w.Rw, 0)) / bessel.K1(complex(w.Rw, 0)/lab) * bessel.K0(complex(r, 0)/lab) * fc
			for pi := 0; pi < nparam; pi++ {
				out[pi][mi][j] = coef * m.C[w.Layers[pi]][mi]
			}
		}
	}
	return out
}

// Dischargeinf implements Element.Dischargeinf — the modal projection of a unit
// point source in each screened layer is just that layer's column of C (§4.3).
func (w *Well) Dischargeinf() Tensor {
	np := len(w.Modes)
	naq := w.Aq.Naq
	nparam := len(w.Layers)
	out := NewTensor(nparam, naq, np)
	for j := 0; j < np; j++ {
		m := w.Modes[j]
		for mi := 0; mi < naq; mi++ {
			for pi := 0; pi < nparam; pi++ {
				out[pi][mi][j] = m.C[w.Layers[pi]][mi]
			}
		}
	}
	return out
}

// Potential implements Element.Potential.
func (w *Well) Potential(x, y float64, aq *inp.Aquifer) [][]complex128 {
	return SumParameters(w.Params, w.PotinfLayer(x, y))
}

// PotinfLayer implements Element.PotinfLayer.
func (w *Well) PotinfLayer(x, y float64) Tensor {
	return w.ProjectLayers(w.Potinf(x, y, w.Aq))
}

// StrengthinfLayer implements Element.StrengthinfLayer.
func (w *Well) StrengthinfLayer() Tensor {
	return w.ProjectLayers(w.Dischargeinf())
}

// Equation implements Element.Equation by dispatching to the shared row
// emitters (§4.3) according to w.Eq.
func (w *Well) Equation(elements []Element, offsets []int, ps []complex128) (Tensor, [][]complex128) {
	switch w.Eq {
	case HeadEq:
		return EmitHead(w, elements, offsets, ps, w.Aq, w.X, w.Y, w.Layers[0], w.Hc)
	case ResistanceEq:
		return EmitResistance(w, elements, offsets, ps, w.Aq, w.X, w.Y, w.Layers[0], w.Hc, w.Res[0])
	case MscreenEq:
		return EmitMscreen(w, elements, offsets, ps, w.Aq, w.X, w.Y, w.Layers, w.Qtot)
	case MscreenResEq:
		return EmitMscreenRes(w, elements, offsets, ps, w.Aq, w.X, w.Y, w.Layers, w.Qtot, w.Res)
	case InternalStorageEq:
		return EmitInternalStorage(w, elements, offsets, ps, w.Aq, w.X, w.Y, w.Layers, w.Qtot, w.Rc, false)
	case InternalStorageSlugEq:
		return EmitInternalStorage(w, elements, offsets, ps, w.Aq, w.X, w.Y, w.Layers, w.Qtot, w.Rc, true)
	case HconnEq:
		return EmitHconn(w, elements, offsets, ps, w.Aq, w.X, w.Y, w.Layers, w.Res)
	}
	return nil, nil
}
