package ele

import (
	"math"
	"math/cmplx"

	"github.com/lpeeterscsiro/ttim/bessel"
	"github.com/lpeeterscsiro/ttim/inp"
	"github.com/lpeeterscsiro/ttim/modal"
)

// LineSink is a segment source/sink screened in one aquifer layer (§4.3). Its
// one parameter is the segment's total discharge (matching the Well convention
// of a parameter being a physical discharge, not a per-length density), so the
// head response is normalised by the segment length.
type LineSink struct {
	Base
	Z1, Z2 complex128
	Layer  int
	Flow   FlowKind
	Eq     EquationKind
	Hc     float64
	Q      float64 // prescribed discharge, when the element has no unknowns
	Res    float64
}

var _ Element = (*LineSink)(nil)

// NewPrescribedLineSink builds a line-sink with a known total discharge.
func NewPrescribedLineSink(aq *inp.Aquifer, z1, z2 complex128, layer int, q float64, flow FlowKind) *LineSink {
	return &LineSink{Base: Base{Aq: aq}, Z1: z1, Z2: z2, Layer: layer, Flow: flow, Q: q}
}

// NumUnknowns implements Element.
func (l *LineSink) NumUnknowns() int {
	switch l.Eq {
	case HeadEq, ResistanceEq:
		return 1
	}
	return 0
}

// Init implements Element.Init.
func (l *LineSink) Init(p []complex128, modes []*modal.Modes, npin int) {
	l.Base.Init(p, modes, npin)
	if l.NumUnknowns() == 0 {
		np := len(p)
		row := make([]complex128, np)
		for j := range row {
			row[j] = complex(l.Q, 0)
		}
		l.Params = [][]complex128{row}
	}
}

// length is the segment's physical length.
func (l *LineSink) length() float64 { return cmplx.Abs(l.Z2 - l.Z1) }

// Potinf implements Element.Potinf: the line-integral form of K0 over the
// segment, clipped to the Rzero disc around (x,y), normalised by the segment
// length so the one parameter reads as a total discharge (§4.3 "Line-sink").
func (l *LineSink) Potinf(x, y float64, aq *inp.Aquifer) Tensor {
	np := len(l.Modes)
	naq := l.Aq.Naq
	out := NewTensor(1, naq, np)
	if !l.SameAquifer(aq) {
		return out
	}

	length := l.length()
	for j := 0; j < np; j++ {
		m := l.Modes[j]
		start := l.Modes[l.intervalStart(j)]
		fc := l.Flow.FlowCoef(l.P[j])
		for mi := 0; mi < naq; mi++ {
			clipR := l.Aq.Rzero * cmplx.Abs(start.Lab[mi])
			za, zb, n := bessel.CircleLineIntersection(l.Z1, l.Z2, complex(x, y), clipR)
			if n == 0 {
				continue
			}
			integral := make([]complex128, 1)
			bessel.K0Line(x, y, za, zb, []complex128{m.Lab[mi]}, integral)
			coef := -1 / (2 * math.Pi) * m.Lab[mi] / complex(length, 0) * fc
			out[0][mi][j] = coef * integral[0] * m.C[l.Layer][mi]
		}
	}
	return out
}

// Dischargeinf implements Element.Dischargeinf.
func (l *LineSink) Dischargeinf() Tensor {
	np := len(l.Modes)
	naq := l.Aq.Naq
	out := NewTensor(1, naq, np)
	for j := 0; j < np; j++ {
		m := l.Modes[j]
		for mi := 0; mi < naq; mi++ {
			out[0][mi][j] = m.C[l.Layer][mi]
		}
	}
	return out
}

// Potential implements Element.Potential.
func (l *LineSink) Potential(x, y float64, aq *inp.Aquifer) [][]complex128 {
	return SumParameters(l.Params, l.PotinfLayer(x, y))
}

// PotinfLayer implements Element.PotinfLayer.
func (l *LineSink) PotinfLayer(x, y float64) Tensor {
	return l.ProjectLayers(l.Potinf(x, y, l.Aq))
}

// StrengthinfLayer implements Element.StrengthinfLayer.
func (l *LineSink) StrengthinfLayer() Tensor {
	return l.ProjectLayers(l.Dischargeinf())
}

// Equation implements Element.Equation.
func (l *LineSink) Equation(elements []Element, offsets []int, ps []complex128) (Tensor, [][]complex128) {
	cx, cy := l.controlPoint()
	switch l.Eq {
	case HeadEq:
		return EmitHead(l, elements, offsets, ps, l.Aq, cx, cy, l.Layer, l.Hc)
	case ResistanceEq:
		return EmitResistance(l, elements, offsets, ps, l.Aq, cx, cy, l.Layer, l.Hc, l.Res)
	}
	return nil, nil
}

// controlPoint is the segment midpoint, where boundary conditions are enforced.
func (l *LineSink) controlPoint() (float64, float64) {
	mid := (l.Z1 + l.Z2) / 2
	return real(mid), imag(mid)
}
