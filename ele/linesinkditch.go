package ele

import (
	"math"
	"math/cmplx"

	"github.com/lpeeterscsiro/ttim/bessel"
	"github.com/lpeeterscsiro/ttim/inp"
	"github.com/lpeeterscsiro/ttim/modal"
)

// LineSinkDitch is a string of contiguous line-sink segments that share one
// unknown head and drain a single specified total discharge, modelling a
// ditch or drain (§12 supplemented feature, not present in the distilled
// spec's element list but implemented by the original as ElementsLineSink
// with a shared parameter). Points has N vertices describing N-1 segments.
type LineSinkDitch struct {
	Base
	Points []complex128
	Layer  int
	Res    []float64 // per-segment resistance, len = len(Points)-1; nil means no resistance
	Qtot   float64
}

var _ Element = (*LineSinkDitch)(nil)

// NewLineSinkDitch builds a ditch with N-1 segments and one shared unknown head.
func NewLineSinkDitch(aq *inp.Aquifer, points []complex128, layer int, qtot float64, res []float64) *LineSinkDitch {
	return &LineSinkDitch{Base: Base{Aq: aq}, Points: points, Layer: layer, Res: res, Qtot: qtot}
}

func (d *LineSinkDitch) nseg() int { return len(d.Points) - 1 }

// NumUnknowns implements Element: one strength per segment.
func (d *LineSinkDitch) NumUnknowns() int { return d.nseg() }

// Init implements Element.Init.
func (d *LineSinkDitch) Init(p []complex128, modes []*modal.Modes, npin int) {
	d.Base.Init(p, modes, npin)
}

func (d *LineSinkDitch) segment(i int) (complex128, complex128) {
	return d.Points[i], d.Points[i+1]
}

func (d *LineSinkDitch) segLength(i int) float64 {
	z1, z2 := d.segment(i)
	return cmplx.Abs(z2 - z1)
}

func (d *LineSinkDitch) controlPoint(i int) (float64, float64) {
	z1, z2 := d.segment(i)
	mid := (z1 + z2) / 2
	return real(mid), imag(mid)
}

// Potinf implements Element.Potinf: each of the N-1 parameters is the total
// discharge of its own segment, so segment i's influence is the line-sink
// kernel over that segment with no flow coefficient applied, the same as a
// Slug LineSink over it (§4.3 line-sink kernel, §12 ditch).
func (d *LineSinkDitch) Potinf(x, y float64, aq *inp.Aquifer) Tensor {
	np := len(d.Modes)
	naq := d.Aq.Naq
	nseg := d.nseg()
	out := NewTensor(nseg, naq, np)
	if !d.SameAquifer(aq) {
		return out
	}

	for si := 0; si < nseg; si++ {
		z1, z2 := d.segment(si)
		length := d.segLength(si)
		for j := 0; j < np; j++ {
			m := d.Modes[j]
			start := d.Modes[d.intervalStart(j)]
			for mi := 0; mi < naq; mi++ {
				clipR := d.Aq.Rzero * cmplx.Abs(start.Lab[mi])
				za, zb, n := bessel.CircleLineIntersection(z1, z2, complex(x, y), clipR)
				if n == 0 {
					continue
				}
				integral := make([]complex128, 1)
				bessel.K0Line(x, y, za, zb, []complex128{m.Lab[mi]}, integral)
				coef := -1 / (2 * math.Pi) * m.Lab[mi] / complex(length, 0)
				out[si][mi][j] = coef * integral[0] * m.C[d.Layer][mi]
			}
		}
	}
	return out
}

// Dischargeinf implements Element.Dischargeinf.
func (d *LineSinkDitch) Dischargeinf() Tensor {
	np := len(d.Modes)
	naq := d.Aq.Naq
	nseg := d.nseg()
	out := NewTensor(nseg, naq, np)
	for j := 0; j < np; j++ {
		m := d.Modes[j]
		for mi := 0; mi < naq; mi++ {
			for si := 0; si < nseg; si++ {
				out[si][mi][j] = m.C[d.Layer][mi]
			}
		}
	}
	return out
}

// Potential implements Element.Potential.
func (d *LineSinkDitch) Potential(x, y float64, aq *inp.Aquifer) [][]complex128 {
	return SumParameters(d.Params, d.PotinfLayer(x, y))
}

// PotinfLayer implements Element.PotinfLayer.
func (d *LineSinkDitch) PotinfLayer(x, y float64) Tensor {
	return d.ProjectLayers(d.Potinf(x, y, d.Aq))
}

// StrengthinfLayer implements Element.StrengthinfLayer.
func (d *LineSinkDitch) StrengthinfLayer() Tensor {
	return d.ProjectLayers(d.Dischargeinf())
}

// Equation implements Element.Equation (§12): N-2 equal-head rows between
// adjacent segment control points (with an optional per-segment resistance
// correction), then one row Σ segment strengths = Qtot/p.
func (d *LineSinkDitch) Equation(elements []Element, offsets []int, ps []complex128) (Tensor, [][]complex128) {
	neq := neqTotal(elements, offsets)
	np := len(ps)
	nseg := d.nseg()
	block, rhs := newBlockRhs(nseg, neq, np)
	selfIdx := ownIndex(elements, d)
	off := offsets[selfIdx]

	for i := 0; i < nseg-1; i++ {
		xi, yi := d.controlPoint(i)
		xj, yj := d.controlPoint(i + 1)
		addPotinfLayerRow(block[i], elements, offsets, xi, yi, d.Layer, 1, ps)
		addPotinfLayerRow(block[i], elements, offsets, xj, yj, d.Layer, -1, ps)
		if d.Res != nil {
			scaleI := -d.Res[i] * d.Aq.T[d.Layer] / d.Aq.Haq[d.Layer]
			addStrengthinfLayerColumn(block[i], d, off, i, d.Layer, scaleI)
			scaleJ := d.Res[i+1] * d.Aq.T[d.Layer] / d.Aq.Haq[d.Layer]
			addStrengthinfLayerColumn(block[i], d, off, i+1, d.Layer, scaleJ)
		}
		// rhs[i] stays zero
	}

	last := nseg - 1
	for i := 0; i < nseg; i++ {
		for j := range ps {
			block[last][off+i][j] += 1
		}
	}
	for j, p := range ps {
		rhs[last][j] = complex(d.Qtot, 0) / p
	}
	return block, rhs
}
