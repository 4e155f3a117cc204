package model

import (
	"gonum.org/v1/gonum/floats"

	"github.com/lpeeterscsiro/ttim/ele"
	"github.com/lpeeterscsiro/ttim/laplace"
)

// LinSpace builds n equally spaced coordinates from lo to hi inclusive, the
// convenience callers use to build the xs/ys axes passed to HeadGrid.
func LinSpace(lo, hi float64, n int) []float64 {
	dst := make([]float64, n)
	return floats.Span(dst, lo, hi)
}

// Potential implements §4.5 "Potential at (x,y)": sum potential over every
// element, already projected onto physical aquifer layers.
func (m *Model) Potential(x, y float64) [][]complex128 {
	naq := m.Aquifer.Naq
	np := m.Grid.Np()
	out := make([][]complex128, naq)
	for l := range out {
		out[l] = make([]complex128, np)
	}
	for _, el := range m.Elements {
		p := el.Potential(x, y, m.Aquifer)
		for l := 0; l < naq; l++ {
			for j := 0; j < np; j++ {
				out[l][j] += p[l][j]
			}
		}
	}
	return out
}

// Head implements §4.5 "Head": divide potential by each layer's transmissivity.
func (m *Model) Head(x, y float64) [][]complex128 {
	pot := m.Potential(x, y)
	naq := m.Aquifer.Naq
	out := make([][]complex128, naq)
	for l := 0; l < naq; l++ {
		T := complex(m.Aquifer.T[l], 0)
		out[l] = make([]complex128, len(pot[l]))
		for j, v := range pot[l] {
			out[l][j] = v / T
		}
	}
	return out
}

// HeadAtTime implements §4.5 "Head(x,y,t)": for each layer and query time,
// inverts the Laplace-domain head via §4.2, returning one time series per
// layer. A time outside [tmin,tmax] yields 0 for that sample and is reported
// back via outsideByLayer.
func (m *Model) HeadAtTime(x, y float64, times []float64) (headByLayer [][]float64, outsideByLayer []bool) {
	head := m.Head(x, y)
	naq := m.Aquifer.Naq
	headByLayer = make([][]float64, naq)
	outsideByLayer = make([]bool, naq)
	for l := 0; l < naq; l++ {
		vals, anyOutside := laplace.Invert(m.Grid, head[l], times)
		headByLayer[l] = vals
		outsideByLayer[l] = anyOutside
	}
	return headByLayer, outsideByLayer
}

// HeadAlongLine evaluates HeadAtTime at a sequence of (x,y) points, the
// cross-section evaluation surface named in §2's scope table.
func (m *Model) HeadAlongLine(points [][2]float64, times []float64) [][][]float64 {
	out := make([][][]float64, len(points))
	for i, pt := range points {
		headByLayer, _ := m.HeadAtTime(pt[0], pt[1], times)
		out[i] = headByLayer
	}
	return out
}

// HeadGrid evaluates HeadAtTime over every (x,y) pair in the Cartesian
// product of xs and ys, the "grids" evaluation surface named in §2.
func (m *Model) HeadGrid(xs, ys, times []float64) [][][][]float64 {
	out := make([][][][]float64, len(ys))
	for iy, y := range ys {
		out[iy] = make([][][]float64, len(xs))
		for ix, x := range xs {
			headByLayer, _ := m.HeadAtTime(x, y, times)
			out[iy][ix] = headByLayer
		}
	}
	return out
}

// VariableDischargeHead implements §4.5 "Variable-discharge wells" across a
// whole set of variable-discharge elements, iterating every one of them and
// superposing their contributions rather than reading breakpoints from only
// the first element in the set.
func (m *Model) VariableDischargeHead(elements []*ele.VariableDischarge, x, y float64, tau float64) (headPerLayer []float64, warnings []string) {
	headPerLayer = make([]float64, m.Aquifer.Naq)
	for _, v := range elements {
		h, w := v.HeadAt(x, y, m.Aquifer, tau, m.Grid)
		for l := range headPerLayer {
			headPerLayer[l] += h[l]
		}
		warnings = append(warnings, w...)
	}
	return headPerLayer, warnings
}
