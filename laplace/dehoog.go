package laplace

import (
	"math"
	"math/cmplx"
)

// deHoogTable holds the quotient-difference continued-fraction coefficients built
// once from a block of 2M+1 Laplace-domain samples; Evaluate can then be called
// cheaply for any number of query times within the same interval.
type deHoogTable struct {
	d     []complex128 // continued-fraction coefficients, length 2M+1
	gamma float64
	T     float64
	zero  bool // true if the whole block should invert to zero (§4.2)
}

// buildDeHoogTable runs the quotient-difference (epsilon) algorithm of de Hoog,
// Knight & Stokes (1982) on the 2M+1 samples fp = φ(γ + iπj/T), j=0..2M, producing
// the continued-fraction coefficients used by Evaluate; see DESIGN.md.
func buildDeHoogTable(fp []complex128, gamma, T float64, M int) *deHoogTable {
	n := 2 * M // highest coefficient index; there are n+1 = 2M+1 samples

	// §4.2 guard: a negligible first sample, or any exactly-zero sample, means the
	// whole contribution is zero for this interval.
	if cmplx.Abs(fp[0]) < 1e-20 {
		return &deHoogTable{zero: true}
	}
	for _, v := range fp {
		if v == 0 {
			return &deHoogTable{zero: true}
		}
	}

	c := make([]complex128, n+1)
	copy(c, fp)
	c[0] /= 2

	e := make([][]complex128, M+1)
	q := make([][]complex128, M+1)
	for r := 0; r <= M; r++ {
		e[r] = make([]complex128, n+1)
		q[r] = make([]complex128, n+1)
	}

	for k := 0; k <= n-1; k++ {
		q[1][k] = c[k+1] / c[k]
	}

	for r := 1; r <= M-1; r++ {
		kmaxE := n - 2*r
		for k := 0; k <= kmaxE; k++ {
			e[r][k] = q[r][k+1] - q[r][k] + e[r-1][k+1]
		}
		kmaxQ := n - 2*r - 1
		for k := 0; k <= kmaxQ; k++ {
			q[r+1][k] = q[r][k+1] * e[r][k+1] / e[r][k]
		}
	}
	e[M][0] = q[M][1] - q[M][0] + e[M-1][1]

	d := make([]complex128, n+1)
	d[0] = c[0]
	for r := 1; r <= M; r++ {
		d[2*r-1] = -q[r][0]
		d[2*r] = -e[r][0]
	}

	return &deHoogTable{d: d, gamma: gamma, T: T}
}

// Evaluate returns f(t) for one query time within the interval this table was built
// for, using de Hoog's Euler-accelerated continued-fraction evaluation.
func (tb *deHoogTable) Evaluate(t float64) float64 {
	if tb.zero {
		return 0
	}
	n := len(tb.d) - 1 // = 2M
	z := cmplx.Exp(complex(0, math.Pi*t/tb.T))

	A := make([]complex128, n+3)
	B := make([]complex128, n+3)
	A[0], B[0] = 0, 1
	A[1], B[1] = tb.d[0], 1
	for k := 2; k <= n; k++ {
		A[k] = A[k-1] + tb.d[k-1]*z*A[k-2]
		B[k] = B[k-1] + tb.d[k-1]*z*B[k-2]
	}

	h2M := 0.5 * (1 + (tb.d[n-1]-tb.d[n])*z)
	r2M := -h2M * (1 - cmplx.Sqrt(1+tb.d[n]*z/(h2M*h2M)))
	A[n+1] = A[n] + r2M*A[n-1]
	B[n+1] = B[n] + r2M*B[n-1]

	result := A[n+1] / B[n+1]
	return real(cmplx.Exp(complex(tb.gamma*t, 0))*result) / tb.T
}

// InvertBlock applies the inverse Laplace transform to one interval's worth of
// samples (2M+1 values, at p = γ + iπj/T) and returns f(t) for every requested
// time (§4.2). Times must already be known to lie within this interval.
func InvertBlock(fp []complex128, gamma, T float64, M int, times []float64) []float64 {
	tb := buildDeHoogTable(fp, gamma, T, M)
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = tb.Evaluate(t)
	}
	return out
}

// Invert runs the full Laplace inversion for a set of ordered query times against a
// Grid and the flat per-p sample sequence pot (length grid.Np()), locating each
// time's interval and skipping (returning 0, with warn=true) any time outside
// [tmin,tmax] (§7 "Evaluation outside window").
func Invert(grid *Grid, pot []complex128, times []float64) (values []float64, anyOutside bool) {
	values = make([]float64, len(times))
	byInterval := make(map[int][]int) // interval -> indices into times
	for i, t := range times {
		n, ok := grid.Interval(t)
		if !ok {
			anyOutside = true
			continue
		}
		byInterval[n] = append(byInterval[n], i)
	}
	for n, idxs := range byInterval {
		lo, hi := grid.Block(n)
		ts := make([]float64, len(idxs))
		for k, idx := range idxs {
			ts[k] = times[idx]
		}
		res := InvertBlock(pot[lo:hi], grid.Gamma[n], 2*grid.Intervals[n+1], grid.M, ts)
		for k, idx := range idxs {
			values[idx] = res[k]
		}
	}
	return values, anyOutside
}
