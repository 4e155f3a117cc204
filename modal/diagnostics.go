package modal

import (
	"gonum.org/v1/gonum/mat"

	"github.com/lpeeterscsiro/ttim/inp"
)

// ConditionEstimate returns a real-valued conditioning diagnostic for A(p):
// the real part of the layered operator is itself a valid (if approximate)
// tridiagonal system, and its condition number is a cheap early warning sign
// before the full complex eigendecomposition runs (large values mean the
// eigenvectors in Compute will be numerically delicate). Uses gonum's dense
// real linear algebra since the complex solve this feeds has no equivalent
// diagnostic in the pack's complex-specific code.
func ConditionEstimate(aq *inp.Aquifer, p complex128) float64 {
	a := BuildA(aq, p)
	n := aq.Naq
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			data[i*n+j] = real(a[i][j])
		}
	}
	dense := mat.NewDense(n, n, data)
	return mat.Cond(dense, 2)
}
