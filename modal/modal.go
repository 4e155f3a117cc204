package modal

import (
	"math/cmplx"
	"sort"

	"github.com/cpmech/gosl/chk"
	"github.com/lpeeterscsiro/ttim/densesolve"
	"github.com/lpeeterscsiro/ttim/inp"
)

// Modes holds the per-Laplace-parameter modal decomposition of the layered
// operator A(p) (§4.1): the decay lengths ℓ_i(p), the eigenvector matrix Vᵀ
// ("Eigvec", row i is mode i's eigenvector), and the projection matrix
// C(p) = (Vᵀ)⁻¹. Both are indexed [mode][layer] and [layer][mode] respectively.
type Modes struct {
	Lab    []complex128   // decay lengths ℓ_i = 1/sqrt(λ_i), sorted by |λ_i| descending
	Eigvec [][]complex128 // Vᵀ: Eigvec[mode][layer]
	C      [][]complex128 // (Vᵀ)⁻¹: C[layer][mode], satisfies Eigvec·C = I (Testable Property 5)
}

// Compute builds A(p) for the aquifer system aq and returns its modal
// decomposition.
func Compute(aq *inp.Aquifer, p complex128) *Modes {
	n := aq.Naq
	a := BuildA(aq, p)

	if n == 1 {
		lam := a[0][0]
		return &Modes{
			Lab:    []complex128{1 / cmplx.Sqrt(lam)},
			Eigvec: [][]complex128{{1}},
			C:      [][]complex128{{1}},
		}
	}

	lams := eigenvalues(a, n)
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(i, j int) bool {
		return cmplx.Abs(lams[order[i]]) > cmplx.Abs(lams[order[j]])
	})

	lab := make([]complex128, n)
	eigvec := make([][]complex128, n) // eigvec[mode][layer]
	for k, i := range order {
		lam := lams[i]
		lab[k] = 1 / cmplx.Sqrt(lam)
		eigvec[k] = eigenvector(a, n, lam)
	}

	c := invert(eigvec, n)
	return &Modes{Lab: lab, Eigvec: eigvec, C: c}
}

// invert computes m⁻¹ for the dense n×n matrix m (row-major [][]complex128),
// one column at a time, reusing the single LU factorisation.
func invert(m [][]complex128, n int) [][]complex128 {
	flat := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			flat[i*n+j] = m[i][j]
		}
	}
	lu := densesolve.NewLU()
	if err := lu.Factor(flat, n); err != nil {
		chk.Panic("modal: eigenvector matrix is singular: %v", err)
	}

	inv := make([][]complex128, n)
	for j := 0; j < n; j++ {
		e := make([]complex128, n)
		e[j] = 1
		x := lu.Solve(e)
		for i := 0; i < n; i++ {
			if inv[i] == nil {
				inv[i] = make([]complex128, n)
			}
			inv[i][j] = x[i]
		}
	}
	return inv
}
