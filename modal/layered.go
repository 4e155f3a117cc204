// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package modal builds the layered-flow operator A(p) (§4.1) and its
// eigendecomposition: eigenvalues λ_i(p), decay lengths ℓ_i(p) = 1/√λ_i(p), and the
// modal projection matrix C(p) = (Vᵀ)⁻¹.
package modal

import (
	"math/cmplx"

	"github.com/lpeeterscsiro/ttim/inp"
)

// smallLargeSwitch is the |√(pS_llc)| threshold above which the asymptotic
// (overflow-safe) form of coth/csch is used instead of the direct one (§4.1).
const smallLargeSwitch = 200.0

// BuildA assembles the tridiagonal layered-flow operator A(p) for the aquifer
// system aq at Laplace parameter p (§4.1), returned as a dense row-major
// Naq×Naq matrix (dense storage keeps the eigensolver below simple, since Naq is
// small in practice; only the tridiagonal entries are ever non-zero).
func BuildA(aq *inp.Aquifer, p complex128) [][]complex128 {
	n := aq.Naq
	a := make([][]complex128, n)
	for i := range a {
		a[i] = make([]complex128, n)
	}

	// s_i = sqrt(p * Sll_i * c_i); coth/csch pair (a_i, b_i) per §4.1.
	coth := make([]complex128, n)
	csch := make([]complex128, n)
	for i := 0; i < n; i++ {
		if i == 0 && aq.TopBoundary == inp.Impermeable {
			continue // c[0], Sll[0] unused for an impermeable top
		}
		s := cmplx.Sqrt(p * complex(aq.Sll[i]*aq.C[i], 0))
		if cmplx.Abs(s) < smallLargeSwitch {
			coth[i] = s / cmplx.Tanh(s)
			csch[i] = s / cmplx.Sinh(s)
		} else {
			e2 := cmplx.Exp(-2 * s)
			coth[i] = s * (1 + e2) / (1 - e2)
			csch[i] = 2 * s * cmplx.Exp(-s) / (1 - e2)
		}
	}

	for i := 0; i < n; i++ {
		a[i][i] = p / complex(aq.D[i], 0)
		if i < n-1 {
			a[i][i] += coth[i+1] / complex(aq.C[i+1]*aq.T[i], 0)
			a[i][i+1] = -csch[i+1] / complex(aq.C[i+1]*aq.T[i], 0)
		}
		if i >= 1 {
			a[i][i] += coth[i] / complex(aq.C[i]*aq.T[i], 0)
			a[i][i-1] = -csch[i] / complex(aq.C[i]*aq.T[i], 0)
		}
	}

	switch aq.TopBoundary {
	case inp.Impermeable:
		// adds 0
	case inp.Leaky:
		s0 := cmplx.Sqrt(p * complex(aq.Sll[0]*aq.C[0], 0))
		a[0][0] += s0 * cmplx.Tanh(s0) / complex(aq.C[0]*aq.T[0], 0)
	case inp.SemiConfined:
		a[0][0] += coth[0] / complex(aq.C[0]*aq.T[0], 0)
	}

	return a
}
