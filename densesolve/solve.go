// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package densesolve is the dense complex linear solver the assembler consumes as a
// black-box external collaborator (spec §1, §6): LU factorisation with partial
// pivoting and back-substitution for the N_eq×N_eq system built at every Laplace
// parameter.
//
// gofem's own dense/sparse solves (github.com/cpmech/gosl/la.LinSol) wrap
// UMFPACK/MUMPS and are real-valued only; none of the pack's linear-algebra
// dependencies (gosl/la, gonum/mat) expose a complex128 LU. densesolve is a
// from-scratch reference implementation behind the same kind of narrow interface
// gofem hides la.LinSol behind (Solver, satisfied by LU); the assembler calls the
// package-level Solve. See DESIGN.md.
package densesolve

import (
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
)

// Solver is the factor-once, solve-many contract LU satisfies: factor a dense
// complex matrix once, solve for as many right-hand sides as needed.
type Solver interface {
	// Factor computes an LU decomposition of the n×n matrix a (row-major, a[i*n+j]).
	// a is overwritten with the factors; returns an error for an exactly-singular
	// pivot column (§7 "linear solve failure").
	Factor(a []complex128, n int) error

	// Solve back-substitutes rhs (length n) against the stored factorisation,
	// returning the solution (not overwriting rhs).
	Solve(rhs []complex128) []complex128
}

// LU is the default Solver: Gaussian elimination with partial pivoting.
type LU struct {
	n    int
	a    []complex128 // factored in place, row-major
	piv  []int         // piv[i] = row swapped into position i
}

// NewLU builds an empty LU solver; call Factor before Solve.
func NewLU() *LU {
	return &LU{}
}

// Factor performs LU decomposition with partial pivoting on the n×n row-major
// matrix a. a is modified in place to hold L (below diagonal, unit diagonal
// implied) and U (on and above diagonal).
func (s *LU) Factor(a []complex128, n int) error {
	s.n = n
	s.a = a
	s.piv = make([]int, n)
	for i := range s.piv {
		s.piv[i] = i
	}

	for k := 0; k < n; k++ {
		// partial pivot: largest |a[i][k]| for i >= k
		best, bestMag := k, cmplx.Abs(a[k*n+k])
		for i := k + 1; i < n; i++ {
			mag := cmplx.Abs(a[i*n+k])
			if mag > bestMag {
				best, bestMag = i, mag
			}
		}
		if bestMag == 0 {
			return chk.Err("densesolve: singular matrix at pivot column %d", k)
		}
		if best != k {
			for j := 0; j < n; j++ {
				a[k*n+j], a[best*n+j] = a[best*n+j], a[k*n+j]
			}
			s.piv[k], s.piv[best] = s.piv[best], s.piv[k]
		}

		pivot := a[k*n+k]
		for i := k + 1; i < n; i++ {
			factor := a[i*n+k] / pivot
			a[i*n+k] = factor
			if factor == 0 {
				continue
			}
			for j := k + 1; j < n; j++ {
				a[i*n+j] -= factor * a[k*n+j]
			}
		}
	}
	return nil
}

// Solve applies the stored permutation and forward/back substitution to rhs.
func (s *LU) Solve(rhs []complex128) []complex128 {
	n := s.n
	y := make([]complex128, n)
	for i := 0; i < n; i++ {
		y[i] = rhs[s.piv[i]]
	}
	// forward substitution (L has unit diagonal)
	for i := 1; i < n; i++ {
		sum := y[i]
		for j := 0; j < i; j++ {
			sum -= s.a[i*n+j] * y[j]
		}
		y[i] = sum
	}
	// back substitution (U)
	x := make([]complex128, n)
	for i := n - 1; i >= 0; i-- {
		sum := y[i]
		for j := i + 1; j < n; j++ {
			sum -= s.a[i*n+j] * x[j]
		}
		x[i] = sum / s.a[i*n+i]
	}
	return x
}

// Solve is a convenience one-shot factor+solve for a single right-hand side.
func Solve(a []complex128, n int, rhs []complex128) ([]complex128, error) {
	s := NewLU()
	if err := s.Factor(a, n); err != nil {
		return nil, err
	}
	return s.Solve(rhs), nil
}
