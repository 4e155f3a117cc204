// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package bessel is the special-function kernel the core solver consumes as a
// black-box external collaborator (spec §1, §6): K0, K1 for complex arguments, the
// line-integral of K0 along a segment, and the circle/segment intersection used to
// clip that integral to the region where K0 has not yet decayed to zero.
//
// No library in the retrieved pack ships a complex-argument K0/K1 with a matching
// line-integral kernel (gonum.org/v1/gonum/mathext only covers real arguments), so
// this package is a from-scratch reference implementation behind the same contract
// a production kernel (e.g. a cgo binding to the original Fortran besselaes
// routines) would satisfy. See DESIGN.md.
package bessel

import (
	"math"
	"math/cmplx"
)

// eulerGamma is the Euler-Mascheroni constant used in the K0 series expansion.
const eulerGamma = 0.5772156649015329

// seriesCutoff is the |z| threshold below which the power series (exact, slow to
// converge for large |z|) is used; above it, the asymptotic expansion is used.
const seriesCutoff = 9.0

// K0 evaluates the modified Bessel function of the second kind, order 0, for
// complex z with Re(z) > 0 (the only branch the core ever queries: z = r/ℓ or
// x/ℓ with ℓ a decay length and r,x >= 0).
func K0(z complex128) complex128 {
	if cmplx.Abs(z) < seriesCutoff {
		return k0Series(z)
	}
	return k0Asymptotic(z)
}

// K1 evaluates the modified Bessel function of the second kind, order 1.
func K1(z complex128) complex128 {
	if cmplx.Abs(z) < seriesCutoff {
		return k1Series(z)
	}
	return k1Asymptotic(z)
}

// k0Series uses K0(z) = -(ln(z/2)+γ) I0(z) + Σ_{k=1}^∞ (z²/4)^k/(k!)² H_k.
func k0Series(z complex128) complex128 {
	halfZ2 := (z / 2) * (z / 2)
	term := complex(1, 0)
	i0 := term
	sum := complex(0, 0)
	harmonic := 0.0
	for k := 1; k < 60; k++ {
		term *= halfZ2 / complex(float64(k)*float64(k), 0)
		i0 += term
		harmonic += 1.0 / float64(k)
		sum += term * complex(harmonic, 0)
		if cmplx.Abs(term) < 1e-18*cmplx.Abs(i0) {
			break
		}
	}
	return -(cmplx.Log(z/2) + eulerGamma) * i0 + sum
}

// k1Series uses K1(z) = 1/z + I1(z)(ln(z/2)+γ) - (z/4) Σ_{k=0}^∞ (z²/4)^k (H_k+H_{k+1}) / (k!(k+1)!).
func k1Series(z complex128) complex128 {
	halfZ2 := (z / 2) * (z / 2)
	// I1(z) = (z/2) Σ_{k=0}^∞ (z²/4)^k / (k!(k+1)!)
	term := complex(1, 0) // (z²/4)^0 / (0!1!)
	i1 := term
	hk, hk1 := 0.0, 1.0 // H_0=0, H_1=1
	sum := term * complex(hk+hk1, 0)
	for k := 1; k < 60; k++ {
		term *= halfZ2 / complex(float64(k)*float64(k+1), 0)
		i1 += term
		hk = hk1
		hk1 += 1.0 / float64(k+1)
		next := term * complex(hk+hk1, 0)
		sum += next
		if cmplx.Abs(next) < 1e-18*cmplx.Abs(sum) {
			break
		}
	}
	i1 *= z / 2
	return 1/z + i1*(cmplx.Log(z/2)+eulerGamma) - (z/4)*sum
}

// asymptotic coefficients for K0, K1 (Abramowitz & Stegun 9.7.2, 9.7.4), used for
// |z| >= seriesCutoff where the power series would need too many terms.
var k0Coef = []float64{1, -1.0 / 8, 9.0 / 128, -225.0 / 3072, 11025.0 / 98304}
var k1Coef = []float64{1, 3.0 / 8, -15.0 / 128, 105.0 / 1024, -4725.0 / 32768}

func k0Asymptotic(z complex128) complex128 {
	return asymptotic(z, k0Coef)
}

func k1Asymptotic(z complex128) complex128 {
	return asymptotic(z, k1Coef)
}

func asymptotic(z complex128, coef []float64) complex128 {
	prefac := cmplx.Sqrt(complex(math.Pi/2, 0)/z) * cmplx.Exp(-z)
	inv := 1 / z
	poly := complex(0, 0)
	pow := complex(1, 0)
	for _, c := range coef {
		poly += complex(c, 0) * pow
		pow *= inv
	}
	return prefac * poly
}
