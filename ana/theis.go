// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form analytical solutions used to validate
// the Laplace-domain solver against known answers (§8 Testable Properties 1
// and 2): Theis (confined, single aquifer) and Hantush-Jacob (leaky top).
package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Theis computes the classic confined-aquifer drawdown solution
//
//	s(r,t) = Q/(4πT) · W(u),  u = r²S/(4Tt)
//
// where W is the Theis well function, W(u) = E1(u) (the exponential
// integral), and Q is the constant pumping rate (positive = extraction).
type Theis struct {
	T float64 // transmissivity
	S float64 // storativity
	Q float64 // pumping rate
}

// Init initialises Theis from named parameters, mirroring the teacher's
// analytical-solution Init(prms) convention.
func (o *Theis) Init(prms fun.Prms) {
	o.T = 100.0
	o.S = 1e-4
	o.Q = 100.0
	for _, p := range prms {
		switch p.N {
		case "T":
			o.T = p.V
		case "S":
			o.S = p.V
		case "Q":
			o.Q = p.V
		}
	}
}

// Drawdown evaluates s(r,t).
func (o Theis) Drawdown(r, t float64) float64 {
	if t <= 0 {
		return 0
	}
	u := r * r * o.S / (4 * o.T * t)
	return o.Q / (4 * math.Pi * o.T) * wellFunction(u)
}

// CheckDrawdown checks a computed drawdown against Theis within tol.
func (o Theis) CheckDrawdown(tst *testing.T, r, t, s, tol float64) {
	ana := o.Drawdown(r, t)
	if math.Abs(s-ana) > tol {
		chk.Panic("Theis drawdown mismatch at r=%v t=%v: got %v, want %v (tol=%v)", r, t, s, ana, tol)
	}
}

// wellFunction is the Theis well function W(u) = E1(u), the exponential
// integral, evaluated via the standard Abramowitz & Stegun 5.1.53/5.1.54
// rational approximations (no pack library implements E1; see DESIGN.md).
func wellFunction(u float64) float64 {
	if u <= 0 {
		return math.Inf(1)
	}
	if u <= 1 {
		// 5.1.53: E1(u) + ln(u) = a0 + a1 u + ... + a5 u^5, |error| < 2e-7
		const a0 = -0.57721566
		const a1 = 0.99999193
		const a2 = -0.24991055
		const a3 = 0.05519968
		const a4 = -0.00976004
		const a5 = 0.00107857
		poly := a0 + u*(a1+u*(a2+u*(a3+u*(a4+u*a5))))
		return poly - math.Log(u)
	}
	// 5.1.54: u*e^u*E1(u) = (u^2+a1 u+a2)/(u^2+b1 u+b2) + eps, |eps| < 5e-5
	const a1 = 2.334733
	const a2 = 0.250621
	const b1 = 3.330657
	const b2 = 1.681534
	num := u*u + a1*u + a2
	den := u*u + b1*u + b2
	return (num / den) / (u * math.Exp(u))
}
