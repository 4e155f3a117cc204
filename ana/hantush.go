package ana

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Hantush computes the Hantush-Jacob leaky-aquifer drawdown solution
//
//	s(r,t) = Q/(4πT) · W(u, r/B),  u = r²S/(4Tt),  B = √(Tc)
//
// the semi-confined counterpart of Theis, used to validate the Laplace
// solver's leaky-top branch (§8 Testable Property 2).
type Hantush struct {
	T float64 // transmissivity
	S float64 // storativity
	C float64 // aquitard resistance
	Q float64 // pumping rate
}

// Init initialises Hantush from named parameters.
func (o *Hantush) Init(prms fun.Prms) {
	o.T = 100.0
	o.S = 1e-4
	o.C = 1000.0
	o.Q = 100.0
	for _, p := range prms {
		switch p.N {
		case "T":
			o.T = p.V
		case "S":
			o.S = p.V
		case "c":
			o.C = p.V
		case "Q":
			o.Q = p.V
		}
	}
}

// Drawdown evaluates s(r,t).
func (o Hantush) Drawdown(r, t float64) float64 {
	if t <= 0 {
		return 0
	}
	u := r * r * o.S / (4 * o.T * t)
	B := math.Sqrt(o.T * o.C)
	beta := r / B
	return o.Q / (4 * math.Pi * o.T) * leakyWellFunction(u, beta)
}

// CheckDrawdown checks a computed drawdown against Hantush within tol.
func (o Hantush) CheckDrawdown(tst *testing.T, r, t, s, tol float64) {
	ana := o.Drawdown(r, t)
	if math.Abs(s-ana) > tol {
		chk.Panic("Hantush drawdown mismatch at r=%v t=%v: got %v, want %v (tol=%v)", r, t, s, ana, tol)
	}
}

// leakyWellFunction is W(u,β) = ∫_u^∞ (1/y)·exp(-y - β²/(4y)) dy, computed by
// substituting y = u·e^v (so the semi-infinite integral becomes one over
// v ∈ [0,∞) with a rapidly-decaying integrand) and applying composite
// Simpson's rule; no pack library implements this integral (see DESIGN.md).
func leakyWellFunction(u, beta float64) float64 {
	if u <= 0 {
		return math.Inf(1)
	}
	integrand := func(v float64) float64 {
		y := u * math.Exp(v)
		arg := -y - beta*beta/(4*y)
		if arg < -700 {
			return 0
		}
		return math.Exp(arg)
	}
	return compositeSimpson(integrand, 0, 60, 4000)
}

// compositeSimpson integrates f over [a,b] with n subintervals (n rounded up
// to even).
func compositeSimpson(f func(float64) float64, a, b float64, n int) float64 {
	if n%2 == 1 {
		n++
	}
	h := (b - a) / float64(n)
	sum := f(a) + f(b)
	for i := 1; i < n; i++ {
		x := a + float64(i)*h
		if i%2 == 0 {
			sum += 2 * f(x)
		} else {
			sum += 4 * f(x)
		}
	}
	return sum * h / 3
}
