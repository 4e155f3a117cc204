// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package laplace builds the Laplace-parameter grid (§3) and implements the
// numerical inverse Laplace transform (§4.2) that the core solver uses to return
// time-domain heads from the per-parameter Laplace-domain potentials.
package laplace

import (
	"math"

	"github.com/cpmech/gosl/chk"
)

// damping is the α term in γ_n = α - ln(tol)/(T_n/2), fixed at 0 (§3).
const damping = 0.0

// tolerance is the Fourier-series damping tolerance, tol = 1e-9 (§3).
const tolerance = 1e-9

// Grid holds the full Laplace parameter sequence {p_k} and the per-interval
// bookkeeping needed to invert any queried time back to the interval it falls in.
type Grid struct {
	Tmin, Tmax float64       // time window
	M          int           // Fourier-series half-length
	Nin        int           // number of decadal intervals
	Npin       int           // 2M+1, samples per interval
	Intervals  []float64     // [Nin+1] interval boundaries t_n = 10^n
	Gamma      []float64     // [Nin] damping per interval
	P          []complex128  // [Nin*Npin] flattened Laplace parameters
}

// NewGrid builds the Laplace parameter grid for the time window [tmin,tmax] (§3).
// Callers are expected to have already run ModelConfig.Validate.
func NewGrid(tmin, tmax float64, M int) (g *Grid, err error) {
	if tmin <= 0 || tmax <= tmin {
		return nil, chk.Err("invalid time window: tmin=%v tmax=%v", tmin, tmax)
	}
	if M < 4 {
		return nil, chk.Err("M must be >= 4, got %d", M)
	}

	itmin := int(math.Floor(math.Log10(tmin)))
	itmax := int(math.Ceil(math.Log10(tmax)))
	nin := itmax - itmin

	g = &Grid{Tmin: tmin, Tmax: tmax, M: M, Nin: nin, Npin: 2*M + 1}
	g.Intervals = make([]float64, nin+1)
	for i := 0; i <= nin; i++ {
		g.Intervals[i] = math.Pow(10, float64(itmin+i))
	}

	g.Gamma = make([]float64, nin)
	g.P = make([]complex128, nin*g.Npin)
	for n := 0; n < nin; n++ {
		period := 2.0 * g.Intervals[n+1]
		gamma := damping - math.Log(tolerance)/(period/2.0)
		g.Gamma[n] = gamma
		for j := 0; j <= 2*M; j++ {
			g.P[n*g.Npin+j] = complex(gamma, math.Pi*float64(j)/period)
		}
	}
	return g, nil
}

// Np is the total number of Laplace parameters, N_in * (2M+1).
func (g *Grid) Np() int { return len(g.P) }

// Interval returns the index n such that t lies in [t_n, t_{n+1}) (closed on the
// right for the last interval), and ok=false if t is outside [tmin,tmax] (§7
// "Evaluation outside window").
func (g *Grid) Interval(t float64) (n int, ok bool) {
	if t < g.Tmin || t > g.Tmax {
		return 0, false
	}
	for n = 0; n < g.Nin; n++ {
		if n == g.Nin-1 {
			if t >= g.Intervals[n] && t <= g.Intervals[n+1] {
				return n, true
			}
		} else if t >= g.Intervals[n] && t < g.Intervals[n+1] {
			return n, true
		}
	}
	return 0, false
}

// Block returns the flat-index range [lo,hi) of g.P covering interval n.
func (g *Grid) Block(n int) (lo, hi int) {
	return n * g.Npin, (n + 1) * g.Npin
}
