// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the configuration surface of a transient multi-aquifer
// model: the aquifer system builder and the Laplace/time-window settings.
package inp

import (
	"github.com/cpmech/gosl/chk"
)

// TopBoundary selects the hydraulic condition imposed at the top of the system.
type TopBoundary int

const (
	// Impermeable means no flow crosses the top of aquifer 0.
	Impermeable TopBoundary = iota
	// Leaky means the top aquitard separates aquifer 0 from a fixed-head reservoir.
	Leaky
	// SemiConfined means the top aquitard separates aquifer 0 from an unconfined water table.
	SemiConfined
)

// String returns the three-letter token used in the configuration surface (§6).
func (o TopBoundary) String() string {
	switch o {
	case Impermeable:
		return "imp"
	case Leaky:
		return "lea"
	case SemiConfined:
		return "sem"
	}
	return "unknown"
}

// ParseTopBoundary converts the recognised tokens "imp", "lea", "sem" (first three
// characters, case sensitive, matching the original ttim convention) to a TopBoundary.
func ParseTopBoundary(token string) (tb TopBoundary, err error) {
	if len(token) >= 3 {
		token = token[:3]
	}
	switch token {
	case "imp":
		return Impermeable, nil
	case "lea":
		return Leaky, nil
	case "sem":
		return SemiConfined, nil
	}
	return tb, chk.Err("unknown topboundary token %q: must be one of \"imp\", \"lea\", \"sem\"", token)
}

// Aquifer holds the fully-derived layered aquifer system (§3 Data model).
// It is the structure the core solver consumes; everything here is already in
// physical units (transmissivity, storativity, resistance), not raw builder inputs.
type Aquifer struct {
	Naq         int           // number of aquifer layers
	Kaq         []float64     // [Naq] horizontal conductivities
	Haq         []float64     // [Naq] aquifer thicknesses
	T           []float64     // [Naq] transmissivities, T = kaq*Haq
	Saq         []float64     // [Naq] storativities (already multiplied by thickness)
	D           []float64     // [Naq] diffusivities, D = T/Saq
	C           []float64     // [Naq] aquitard resistances; C[0] is 0 and unused when TopBoundary==Impermeable
	Sll         []float64     // [Naq] aquitard storativities; Sll[0] is unused when TopBoundary==Impermeable (0 from NewAquiferMaq, 1e-20 from NewAquifer3D)
	TopBoundary TopBoundary   // top condition
	Rzero       float64       // truncation radius in units of decay length (default 20, §GLOSSARY)
}

// defaultRzero is the truncation radius used unless a model overrides it (§4.3, §GLOSSARY).
const defaultRzero = 20.0

// NewAquiferMaq builds an Aquifer from layer elevations the way ModelMaq does in the
// original source: kaq gives the per-layer conductivity, z lists the elevations of
// every layer/aquitard boundary from top to bottom, c the aquitard resistances, and
// Saq/Sll the (not-yet-thickness-scaled) storativities.
//
// z has length 2*Naq for an impermeable top (each aquifer contributes a top and
// bottom elevation) and 2*Naq+1 for a leaky/semi-confined top (the extra entry is the
// top of the leaky aquitard). c has length Naq-1 (impermeable) or Naq (leaky/semi).
func NewAquiferMaq(kaq, z, c, Saq, Sll []float64, topboundary string, phreatictop bool) (aq *Aquifer, err error) {
	tb, err := ParseTopBoundary(topboundary)
	if err != nil {
		return nil, err
	}
	naq := len(kaq)
	if naq == 0 {
		return nil, chk.Err("kaq must have at least one layer")
	}

	// thicknesses of every slab named in z (aquifers and aquitards alike)
	H := make([]float64, len(z)-1)
	for i := range H {
		H[i] = z[i] - z[i+1]
		if H[i] < 0 {
			return nil, chk.Err("not all layer thicknesses are non-negative: z[%d]=%v < z[%d]=%v", i, z[i], i+1, z[i+1])
		}
	}

	aq = &Aquifer{Naq: naq, Kaq: append([]float64{}, kaq...), TopBoundary: tb, Rzero: defaultRzero}

	switch tb {
	case Impermeable:
		if len(z) != 2*naq {
			return nil, chk.Err("length of z needs to be %d, got %d", 2*naq, len(z))
		}
		if len(c) != naq-1 {
			return nil, chk.Err("length of c needs to be %d, got %d", naq-1, len(c))
		}
		if len(Saq) != naq {
			return nil, chk.Err("length of Saq needs to be %d, got %d", naq, len(Saq))
		}
		if len(Sll) != naq-1 {
			return nil, chk.Err("length of Sll needs to be %d, got %d", naq-1, len(Sll))
		}
		aq.Haq = make([]float64, naq)
		for i := 0; i < naq; i++ {
			aq.Haq[i] = H[2*i]
		}
		aq.Saq = make([]float64, naq)
		for i := 0; i < naq; i++ {
			aq.Saq[i] = Saq[i] * aq.Haq[i]
		}
		if phreatictop {
			aq.Saq[0] = aq.Saq[0] / aq.Haq[0]
		}
		aq.Sll = make([]float64, naq)
		aq.Sll[0] = 0 // unused (NaN-like placeholder; impermeable top has no top aquitard)
		for i := 1; i < naq; i++ {
			aq.Sll[i] = Sll[i-1] * H[2*i-1]
		}
		aq.C = make([]float64, naq)
		aq.C[0] = 0 // unused
		copy(aq.C[1:], c)

	case Leaky, SemiConfined:
		if len(z) != 2*naq+1 {
			return nil, chk.Err("length of z needs to be %d, got %d", 2*naq+1, len(z))
		}
		if len(c) != naq {
			return nil, chk.Err("length of c needs to be %d, got %d", naq, len(c))
		}
		if len(Saq) != naq {
			return nil, chk.Err("length of Saq needs to be %d, got %d", naq, len(Saq))
		}
		if len(Sll) != naq {
			return nil, chk.Err("length of Sll needs to be %d, got %d", naq, len(Sll))
		}
		aq.Haq = make([]float64, naq)
		for i := 0; i < naq; i++ {
			aq.Haq[i] = H[2*i+1]
		}
		aq.Saq = make([]float64, naq)
		for i := 0; i < naq; i++ {
			aq.Saq[i] = Saq[i] * aq.Haq[i]
		}
		aq.Sll = make([]float64, naq)
		for i := 0; i < naq; i++ {
			aq.Sll[i] = Sll[i] * H[2*i]
		}
		if phreatictop && tb == Leaky {
			aq.Sll[0] = aq.Sll[0] / H[0]
		}
		aq.C = append([]float64{}, c...)
	}

	aq.T = make([]float64, naq)
	for i := 0; i < naq; i++ {
		aq.T[i] = aq.Kaq[i] * aq.Haq[i]
	}
	aq.D = make([]float64, naq)
	for i := 0; i < naq; i++ {
		aq.D[i] = aq.T[i] / aq.Saq[i]
	}
	clampSll(aq.Sll, aq.TopBoundary)
	return aq, nil
}

// NewAquifer3D builds an Aquifer the way Model3D does: every boundary z[i] separates
// consecutive model layers (no interleaved aquitard elevations), and the aquitard
// resistance between layer i and i+1 is derived from kzoverkh and the half-thickness
// of each adjoining layer (§6 "kzoverkh (3-D builder)").
func NewAquifer3D(kaq, z, kzoverkh, Saq []float64, phreatictop bool) (aq *Aquifer, err error) {
	naq := len(kaq)
	if naq == 0 {
		return nil, chk.Err("kaq must have at least one layer")
	}
	if len(z) != naq+1 {
		return nil, chk.Err("length of z needs to be %d, got %d", naq+1, len(z))
	}
	if len(Saq) != naq {
		return nil, chk.Err("length of Saq needs to be %d, got %d", naq, len(Saq))
	}
	if len(kzoverkh) == 1 {
		v := kzoverkh[0]
		kzoverkh = make([]float64, naq)
		for i := range kzoverkh {
			kzoverkh[i] = v
		}
	}
	if len(kzoverkh) != naq {
		return nil, chk.Err("length of kzoverkh needs to be %d or 1, got %d", naq, len(kzoverkh))
	}

	H := make([]float64, naq)
	for i := 0; i < naq; i++ {
		H[i] = z[i] - z[i+1]
		if H[i] < 0 {
			return nil, chk.Err("not all layer thicknesses are non-negative: z[%d]=%v < z[%d]=%v", i, z[i], i+1, z[i+1])
		}
	}

	aq = &Aquifer{Naq: naq, Kaq: append([]float64{}, kaq...), Haq: H, TopBoundary: Impermeable, Rzero: defaultRzero}
	aq.T = make([]float64, naq)
	for i := 0; i < naq; i++ {
		aq.T[i] = aq.Kaq[i] * H[i]
	}
	aq.Saq = make([]float64, naq)
	for i := 0; i < naq; i++ {
		aq.Saq[i] = Saq[i] * H[i]
	}
	if phreatictop {
		aq.Saq[0] = aq.Saq[0] / H[0]
	}
	aq.D = make([]float64, naq)
	for i := 0; i < naq; i++ {
		aq.D[i] = aq.T[i] / aq.Saq[i]
	}

	aq.C = make([]float64, naq)
	aq.C[0] = 0 // unused, impermeable top
	for i := 1; i < naq; i++ {
		aq.C[i] = 0.5*H[i-1]/(kzoverkh[i-1]*kaq[i-1]) + 0.5*H[i]/(kzoverkh[i]*kaq[i])
	}
	aq.Sll = make([]float64, naq)
	for i := range aq.Sll {
		aq.Sll[i] = 1e-20
	}
	return aq, nil
}

// clampSll enforces the "cannot be zero" floor of §3: aquitard storativities are
// clamped to >= 1e-20 so that sqrt(p*Sll*c) never collapses the small/large branch.
func clampSll(sll []float64, tb TopBoundary) {
	start := 0
	if tb == Impermeable {
		start = 1
	}
	for i := start; i < len(sll); i++ {
		if sll[i] < 1e-20 {
			sll[i] = 1e-20
		}
	}
}
