// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ele implements the source/sink element family: wells, line-sinks, 1-D
// strips, and the equation mix-ins that turn a boundary condition into rows of
// the global linear system (§4.3).
package ele

import (
	"github.com/cpmech/gosl/utl"

	"github.com/lpeeterscsiro/ttim/inp"
	"github.com/lpeeterscsiro/ttim/modal"
)

// FlowKind distinguishes a step-function discharge (the usual case: divide by p
// in Laplace space) from an instantaneous slug/delta-function discharge (no 1/p
// factor), promoted to an exported type per §12's supplemented feature. Step
// and Slug are its only values.
type FlowKind int

const (
	Step FlowKind = iota
	Slug
)

// FlowCoef returns flowcoef_{n,j} at Laplace parameter p for this FlowKind (§4.3).
func (k FlowKind) FlowCoef(p complex128) complex128 {
	if k == Slug {
		return 1
	}
	return 1 / p
}

// Tensor is the [N_param][N_aq][N_p] shape every element's influence functions
// share (§4.3, §9 "express as explicit 4-axis tensors... with a flat view over
// the last two axes"); here N_p is already the flat {p_k} sequence.
type Tensor = [][][]complex128

// NewTensor allocates a zeroed Tensor of the given shape.
func NewTensor(nparam, naq, np int) Tensor {
	t := make(Tensor, nparam)
	for i := range t {
		t[i] = make([][]complex128, naq)
		for l := range t[i] {
			t[i][l] = make([]complex128, np)
		}
	}
	return t
}

// Element is what every source/sink in the model implements (§4.3).
type Element interface {
	// Init wires the element to the flat Laplace-parameter sequence and its
	// per-p modal decomposition; called once by Model.Solve before any
	// equation is assembled (§3 "constructed and registered → initialized
	// during solve"). npin is 2M+1, the samples-per-interval stride Rzero
	// clipping needs.
	Init(p []complex128, modes []*modal.Modes, npin int)

	// Potinf is the Laplace-domain influence at (x,y) per unit strength, per
	// mode, per p. Returns an all-zero Tensor if aq is not this element's
	// aquifer system (§4.3 invariant; ttim-go only ever models one aquifer
	// system per Model, so this only guards against programmer error).
	Potinf(x, y float64, aq *inp.Aquifer) Tensor

	// Dischargeinf is the implied layer-discharge tensor, same shape as Potinf.
	Dischargeinf() Tensor

	// Potential is Σ_i Params[i]·Potinf[i], already projected onto physical
	// layers: [N_aq][N_p].
	Potential(x, y float64, aq *inp.Aquifer) [][]complex128

	// PotinfLayer projects Potinf onto physical aquifer layers via each p's
	// modal eigenvector matrix (§4.3).
	PotinfLayer(x, y float64) Tensor

	// StrengthinfLayer projects Dischargeinf onto physical aquifer layers.
	StrengthinfLayer() Tensor

	// NumUnknowns is N_unk for this element (0 if every strength is prescribed).
	NumUnknowns() int

	// Equation returns this element's contribution to the global system: a
	// [N_unk][N_eq][N_p] block and a [N_unk][N_p] rhs (§4.4). Building a row
	// (e.g. "head at my control point = h_c") needs every element's influence
	// at that control point, not just this element's own, so Equation is given
	// the full element list and each element's column offset into the N_eq
	// numbering (offsets[i] is where elements[i]'s unknowns start).
	Equation(elements []Element, offsets []int, ps []complex128) (block Tensor, rhs [][]complex128)

	// SetParameters stores the solved strengths scattered from the global
	// solve: one []complex128 of length N_p per unknown (§4.4 step 4).
	SetParameters(params [][]complex128)

	// Encode/Decode are persistence stubs: spec §6 states persisted state is
	// out of scope, but every element still satisfies the same Encode/Decode
	// contract gofem elements do.
	Encode(enc utl.Encoder) error
	Decode(dec utl.Decoder) error
}

// Base is embedded by every concrete element. It owns the aquifer reference and
// the per-Laplace-parameter modal decomposition, and supplies the projection and
// summation logic shared by every element so concrete types only implement
// Potinf/Dischargeinf/Equation — the same "embed the shared numerics, implement
// only what varies" shape gofem's elements use for shape functions and
// integration points.
type Base struct {
	Aq     *inp.Aquifer
	P      []complex128   // the flat {p_k} sequence, aligned with Modes
	Modes  []*modal.Modes // one per Laplace parameter, aligned with P
	Npin   int            // 2M+1, samples per Laplace-grid interval (for the Rzero clip's "first sample in interval" rule)
	Params [][]complex128 // [N_unk][N_p], filled by SetParameters
}

// intervalStart returns the flat index of the first Laplace parameter sharing
// j's decadal interval, the "ℓ_{i,n,0}" reference point §4.3 uses for the Rzero
// truncation (clip radius is fixed per interval, not re-evaluated at every p).
func (b *Base) intervalStart(j int) int {
	return (j / b.Npin) * b.Npin
}

// Init implements Element.Init; concrete elements with prescribed (non-unknown)
// parameters override this to also fill Params from their known strengths.
func (b *Base) Init(p []complex128, modes []*modal.Modes, npin int) {
	b.P = p
	b.Modes = modes
	b.Npin = npin
}

// SetParameters implements Element.SetParameters.
func (b *Base) SetParameters(p [][]complex128) { b.Params = p }

// Encode is a no-op: ttim-go has no persisted state (§6).
func (b *Base) Encode(enc utl.Encoder) error { return nil }

// Decode is a no-op: ttim-go has no persisted state (§6).
func (b *Base) Decode(dec utl.Decoder) error { return nil }

// SameAquifer reports whether aq is this element's own aquifer system, the
// guard Potinf uses before doing any real work (§4.3 invariant).
func (b *Base) SameAquifer(aq *inp.Aquifer) bool { return aq == b.Aq }

// ProjectLayers implements potinflayer/strengthinflayer (§4.3): projects a
// modal-space tensor onto physical aquifer layers using each p's Eigvec (Vᵀ),
// i.e. layer[ℓ] = Σ_mode Eigvec[mode][ℓ] * modeTensor[mode].
func (b *Base) ProjectLayers(modeTensor Tensor) Tensor {
	nparam := len(modeTensor)
	naq := b.Aq.Naq
	np := len(b.Modes)
	out := NewTensor(nparam, naq, np)
	for i := 0; i < nparam; i++ {
		for j := 0; j < np; j++ {
			m := b.Modes[j]
			for layer := 0; layer < naq; layer++ {
				var sum complex128
				for mode := 0; mode < naq; mode++ {
					sum += m.Eigvec[mode][layer] * modeTensor[i][mode][j]
				}
				out[i][layer][j] = sum
			}
		}
	}
	return out
}

// SumParameters implements the potential/strength summation Σ_i Params[i]·tensor[i],
// collapsing the N_param axis (§4.3 "potential(x, y, aq) = Σ_i params[i]·potinf[i]").
func SumParameters(params [][]complex128, tensor Tensor) [][]complex128 {
	if len(tensor) == 0 {
		return nil
	}
	naq := len(tensor[0])
	np := len(tensor[0][0])
	out := make([][]complex128, naq)
	for l := range out {
		out[l] = make([]complex128, np)
	}
	for i, row := range params {
		for l := 0; l < naq; l++ {
			for j := 0; j < np; j++ {
				out[l][j] += row[j] * tensor[i][l][j]
			}
		}
	}
	return out
}
