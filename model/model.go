// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package model ties the aquifer, the registered elements, and the Laplace
// grid together and drives the solve/evaluate lifecycle (§3 "Element.
// Lifecycle", §4.4 "Assembler"), the way fem.FEM drives a gofem simulation.
package model

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/lpeeterscsiro/ttim/ele"
	"github.com/lpeeterscsiro/ttim/inp"
	"github.com/lpeeterscsiro/ttim/laplace"
	"github.com/lpeeterscsiro/ttim/modal"
)

// Model owns the aquifer and element list exclusively; elements hold only
// non-owning references back to it (§5 "Memory ownership").
type Model struct {
	Aquifer  *inp.Aquifer
	Config   inp.ModelConfig
	Elements []ele.Element

	Grid    *laplace.Grid
	Modes   []*modal.Modes // one per flat Laplace parameter, aligned with Grid.P
	Offsets []int          // per-element column offset into the N_eq numbering
	solved  bool
}

// New builds a Model over aq, configured by cfg. Elements are registered
// afterward with Add; nothing is computed until Solve runs.
func New(aq *inp.Aquifer, cfg inp.ModelConfig) (*Model, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Model{Aquifer: aq, Config: cfg}, nil
}

// Add registers el with the model (§3 "constructed and registered"). Solve
// must not have run yet; the Laplace grid is fixed after construction (§3
// invariant iv).
func (m *Model) Add(el ele.Element) {
	if m.solved {
		chk.Panic("cannot add elements after Solve has run")
	}
	m.Elements = append(m.Elements, el)
}

// Solve runs the full pipeline (§3 data flow, §4.4 assembler): builds the
// Laplace grid, eigendecomposes the layered operator at every p, initializes
// every element, assembles and factors the N_eq×N_eq system at each p, and
// scatters the solved strengths back into each element.
func (m *Model) Solve() error {
	grid, err := laplace.NewGrid(m.Config.Tmin, m.Config.Tmax, m.Config.M)
	if err != nil {
		return err
	}
	m.Grid = grid

	if m.Config.Verbose {
		io.Pf("> Laplace grid built: Nin=%d Npin=%d Np=%d\n", grid.Nin, grid.Npin, grid.Np())
		cond := modal.ConditionEstimate(m.Aquifer, grid.P[0])
		io.Pf("> layered-operator condition estimate at p[0]=%v: %.3e\n", grid.P[0], cond)
	}

	m.Modes = make([]*modal.Modes, grid.Np())
	for j, p := range grid.P {
		m.Modes[j] = modal.Compute(m.Aquifer, p)
	}
	if m.Config.Verbose {
		io.Pf("> Modal decomposition complete for %d Laplace parameters\n", len(m.Modes))
	}

	m.Offsets = make([]int, len(m.Elements))
	neq := 0
	for i, el := range m.Elements {
		el.Init(grid.P, m.Modes, grid.Npin)
		m.Offsets[i] = neq
		neq += el.NumUnknowns()
	}
	if m.Config.Verbose {
		io.Pf("> %d elements initialized, N_eq=%d\n", len(m.Elements), neq)
	}

	if neq > 0 {
		if err := assemble(m, neq); err != nil {
			return err
		}
	}

	m.solved = true
	if m.Config.Verbose {
		io.Pf("> Solve complete\n")
	}
	return nil
}
