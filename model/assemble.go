package model

import (
	"sync"

	"github.com/cpmech/gosl/chk"

	"github.com/lpeeterscsiro/ttim/densesolve"
)

// assemble builds the N_eq×N_eq system across every Laplace parameter at once
// (each element's PotinfLayer/StrengthinfLayer is only defined over its own
// full per-parameter Modes array, so Equation must be called with the whole
// grid, not a single parameter at a time), then factors and solves the N_p
// independent systems and scatters the strengths back into each element
// (§4.4 steps 2-5). The N_p solves are independent (§5 "two natural parallel
// axes"), so each p is handled by its own goroutine: a single machine's
// cores already saturate this axis, so there is no need for a
// cluster-parallel dependency here.
func assemble(m *Model, neq int) error {
	np := m.Grid.Np()
	mat, rhs := buildSystem(m, neq, np)

	x := make([][]complex128, np) // x[j] is the solution vector at p_j
	errs := make([]error, np)
	var wg sync.WaitGroup
	for j := 0; j < np; j++ {
		wg.Add(1)
		go func(j int) {
			defer wg.Done()
			aj := make([]complex128, neq*neq)
			for i := range aj {
				aj[i] = mat[i][j]
			}
			rj := make([]complex128, neq)
			for i := range rj {
				rj[i] = rhs[i][j]
			}
			xj, err := densesolve.Solve(aj, neq, rj)
			if err != nil {
				errs[j] = chk.Err("assembly failed at Laplace parameter p[%d]=%v: %v", j, m.Grid.P[j], err)
				return
			}
			x[j] = xj
		}(j)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	scatter(m, neq, x)
	return nil
}

// buildSystem asks every element with unknowns for its rows over the whole
// Laplace grid at once (§4.4 step 3), returning the flattened row-major
// N_eq*N_eq matrix and the N_eq rhs, each carrying the full N_p axis.
func buildSystem(m *Model, neq, np int) (mat [][]complex128, rhs [][]complex128) {
	mat = make([][]complex128, neq*neq)
	for i := range mat {
		mat[i] = make([]complex128, np)
	}
	rhs = make([][]complex128, neq)
	for i := range rhs {
		rhs[i] = make([]complex128, np)
	}

	for i, el := range m.Elements {
		if el.NumUnknowns() == 0 {
			continue
		}
		block, r := el.Equation(m.Elements, m.Offsets, m.Grid.P)
		off := m.Offsets[i]
		for row := range block {
			for col := 0; col < neq; col++ {
				mat[(off+row)*neq+col] = block[row][col]
			}
			rhs[off+row] = r[row]
		}
	}
	return mat, rhs
}

// scatter copies the flat per-p solution vectors back into each element's
// [N_unk][N_p] parameter tensor (§4.4 step 4).
func scatter(m *Model, neq int, x [][]complex128) {
	np := len(x)
	for i, el := range m.Elements {
		nunk := el.NumUnknowns()
		if nunk == 0 {
			continue
		}
		off := m.Offsets[i]
		params := make([][]complex128, nunk)
		for u := 0; u < nunk; u++ {
			row := make([]complex128, np)
			for j := 0; j < np; j++ {
				row[j] = x[j][off+u]
			}
			params[u] = row
		}
		el.SetParameters(params)
	}
}
