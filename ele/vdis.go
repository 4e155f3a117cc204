package ele

import (
	"strconv"

	"github.com/lpeeterscsiro/ttim/inp"
	"github.com/lpeeterscsiro/ttim/laplace"
)

// Breakpoint is one (t_start, ΔQ) step in a variable-discharge history (§4.5).
type Breakpoint struct {
	TStart float64
	DeltaQ float64
}

// BreakpointsFromSchedule turns a piecewise-constant discharge schedule
// (times[k] is when the rate changes to q[k], starting from zero) into the
// ΔQ_k = Q_k − Q_{k−1} breakpoints §4.5 superposes.
func BreakpointsFromSchedule(times, q []float64) []Breakpoint {
	bps := make([]Breakpoint, len(times))
	prev := 0.0
	for k := range times {
		bps[k] = Breakpoint{TStart: times[k], DeltaQ: q[k] - prev}
		prev = q[k]
	}
	return bps
}

// VariableDischarge superposes shifted unit-step responses to evaluate an
// element whose discharge changes over time (§4.5 "Variable-discharge
// wells"). Unit must be an already-solved element carrying the *unit-step*
// response (NumUnknowns()==0, parameters fixed at strength 1, Flow==Step);
// the superposition itself only ever shifts and scales that one response, so
// a single Laplace-domain solve serves every breakpoint.
type VariableDischarge struct {
	Unit        Element
	Breakpoints []Breakpoint
}

// NewVariableDischarge builds a VariableDischarge from a schedule; times and q
// must be parallel slices giving the discharge rate in effect from times[k]
// onward (q[k] for t in [times[k], times[k+1])).
func NewVariableDischarge(unit Element, times, q []float64) *VariableDischarge {
	return &VariableDischarge{Unit: unit, Breakpoints: BreakpointsFromSchedule(times, q)}
}

// HeadAt implements §4.5's superposition: for each breakpoint with tau >
// t_start_k, adds ΔQ_k times the inverse transform of the unit-step potential
// evaluated at (tau - t_start_k). Breakpoints whose shifted time falls outside
// the grid's window contribute zero and are reported via outsideWarnings.
func (v *VariableDischarge) HeadAt(x, y float64, aq *inp.Aquifer, tau float64, grid *laplace.Grid) (headPerLayer []float64, outsideWarnings []string) {
	naq := aq.Naq
	headPerLayer = make([]float64, naq)

	pot := v.Unit.Potential(x, y, aq)
	for _, bp := range v.Breakpoints {
		shifted := tau - bp.TStart
		if shifted <= 0 {
			continue
		}
		for layer := 0; layer < naq; layer++ {
			vals, anyOutside := laplace.Invert(grid, pot[layer], []float64{shifted})
			if anyOutside {
				outsideWarnings = append(outsideWarnings, formatOutsideWarning(bp.TStart, shifted))
				continue
			}
			headPerLayer[layer] += bp.DeltaQ * vals[0] / aq.T[layer]
		}
	}
	return headPerLayer, outsideWarnings
}

func formatOutsideWarning(tStart, shifted float64) string {
	g := strconv.FormatFloat
	return "variable-discharge breakpoint at t_start=" + g(tStart, 'g', -1, 64) +
		" shifted time=" + g(shifted, 'g', -1, 64) + " outside Laplace grid window"
}
