package modal

import (
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/lpeeterscsiro/ttim/inp"
)

// Test_diagnostics01 checks ConditionEstimate returns a finite, positive
// number for a well-posed multi-layer system.
func Test_diagnostics01_condition_estimate(tst *testing.T) {

	chk.PrintTitle("diagnostics01: condition estimate is finite and positive")

	aq, err := inp.NewAquiferMaq(
		[]float64{10, 5, 2},
		[]float64{12, 10, 7, 5, 3, 0, -2},
		[]float64{50, 100, 200},
		[]float64{1e-4, 1e-4, 1e-4},
		[]float64{1e-6, 1e-6, 1e-6},
		"lea", false)
	if err != nil {
		tst.Fatalf("NewAquiferMaq failed: %v", err)
	}
	cond := ConditionEstimate(aq, complex(1.0, 0))
	if cond <= 0 {
		tst.Errorf("expected a positive condition estimate, got %v", cond)
	}
}
