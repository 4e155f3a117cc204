package ele

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// Test_factory01 checks New dispatches to the right concrete type, mirroring
// gofem's ele.GetAllocator behaviour (the unknown-kind panic is Test_factory03's).
func Test_factory01_dispatch(tst *testing.T) {

	chk.PrintTitle("factory01: New dispatches by kind")

	aq := singleLayerAquifer(tst)
	el, err := New("well", aq, map[string]interface{}{
		"x": 0.0, "y": 0.0, "rw": 0.1, "layers": []float64{0}, "hc": 5.0,
	})
	if err != nil {
		tst.Fatalf("New(well) failed: %v", err)
	}
	if _, ok := el.(*Well); !ok {
		tst.Errorf("New(well) returned %T, want *Well", el)
	}
}

// Test_factory02 checks a missing required parameter is reported as an error,
// not a panic (only duplicate/missing-kind registration panics).
func Test_factory02_missing_param(tst *testing.T) {

	chk.PrintTitle("factory02: missing parameter yields an error")

	aq := singleLayerAquifer(tst)
	_, err := New("well", aq, map[string]interface{}{"x": 0.0})
	if err == nil {
		tst.Errorf("expected an error for a missing required parameter")
	}
}

// Test_factory03 checks GetAllocator panics for an unregistered kind.
func Test_factory03_unknown_kind_panics(tst *testing.T) {

	chk.PrintTitle("factory03: unknown kind panics")

	defer func() {
		if r := recover(); r == nil {
			tst.Errorf("expected a panic for an unregistered element kind")
		}
	}()
	GetAllocator("not-a-real-kind")
}
