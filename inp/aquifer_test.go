package inp

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_aquifer01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("aquifer01: single confined aquifer (ModelMaq, impermeable top)")

	aq, err := NewAquiferMaq([]float64{10}, []float64{10, 0}, []float64{}, []float64{1e-4}, []float64{}, "imp", false)
	if err != nil {
		tst.Fatalf("NewAquiferMaq failed: %v", err)
	}
	chk.Float64(tst, "T[0]", 1e-10, aq.T[0], 100)
	chk.Float64(tst, "D[0]", 1e-6, aq.D[0], 100.0/(1e-4*10))
}

func Test_aquifer02(tst *testing.T) {

	chk.PrintTitle("aquifer02: two aquifers with leaky top")

	aq, err := NewAquiferMaq(
		[]float64{10, 5},
		[]float64{5, 4, 2, 1, 0},
		[]float64{100, 100},
		[]float64{1e-5, 1e-5},
		[]float64{1e-8, 1e-8},
		"lea", false,
	)
	if err != nil {
		tst.Fatalf("NewAquiferMaq failed: %v", err)
	}
	if aq.Naq != 2 {
		tst.Fatalf("expected Naq=2, got %d", aq.Naq)
	}
	if aq.TopBoundary != Leaky {
		tst.Fatalf("expected Leaky top boundary")
	}
	chk.Float64(tst, "C[0]", 1e-10, aq.C[0], 100)
}

func Test_aquifer03_errors(tst *testing.T) {

	chk.PrintTitle("aquifer03: configuration errors fail before any solve")

	if _, err := NewAquiferMaq([]float64{10}, []float64{10, 0, -1}, nil, []float64{1e-4}, nil, "imp", false); err == nil {
		tst.Fatalf("expected error for mismatched z length")
	}
	if _, err := NewAquiferMaq([]float64{10}, []float64{0, 10}, nil, []float64{1e-4}, nil, "imp", false); err == nil {
		tst.Fatalf("expected error for negative thickness")
	}
	if _, err := ParseTopBoundary("wat"); err == nil {
		tst.Fatalf("expected error for unknown topboundary token")
	}

	cfg := &ModelConfig{Tmin: 0, Tmax: 10, M: 20}
	if err := cfg.Validate(); err == nil {
		tst.Fatalf("expected error for tmin<=0")
	}
	cfg = &ModelConfig{Tmin: 1, Tmax: 10, M: 2}
	if err := cfg.Validate(); err == nil {
		tst.Fatalf("expected error for M<4")
	}
}
