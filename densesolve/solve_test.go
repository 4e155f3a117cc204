package densesolve

import (
	"math/cmplx"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_densesolve01(tst *testing.T) {

	chk.PrintTitle("densesolve01: 2x2 complex system with a known solution")

	// [[2+1i, 1], [1, 3-1i]] x = [5+3i, 4-2i]  with x = [(90+22i)/37, (27-23i)/37] (checked below by residual)
	n := 2
	a := []complex128{
		complex(2, 1), complex(1, 0),
		complex(1, 0), complex(3, -1),
	}
	rhs := []complex128{complex(5, 3), complex(4, -2)}

	x, err := Solve(a, n, rhs)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}

	// verify by residual against a fresh (unfactored) copy of a
	a2 := []complex128{
		complex(2, 1), complex(1, 0),
		complex(1, 0), complex(3, -1),
	}
	for i := 0; i < n; i++ {
		var sum complex128
		for j := 0; j < n; j++ {
			sum += a2[i*n+j] * x[j]
		}
		if cmplx.Abs(sum-rhs[i]) > 1e-9 {
			tst.Errorf("row %d: residual too large: got %v want %v", i, sum, rhs[i])
		}
	}
}

func Test_densesolve02_singular(tst *testing.T) {

	chk.PrintTitle("densesolve02: singular matrix is reported as an error")

	n := 2
	a := []complex128{
		complex(1, 0), complex(2, 0),
		complex(2, 0), complex(4, 0),
	}
	rhs := []complex128{complex(1, 0), complex(2, 0)}
	_, err := Solve(a, n, rhs)
	if err == nil {
		tst.Fatalf("expected singular-matrix error, got nil")
	}
}

func Test_densesolve03_identity(tst *testing.T) {

	chk.PrintTitle("densesolve03: identity system returns rhs unchanged")

	n := 3
	a := make([]complex128, n*n)
	for i := 0; i < n; i++ {
		a[i*n+i] = 1
	}
	rhs := []complex128{complex(1, 2), complex(-3, 1), complex(0, -4)}
	x, err := Solve(a, n, rhs)
	if err != nil {
		tst.Fatalf("Solve failed: %v", err)
	}
	for i := 0; i < n; i++ {
		if cmplx.Abs(x[i]-rhs[i]) > 1e-12 {
			tst.Errorf("x[%d] = %v, want %v", i, x[i], rhs[i])
		}
	}
}
