package modal

import (
	"math/cmplx"

	"github.com/cpmech/gosl/chk"
	"github.com/lpeeterscsiro/ttim/densesolve"
)

// eigenTol is the deflation tolerance for the shifted-QR eigenvalue iteration:
// a subdiagonal entry smaller than eigenTol times the scale of its neighbouring
// diagonal entries is treated as zero.
const eigenTol = 1e-13

// eigenMaxIter bounds the shifted-QR iterations per deflation step; A(p) is a
// small (N_aq-sized), well-conditioned operator in practice, so this is a
// generous ceiling rather than a tuned budget.
const eigenMaxIter = 500

// eigenvalues computes the full spectrum of the dense n×n complex matrix a via
// the shifted QR algorithm with Wilkinson shifts and deflation. a is not
// modified; gofem has no complex eigensolver of its own (its `la` layer wraps
// real-valued LAPACK routines only), so this follows the textbook QR-algorithm
// derivation directly. See DESIGN.md.
func eigenvalues(a [][]complex128, n int) []complex128 {
	h := cloneMatrix(a, n)
	out := make([]complex128, n)
	m := n
	for m > 0 {
		if m == 1 {
			out[0] = h[0][0]
			break
		}
		iter := 0
		for {
			l := deflateIndex(h, m)
			if l == m-1 {
				out[m-1] = h[m-1][m-1]
				m--
				break
			}
			if l == m-2 {
				// trailing 2x2 block has fully decoupled from the rest; solve it directly
				l1, l2 := eig2x2(h[m-2][m-2], h[m-2][m-1], h[m-1][m-2], h[m-1][m-1])
				out[m-2], out[m-1] = l1, l2
				m -= 2
				break
			}
			shift := wilkinsonShift(h, m)
			for i := 0; i < m; i++ {
				h[i][i] -= shift
			}
			qrStep(h, m)
			for i := 0; i < m; i++ {
				h[i][i] += shift
			}
			iter++
			if iter > eigenMaxIter {
				// give up refining this block; diagonal is the best available estimate
				for i := 0; i < m; i++ {
					out[i] = h[i][i]
				}
				return out
			}
		}
	}
	return out
}

func cloneMatrix(a [][]complex128, n int) [][]complex128 {
	h := make([][]complex128, n)
	for i := range a {
		h[i] = append([]complex128(nil), a[i]...)
	}
	return h
}

// deflateIndex finds the largest l such that the subdiagonal entry h[l][l-1] is
// negligible, scanning from the bottom of the active m×m block; returns 0 if
// none is found (no deflation yet possible).
func deflateIndex(h [][]complex128, m int) int {
	for l := m - 1; l >= 1; l-- {
		scale := cmplx.Abs(h[l-1][l-1]) + cmplx.Abs(h[l][l])
		if scale == 0 {
			scale = 1
		}
		if cmplx.Abs(h[l][l-1]) <= eigenTol*scale {
			h[l][l-1] = 0
			return l
		}
	}
	return 0
}

// wilkinsonShift returns the eigenvalue of the trailing 2x2 block closer to
// h[m-1][m-1], the standard choice for fast shifted-QR convergence.
func wilkinsonShift(h [][]complex128, m int) complex128 {
	l1, l2 := eig2x2(h[m-2][m-2], h[m-2][m-1], h[m-1][m-2], h[m-1][m-1])
	if cmplx.Abs(l1-h[m-1][m-1]) < cmplx.Abs(l2-h[m-1][m-1]) {
		return l1
	}
	return l2
}

// eig2x2 returns the two eigenvalues of [[a,b],[c,d]].
func eig2x2(a, b, c, d complex128) (complex128, complex128) {
	tr := a + d
	det := a*d - b*c
	disc := cmplx.Sqrt(tr*tr - 4*det)
	return (tr + disc) / 2, (tr - disc) / 2
}

// qrStep overwrites the active m×m leading block of h with R*Q, where h = Q*R is
// a Householder QR factorisation; this is one iteration of the (shifted) QR
// algorithm.
func qrStep(h [][]complex128, m int) {
	// Householder vectors for each column, applied to h in place to form R;
	// accumulated and re-applied on the right to form R*Q.
	vs := make([][]complex128, m-1)
	for k := 0; k < m-1; k++ {
		// column k, rows k..m-1
		col := make([]complex128, m-k)
		for i := k; i < m; i++ {
			col[i-k] = h[i][k]
		}
		v, beta := householder(col)
		vs[k] = v
		if beta == 0 {
			continue
		}
		// apply H = I - beta*v*v^H on the left to rows k..m-1, columns k..m-1
		for j := k; j < m; j++ {
			var dot complex128
			for i := k; i < m; i++ {
				dot += cmplx.Conj(v[i-k]) * h[i][j]
			}
			dot *= complex(beta, 0)
			for i := k; i < m; i++ {
				h[i][j] -= v[i-k] * dot
			}
		}
	}
	// now h[k..m-1][k..m-1] (upper triangle) holds R; apply the same Householder
	// reflections on the right, in the same order, to form R*Q.
	for k := 0; k < m-1; k++ {
		v := vs[k]
		var beta complex128
		var normSq float64
		for _, vi := range v {
			normSq += real(vi) * real(vi) + imag(vi)*imag(vi)
		}
		if normSq == 0 {
			continue
		}
		beta = complex(2/normSq, 0)
		for i := 0; i < m; i++ {
			var dot complex128
			for j := k; j < m; j++ {
				dot += h[i][j] * v[j-k]
			}
			dot *= beta
			for j := k; j < m; j++ {
				h[i][j] -= dot * cmplx.Conj(v[j-k])
			}
		}
	}
}

// householder returns the Householder vector v (v[0]=1 convention dropped in
// favour of explicit normalisation) and scalar beta such that
// (I - beta*v*v^H) * x = -phase*||x||*e_1, for complex x, where
// phase = x[0]/|x[0]| (1 when x[0] = 0).
func householder(x []complex128) (v []complex128, beta float64) {
	v = append([]complex128(nil), x...)
	var sumSq float64
	for _, xi := range x {
		sumSq += real(xi)*real(xi) + imag(xi)*imag(xi)
	}
	normX := sqrtReal(sumSq)
	if normX == 0 {
		return v, 0
	}
	alpha := x[0]
	var phase complex128 = 1
	if cmplx.Abs(alpha) != 0 {
		phase = alpha / complex(cmplx.Abs(alpha), 0)
	}
	v[0] = alpha + phase*complex(normX, 0)
	var vNormSq float64
	for _, vi := range v {
		vNormSq += real(vi)*real(vi) + imag(vi)*imag(vi)
	}
	if vNormSq == 0 {
		for i := range v {
			v[i] = 0
		}
		return v, 0
	}
	return v, 2 / vNormSq
}

func sqrtReal(x float64) float64 {
	return real(cmplx.Sqrt(complex(x, 0)))
}

// eigenvector recovers the eigenvector for eigenvalue lam via inverse iteration:
// solving (A - (λ+ε)I) v_{k+1} = v_k for a few steps converges to the dominant
// null-space direction, using the package's own dense complex solver
// (densesolve) rather than a special-purpose null-space routine.
func eigenvector(a [][]complex128, n int, lam complex128) []complex128 {
	shift := lam + complex(1e-10, 1e-10)
	m := make([]complex128, n*n)
	v := make([]complex128, n)
	for i := range v {
		v[i] = complex(1.0/float64(n), 0)
	}
	for iter := 0; iter < 3; iter++ {
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				m[i*n+j] = a[i][j]
			}
			m[i*n+i] -= shift
		}
		x, err := densesolve.Solve(m, n, v)
		if err != nil {
			chk.Panic("modal: eigenvector inverse iteration failed: %v", err)
		}
		var norm float64
		for _, xi := range x {
			norm += real(xi)*real(xi) + imag(xi)*imag(xi)
		}
		norm = sqrtReal(norm)
		for i := range x {
			v[i] = x[i] / complex(norm, 0)
		}
	}
	return v
}
