package bessel

import (
	"math"
	"math/cmplx"
)

// gaussLegendre10 holds the abscissas/weights of the 10-point Gauss-Legendre rule on
// [-1,1], used to integrate K0 along a line-sink segment (§6 besselK0_line).
var gaussLegendre10X = []float64{
	-0.9739065285171717, -0.8650633666889845, -0.6794095682990244,
	-0.4333953941292472, -0.1488743389816312,
	0.1488743389816312, 0.4333953941292472, 0.6794095682990244,
	0.8650633666889845, 0.9739065285171717,
}
var gaussLegendre10W = []float64{
	0.0666713443086881, 0.1494513491505806, 0.2190863625159820,
	0.2692667193099963, 0.2955242247147529,
	0.2955242247147529, 0.2692667193099963, 0.2190863625159820,
	0.1494513491505806, 0.0666713443086881,
}

// K0Line computes ∫ K0(|ζ-(x+iy)|/ℓ) dζ along the segment [za,zb], one value per
// decay length ℓ in lab (vectorised over the Laplace parameters sharing a mode, as
// the core does for every p at once; §6 besselK0_line).
//
// za, zb are normally the portion of the element's segment already clipped to the
// R_zero disc by CircleLineIntersection; the caller is responsible for that clip.
func K0Line(x, y float64, za, zb complex128, lab []complex128, out []complex128) {
	d := zb - za
	halfLen := cmplx.Abs(d) / 2
	mid := (za + zb) / 2
	dir := d / complex(cmplx.Abs(d), 0)
	z0 := complex(x, y)
	for k, l := range lab {
		var sum complex128
		for i, xi := range gaussLegendre10X {
			zeta := mid + complex(xi*halfLen, 0)*dir
			r := cmplx.Abs(zeta - z0)
			sum += complex(gaussLegendre10W[i]*halfLen, 0) * K0(complex(r, 0)/l)
		}
		out[k] = sum
	}
}

// CircleLineIntersection returns the portion [za,zb] of the segment [z1,z2] that
// lies within the disc of radius R centred at zp, per §6. n is 0 or 2: 0 means the
// segment does not cross the disc (za, zb are left unset), 2 means it does, with za
// the entry point (smaller parameter along [z1,z2]) and zb the exit point.
func CircleLineIntersection(z1, z2, zp complex128, R float64) (za, zb complex128, n int) {
	d := z2 - z1
	f := z1 - zp
	a := real(d)*real(d) + imag(d)*imag(d)
	if a == 0 {
		return 0, 0, 0
	}
	b := 2 * (real(d)*real(f) + imag(d)*imag(f))
	c := real(f)*real(f) + imag(f)*imag(f) - R*R
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, 0, 0
	}
	sq := math.Sqrt(disc)
	t0 := (-b - sq) / (2 * a)
	t1 := (-b + sq) / (2 * a)
	lo, hi := t0, t1
	if lo < 0 {
		lo = 0
	}
	if hi > 1 {
		hi = 1
	}
	if lo >= hi {
		return 0, 0, 0
	}
	za = z1 + complex(lo, 0)*d
	zb = z1 + complex(hi, 0)*d
	return za, zb, 2
}
