// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "math/big"

// fePow sets v = x^e by square-and-multiply over the bits of e, most
// significant first. Exponents here are fixed public functions of the
// modulus, so branching on their bits leaks nothing about x.
func fePow(pp *Params, v, x *limbs, e *big.Int) {
	x0 := *x
	var acc limbs
	acc[0] = 1
	for i := e.BitLen() - 1; i >= 0; i-- {
		feSquare(pp, &acc, &acc)
		if e.Bit(i) == 1 {
			feMul(pp, &acc, &acc, &x0)
		}
	}
	*v = acc
}

// Invert sets v = 1/z mod p, and returns v.
//
// If z == 0, Invert returns v = 0.
func (v *Element[M]) Invert(z *Element[M]) *Element[M] {
	// Inversion is an exponentiation by p - 2, per Fermat's little theorem.
	pp := v.params()
	fePow(pp, &v.l, &z.l, pp.pMinus2)
	return v
}

// Legendre sets v = z^((p-1)/2), and returns v. The result is 1 if z is a
// nonzero square, p - 1 if z is a non-square, and 0 if z is zero.
func (v *Element[M]) Legendre(z *Element[M]) *Element[M] {
	pp := v.params()
	fePow(pp, &v.l, &z.l, pp.halfPm1)
	return v
}

// Sqrt sets v to a square root of u, and returns (v, 1), if u is a square.
// Otherwise it returns (v, 0) and v is left with an undefined value. The
// root is chosen so that the low bit of its canonical encoding is zero.
func (v *Element[M]) Sqrt(u *Element[M]) (*Element[M], int) {
	pp := v.params()

	var r Element[M]
	fePow(pp, &r.l, &u.l, pp.sqrtExp)

	if pp.sqrt5m8 {
		// For p ≡ 5 (mod 8), r = u^((p+3)/8) squares to ±u. When r² = -u,
		// the root of u is r·√-1.
		var r2, negU, ri Element[M]
		r2.Square(&r)
		negU.Negate(u)
		ri.l = pp.sqrtM1
		ri.Multiply(&ri, &r)
		r.Select(&ri, &r, r2.Equal(&negU))
	}

	var check Element[M]
	check.Square(&r)
	wasSquare := check.Equal(u)

	v.Absolute(&r)
	return v, wasSquare
}

// SqrtRatio sets r to the non-negative square root of the ratio of u and w,
// and returns (r, 1). If u/w is not a square it returns (r, 0) and r is left
// with an undefined value. SqrtRatio(0, 0) is (0, 1).
func (r *Element[M]) SqrtRatio(u, w *Element[M]) (*Element[M], int) {
	var wInv, ratio, root Element[M]
	wInv.Invert(w)
	ratio.Multiply(u, &wInv)
	root.Sqrt(&ratio)

	// The candidate is checked against w rather than the computed ratio, so
	// that w == 0 is handled correctly: the root squares to zero, which
	// matches u only if u is zero as well.
	var check Element[M]
	check.Square(&root)
	check.Multiply(&check, w)
	wasSquare := check.Equal(u)

	r.Set(&root)
	return r, wasSquare
}
