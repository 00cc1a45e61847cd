// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// wide holds the column sums of a schoolbook product before reduction.
type wide [2*MaxLimbs - 1]uint64

// Add sets v = a + b, and returns v.
func (v *Element[M]) Add(a, b *Element[M]) *Element[M] {
	feAdd(v.params(), &v.l, &a.l, &b.l)
	return v
}

// Subtract sets v = a - b, and returns v.
func (v *Element[M]) Subtract(a, b *Element[M]) *Element[M] {
	feSub(v.params(), &v.l, &a.l, &b.l)
	return v
}

// Negate sets v = -a, and returns v.
func (v *Element[M]) Negate(a *Element[M]) *Element[M] {
	var zero Element[M]
	return v.Subtract(&zero, a)
}

// Multiply sets v = x * y, and returns v.
func (v *Element[M]) Multiply(x, y *Element[M]) *Element[M] {
	feMul(v.params(), &v.l, &x.l, &y.l)
	return v
}

// Square sets v = x * x, and returns v.
func (v *Element[M]) Square(x *Element[M]) *Element[M] {
	feSquare(v.params(), &v.l, &x.l)
	return v
}

// Add32 sets v = x + y, and returns v.
func (v *Element[M]) Add32(x *Element[M], y uint32) *Element[M] {
	pp := v.params()
	v.l = x.l
	v.l[0] += uint64(y)
	feCarry(pp, &v.l)
	return v
}

// Sub32 sets v = x - y, and returns v.
func (v *Element[M]) Sub32(x *Element[M], y uint32) *Element[M] {
	pp := v.params()
	var t limbs
	t[0] = uint64(y)
	feCarry(pp, &t)
	feSub(pp, &v.l, &x.l, &t)
	return v
}

// Mult32 sets v = x * y, and returns v.
func (v *Element[M]) Mult32(x *Element[M], y uint32) *Element[M] {
	feMult32(v.params(), &v.l, &x.l, y)
	return v
}

func feAdd(pp *Params, v, a, b *limbs) {
	for i := 0; i < pp.k; i++ {
		v[i] = a[i] + b[i]
	}
	feCarry(pp, v)
}

// feSub computes a - b as a + (2p - b). The 2p bias is applied per limb and
// telescopes to exactly 2p, and each biased limb stays above any loose limb
// of b, so no term underflows.
func feSub(pp *Params, v, a, b *limbs) {
	for i := 0; i < pp.k; i++ {
		v[i] = a[i] + pp.twoP[i] - b[i]
	}
	feCarry(pp, v)
}

// feMul sets v = a * b using schoolbook column sums. Loose limbs are below
// 2^29, so each product is below 2^58 and each column gathers at most
// MaxLimbs of them, staying well below 2^63.
func feMul(pp *Params, v, a, b *limbs) {
	var t wide
	for i := 0; i < pp.k; i++ {
		for j := 0; j < pp.k; j++ {
			t[i+j] += a[i] * b[j]
		}
	}
	feReduceWide(pp, v, &t)
}

// feSquare sets v = a * a. Off-diagonal products appear twice, so they are
// computed once against a doubled operand.
func feSquare(pp *Params, v, a *limbs) {
	var a2 limbs
	for i := 0; i < pp.k; i++ {
		a2[i] = 2 * a[i]
	}
	var t wide
	for i := 0; i < pp.k; i++ {
		t[2*i] += a[i] * a[i]
		for j := i + 1; j < pp.k; j++ {
			t[i+j] += a2[i] * a[j]
		}
	}
	feReduceWide(pp, v, &t)
}

// feMult32 sets v = a * y. Each product a[i]·y fits in 61 bits and is split
// at the limb boundary; the spill joins the limb above, and the top spill is
// carried over per the reduction identity.
func feMult32(pp *Params, v, a *limbs, y uint32) {
	top := pp.k - 1
	var lo, hi limbs
	for i := 0; i < pp.k; i++ {
		m := a[i] * uint64(y)
		if i == top {
			lo[i] = m & pp.maskTop
			hi[i] = m >> pp.t
		} else {
			lo[i] = m & pp.maskLow
			hi[i] = m >> pp.b
		}
	}
	v[0] = lo[0] + pp.c*hi[top]
	for i := 1; i < pp.k; i++ {
		v[i] = lo[i] + hi[i-1]
	}
	feCarry(pp, v)
}

// feReduceWide folds 2k - 1 column sums into the limb schedule. The columns
// are first normalized into radix-2^b digits, the digits are split at bit n,
// and the high part is folded back in scaled by c.
func feReduceWide(pp *Params, v *limbs, t *wide) {
	k, b, tw := pp.k, pp.b, pp.t

	// Column sums are below 2^62, so normalization carries stay below
	// 2^(62-b) and no addition overflows. The residual carry becomes digit
	// 2k-1.
	var d [2 * MaxLimbs]uint64
	var cy uint64
	for i := 0; i < 2*k-1; i++ {
		s := t[i] + cy
		d[i] = s & pp.maskLow
		cy = s >> b
	}
	d[2*k-1] = cy

	// The split point n = b(k-1) + t falls t bits into digit k-1. The high
	// part is realigned into radix-2^b windows; products of loose elements
	// keep it below 2^(n+1), so the last window fits in t+1 bits and needs
	// no mask.
	for j := 0; j < k; j++ {
		hi := d[k-1+j]>>tw | d[k+j]<<(b-tw)
		lo := d[j]
		if j < k-1 {
			hi &= pp.maskLow
		} else {
			lo &= pp.maskTop
		}
		v[j] = lo + pp.c*hi
	}
	feCarry(pp, v)
}
