// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import (
	"crypto/subtle"
	"encoding/binary"
	"errors"
)

// Element is an element of the prime field selected by M.
//
// This type works similarly to math/big.Int, and all arguments and receivers
// are allowed to alias.
//
// The zero value is a valid zero element.
type Element[M Modulus] struct {
	// An element t represents the integer Σ t.l[i]·2^(b·i) over the active
	// limbs of the schedule.
	//
	// Between operations, limb i is expected to be lower than 2^b (2^t for
	// the top limb), except limb 0, which can be up to 2^b + c due to carry
	// folding.
	l limbs
}

func (v *Element[M]) params() *Params {
	var m M
	return m.Params()
}

// Zero sets v = 0, and returns v.
func (v *Element[M]) Zero() *Element[M] {
	v.l = limbs{}
	return v
}

// One sets v = 1, and returns v.
func (v *Element[M]) One() *Element[M] {
	v.l = limbs{}
	v.l[0] = 1
	return v
}

// Set sets v = a, and returns v.
func (v *Element[M]) Set(a *Element[M]) *Element[M] {
	v.l = a.l
	return v
}

// SetUint64 sets v = x, and returns v.
func (v *Element[M]) SetUint64(x uint64) *Element[M] {
	v.l = limbs{}
	v.l[0] = x
	feCarry(v.params(), &v.l)
	return v
}

// SetBytes sets v to x, which must be a Size()-byte little-endian encoding,
// and returns v. Bits above the modulus bit length are ignored, and
// non-canonical values (p and up) are accepted and behave as their reduced
// value; inputs come from key material constrained elsewhere, so no range
// check is performed.
//
// If x is not of the right length, SetBytes returns nil and an error, and
// the receiver is unchanged.
func (v *Element[M]) SetBytes(x []byte) (*Element[M], error) {
	pp := v.params()
	if len(x) != pp.size {
		return nil, errors.New("edwards: invalid field element input size")
	}
	feFromBytes(pp, &v.l, x)
	return v, nil
}

// Bytes returns the canonical Size()-byte little-endian encoding of v.
func (v *Element[M]) Bytes() []byte {
	pp := v.params()
	out := make([]byte, pp.size)
	feBytes(pp, out, &v.l)
	return out
}

// Equal returns 1 if v and u are congruent modulo p, and 0 otherwise.
//
// Lazily represented values with equal logical value can have different
// limbs, so this is the only valid equality test.
func (v *Element[M]) Equal(u *Element[M]) int {
	return feEqual(v.params(), &v.l, &u.l)
}

// Bit returns bit i of the normalized value of v, or 0 if i is out of range.
func (v *Element[M]) Bit(i uint) uint64 {
	pp := v.params()
	if i >= pp.n {
		return 0
	}
	w := v.l
	feReduce(pp, &w)
	return (w[i/pp.b] >> (i % pp.b)) & 1
}

// Select sets v to a if cond == 1, and to b if cond == 0. Together with
// Swap it is the only conditional mechanism in the package; cond never
// reaches a branch.
func (v *Element[M]) Select(a, b *Element[M], cond int) *Element[M] {
	feSelect(v.params(), &v.l, &a.l, &b.l, cond)
	return v
}

// Swap swaps v and u if cond == 1, and leaves them unchanged if cond == 0.
func (v *Element[M]) Swap(u *Element[M], cond int) {
	feSwap(v.params(), &v.l, &u.l, cond)
}

// IsNegative returns 1 if v is negative, and 0 otherwise. Negativity
// follows the low bit of the canonical encoding, the usual sign convention
// for compressed points.
func (v *Element[M]) IsNegative() int {
	return int(v.Bytes()[0] & 1)
}

// Absolute sets v to |u|, and returns v.
func (v *Element[M]) Absolute(u *Element[M]) *Element[M] {
	var tmp Element[M]
	return v.Select(tmp.Negate(u), u, u.IsNegative())
}

const mask64Bits uint64 = (1 << 64) - 1

func feSelect(pp *Params, v, a, b *limbs, cond int) {
	m := uint64(cond) * mask64Bits
	for i := 0; i < pp.k; i++ {
		v[i] = (m & a[i]) | (^m & b[i])
	}
}

func feSwap(pp *Params, v, u *limbs, cond int) {
	m := uint64(cond) * mask64Bits
	for i := 0; i < pp.k; i++ {
		t := m & (v[i] ^ u[i])
		v[i] ^= t
		u[i] ^= t
	}
}

func feEqual(pp *Params, a, b *limbs) int {
	sa, sb := make([]byte, pp.size), make([]byte, pp.size)
	feBytes(pp, sa, a)
	feBytes(pp, sb, b)
	return subtle.ConstantTimeCompare(sa, sb)
}

// feCarry brings v back to the loose form: every limb below its width,
// except limb 0 which may reach 2^b + c - 1. Two ripple passes, each folding
// the carry above bit n into limb 0 scaled by c; the second fold is at most
// a single c.
func feCarry(pp *Params, v *limbs) {
	top := pp.k - 1
	for pass := 0; pass < 2; pass++ {
		var cy uint64
		for i := 0; i < top; i++ {
			v[i] += cy
			cy = v[i] >> pp.b
			v[i] &= pp.maskLow
		}
		v[top] += cy
		cy = v[top] >> pp.t
		v[top] &= pp.maskTop
		v[0] += cy * pp.c
	}
}

// feReduce fully normalizes v into [0, p).
func feReduce(pp *Params, v *limbs) {
	feCarry(pp, v)
	top := pp.k - 1

	// After feCarry, v < 2^n + c = p + 2c, so at most one subtraction of p
	// is needed. If v >= p, then v + c >= 2^n, generating a carry out of the
	// top limb. That is, cy will be 0 if v < p, and 1 otherwise.
	cy := (v[0] + pp.c) >> pp.b
	for i := 1; i < top; i++ {
		cy = (v[i] + cy) >> pp.b
	}
	cy = (v[top] + cy) >> pp.t

	// If cy = 0 this is a no-op. Otherwise, it's effectively applying the
	// reduction identity to the carry: adding c and dropping bit n
	// subtracts exactly p.
	v[0] += cy * pp.c

	var carry uint64
	for i := 0; i < top; i++ {
		v[i] += carry
		carry = v[i] >> pp.b
		v[i] &= pp.maskLow
	}
	v[top] += carry
	v[top] &= pp.maskTop
}

// feFromBytes bit-slices a little-endian encoding into schedule limbs.
// Limbs straddle byte boundaries; each is read as a 64-bit window starting
// at its byte, then shifted and masked (b + 7 ≤ 35 bits, so no window
// overflows).
func feFromBytes(pp *Params, v *limbs, x []byte) {
	for i := 0; i < pp.k; i++ {
		off := uint(i) * pp.b
		w := load64(x[off/8:]) >> (off % 8)
		if i < pp.k-1 {
			v[i] = w & pp.maskLow
		} else {
			v[i] = w & pp.maskTop
		}
	}
	for i := pp.k; i < MaxLimbs; i++ {
		v[i] = 0
	}
}

// feBytes writes the canonical encoding of x into out, which must be
// pp.size bytes. The value is normalized first.
func feBytes(pp *Params, out []byte, x *limbs) {
	w := *x
	feReduce(pp, &w)

	for i := range out {
		out[i] = 0
	}
	var buf [8]byte
	for i := 0; i < pp.k; i++ {
		off := uint(i) * pp.b
		binary.LittleEndian.PutUint64(buf[:], w[i]<<(off%8))
		for j, bb := range buf {
			o := int(off/8) + j
			if o >= len(out) {
				break
			}
			out[o] |= bb
		}
	}
}

// load64 reads up to 8 bytes little-endian, zero-padding past the end of x.
func load64(x []byte) uint64 {
	var r uint64
	for i := 0; i < len(x) && i < 8; i++ {
		r |= uint64(x[i]) << (8 * uint(i))
	}
	return r
}
