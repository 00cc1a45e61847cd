// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package field implements constant-time arithmetic over a family of
// pseudo-Mersenne prime fields GF(2^n - c).
//
// Each supported modulus is described by a Params value and selected at the
// type level by a Modulus marker, so elements of different fields (or of the
// same field on different limb schedules) never mix. All instantiations share
// one engine working on a lazily normalized limb representation; nothing in
// the arithmetic path branches on element values.
package field

import (
	"fmt"
	"math/big"
)

// MaxLimbs is the largest limb count any supported schedule uses. Element
// storage is sized for the largest field so the type stays a plain array.
const MaxLimbs = 19

// limbs is the raw storage shared by every Element instantiation. Only the
// schedule's first k limbs are active; the rest stay zero.
type limbs [MaxLimbs]uint64

// Modulus selects a field instantiation at the type level. Implementations
// are zero-size markers whose Params method returns the shared descriptor.
type Modulus interface {
	Params() *Params
}

// ParamsOf returns the descriptor of the field selected by M.
func ParamsOf[M Modulus]() *Params {
	var m M
	return m.Params()
}

// Params describes one pseudo-Mersenne prime field p = 2^n - c together with
// the limb schedule its elements use: k limbs holding b value bits each,
// except the top limb, which holds the remaining t = n - b·(k-1) bits.
//
// Between operations limbs 1 through k-2 stay below 2^b, the top limb below
// 2^t, and limb 0 below 2^b + c: every operation folds the carry overflowing
// bit n back into limb 0 scaled by c, using 2^n ≡ c (mod p). The represented
// value is then below p + 2c, so a single conditional subtraction
// normalizes it.
type Params struct {
	name string
	n    uint   // modulus bit length
	c    uint64 // p = 2^n - c
	k    int    // active limb count
	b    uint   // value bits per limb
	t    uint   // value bits in the top limb
	size int    // canonical encoding length in bytes

	maskLow uint64 // 2^b - 1
	maskTop uint64 // 2^t - 1

	twoP limbs // 2p in schedule form, the subtraction bias

	modulus *big.Int
	pMinus2 *big.Int // Invert exponent
	halfPm1 *big.Int // Legendre exponent, (p-1)/2
	sqrtExp *big.Int // (p+1)/4, or (p+3)/8 when p ≡ 5 (mod 8)
	sqrt5m8 bool
	sqrtM1  limbs // 2^((p-1)/4), the root of -1 used by Sqrt when p ≡ 5 (mod 8)
}

// Name returns the schedule name, for example "p25519".
func (pp *Params) Name() string { return pp.name }

// BitLen returns n, the bit length of the modulus.
func (pp *Params) BitLen() int { return int(pp.n) }

// C returns c, the small constant of p = 2^n - c.
func (pp *Params) C() uint64 { return pp.c }

// Limbs returns the number of active limbs in the schedule.
func (pp *Params) Limbs() int { return pp.k }

// Width returns the number of value bits per limb.
func (pp *Params) Width() int { return int(pp.b) }

// TopWidth returns the number of value bits in the top limb.
func (pp *Params) TopWidth() int { return int(pp.t) }

// Size returns the length of the canonical byte encoding.
func (pp *Params) Size() int { return pp.size }

// Modulus returns p.
func (pp *Params) Modulus() *big.Int { return new(big.Int).Set(pp.modulus) }

// newParams builds and checks the descriptor for p = 2^n - c on a schedule
// of k limbs of b bits. The bounds keep every partial product, column sum,
// and folded carry inside 64 bits for any operation chain.
func newParams(name string, n uint, c uint64, k int, b uint) *Params {
	if k < 3 || k > MaxLimbs {
		panic(fmt.Sprintf("edwards: %s: limb count %d out of range", name, k))
	}
	if b < 20 || b > 28 {
		panic(fmt.Sprintf("edwards: %s: limb width %d out of range", name, b))
	}
	if c == 0 || c >= 1<<8 {
		panic(fmt.Sprintf("edwards: %s: constant %d out of range", name, c))
	}
	if b*uint(k-1) >= n {
		panic(fmt.Sprintf("edwards: %s: schedule overflows the modulus", name))
	}
	t := n - b*uint(k-1)
	if t < 13 || t > b {
		panic(fmt.Sprintf("edwards: %s: top width %d out of range", name, t))
	}

	pp := &Params{
		name:    name,
		n:       n,
		c:       c,
		k:       k,
		b:       b,
		t:       t,
		size:    int(n+7) / 8,
		maskLow: 1<<b - 1,
		maskTop: 1<<t - 1,
	}

	// 2p = 2^(n+1) - 2c in schedule form: the per-limb values telescope so
	// that adding them limb-wise adds exactly 2p.
	pp.twoP[0] = 1<<(b+1) - 2*c
	for i := 1; i < k-1; i++ {
		pp.twoP[i] = 1<<(b+1) - 2
	}
	pp.twoP[k-1] = 1<<(t+1) - 2

	one := big.NewInt(1)
	pp.modulus = new(big.Int).Lsh(one, n)
	pp.modulus.Sub(pp.modulus, new(big.Int).SetUint64(c))
	pp.pMinus2 = new(big.Int).Sub(pp.modulus, big.NewInt(2))
	pp.halfPm1 = new(big.Int).Rsh(new(big.Int).Sub(pp.modulus, one), 1)

	switch new(big.Int).Mod(pp.modulus, big.NewInt(8)).Int64() {
	case 3, 7:
		pp.sqrtExp = new(big.Int).Rsh(new(big.Int).Add(pp.modulus, one), 2)
	case 5:
		pp.sqrt5m8 = true
		pp.sqrtExp = new(big.Int).Rsh(new(big.Int).Add(pp.modulus, big.NewInt(3)), 3)
		// p ≡ 5 (mod 8) makes 2 a non-residue, so 2^((p-1)/4) squares to -1.
		quartic := new(big.Int).Rsh(new(big.Int).Sub(pp.modulus, one), 2)
		var two limbs
		two[0] = 2
		fePow(pp, &pp.sqrtM1, &two, quartic)
	default:
		panic(fmt.Sprintf("edwards: %s: unsupported modulus residue class", name))
	}

	return pp
}

// Moduli returns the descriptors of every supported field schedule, in
// modulus order.
func Moduli() []*Params {
	return []*Params{
		p221Params, p221aParams, p222Params, p251Params,
		p25519Params, p382Params, p414Params, p521Params,
	}
}
