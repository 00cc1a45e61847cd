// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "errors"

// SetWideBytes sets v to x, where x is a 2·Size()-byte little-endian
// encoding, which is reduced modulo the field order. If x is not of the
// right length, SetWideBytes returns nil and an error, and the receiver is
// unchanged.
//
// SetWideBytes is not necessary to select a uniformly distributed value, and
// is only provided for compatibility: SetBytes can be used instead, as for
// every supported modulus the chance of bias is less than 2⁻²¹³.
func (v *Element[M]) SetWideBytes(x []byte) (*Element[M], error) {
	pp := v.params()
	if len(x) != 2*pp.size {
		return nil, errors.New("edwards: invalid SetWideBytes input size")
	}

	// Split the input into two elements, and extract the top pad = 8·Size()
	// - n bits of each half, which are ignored by SetBytes.
	pad := uint(8*pp.size) - pp.n
	lo, _ := new(Element[M]).SetBytes(x[:pp.size])
	loTop := uint64(x[pp.size-1]) >> (8 - pad)
	hi, _ := new(Element[M]).SetBytes(x[pp.size:])
	hiTop := uint64(x[2*pp.size-1]) >> (8 - pad)

	// The output we want is
	//
	//   v = lo + loTop * 2^n + hi * 2^(8·size) + hiTop * 2^(n+8·size)
	//
	// which applying the reduction identity comes out to
	//
	//   v = lo + loTop * c + hi * c * 2^pad + hiTop * c² * 2^pad
	//
	// where every scaled term is small: pad ≤ 7 and c < 2^8, so c·2^pad
	// fits a multiplier and the carry element fits a single limb.
	carry := new(Element[M]).SetUint64(loTop*pp.c + hiTop*pp.c*pp.c<<pad)
	lo.Add(lo, carry)
	hi.Mult32(hi, uint32(pp.c)<<pad)
	v.Add(lo, hi)

	return v, nil
}
