// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards

import "github.com/pmcurve/edwards/field"

// ScalarMult sets v = [k]q, and returns v.
//
// The scalar is a field element and is taken at its normalized value. The
// multiplication is constant time in k: every one of the n iterations
// performs the same two doublings, one addition, and two masked selections,
// whatever the scalar bits.
func (v *Point[M]) ScalarMult(k *field.Element[M], q *Point[M]) *Point[M] {
	checkInitialized(q)
	kBytes := new(field.Element[M]).Set(k).Bytes()

	// r1 trails r0 by one absorption of q: r1 = r0 + q before and after
	// every iteration. On bit 0 the pair advances to (2*r0, r0 + r1), on
	// bit 1 to (r0 + r1, 2*r1); both arms are always computed and the
	// scalar bit only steers the masked selection.
	var r0, r1, d0, d1, s Point[M]
	r0.Identity()
	r1.Set(q)
	for i := field.ParamsOf[M]().BitLen() - 1; i >= 0; i-- {
		bit := int(kBytes[i/8]>>(i%8)) & 1
		d0.Double(&r0)
		d1.Double(&r1)
		s.Add(&r0, &r1)
		r0.Select(&s, &d0, bit)
		r1.Select(&d1, &s, bit)
	}
	return v.Set(&r0)
}

// ScalarBaseMult sets v = [k]B, where B is the canonical generator, and
// returns v.
func (v *Point[M]) ScalarBaseMult(k *field.Element[M]) *Point[M] {
	return v.ScalarMult(k, NewGeneratorPoint[M]())
}
