// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards

import (
	"errors"

	"github.com/pmcurve/edwards/field"
)

// Point represents a point on the twisted Edwards curve over the field
// selected by M, in extended coordinates (X : Y : Z : T) with x = X/Z,
// y = Y/Z, and x*y = T/Z, as in https://eprint.iacr.org/2008/522.
//
// The zero value is NOT valid, and it may be used only as a receiver.
type Point[M field.Modulus] struct {
	// Make the type not comparable (i.e. used with == or as a map key), as
	// equivalent points can be represented by different Go values.
	_ incomparable

	x, y, z, t field.Element[M]
}

type incomparable [0]func()

func checkInitialized[M field.Modulus](points ...*Point[M]) {
	for _, p := range points {
		if p.x == (field.Element[M]{}) && p.y == (field.Element[M]{}) {
			panic("edwards: use of uninitialized Point")
		}
	}
}

// Constructors.

// NewIdentityPoint returns a new Point set to the identity.
func NewIdentityPoint[M field.Modulus]() *Point[M] {
	return new(Point[M]).Identity()
}

// Identity sets v to the identity (0, 1), and returns v.
func (v *Point[M]) Identity() *Point[M] {
	v.x.Zero()
	v.y.One()
	v.z.One()
	v.t.Zero()
	return v
}

// NewGeneratorPoint returns a new Point set to the canonical generator of
// the curve over the field selected by M.
func NewGeneratorPoint[M field.Modulus]() *Point[M] {
	return new(Point[M]).Generator()
}

// Generator sets v to the canonical generator, and returns v.
func (v *Point[M]) Generator() *Point[M] {
	return v.Set(&curveOf[M]().gen)
}

// Set sets v = u, and returns v.
func (v *Point[M]) Set(u *Point[M]) *Point[M] {
	*v = *u
	return v
}

// SetAffine sets v to the affine point (x, y), and returns v. If (x, y) is
// not on the curve, SetAffine returns nil and an error, and the receiver is
// unchanged. The check runs on public inputs and is not constant time.
func (v *Point[M]) SetAffine(x, y *field.Element[M]) (*Point[M], error) {
	var t, one field.Element[M]
	t.Multiply(x, y)
	one.One()
	if !isOnCurve(x, y, &one, &t) {
		return nil, errors.New("edwards: affine point is not on the curve")
	}
	v.x.Set(x)
	v.y.Set(y)
	v.z.One()
	v.t.Set(&t)
	return v, nil
}

// SetExtendedCoordinates sets v = (X:Y:Z:T) in extended coordinates, and
// returns v. If the coordinates do not satisfy the curve equation or the
// extension invariant X*Y = Z*T, SetExtendedCoordinates returns nil and an
// error, and the receiver is unchanged.
func (v *Point[M]) SetExtendedCoordinates(X, Y, Z, T *field.Element[M]) (*Point[M], error) {
	if !isOnCurve(X, Y, Z, T) {
		return nil, errors.New("edwards: invalid point coordinates")
	}
	v.x.Set(X)
	v.y.Set(Y)
	v.z.Set(Z)
	v.t.Set(T)
	return v, nil
}

func isOnCurve[M field.Modulus](X, Y, Z, T *field.Element[M]) bool {
	c := curveOf[M]()
	var lhs, rhs field.Element[M]
	XX := new(field.Element[M]).Square(X)
	YY := new(field.Element[M]).Square(Y)
	ZZ := new(field.Element[M]).Square(Z)
	TT := new(field.Element[M]).Square(T)
	// a*x² + y² = 1 + d*x²*y²
	// a*(X/Z)² + (Y/Z)² = 1 + d*(T/Z)²
	// a*X² + Y² = Z² + d*T²
	lhs.Multiply(&c.a, XX).Add(&lhs, YY)
	rhs.Multiply(&c.d, TT).Add(&rhs, ZZ)
	if lhs.Equal(&rhs) != 1 {
		return false
	}
	// x*y = T/Z
	// X*Y/Z² = T/Z
	// X*Y = T*Z
	lhs.Multiply(X, Y)
	rhs.Multiply(T, Z)
	return lhs.Equal(&rhs) == 1
}

// ExtendedCoordinates returns v in extended coordinates (X:Y:Z:T) where
// x = X/Z, y = Y/Z, and x*y = T/Z.
func (v *Point[M]) ExtendedCoordinates() (X, Y, Z, T *field.Element[M]) {
	// This function is outlined to make the allocations inline in the caller
	// rather than happen on the heap.
	var e [4]field.Element[M]
	X, Y, Z, T = v.extendedCoordinates(&e)
	return
}

func (v *Point[M]) extendedCoordinates(e *[4]field.Element[M]) (X, Y, Z, T *field.Element[M]) {
	checkInitialized(v)
	X = e[0].Set(&v.x)
	Y = e[1].Set(&v.y)
	Z = e[2].Set(&v.z)
	T = e[3].Set(&v.t)
	return
}

// AffineCoordinates returns the affine coordinates (x, y) of v, dividing
// out the projective factor.
func (v *Point[M]) AffineCoordinates() (x, y *field.Element[M]) {
	var e [2]field.Element[M]
	x, y = v.affineCoordinates(&e)
	return
}

func (v *Point[M]) affineCoordinates(e *[2]field.Element[M]) (x, y *field.Element[M]) {
	checkInitialized(v)
	var zInv field.Element[M]
	zInv.Invert(&v.z)
	x = e[0].Multiply(&v.x, &zInv)
	y = e[1].Multiply(&v.y, &zInv)
	return
}

// Addition, doubling, and tripling.

// Add sets v = p + q, and returns v.
//
// The formula is the unified extended-coordinate addition, which has no
// exceptional cases for q = p, q = -p, or the identity, and performs the
// same field operations for every input.
func (v *Point[M]) Add(p, q *Point[M]) *Point[M] {
	checkInitialized(p, q)
	c := curveOf[M]()

	var A, B, C, D, E, F, G, H, t field.Element[M]
	A.Multiply(&p.x, &q.x)
	B.Multiply(&p.y, &q.y)
	C.Multiply(&p.t, &q.t)
	C.Multiply(&C, &c.d)
	D.Multiply(&p.z, &q.z)
	E.Add(&p.x, &p.y)
	t.Add(&q.x, &q.y)
	E.Multiply(&E, &t)
	E.Subtract(&E, &A)
	E.Subtract(&E, &B)
	F.Subtract(&D, &C)
	G.Add(&D, &C)
	H.Multiply(&A, &c.a)
	H.Subtract(&B, &H)

	v.x.Multiply(&E, &F)
	v.y.Multiply(&G, &H)
	v.t.Multiply(&E, &H)
	v.z.Multiply(&F, &G)
	return v
}

// Subtract sets v = p - q, and returns v.
func (v *Point[M]) Subtract(p, q *Point[M]) *Point[M] {
	var negQ Point[M]
	negQ.Negate(q)
	return v.Add(p, &negQ)
}

// Double sets v = p + p, and returns v.
func (v *Point[M]) Double(p *Point[M]) *Point[M] {
	checkInitialized(p)
	c := curveOf[M]()

	var A, B, C, D, E, F, G, H field.Element[M]
	A.Square(&p.x)
	B.Square(&p.y)
	C.Square(&p.z)
	C.Add(&C, &C)
	D.Multiply(&A, &c.a)
	E.Add(&p.x, &p.y)
	E.Square(&E)
	E.Subtract(&E, &A)
	E.Subtract(&E, &B)
	G.Add(&D, &B)
	F.Subtract(&G, &C)
	H.Subtract(&D, &B)

	v.x.Multiply(&E, &F)
	v.y.Multiply(&G, &H)
	v.t.Multiply(&E, &H)
	v.z.Multiply(&F, &G)
	return v
}

// Triple sets v = p + p + p, and returns v. It is cheaper than a Double
// followed by an Add, and does not involve the curve constant d: the
// tripling identity eliminates it through the curve equation.
func (v *Point[M]) Triple(p *Point[M]) *Point[M] {
	checkInitialized(p)
	c := curveOf[M]()

	var YY, aXX, Ap, B, xB, yB, AA, F, G, xE, yH, zF, zG field.Element[M]
	YY.Square(&p.y)
	aXX.Square(&p.x)
	aXX.Multiply(&aXX, &c.a)
	Ap.Add(&YY, &aXX)
	B.Square(&p.z)
	B.Add(&B, &B)
	B.Subtract(&B, &Ap)
	B.Add(&B, &B)
	xB.Multiply(&aXX, &B)
	yB.Multiply(&YY, &B)
	AA.Subtract(&YY, &aXX)
	AA.Multiply(&Ap, &AA)
	F.Subtract(&AA, &yB)
	G.Add(&AA, &xB)
	xE.Add(&yB, &AA)
	xE.Multiply(&p.x, &xE)
	yH.Subtract(&xB, &AA)
	yH.Multiply(&p.y, &yH)
	zF.Multiply(&p.z, &F)
	zG.Multiply(&p.z, &G)

	v.x.Multiply(&xE, &zF)
	v.y.Multiply(&yH, &zG)
	v.t.Multiply(&xE, &yH)
	v.z.Multiply(&zF, &zG)
	return v
}

// MultByCofactor sets v = [h]p where h is the curve cofactor, and returns v.
func (v *Point[M]) MultByCofactor(p *Point[M]) *Point[M] {
	checkInitialized(p)
	v.Set(p)
	for h := curveOf[M]().cofactor; h > 1; h >>= 1 {
		v.Double(v)
	}
	return v
}

// Negation.

// Negate sets v = -p, and returns v.
func (v *Point[M]) Negate(p *Point[M]) *Point[M] {
	checkInitialized(p)
	v.x.Negate(&p.x)
	v.y.Set(&p.y)
	v.z.Set(&p.z)
	v.t.Negate(&p.t)
	return v
}

// Equal returns 1 if v is equivalent to u, and 0 otherwise.
func (v *Point[M]) Equal(u *Point[M]) int {
	checkInitialized(v, u)
	var t1, t2, t3, t4 field.Element[M]
	t1.Multiply(&v.x, &u.z)
	t2.Multiply(&u.x, &v.z)
	t3.Multiply(&v.y, &u.z)
	t4.Multiply(&u.y, &v.z)

	return t1.Equal(&t2) & t3.Equal(&t4)
}

// Constant-time operations.

// Select sets v to a if cond == 1 and to b if cond == 0. It is the
// point-level arm of the package's single branchless-choice mechanism, built
// on the element masks.
func (v *Point[M]) Select(a, b *Point[M], cond int) *Point[M] {
	checkInitialized(a, b)
	v.x.Select(&a.x, &b.x, cond)
	v.y.Select(&a.y, &b.y, cond)
	v.z.Select(&a.z, &b.z, cond)
	v.t.Select(&a.t, &b.t, cond)
	return v
}
