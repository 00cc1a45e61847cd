// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package edwards

import (
	"fmt"
	"math/big"

	"github.com/pmcurve/edwards/field"
)

// Curve describes a twisted Edwards curve a*x² + y² = 1 + d*x²*y² over the
// field selected by M. Exactly one curve is defined over each field schedule,
// and point operations look their constants up through the schedule, so a
// Point[M] is always a point on the curve registered over M.
//
// Curve values are built at package initialization and are immutable.
type Curve[M field.Modulus] struct {
	name     string
	a, d     field.Element[M]
	gen      Point[M]
	cofactor int
	order    *big.Int
}

// Name returns the curve name, for example "ed25519".
func (c *Curve[M]) Name() string { return c.name }

// A returns the curve constant a.
func (c *Curve[M]) A() *field.Element[M] { return new(field.Element[M]).Set(&c.a) }

// D returns the curve constant d.
func (c *Curve[M]) D() *field.Element[M] { return new(field.Element[M]).Set(&c.d) }

// Generator returns the canonical generator.
func (c *Curve[M]) Generator() *Point[M] { return new(Point[M]).Set(&c.gen) }

// Cofactor returns the curve cofactor h.
func (c *Curve[M]) Cofactor() int { return c.cofactor }

// Order returns the order of the prime-order subgroup, or nil for curves
// that do not embed it.
func (c *Curve[M]) Order() *big.Int {
	if c.order == nil {
		return nil
	}
	return new(big.Int).Set(c.order)
}

// Field returns the descriptor of the underlying field schedule.
func (c *Curve[M]) Field() *field.Params { return field.ParamsOf[M]() }

// curveRegistry maps a field schedule name to the *Curve[M] defined over it.
// Written only during package initialization.
var curveRegistry = map[string]any{}

func curveOf[M field.Modulus]() *Curve[M] {
	c, ok := curveRegistry[field.ParamsOf[M]().Name()].(*Curve[M])
	if !ok {
		panic("edwards: no curve registered over " + field.ParamsOf[M]().Name())
	}
	return c
}

// newCurve builds a curve descriptor and registers it for its field schedule.
// The base point is derived from its y coordinate by solving the curve
// equation for the root with even encoding; a nil baseY selects the smallest
// y ≥ 2 that lifts to a curve point.
func newCurve[M field.Modulus](name string, a, d, baseY *field.Element[M], cofactor int, order *big.Int) *Curve[M] {
	if cofactor < 1 || cofactor&(cofactor-1) != 0 {
		panic(fmt.Sprintf("edwards: %s: cofactor %d is not a power of two", name, cofactor))
	}
	c := &Curve[M]{name: name, cofactor: cofactor, order: order}
	c.a.Set(a)
	c.d.Set(d)

	if baseY == nil {
		baseY = scanBaseY[M](a, d)
	}
	x, ok := liftX[M](a, d, baseY)
	if ok != 1 {
		panic(fmt.Sprintf("edwards: %s: base point y does not lift to the curve", name))
	}
	c.gen.x.Set(x)
	c.gen.y.Set(baseY)
	c.gen.z.One()
	c.gen.t.Multiply(x, baseY)

	key := field.ParamsOf[M]().Name()
	if _, dup := curveRegistry[key]; dup {
		panic(fmt.Sprintf("edwards: %s: a curve is already registered over %s", name, key))
	}
	curveRegistry[key] = c
	return c
}

// liftX returns the x with even encoding satisfying a*x² + y² = 1 + d*x²*y²,
// that is sqrt((1 - y²) / (a - d*y²)), and whether it exists.
func liftX[M field.Modulus](a, d, y *field.Element[M]) (*field.Element[M], int) {
	var yy, num, den, one field.Element[M]
	yy.Square(y)
	num.Subtract(one.One(), &yy)
	den.Multiply(d, &yy)
	den.Subtract(a, &den)
	return new(field.Element[M]).SqrtRatio(&num, &den)
}

// scanBaseY returns the smallest y ≥ 2 that lifts to a curve point, the
// generator convention used by curves defined without a published base
// point. Runs on public constants at package initialization only.
func scanBaseY[M field.Modulus](a, d *field.Element[M]) *field.Element[M] {
	for y := uint64(2); ; y++ {
		cand := new(field.Element[M]).SetUint64(y)
		if _, ok := liftX[M](a, d, cand); ok == 1 {
			return cand
		}
	}
}

// Small-constant element builders for the curve tables. All inputs are
// public curve parameters.

func feInt[M field.Modulus](x int64) *field.Element[M] {
	if x >= 0 {
		return new(field.Element[M]).SetUint64(uint64(x))
	}
	v := new(field.Element[M]).SetUint64(uint64(-x))
	return v.Negate(v)
}

func feRatio[M field.Modulus](num, den int64) *field.Element[M] {
	v := feInt[M](den)
	v.Invert(v)
	return v.Multiply(v, feInt[M](num))
}

func mustDecimal(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		panic("edwards: not a valid decimal: " + s)
	}
	return n
}

// ed25519Order is the order of the prime subgroup of edwards25519,
// 2^252 + 27742317777372353535851937790883648493.
var ed25519Order = mustDecimal("7237005577332262213973186563042994240857116359379907606001950938285454250989")

// The supported curves. Constants are given as the small integers and ratios
// from the curve definitions and expanded in-field at initialization.
var (
	// Curve2213 is the Edwards form of the Montgomery curve over
	// GF(2^221 - 3), with a = A + 2 and d = A - 2 for A = 117050. The base
	// point maps the Montgomery base u = 4 through y = (u - 1)/(u + 1).
	Curve2213 = newCurve[field.P221]("curve2213",
		feInt[field.P221](117052), feInt[field.P221](117048),
		feRatio[field.P221](3, 5), 8, nil)

	// Curve2213A is Curve2213 over the narrow limb schedule of the same
	// field, exercising schedule independence end to end.
	Curve2213A = newCurve[field.P221A]("curve2213a",
		feInt[field.P221A](117052), feInt[field.P221A](117048),
		feRatio[field.P221A](3, 5), 8, nil)

	// E222 is the Edwards curve x² + y² = 1 + 160102*x²*y² over
	// GF(2^222 - 117).
	E222 = newCurve[field.P222]("e222",
		feInt[field.P222](1), feInt[field.P222](160102),
		feInt[field.P222](28), 4, nil)

	// Curve1174 is the Edwards curve x² + y² = 1 - 1174*x²*y² over
	// GF(2^251 - 9). The generator is the smallest-y lift.
	Curve1174 = newCurve[field.P251]("curve1174",
		feInt[field.P251](1), feInt[field.P251](-1174),
		nil, 4, nil)

	// Ed25519 is the twisted Edwards curve -x² + y² = 1 - (121665/121666)*
	// x²*y² over GF(2^255 - 19), the curve of the Ed25519 signature scheme.
	Ed25519 = newCurve[field.P25519]("ed25519",
		feInt[field.P25519](-1), feRatio[field.P25519](-121665, 121666),
		feRatio[field.P25519](4, 5), 8, ed25519Order)

	// E382 is the Edwards curve x² + y² = 1 - 67254*x²*y² over
	// GF(2^382 - 105).
	E382 = newCurve[field.P382]("e382",
		feInt[field.P382](1), feInt[field.P382](-67254),
		feInt[field.P382](17), 4, nil)

	// Curve41417 is the Edwards curve x² + y² = 1 + 3617*x²*y² over
	// GF(2^414 - 17).
	Curve41417 = newCurve[field.P414]("curve41417",
		feInt[field.P414](1), feInt[field.P414](3617),
		feInt[field.P414](34), 8, nil)

	// E521 is the Edwards curve x² + y² = 1 - 376014*x²*y² over
	// GF(2^521 - 1).
	E521 = newCurve[field.P521]("e521",
		feInt[field.P521](1), feInt[field.P521](-376014),
		feInt[field.P521](12), 4, nil)
)
