// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package curveset exposes every supported curve to the CLI behind a
// non-generic surface, so commands can iterate over curves whose type
// parameters differ.
package curveset

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/pmcurve/edwards"
	"github.com/pmcurve/edwards/field"
)

// Vector is one scalar-multiplication test vector: the affine coordinates of
// [k]G in little-endian hex.
type Vector struct {
	Curve string `json:"curve"`
	K     uint64 `json:"k"`
	X     string `json:"x"`
	Y     string `json:"y"`
}

// Entry binds one curve to the operations the CLI needs.
type Entry struct {
	Name     string
	Field    *field.Params
	Cofactor int
	HasOrder bool

	// SelfTest sweeps the field and group properties for the given number
	// of random rounds and reports every failed check.
	SelfTest func(rounds int) error
	// Vector computes the test vector for the scalar k.
	Vector func(k uint64) Vector
}

// Entries returns every supported curve, in modulus order.
func Entries() []Entry {
	return []Entry{
		newEntry(edwards.Curve2213),
		newEntry(edwards.Curve2213A),
		newEntry(edwards.E222),
		newEntry(edwards.Curve1174),
		newEntry(edwards.Ed25519),
		newEntry(edwards.E382),
		newEntry(edwards.Curve41417),
		newEntry(edwards.E521),
	}
}

func newEntry[M field.Modulus](c *edwards.Curve[M]) Entry {
	return Entry{
		Name:     c.Name(),
		Field:    c.Field(),
		Cofactor: c.Cofactor(),
		HasOrder: c.Order() != nil,
		SelfTest: func(rounds int) error { return selfTest(c, rounds) },
		Vector:   func(k uint64) Vector { return vector(c, k) },
	}
}

func vector[M field.Modulus](c *edwards.Curve[M], k uint64) Vector {
	var p edwards.Point[M]
	p.ScalarBaseMult(new(field.Element[M]).SetUint64(k))
	x, y := p.AffineCoordinates()

	return Vector{
		Curve: c.Name(),
		K:     k,
		X:     hex.EncodeToString(x.Bytes()),
		Y:     hex.EncodeToString(y.Bytes()),
	}
}

func randomElement[M field.Modulus]() (*field.Element[M], error) {
	buf := make([]byte, 2*field.ParamsOf[M]().Size())
	if _, err := rand.Read(buf); err != nil {
		return nil, err
	}
	return new(field.Element[M]).SetWideBytes(buf)
}

// selfTest exercises the arithmetic the curve is built on. Failures are
// collected rather than returned early, so one run reports everything that
// is broken.
func selfTest[M field.Modulus](c *edwards.Curve[M], rounds int) error {
	var result *multierror.Error
	name := c.Name()

	fail := func(format string, args ...any) {
		result = multierror.Append(result, fmt.Errorf(name+": "+format, args...))
	}

	one := new(field.Element[M]).SetUint64(1)
	for i := 0; i < rounds; i++ {
		x, err := randomElement[M]()
		if err != nil {
			return err
		}
		y, err := randomElement[M]()
		if err != nil {
			return err
		}
		z, err := randomElement[M]()
		if err != nil {
			return err
		}

		var lhs, rhs, t field.Element[M]
		lhs.Add(x, y)
		rhs.Add(y, x)
		if lhs.Equal(&rhs) != 1 {
			fail("x + y != y + x")
		}

		lhs.Add(&lhs, z)
		rhs.Add(y, z)
		rhs.Add(x, &rhs)
		if lhs.Equal(&rhs) != 1 {
			fail("(x + y) + z != x + (y + z)")
		}

		lhs.Add(x, y)
		lhs.Multiply(&lhs, z)
		rhs.Multiply(x, z)
		t.Multiply(y, z)
		rhs.Add(&rhs, &t)
		if lhs.Equal(&rhs) != 1 {
			fail("(x + y) * z != x*z + y*z")
		}

		var zero field.Element[M]
		if x.Equal(&zero) != 1 {
			lhs.Invert(x)
			lhs.Multiply(&lhs, x)
			if lhs.Equal(one) != 1 {
				fail("x * (1/x) != 1")
			}
		}

		lhs.Square(x)
		rhs.Multiply(x, x)
		if lhs.Equal(&rhs) != 1 {
			fail("x^2 != x * x")
		}

		if root, ok := t.Sqrt(&lhs); ok != 1 {
			fail("x^2 reported as a non-residue")
		} else if rhs.Square(root); rhs.Equal(&lhs) != 1 {
			fail("sqrt(x^2)^2 != x^2")
		}
	}

	B := c.Generator()
	zero := edwards.NewIdentityPoint[M]()

	bx, by := B.AffineCoordinates()
	if _, err := new(edwards.Point[M]).SetAffine(bx, by); err != nil {
		fail("generator is not on the curve")
	}

	var p edwards.Point[M]
	if p.Add(B, zero).Equal(B) != 1 {
		fail("B + 0 != B")
	}
	var neg edwards.Point[M]
	neg.Negate(B)
	if p.Add(B, &neg).Equal(zero) != 1 {
		fail("B + (-B) != 0")
	}

	var dbl, add edwards.Point[M]
	dbl.Double(B)
	add.Add(B, B)
	if dbl.Equal(&add) != 1 {
		fail("2B != B + B")
	}

	var tpl edwards.Point[M]
	tpl.Triple(B)
	add.Add(&dbl, B)
	if tpl.Equal(&add) != 1 {
		fail("3B != 2B + B")
	}

	// The ladder against plain repeated addition, over the first few
	// multiples.
	acc := edwards.NewIdentityPoint[M]()
	for k := uint64(0); k <= 16; k++ {
		var ladder edwards.Point[M]
		ladder.ScalarBaseMult(new(field.Element[M]).SetUint64(k))
		if ladder.Equal(acc) != 1 {
			fail("[%d]B diverged from repeated addition", k)
		}
		acc.Add(acc, B)
	}

	return result.ErrorOrNil()
}
