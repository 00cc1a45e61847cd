// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package edwards implements group logic for a family of twisted Edwards
// curves
//
//	a*x^2 + y^2 = 1 + d*x^2*y^2
//
// defined over pseudo-Mersenne prime fields GF(2^n - c), together with the
// field arithmetic itself (in the field subpackage).
//
// Each curve is bound at the type level to its field through a field.Modulus
// marker, so points on different curves never mix. All point operations are
// constant time in the coordinate values, and ScalarMult is constant time in
// the scalar; the only conditional mechanism anywhere in the package is the
// masked Select/Swap pair.
//
// This package provides the group and field layers only. Protocols built on
// top of them (key agreement, signatures) and point serialization are out of
// scope; points are consumed and produced through their coordinates.
package edwards
