// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

// The supported moduli. Schedules are chosen so that b·(k-1) + t = n with a
// top limb wide enough to stash several carries, and every product column
// fits a uint64; newParams checks the constraints.

// P221 selects GF(2^221 - 3) on the wide 28-bit limb schedule.
type P221 struct{}

// P221A selects GF(2^221 - 3) on a narrow 23-bit limb schedule. It is the
// same field as P221 with a different internal layout, kept as a second
// instantiation of the engine over one modulus.
type P221A struct{}

// P222 selects GF(2^222 - 117).
type P222 struct{}

// P251 selects GF(2^251 - 9).
type P251 struct{}

// P25519 selects GF(2^255 - 19).
type P25519 struct{}

// P382 selects GF(2^382 - 105).
type P382 struct{}

// P414 selects GF(2^414 - 17).
type P414 struct{}

// P521 selects GF(2^521 - 1).
type P521 struct{}

// Params implements Modulus.
func (P221) Params() *Params { return p221Params }

// Params implements Modulus.
func (P221A) Params() *Params { return p221aParams }

// Params implements Modulus.
func (P222) Params() *Params { return p222Params }

// Params implements Modulus.
func (P251) Params() *Params { return p251Params }

// Params implements Modulus.
func (P25519) Params() *Params { return p25519Params }

// Params implements Modulus.
func (P382) Params() *Params { return p382Params }

// Params implements Modulus.
func (P414) Params() *Params { return p414Params }

// Params implements Modulus.
func (P521) Params() *Params { return p521Params }

var (
	p221Params   = newParams("p221", 221, 3, 8, 28)
	p221aParams  = newParams("p221a", 221, 3, 10, 23)
	p222Params   = newParams("p222", 222, 117, 8, 28)
	p251Params   = newParams("p251", 251, 9, 9, 28)
	p25519Params = newParams("p25519", 255, 19, 10, 26)
	p382Params   = newParams("p382", 382, 105, 14, 28)
	p414Params   = newParams("p414", 414, 17, 15, 28)
	p521Params   = newParams("p521", 521, 1, 19, 28)
)
