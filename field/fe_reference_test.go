// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Differential tests against independent arithmetic backends: math/big for
// every schedule, the fiat-crypto formally verified curve25519 field for
// 2^255 - 19, and holiman/uint256 modular arithmetic for the fields that fit
// 256 bits.

package field

import (
	"crypto/rand"
	"math/big"
	"testing"

	"github.com/holiman/uint256"
	fiat "github.com/mit-plv/fiat-crypto/fiat-go/64/curve25519"
	"github.com/stretchr/testify/require"
)

func randomCanonical[M Modulus](t *testing.T) *Element[M] {
	t.Helper()
	buf := make([]byte, 2*ParamsOf[M]().Size())
	_, err := rand.Read(buf)
	require.NoError(t, err)
	v, err := new(Element[M]).SetWideBytes(buf)
	require.NoError(t, err)
	return v
}

func TestBigIntOracle(t *testing.T) {
	t.Run("p221", testBigIntOracle[P221])
	t.Run("p221a", testBigIntOracle[P221A])
	t.Run("p222", testBigIntOracle[P222])
	t.Run("p251", testBigIntOracle[P251])
	t.Run("p25519", testBigIntOracle[P25519])
	t.Run("p382", testBigIntOracle[P382])
	t.Run("p414", testBigIntOracle[P414])
	t.Run("p521", testBigIntOracle[P521])
}

func testBigIntOracle[M Modulus](t *testing.T) {
	pp := ParamsOf[M]()
	p := pp.Modulus()

	for i := 0; i < 64; i++ {
		x, y := randomCanonical[M](t), randomCanonical[M](t)
		xb, yb := x.toBig(), y.toBig()

		var r Element[M]
		want := new(big.Int)

		r.Add(x, y)
		want.Add(xb, yb).Mod(want, p)
		require.Equal(t, want, r.toBig(), "Add")

		r.Subtract(x, y)
		want.Sub(xb, yb).Mod(want, p)
		require.Equal(t, want, r.toBig(), "Subtract")

		r.Multiply(x, y)
		want.Mul(xb, yb).Mod(want, p)
		require.Equal(t, want, r.toBig(), "Multiply")

		r.Square(x)
		want.Mul(xb, xb).Mod(want, p)
		require.Equal(t, want, r.toBig(), "Square")

		r.Negate(x)
		want.Neg(xb).Mod(want, p)
		require.Equal(t, want, r.toBig(), "Negate")

		if xb.Sign() != 0 {
			r.Invert(x)
			want.ModInverse(xb, p)
			require.Equal(t, want, r.toBig(), "Invert")
		}

		r.Legendre(x)
		want.Exp(xb, new(big.Int).Rsh(new(big.Int).Sub(p, big.NewInt(1)), 1), p)
		require.Equal(t, want, r.toBig(), "Legendre")

		if root := new(big.Int).ModSqrt(xb, p); root != nil {
			s, ok := r.Sqrt(x)
			require.Equal(t, 1, ok, "Sqrt rejected a residue")
			got := s.toBig()
			negRoot := new(big.Int).Sub(p, root)
			require.True(t, got.Cmp(root) == 0 || got.Cmp(negRoot) == 0, "Sqrt root mismatch")
		} else if xb.Sign() != 0 {
			_, ok := r.Sqrt(x)
			require.Equal(t, 0, ok, "Sqrt accepted a non-residue")
		}
	}
}

func fiatFromElement(x *Element[P25519]) *fiat.TightFieldElement {
	var buf [32]uint8
	copy(buf[:], x.Bytes())
	v := new(fiat.TightFieldElement)
	fiat.FromBytes(v, &buf)
	return v
}

func fiatBytes(x *fiat.TightFieldElement) []byte {
	var out [32]uint8
	fiat.ToBytes(&out, x)
	return out[:]
}

// TestFiatOracle checks the 2^255 - 19 schedule against the formally
// verified fiat-crypto field implementation.
func TestFiatOracle(t *testing.T) {
	for i := 0; i < 128; i++ {
		x, y := randomCanonical[P25519](t), randomCanonical[P25519](t)
		xf, yf := fiatFromElement(x), fiatFromElement(y)

		var r Element[P25519]
		rf := new(fiat.TightFieldElement)

		fiat.CarryAdd(rf, xf, yf)
		require.Equal(t, fiatBytes(rf), r.Add(x, y).Bytes(), "Add")

		fiat.CarrySub(rf, xf, yf)
		require.Equal(t, fiatBytes(rf), r.Subtract(x, y).Bytes(), "Subtract")

		fiat.CarryOpp(rf, xf)
		require.Equal(t, fiatBytes(rf), r.Negate(x).Bytes(), "Negate")

		fiat.CarryMul(rf, (*fiat.LooseFieldElement)(xf), (*fiat.LooseFieldElement)(yf))
		require.Equal(t, fiatBytes(rf), r.Multiply(x, y).Bytes(), "Multiply")

		fiat.CarrySquare(rf, (*fiat.LooseFieldElement)(xf))
		require.Equal(t, fiatBytes(rf), r.Square(x).Bytes(), "Square")
	}
}

func TestUint256Oracle(t *testing.T) {
	t.Run("p221", testUint256Oracle[P221])
	t.Run("p221a", testUint256Oracle[P221A])
	t.Run("p222", testUint256Oracle[P222])
	t.Run("p251", testUint256Oracle[P251])
	t.Run("p25519", testUint256Oracle[P25519])
}

func testUint256Oracle[M Modulus](t *testing.T) {
	pp := ParamsOf[M]()
	require.LessOrEqual(t, pp.BitLen(), 256)
	m, overflow := uint256.FromBig(pp.Modulus())
	require.False(t, overflow)

	for i := 0; i < 128; i++ {
		x, y := randomCanonical[M](t), randomCanonical[M](t)
		xu, _ := uint256.FromBig(x.toBig())
		yu, _ := uint256.FromBig(y.toBig())

		var r Element[M]
		ru := new(uint256.Int)

		ru.AddMod(xu, yu, m)
		require.Equal(t, ru.ToBig(), r.Add(x, y).toBig(), "AddMod")

		ru.MulMod(xu, yu, m)
		require.Equal(t, ru.ToBig(), r.Multiply(x, y).toBig(), "MulMod")
	}
}

// TestCrossSchedule runs one operation chain over the two 2^221 - 3
// schedules and requires identical canonical results.
func TestCrossSchedule(t *testing.T) {
	size := ParamsOf[P221]().Size()
	require.Equal(t, size, ParamsOf[P221A]().Size())

	for i := 0; i < 128; i++ {
		xb := make([]byte, size)
		yb := make([]byte, size)
		_, err := rand.Read(xb)
		require.NoError(t, err)
		_, err = rand.Read(yb)
		require.NoError(t, err)

		runChain := func(wide bool) []byte {
			if wide {
				x, _ := new(Element[P221]).SetBytes(xb)
				y, _ := new(Element[P221]).SetBytes(yb)
				var r Element[P221]
				r.Multiply(x, y)
				r.Add(&r, x)
				r.Square(&r)
				r.Invert(&r)
				r.Subtract(&r, y)
				return r.Bytes()
			}
			x, _ := new(Element[P221A]).SetBytes(xb)
			y, _ := new(Element[P221A]).SetBytes(yb)
			var r Element[P221A]
			r.Multiply(x, y)
			r.Add(&r, x)
			r.Square(&r)
			r.Invert(&r)
			r.Subtract(&r, y)
			return r.Bytes()
		}

		require.Equal(t, runChain(true), runChain(false), "schedules diverged")
	}
}
