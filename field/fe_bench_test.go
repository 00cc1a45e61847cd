// Copyright (c) 2025 The pmcurve Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package field

import "testing"

func benchElements[M Modulus]() (x, y *Element[M]) {
	x = new(Element[M]).SetUint64(0x0123456789abcdef)
	y = new(Element[M]).Invert(x)
	return x, y
}

func BenchmarkAdd(b *testing.B) {
	b.Run("p221", benchmarkAdd[P221])
	b.Run("p25519", benchmarkAdd[P25519])
	b.Run("p521", benchmarkAdd[P521])
}

func benchmarkAdd[M Modulus](b *testing.B) {
	x, y := benchElements[M]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Add(x, y)
	}
}

func BenchmarkMultiply(b *testing.B) {
	b.Run("p221", benchmarkMultiply[P221])
	b.Run("p25519", benchmarkMultiply[P25519])
	b.Run("p521", benchmarkMultiply[P521])
}

func benchmarkMultiply[M Modulus](b *testing.B) {
	x, y := benchElements[M]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Multiply(x, y)
	}
}

func BenchmarkSquare(b *testing.B) {
	b.Run("p221", benchmarkSquare[P221])
	b.Run("p25519", benchmarkSquare[P25519])
	b.Run("p521", benchmarkSquare[P521])
}

func benchmarkSquare[M Modulus](b *testing.B) {
	x, _ := benchElements[M]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Square(x)
	}
}

func BenchmarkMult32(b *testing.B) {
	b.Run("p221", benchmarkMult32[P221])
	b.Run("p25519", benchmarkMult32[P25519])
	b.Run("p521", benchmarkMult32[P521])
}

func benchmarkMult32[M Modulus](b *testing.B) {
	x, _ := benchElements[M]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Mult32(x, 0xaa42aa42)
	}
}

func BenchmarkInvert(b *testing.B) {
	b.Run("p221", benchmarkInvert[P221])
	b.Run("p25519", benchmarkInvert[P25519])
	b.Run("p521", benchmarkInvert[P521])
}

func benchmarkInvert[M Modulus](b *testing.B) {
	x, _ := benchElements[M]()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		x.Invert(x)
	}
}
