package fpu

import "github.com/s-ylide/go-fpu32/fp32"

// FDiv divides x1 by x2. The divisor mantissa is normalized into [1,2),
// its reciprocal is taken by the linear approximation selected by the
// top ten mantissa bits, and the product with the normalized dividend
// mantissa goes through FMul, not the host multiplier.
func FDiv(x1, x2 float32) float32 {
	n1 := fp32.FromFloat(x1)
	n2 := fp32.FromFloat(x2)

	s1 := n1.Sign()
	s2 := n2.Sign()

	e1 := fp32.Slice(n1, 31, 24)
	e2 := fp32.Slice(n2, 31, 24)

	m1 := fp32.Slice(n1, 23, 1)
	m2 := fp32.Slice(n2, 23, 1)
	h := fp32.Slice(m2, 23, 14)
	m1n := fp32.MkFloat(0, 127, m1).Float()
	m2n := fp32.MkFloat(0, 127, m2).Float()

	seg := divTab[h]
	m2inv := seg.intercept - FMul(seg.grad, m2n)

	mdiv := fp32.FromFloat(FMul(m1n, m2inv))
	// ovf is always 0 given the [1,2) normalization; udf is 1 when the
	// reciprocal product fell below 1.0 and the implicit bit sits at
	// position 23 instead of 24.
	ovf := fp32.Slice(mdiv, 31, 31)
	udf := fp32.Slice(^mdiv, 24, 24)

	sy := s1 ^ s2
	ey := fp32.Slice(e1-e2+127-udf+ovf, 8, 1)
	my := fp32.Slice(mdiv, 23, 1)

	return fp32.MkFloat(sy, ey, my).Float()
}
