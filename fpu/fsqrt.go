package fpu

import "github.com/s-ylide/go-fpu32/fp32"

// FSqrt computes the square root of x for non-negative x; the result
// for negative inputs is unspecified (the sign bit passes through).
// Because the square root halves the exponent, the mantissa is
// normalized into [1,2) or [2,4) depending on exponent parity, and the
// approximation key XORs in bit 9 so the two regimes index disjoint
// halves of the segment table.
func FSqrt(x float32) float32 {
	n := fp32.FromFloat(x)

	s := n.Sign()
	e := fp32.Slice(n, 31, 24)

	m := fp32.Slice(n, 23, 1)
	h := fp32.Slice(n, 24, 15) ^ 0x200
	var mn float32
	if e&1 == 1 {
		mn = fp32.MkFloat(0, 127, m).Float()
	} else {
		mn = fp32.MkFloat(0, 128, m).Float()
	}

	seg := sqrtTab[h]
	msqrt := fp32.FromFloat(seg.intercept + FMul(seg.grad, mn))

	var ey fp32.Word
	if e == fp32.ExpSpecial || e == fp32.ExpZero {
		ey = 0
	} else {
		// Unsigned wraparound of e-127 gives the floor-like halving for
		// exponents below the bias; MkFloat discards the high bits.
		ey = (e-127)/2 + 127
	}
	my := fp32.Slice(msqrt, 23, 1)

	return fp32.MkFloat(s, ey, my).Float()
}
