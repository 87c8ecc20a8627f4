package fpu

import "github.com/s-ylide/go-fpu32/fp32"

// FCvtWS converts a binary32 value to a signed 32-bit integer, rounding
// half away from zero. The significand is placed with its implicit bit
// at position 30 and shifted right by 157-e to align the unit bit at
// bit 0; the shift stopping one position short carries the round bit in
// its lowest bit. Inputs whose integer value does not fit in 32 bits
// produce an unspecified result.
func FCvtWS(x float32) int32 {
	n := fp32.FromFloat(x)

	s := n.Sign()
	e := fp32.Slice(n, 31, 24)
	sa := 157 - e
	sai := sa - 1

	m := fp32.Slice(n, 23, 1)
	me := fp32.Word(1)<<30 + m<<7
	var mes, mesi fp32.Word
	if sa <= 31 {
		mes = me >> sa
	}
	if sai <= 31 {
		mesi = me >> sai
	}
	mesr := mes
	if mesi&1 == 1 {
		mesr = mes + 1
	}

	if s == 0 {
		return mesr.Int()
	}
	// Two's-complement negation. mesr never exceeds 0x7fffff80, so ^mesr
	// already has its sign bit set and the forced sign bit does not change
	// the result; mesr == 0 negates to 0.
	return ((^mesr | 0x80000000) + 1).Int()
}
