package fpu

import (
	"math/bits"

	"github.com/s-ylide/go-fpu32/fp32"
)

// FCvtSW converts a signed 32-bit integer to a binary32 value. The
// magnitude is shifted left one place past its leading 1, so the bits
// below that 1 fill the word from bit 31 down; the top 23 of them
// become the mantissa, and the next bit down rounds the
// result half away from zero, carrying into the exponent when the
// mantissa was all ones.
func FCvtSW(x int32) float32 {
	s := fp32.FromInt(x).Sign()
	xabs := fp32.Abs(x)

	var sa fp32.Word
	if xabs != 0 {
		sa = fp32.Word(bits.LeadingZeros32(uint32(xabs))) + 1
	}
	var xs fp32.Word
	if sa != 32 {
		xs = xabs << sa
	}

	var ey fp32.Word
	switch {
	case sa == 0:
		ey = 0
	case xs>>9 == 0x7fffff && fp32.Slice(xs, 9, 9) == 1:
		// rounding carried through the mantissa into the implicit bit
		ey = 127 - sa + 33
	default:
		ey = 127 - sa + 32
	}
	my := fp32.Slice(xs>>9+fp32.Slice(xs, 9, 9), 23, 1)

	return fp32.MkFloat(s, ey, my).Float()
}
