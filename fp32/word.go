// Package fp32 holds the 32-bit word type every value in the FPU model
// flows through, together with the bit-field helpers shared by all
// kernels. A Word is reinterpreted as an IEEE-754 binary32 image or as
// a two's-complement integer at the boundaries; the reinterpretation is
// bit-identical in both directions.
package fp32

import "math"

// Field layout of a binary32 image.
const (
	MantBits = 23
	ExpBits  = 8
	ExpBias  = 127

	// Biased exponents outside the accuracy contract.
	ExpZero    = 0   // zero or subnormal
	ExpSpecial = 255 // infinity or NaN
)

// Word is a 32-bit unsigned integer, the canonical representation of
// every operand and result in the model.
type Word uint32

// FromFloat reinterprets the bit pattern of f as a Word.
func FromFloat(f float32) Word {
	return Word(math.Float32bits(f))
}

// Float reinterprets w as a binary32 value.
func (w Word) Float() float32 {
	return math.Float32frombits(uint32(w))
}

// FromInt reinterprets a two's-complement integer as a Word.
func FromInt(x int32) Word {
	return Word(uint32(x))
}

// Int reinterprets w as a two's-complement integer.
func (w Word) Int() int32 {
	return int32(uint32(w))
}

// Slice extracts an inclusive bit range of x into the low bits of the
// result. Positions are 1-based from the least significant bit, so
// Slice(x, 31, 24) is the biased-exponent byte of a float image,
// Slice(x, 23, 1) is the mantissa field, and Slice(x, 32, 1) is the
// whole word. Both shift counts stay inside [0,31] for 1 <= lo <= hi
// <= 32, so the word-width boundary is never hit.
func Slice(x Word, hi, lo uint) Word {
	return (x << (32 - hi)) >> (31 - hi + lo)
}

// MkFloat composes a float image from a sign bit, an 8-bit biased
// exponent and a 23-bit mantissa. The fields are combined by addition,
// like the adder tree of the datapath; for in-range fields this is the
// same as bitwise or. For inputs below the exponent bias FSqrt passes
// exponents wider than eight bits; the 32-bit shift e<<23 drops their
// high bits, and that truncation is part of the modelled behavior.
func MkFloat(s, e, m Word) Word {
	return (s << 31) + (e << 23) + m
}

// Sign returns the sign bit of a float image.
func (w Word) Sign() Word {
	return w >> 31
}

// BiasedExp returns the 8-bit biased exponent field of a float image.
func (w Word) BiasedExp() Word {
	return Slice(w, 31, 24)
}

// Mant returns the 23-bit mantissa field of a float image.
func (w Word) Mant() Word {
	return Slice(w, 23, 1)
}

// Abs returns |x| as a Word. The two's-complement corner x = -2^31
// wraps to 2^31 unsigned.
func Abs(x int32) Word {
	if x < 0 {
		return Word(uint32(-x))
	}
	return Word(uint32(x))
}
