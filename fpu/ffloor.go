package fpu

import "github.com/s-ylide/go-fpu32/fp32"

// FFloor returns the greatest integral binary32 value no greater than
// x. Magnitudes with biased exponent above 157 carry no fractional
// bits and pass through unchanged; everything else round-trips through
// the integer conversions and steps down by one when the rounded value
// overshot.
func FFloor(x float32) float32 {
	n := fp32.FromFloat(x)
	if fp32.Slice(n, 31, 24) > 157 {
		return x
	}

	f := FCvtSW(FCvtWS(x))
	if x >= f {
		return f
	}
	return f - 1.0
}
