package fpu

import "math"

// FDiv and FSqrt linearly approximate the mantissa-domain reciprocal
// and square root on 1024 sub-intervals selected by a 10-bit key. The
// slope and intercept of each segment are evaluated in double precision
// and narrowed to single precision; the resulting bit patterns are the
// cross-implementation contract with the RTL side, so the formulas
// below must not be algebraically rearranged.

type segment struct {
	grad      float32
	intercept float32
}

var (
	divTab  [1 << 10]segment
	sqrtTab [1 << 10]segment
)

func init() {
	for h := uint(0); h < 1<<10; h++ {
		divTab[h].grad, divTab[h].intercept = DivSegment(h)
		sqrtTab[h].grad, sqrtTab[h].intercept = SqrtSegment(h)
	}
}

// DivSegment returns the slope and intercept approximating 1/m on the
// sub-interval of [1,2) selected by h, the top ten bits of the divisor
// mantissa. The intercept's asymmetric constants come from minimizing
// the mean squared error of the truncated tabulation on the segment.
func DivSegment(h uint) (grad, intercept float32) {
	d := float64(h)
	g := 1024.0 * (1024.0/(1024.0+d) - 1024.0/(1025.0+d))
	c := 1024.0*(1.0-(1024.0+d)/(1025.0+d)) +
		(768.0/(1024.0+d) - 256.0/(1025.0+d) + 1024.0/(2049.0+2.0*d))
	return float32(g), float32(c)
}

// SqrtSegment returns the slope and intercept approximating sqrt(m) on
// the sub-interval selected by h. Keys below 512 cover the odd-exponent
// regime, where the normalized mantissa lies in [1,2); keys from 512 up
// cover the even-exponent regime in [2,4).
func SqrtSegment(h uint) (grad, intercept float32) {
	d := float64(h)
	if h < 512 {
		g := 512.0 * (math.Sqrt((513.0+d)/512.0) - math.Sqrt((512.0+d)/512.0))
		c := (2.0*math.Sqrt((1025.0+2.0*d)/1024.0)+math.Sqrt((513.0+d)/512.0)+math.Sqrt((512.0+d)/512.0))/4.0 -
			(1025.0+2.0*d)/2.0*(math.Sqrt((513.0+d)/512.0) - math.Sqrt((512.0+d)/512.0))
		return float32(g), float32(c)
	}
	g := 256.0 * (math.Sqrt((1.0+d)/256.0) - math.Sqrt(d/256.0))
	c := (2.0*math.Sqrt((1.0+2.0*d)/512.0)+math.Sqrt((1.0+d)/256.0)+math.Sqrt(d/256.0))/4.0 -
		(1.0+2.0*d)/2.0*(math.Sqrt((1.0+d)/256.0) - math.Sqrt(d/256.0))
	return float32(g), float32(c)
}
