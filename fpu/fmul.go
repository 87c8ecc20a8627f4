package fpu

import "github.com/s-ylide/go-fpu32/fp32"

// FMul multiplies two binary32 values by integer arithmetic on their
// bit images. The 24-bit significands are split into a 13-bit upper
// half (implicit leading 1 included) and an 11-bit lower half; the
// lower*lower partial product is dropped and a bias of 2 centers the
// truncation error of the two shifted cross terms.
func FMul(x1, x2 float32) float32 {
	n1 := fp32.FromFloat(x1)
	n2 := fp32.FromFloat(x2)

	s1 := n1.Sign()
	s2 := n2.Sign()

	e1 := fp32.Slice(n1, 31, 24)
	e2 := fp32.Slice(n2, 31, 24)
	es := fp32.Slice(e1+e2+129, 9, 1)

	h1 := fp32.Slice(n1, 23, 12) | 0x1000
	h2 := fp32.Slice(n2, 23, 12) | 0x1000
	l1 := fp32.Slice(n1, 11, 1)
	l2 := fp32.Slice(n2, 11, 1)

	hh := h1 * h2
	hl := h1 * l2
	lh := l1 * h2
	mm := hh + (hl >> 11) + (lh >> 11) + 2

	sy := s1 ^ s2

	var ey fp32.Word
	switch {
	case es>>8 == 0:
		// exponent sum underflowed out of the normal range
		ey = 0
	case mm>>25 != 0:
		// product crossed into the next binade
		ey = fp32.Slice(es+1, 8, 1)
	default:
		ey = fp32.Slice(es, 8, 1)
	}

	var my fp32.Word
	switch {
	case e1 == 0 || e2 == 0 || ey == 0:
		my = 0
	case mm>>25 != 0:
		my = fp32.Slice(mm, 25, 3)
	default:
		my = fp32.Slice(mm, 24, 2)
	}

	return fp32.MkFloat(sy, ey, my).Float()
}
