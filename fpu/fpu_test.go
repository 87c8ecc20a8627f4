package fpu

import (
	"math/rand"

	"github.com/s-ylide/go-fpu32/fp32"
)

// testPanel is the fixed mantissa panel of the verification plan;
// panelMantissa pads it with seeded random samples.
var testPanel = [...]fp32.Word{0, 1, 2, 0x380000, 0x400000, 0x5fffff, 0x7fffff}

func panelMantissa(it int, rnd *rand.Rand) fp32.Word {
	if it < len(testPanel) {
		return testPanel[it]
	}
	return fp32.Word(rnd.Uint32()) & 0x7fffff
}

func randNormal(rnd *rand.Rand) fp32.Word {
	s := fp32.Word(rnd.Intn(2))
	e := fp32.Word(1 + rnd.Intn(254))
	m := fp32.Word(rnd.Uint32()) & 0x7fffff
	return fp32.MkFloat(s, e, m)
}
