package fpu

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s-ylide/go-fpu32/fp32"
)

var fsqrtGolden = []struct{ x, y fp32.Word }{
	{0x204189ee, 0x2fde96d3},
	{0x46b38a6f, 0x43179878},
	{0x6d5bdf84, 0x566d3ffa},
	{0x62a536bd, 0x51116bde},
	{0x367e34ea, 0x3aff1a0e},
	{0x0c8ce71b, 0x26064be8},
	{0x250987a0, 0x323ba310},
	{0x34c52709, 0x3a1edb5e},
	{0x74240926, 0x59ccec1c},
	{0x3cf7c607, 0x3e32164c},
	{0x133e7efc, 0x295cd51e},
	{0x06feb795, 0x233490b0},
	{0x4036a2a2, 0x3fd83a6a},
	{0x71a5f333, 0x5891beb7},
	{0x446e8198, 0x41f7192e},
	{0x7e865461, 0x5f03206a},
	{0x6170dd5e, 0x5078512b},
	{0x71f17a9f, 0x58afcf79},
	{0x767a8b74, 0x5afd41f8},
	{0x27a6a96d, 0x33920ea6},
	{0x3200d55a, 0x38b59b91},
	{0x3dc8a84b, 0x3ea04342},
	{0x3b0cd890, 0x3d3de2ba},
	{0x0ecca2b9, 0x2721d7f8},
}

func TestFSqrtGolden(t *testing.T) {
	for _, g := range fsqrtGolden {
		y := fp32.FromFloat(FSqrt(g.x.Float()))
		assert.Equal(t, g.y, y, "fsqrt(%08x)", uint32(g.x))
	}
}

func TestFSqrtSeeds(t *testing.T) {
	assert.Equal(t, fp32.Word(0x40000001), fp32.FromFloat(FSqrt(4.0)))
	assert.Equal(t, fp32.Word(0x3f800001), fp32.FromFloat(FSqrt(1.0)))
	assert.Equal(t, fp32.Word(0x3fb504f4), fp32.FromFloat(FSqrt(2.0)))
	assert.InEpsilon(t, 2.0, FSqrt(4.0), 1e-5)
	assert.InEpsilon(t, 1.0, FSqrt(1.0), 1e-5)
}

func TestFSqrtSignPassthrough(t *testing.T) {
	rnd := rand.New(rand.NewSource(9))
	for i := 0; i < 10000; i++ {
		x := randNormal(rnd)
		y := fp32.FromFloat(FSqrt(x.Float()))
		assert.Equal(t, x.Sign(), y.Sign(), "fsqrt(%08x)", uint32(x))
	}
}

func TestFSqrtAccuracy(t *testing.T) {
	rnd := rand.New(rand.NewSource(10))
	checked := 0
	for e := 1; e < 254; e++ {
		for it := 0; it < 10; it++ {
			x := fp32.MkFloat(0, fp32.Word(e), panelMantissa(it, rnd))
			want := float32(math.Sqrt(float64(x.Float())))
			et := fp32.FromFloat(want).BiasedExp()
			if et == 0 || et == 255 {
				continue
			}
			checked++
			got := FSqrt(x.Float())
			diff := math.Abs(float64(got) - float64(want))
			if diff >= math.Abs(float64(want))*0x1p-20 && diff >= 0x1p-126 {
				t.Fatalf("fsqrt(%08x) = %08x, want within 2^-20 of %08x",
					uint32(x), uint32(fp32.FromFloat(got)), uint32(fp32.FromFloat(want)))
			}
		}
	}
	assert.Greater(t, checked, 2000)
}
