package fpu

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/s-ylide/go-fpu32/fp32"
)

var fcvtwsGolden = []struct {
	x fp32.Word
	y int32
}{
	{0x00000000, 0},
	{0x80000000, 0},
	{0x3f800000, 1},
	{0xbf800000, -1},
	{0x3f000000, 1},
	{0xbf000000, -1},
	{0x3fc00000, 2},
	{0xbfc00000, -2},
	{0x40200000, 3},
	{0xc0200000, -3},
	{0x40600000, 4},
	{0x4b000001, 8388609},
	{0xcb000001, -8388609},
	{0x4e99999a, 1288490240},
	{0x42f6e979, 123},
	{0xc2f6e979, -123},
	{0x3dcccccd, 0},
	{0x4effffff, 2147483520},
	{0xceffffff, -2147483520},
	{0x40490fdb, 3},
}

func TestFCvtWSGolden(t *testing.T) {
	for _, g := range fcvtwsGolden {
		assert.Equal(t, g.y, FCvtWS(g.x.Float()), "fcvtws(%08x)", uint32(g.x))
	}
}

func TestFCvtWSTies(t *testing.T) {
	// Halfway values round away from zero.
	assert.Equal(t, int32(2), FCvtWS(1.5))
	assert.Equal(t, int32(3), FCvtWS(2.5))
	assert.Equal(t, int32(4), FCvtWS(3.5))
	assert.Equal(t, int32(1), FCvtWS(0.5))
	assert.Equal(t, int32(-1), FCvtWS(-0.5))
	assert.Equal(t, int32(-3), FCvtWS(-2.5))
}

func TestFCvtWSZero(t *testing.T) {
	assert.Equal(t, int32(0), FCvtWS(0.0))
	assert.Equal(t, int32(0), FCvtWS(fp32.Word(0x80000000).Float()))
}

func TestFCvtWSNoWorseThanNative(t *testing.T) {
	rnd := rand.New(rand.NewSource(12))
	for e := 1; e < 158; e++ {
		for s := fp32.Word(0); s < 2; s++ {
			for it := 0; it < 10; it++ {
				x := fp32.MkFloat(s, fp32.Word(e), panelMantissa(it, rnd))
				xd := float64(x.Float())
				got := FCvtWS(x.Float())
				trunc := int64(xd)
				if math.Abs(float64(got)-xd) > math.Abs(float64(trunc)-xd) {
					t.Fatalf("fcvtws(%08x) = %d, farther than native %d", uint32(x), got, trunc)
				}
			}
		}
	}
}
