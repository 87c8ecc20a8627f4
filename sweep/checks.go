package sweep

import (
	"math"
	"math/rand"

	"github.com/s-ylide/go-fpu32/fp32"
	"github.com/s-ylide/go-fpu32/fpu"
)

// Checks lists every contract checker by kernel name.
var Checks = []struct {
	Name string
	Run  func(Config) *Report
}{
	{"fmul", CheckMul},
	{"fdiv", CheckDiv},
	{"fsqrt", CheckSqrt},
	{"fcvtsw", CheckCvtSW},
	{"fcvtws", CheckCvtWS},
	{"ffloor", CheckFloor},
}

// relContract reports whether got satisfies a relative error bound of
// 2^-bound around want, with the 2^-126 absolute floor.
func relContract(got, want float32, bound int) (float64, bool) {
	diff := math.Abs(float64(got) - float64(want))
	if diff < math.Abs(float64(want))*math.Ldexp(1, -bound) {
		return diff, true
	}
	if diff < 0x1p-126 {
		return diff, true
	}
	return diff, false
}

// CheckMul sweeps FMul against the native product. True results with
// biased exponent 0, 254 or 255 are outside the contract; 254 is the
// known one-ulp boundary where the product can round into the next
// binade.
func CheckMul(cfg Config) *Report {
	cfg = cfg.normalized()
	rnd := rand.New(rand.NewSource(cfg.Seed))
	r := &Report{Op: "fmul"}
	for e1 := 1; e1 < 254; e1 += cfg.ExpStride {
		for e2 := 1; e2 < 254; e2 += cfg.ExpStride {
			for s := 0; s < 4; s++ {
				for it := 0; it < cfg.PanelSize; it++ {
					for jt := 0; jt < cfg.PanelSize; jt++ {
						x1 := fp32.MkFloat(fp32.Word(s&1), fp32.Word(e1), mantissa(it, rnd))
						x2 := fp32.MkFloat(fp32.Word(s>>1), fp32.Word(e2), mantissa(jt, rnd))
						want := x1.Float() * x2.Float()
						et := fp32.FromFloat(want).BiasedExp()
						if et == 0 || et == 254 || et == 255 {
							continue
						}
						r.Checked++
						got := fpu.FMul(x1.Float(), x2.Float())
						if diff, ok := relContract(got, want, 22); !ok {
							r.add(&Violation{Op: "fmul", In: []fp32.Word{x1, x2},
								Got: fp32.FromFloat(got), Want: fp32.FromFloat(want), Diff: diff})
						}
					}
				}
			}
		}
	}
	return r.finish(cfg.MaxReport)
}

// CheckDiv sweeps FDiv against the native quotient with the same
// exclusions as CheckMul and the 2^-20 bound.
func CheckDiv(cfg Config) *Report {
	cfg = cfg.normalized()
	rnd := rand.New(rand.NewSource(cfg.Seed))
	r := &Report{Op: "fdiv"}
	for e1 := 1; e1 < 254; e1 += cfg.ExpStride {
		for e2 := 1; e2 < 254; e2 += cfg.ExpStride {
			for s := 0; s < 4; s++ {
				for it := 0; it < cfg.PanelSize; it++ {
					for jt := 0; jt < cfg.PanelSize; jt++ {
						x1 := fp32.MkFloat(fp32.Word(s&1), fp32.Word(e1), mantissa(it, rnd))
						x2 := fp32.MkFloat(fp32.Word(s>>1), fp32.Word(e2), mantissa(jt, rnd))
						want := x1.Float() / x2.Float()
						et := fp32.FromFloat(want).BiasedExp()
						if et == 0 || et == 254 || et == 255 {
							continue
						}
						r.Checked++
						got := fpu.FDiv(x1.Float(), x2.Float())
						if diff, ok := relContract(got, want, 20); !ok {
							r.add(&Violation{Op: "fdiv", In: []fp32.Word{x1, x2},
								Got: fp32.FromFloat(got), Want: fp32.FromFloat(want), Diff: diff})
						}
					}
				}
			}
		}
	}
	return r.finish(cfg.MaxReport)
}

// CheckSqrt sweeps FSqrt over non-negative operands against the native
// square root under the 2^-20 bound. Unlike fmul, exponent 254 stays in
// the contract: a square root cannot round across the top binade.
func CheckSqrt(cfg Config) *Report {
	cfg = cfg.normalized()
	rnd := rand.New(rand.NewSource(cfg.Seed))
	r := &Report{Op: "fsqrt"}
	for e := 1; e < 254; e += cfg.ExpStride {
		for it := 0; it < cfg.PanelSize; it++ {
			x := fp32.MkFloat(0, fp32.Word(e), mantissa(it, rnd))
			want := float32(math.Sqrt(float64(x.Float())))
			et := fp32.FromFloat(want).BiasedExp()
			if et == 0 || et == 255 {
				continue
			}
			r.Checked++
			got := fpu.FSqrt(x.Float())
			if diff, ok := relContract(got, want, 20); !ok {
				r.add(&Violation{Op: "fsqrt", In: []fp32.Word{x},
					Got: fp32.FromFloat(got), Want: fp32.FromFloat(want), Diff: diff})
			}
		}
	}
	return r.finish(cfg.MaxReport)
}

// CheckCvtSW scans the signed integers and requires FCvtSW to land at
// least as close to the integer as the native conversion does.
func CheckCvtSW(cfg Config) *Report {
	cfg = cfg.normalized()
	r := &Report{Op: "fcvtsw"}
	for i := uint64(0); i <= math.MaxUint32; i += uint64(cfg.WordStride) {
		x := int32(uint32(i))
		r.Checked++
		got := fpu.FCvtSW(x)
		native := float32(x)
		xd := float64(x)
		if math.Abs(float64(got)-xd) > math.Abs(float64(native)-xd) {
			r.add(&Violation{Op: "fcvtsw", In: []fp32.Word{fp32.FromInt(x)},
				Got: fp32.FromFloat(got), Want: fp32.FromFloat(native),
				Diff: math.Abs(float64(got) - xd)})
		}
	}
	return r.finish(cfg.MaxReport)
}

// CheckCvtWS sweeps floats whose magnitude fits a signed 32-bit integer
// (biased exponent up to 157) and requires FCvtWS to be no farther from
// the value than the native truncating cast.
func CheckCvtWS(cfg Config) *Report {
	cfg = cfg.normalized()
	rnd := rand.New(rand.NewSource(cfg.Seed))
	r := &Report{Op: "fcvtws"}
	for e := 1; e < 158; e += cfg.ExpStride {
		for s := 0; s < 2; s++ {
			for it := 0; it < cfg.PanelSize; it++ {
				x := fp32.MkFloat(fp32.Word(s), fp32.Word(e), mantissa(it, rnd))
				xd := float64(x.Float())
				r.Checked++
				got := fpu.FCvtWS(x.Float())
				trunc := int64(xd)
				if math.Abs(float64(got)-xd) > math.Abs(float64(trunc)-xd) {
					r.add(&Violation{Op: "fcvtws", In: []fp32.Word{x},
						Got: fp32.FromInt(got), Want: fp32.FromInt(int32(trunc)),
						Diff: math.Abs(float64(got) - xd)})
				}
			}
		}
	}
	return r.finish(cfg.MaxReport)
}

// CheckFloor scans the full word space. FFloor(x) must never exceed x;
// up to biased exponent 150 (|x| < 2^24, where adding 1.0 is exact)
// FFloor(x)+1 must also exceed x.
func CheckFloor(cfg Config) *Report {
	cfg = cfg.normalized()
	r := &Report{Op: "ffloor"}
	for i := uint64(0); i <= math.MaxUint32; i += uint64(cfg.WordStride) {
		x := fp32.Word(uint32(i))
		e := x.BiasedExp()
		if e == fp32.ExpSpecial {
			continue
		}
		r.Checked++
		got := fpu.FFloor(x.Float())
		if got > x.Float() || (e <= 150 && got+1.0 <= x.Float()) {
			r.add(&Violation{Op: "ffloor", In: []fp32.Word{x},
				Got: fp32.FromFloat(got), Want: x,
				Diff: math.Abs(float64(got) - float64(x.Float()))})
		}
	}
	return r.finish(cfg.MaxReport)
}
