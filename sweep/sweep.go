// Package sweep drives the FPU kernels across operand space and checks
// the accuracy contracts against the host's native float operations.
// The float-operand checkers walk the biased exponents at a configurable
// stride with a mantissa panel of seven fixed patterns padded with
// seeded random samples, over both signs except for fsqrt, which takes
// non-negative operands only. The fcvtsw and ffloor checkers scan the
// 32-bit word space at a configurable stride instead.
package sweep

import (
	"fmt"
	"math/rand"

	"github.com/hashicorp/go-multierror"
	"golang.org/x/exp/slices"

	"github.com/s-ylide/go-fpu32/fp32"
)

// Config bounds a sweep. The zero value is usable and selects the
// default enumeration density.
type Config struct {
	// ExpStride is the step between tested biased exponents.
	ExpStride int
	// WordStride is the step for the full 32-bit scans of FCvtSW and
	// FFloor.
	WordStride uint32
	// PanelSize is the number of mantissas tried per operand position;
	// the first seven are the fixed panel, the rest are random.
	PanelSize int
	// Seed feeds the random mantissa samples.
	Seed int64
	// MaxReport caps the violations kept in a report.
	MaxReport int
}

func (c Config) normalized() Config {
	if c.ExpStride <= 0 {
		c.ExpStride = 1
	}
	if c.WordStride == 0 {
		c.WordStride = 1024*1023 + 1
	}
	if c.PanelSize <= 0 {
		c.PanelSize = 10
	}
	if c.MaxReport <= 0 {
		c.MaxReport = 16
	}
	return c
}

// fixedPanel is the mantissa panel of the verification plan.
var fixedPanel = [...]fp32.Word{0, 1, 2, 0x380000, 0x400000, 0x5fffff, 0x7fffff}

func mantissa(it int, rnd *rand.Rand) fp32.Word {
	if it < len(fixedPanel) {
		return fixedPanel[it]
	}
	return fp32.Word(rnd.Uint32()) & 0x7fffff
}

// Violation records one operand set whose result broke the contract.
type Violation struct {
	Op   string
	In   []fp32.Word
	Got  fp32.Word
	Want fp32.Word
	// Diff is the absolute difference to the oracle value, used to
	// order the report worst-first.
	Diff float64
}

func (v *Violation) Error() string {
	s := fmt.Sprintf("%s(", v.Op)
	for i, in := range v.In {
		if i > 0 {
			s += ", "
		}
		s += fmt.Sprintf("%08x", uint32(in))
	}
	return s + fmt.Sprintf(") = %08x, oracle %08x (off by %g)",
		uint32(v.Got), uint32(v.Want), v.Diff)
}

// Report is the outcome of one checker run.
type Report struct {
	Op      string
	Checked int
	// Failed counts every violation; Violations holds the worst
	// MaxReport of them.
	Failed     int
	Violations []*Violation
}

func (r *Report) add(v *Violation) {
	r.Failed++
	r.Violations = append(r.Violations, v)
}

func (r *Report) finish(max int) *Report {
	slices.SortFunc(r.Violations, func(a, b *Violation) bool {
		return a.Diff > b.Diff
	})
	if len(r.Violations) > max {
		r.Violations = r.Violations[:max]
	}
	return r
}

// Err returns all recorded violations as one aggregated error, or nil
// when the contract held everywhere.
func (r *Report) Err() error {
	var merr *multierror.Error
	for _, v := range r.Violations {
		merr = multierror.Append(merr, v)
	}
	if dropped := r.Failed - len(r.Violations); dropped > 0 {
		merr = multierror.Append(merr,
			fmt.Errorf("%s: %d further violations not listed", r.Op, dropped))
	}
	return merr.ErrorOrNil()
}
