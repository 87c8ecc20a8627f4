// fputrace generates the artifacts the hardware side consumes: per
// kernel co-simulation trace files in the bit-string format, a dump of
// the linear-approximation tables for cross-implementation pinning, and
// an accuracy sweep of every kernel against the host's native floats.
package main

import (
	"flag"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/s-ylide/go-fpu32/fp32"
	"github.com/s-ylide/go-fpu32/fpu"
	"github.com/s-ylide/go-fpu32/sweep"
	"github.com/s-ylide/go-fpu32/trace"
)

func main() {
	var (
		op     = flag.String("op", "all", "kernel to trace (fmul|fdiv|fsqrt|fcvtsw|fcvtws|ffloor|all)")
		outdir = flag.String("outdir", ".", "directory for trace and table files")
		seed   = flag.Int64("seed", 1, "seed for random mantissa samples")
		stride = flag.Int("expstride", 7, "exponent stride for the two-operand traces")
		tables = flag.Bool("tables", false, "dump the fdiv/fsqrt approximation tables and exit")
		check  = flag.Bool("check", false, "run the accuracy sweeps instead of tracing")
	)
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()

	switch {
	case *tables:
		if err := dumpTables(*outdir); err != nil {
			log.Fatal().Err(err).Msg("table dump failed")
		}
		log.Info().Str("dir", *outdir).Msg("approximation tables dumped")
	case *check:
		cfg := sweep.Config{Seed: *seed}
		failed := false
		for _, c := range sweep.Checks {
			r := c.Run(cfg)
			if err := r.Err(); err != nil {
				failed = true
				log.Error().Str("op", r.Op).Int("checked", r.Checked).
					Int("violations", r.Failed).Msg("contract broken")
				for _, v := range r.Violations {
					log.Error().Msg(v.Error())
				}
			} else {
				log.Info().Str("op", r.Op).Int("checked", r.Checked).Msg("contract held")
			}
		}
		if failed {
			os.Exit(1)
		}
	default:
		rnd := rand.New(rand.NewSource(*seed))
		for _, g := range generators {
			if *op != "all" && *op != g.name {
				continue
			}
			n, err := emitTrace(*outdir, g, *stride, rnd)
			if err != nil {
				log.Fatal().Err(err).Str("op", g.name).Msg("trace generation failed")
			}
			log.Info().Str("op", g.name).Int("samples", n).
				Str("file", g.name+"_emu.txt").Msg("trace written")
		}
	}
}

// A generator enumerates the operand space of one kernel and hands each
// sample to the trace writer.
type generator struct {
	name string
	run  func(t *trace.Writer, stride int, rnd *rand.Rand) (int, error)
}

var generators = []generator{
	{"fmul", func(t *trace.Writer, stride int, rnd *rand.Rand) (int, error) {
		return binaryTrace(t, stride, rnd, fpu.FMul)
	}},
	{"fdiv", func(t *trace.Writer, stride int, rnd *rand.Rand) (int, error) {
		return binaryTrace(t, stride, rnd, fpu.FDiv)
	}},
	{"fsqrt", func(t *trace.Writer, _ int, rnd *rand.Rand) (int, error) {
		n := 0
		for e := 1; e < 254; e++ {
			for it := 0; it < 10; it++ {
				x := fp32.MkFloat(0, fp32.Word(e), panelMantissa(it, rnd))
				y := fp32.FromFloat(fpu.FSqrt(x.Float()))
				if err := t.Sample(x, y); err != nil {
					return n, err
				}
				n++
			}
		}
		return n, nil
	}},
	{"fcvtsw", func(t *trace.Writer, _ int, _ *rand.Rand) (int, error) {
		n := 0
		for i := uint64(0); i <= math.MaxUint32; i += 1024*1023 + 1 {
			x := fp32.Word(uint32(i))
			y := fp32.FromFloat(fpu.FCvtSW(x.Int()))
			if err := t.Sample(x, y); err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	}},
	{"fcvtws", func(t *trace.Writer, _ int, rnd *rand.Rand) (int, error) {
		n := 0
		for e := 1; e < 158; e++ {
			for s := fp32.Word(0); s < 2; s++ {
				for it := 0; it < 10; it++ {
					x := fp32.MkFloat(s, fp32.Word(e), panelMantissa(it, rnd))
					y := fp32.FromInt(fpu.FCvtWS(x.Float()))
					if err := t.Sample(x, y); err != nil {
						return n, err
					}
					n++
				}
			}
		}
		return n, nil
	}},
	{"ffloor", func(t *trace.Writer, _ int, _ *rand.Rand) (int, error) {
		n := 0
		for i := uint64(0); i <= math.MaxUint32; i += 1024*1023 + 1 {
			x := fp32.Word(uint32(i))
			y := fp32.FromFloat(fpu.FFloor(x.Float()))
			if err := t.Sample(x, y); err != nil {
				return n, err
			}
			n++
		}
		return n, nil
	}},
}

var panel = [...]fp32.Word{0, 1, 2, 0x380000, 0x400000, 0x5fffff, 0x7fffff}

func panelMantissa(it int, rnd *rand.Rand) fp32.Word {
	if it < len(panel) {
		return panel[it]
	}
	return fp32.Word(rnd.Uint32()) & 0x7fffff
}

func binaryTrace(t *trace.Writer, stride int, rnd *rand.Rand, kernel func(float32, float32) float32) (int, error) {
	n := 0
	for e1 := 1; e1 < 254; e1 += stride {
		for e2 := 1; e2 < 254; e2 += stride {
			for s := fp32.Word(0); s < 4; s++ {
				x1 := fp32.MkFloat(s&1, fp32.Word(e1), fp32.Word(rnd.Uint32())&0x7fffff)
				x2 := fp32.MkFloat(s>>1, fp32.Word(e2), fp32.Word(rnd.Uint32())&0x7fffff)
				y := fp32.FromFloat(kernel(x1.Float(), x2.Float()))
				if err := t.Sample(x1, x2, y); err != nil {
					return n, err
				}
				n++
			}
		}
	}
	return n, nil
}

func emitTrace(outdir string, g generator, stride int, rnd *rand.Rand) (int, error) {
	f, err := os.Create(filepath.Join(outdir, g.name+"_emu.txt"))
	if err != nil {
		return 0, xerrors.Errorf("creating trace file: %w", err)
	}
	defer f.Close()
	t := trace.NewWriter(f)
	n, err := g.run(t, stride, rnd)
	if err != nil {
		return n, err
	}
	if err := t.Flush(); err != nil {
		return n, err
	}
	return n, f.Close()
}

func dumpTables(outdir string) error {
	for _, tab := range []struct {
		file string
		seg  func(uint) (float32, float32)
	}{
		{"divtab.txt", fpu.DivSegment},
		{"sqrttab.txt", fpu.SqrtSegment},
	} {
		f, err := os.Create(filepath.Join(outdir, tab.file))
		if err != nil {
			return xerrors.Errorf("creating table dump: %w", err)
		}
		for h := uint(0); h < 1<<10; h++ {
			grad, intercept := tab.seg(h)
			fmt.Fprintf(f, "%04d %08x %08x\n", h,
				uint32(fp32.FromFloat(grad)), uint32(fp32.FromFloat(intercept)))
		}
		if err := f.Close(); err != nil {
			return xerrors.Errorf("closing table dump: %w", err)
		}
	}
	return nil
}
