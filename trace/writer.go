// Package trace emits operand/result rows in the bit-string format the
// hardware co-simulation consumes: every 32-bit word becomes one line
// of 32 ASCII '0'/'1' characters, most significant bit first, with the
// input words of a sample preceding its output word.
package trace

import (
	"bufio"
	"io"

	"golang.org/x/xerrors"

	"github.com/s-ylide/go-fpu32/fp32"
)

// Writer buffers bit-string rows onto an underlying stream. Call Flush
// once all samples are written.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Sample writes one co-simulation sample, one row per word, inputs
// before output.
func (t *Writer) Sample(words ...fp32.Word) error {
	var row [33]byte
	row[32] = '\n'
	for _, w := range words {
		for k := 0; k < 32; k++ {
			row[k] = '0' + byte(w>>(31-k)&1)
		}
		if _, err := t.w.Write(row[:]); err != nil {
			return xerrors.Errorf("writing trace row: %w", err)
		}
	}
	return nil
}

func (t *Writer) Flush() error {
	if err := t.w.Flush(); err != nil {
		return xerrors.Errorf("flushing trace: %w", err)
	}
	return nil
}
