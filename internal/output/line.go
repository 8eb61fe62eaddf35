// internal/output/line.go
package output

import (
	"bufio"
	"fmt"
	"io"

	"sift-core/scan"
)

// Options selects how matching lines are presented.
type Options struct {
	Count      bool // print only the number of matching lines
	LineNumber bool // prefix each line with its 1-based input ordinal
}

// LineEmitter writes matching lines in input order, terminator normalized
// to a single '\n'. Writes are buffered; Close flushes (and, in count
// mode, prints the total first).
type LineEmitter struct {
	w   *bufio.Writer
	opt Options
	n   int
}

func NewLineEmitter(w io.Writer, opt Options) *LineEmitter {
	return &LineEmitter{w: bufio.NewWriter(w), opt: opt}
}

// Emit records one matching line. The line's bytes are not retained past
// the call.
func (e *LineEmitter) Emit(ln scan.Line) error {
	e.n++
	if e.opt.Count {
		return nil
	}
	if e.opt.LineNumber {
		if _, err := fmt.Fprintf(e.w, "%d:", ln.N); err != nil {
			return err
		}
	}
	if _, err := e.w.Write(ln.Text); err != nil {
		return err
	}
	return e.w.WriteByte('\n')
}

// Matches returns how many lines have matched so far.
func (e *LineEmitter) Matches() int { return e.n }

// Close flushes buffered output. In count mode it first writes the total.
func (e *LineEmitter) Close() error {
	if e.opt.Count {
		if _, err := fmt.Fprintf(e.w, "%d\n", e.n); err != nil {
			return err
		}
	}
	return e.w.Flush()
}
