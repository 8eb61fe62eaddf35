// core/scan/scanner.go
package scan

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
)

// DefaultBufferSize is the chunk size for reads from the input stream.
const DefaultBufferSize = 64 * 1024

// Line is one logical line of input. Text excludes the terminator and is
// only valid until the emit callback returns.
type Line struct {
	N    int // 1-based ordinal within the input
	Text []byte
}

// Lines streams r line by line and calls emit for each one, including a
// final line with no trailing terminator. A terminator is '\n' optionally
// preceded by '\r'; both are stripped. maxLineBytes (> 0) caps the length
// of a single line; input is read in bounded chunks regardless of how
// long the stream is.
//
// It is **cancelable**: when ctx is done the scan returns promptly with
// ctx.Err(), even mid-stream. An error returned by emit aborts the scan
// and is returned unchanged.
func Lines(ctx context.Context, r io.Reader, maxLineBytes int, emit func(Line) error) error {
	sc := bufio.NewScanner(r)
	bufSize := DefaultBufferSize
	if maxLineBytes < bufSize {
		bufSize = maxLineBytes
	}
	sc.Buffer(make([]byte, bufSize), maxLineBytes)

	n := 0
	for sc.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		n++
		if err := emit(Line{N: n, Text: sc.Bytes()}); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return fmt.Errorf("scan input: line %d exceeds %d bytes", n+1, maxLineBytes)
		}
		return fmt.Errorf("scan input: %w", err)
	}
	return nil
}
