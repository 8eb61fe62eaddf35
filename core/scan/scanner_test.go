package scan

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func collect(t *testing.T, in string, max int) []string {
	t.Helper()
	var got []string
	err := Lines(context.Background(), strings.NewReader(in), max, func(l Line) error {
		got = append(got, string(l.Text))
		return nil
	})
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	return got
}

func TestOrderAndOrdinals(t *testing.T) {
	var lines []Line
	err := Lines(context.Background(), strings.NewReader("alpha\nbeta\ngamma\n"), DefaultBufferSize, func(l Line) error {
		lines = append(lines, Line{N: l.N, Text: append([]byte(nil), l.Text...)})
		return nil
	})
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	want := []string{"alpha", "beta", "gamma"}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d", len(lines), len(want))
	}
	for i, l := range lines {
		if l.N != i+1 {
			t.Errorf("line %d: ordinal %d, want %d", i, l.N, i+1)
		}
		if string(l.Text) != want[i] {
			t.Errorf("line %d: %q, want %q", i, l.Text, want[i])
		}
	}
}

func TestCRLFStripped(t *testing.T) {
	got := collect(t, "a\r\nb\r\n", DefaultBufferSize)
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %q", got)
	}
}

func TestInteriorCRKept(t *testing.T) {
	got := collect(t, "a\rb\n", DefaultBufferSize)
	if len(got) != 1 || got[0] != "a\rb" {
		t.Fatalf("got %q", got)
	}
}

func TestTrailingFragmentEmitted(t *testing.T) {
	got := collect(t, "no-newline-at-end", DefaultBufferSize)
	if len(got) != 1 || got[0] != "no-newline-at-end" {
		t.Fatalf("got %q", got)
	}
}

func TestEmptyInput(t *testing.T) {
	if got := collect(t, "", DefaultBufferSize); len(got) != 0 {
		t.Fatalf("got %q, want no lines", got)
	}
}

func TestNULBytesPassThrough(t *testing.T) {
	got := collect(t, "a\x00b\nc\n", DefaultBufferSize)
	if len(got) != 2 || got[0] != "a\x00b" || got[1] != "c" {
		t.Fatalf("got %q", got)
	}
}

// A line longer than the read buffer must be reassembled across chunk
// boundaries without loss.
func TestLongLineAcrossChunks(t *testing.T) {
	long := strings.Repeat("x", 3*DefaultBufferSize) + "needle" + strings.Repeat("y", 100)
	got := collect(t, long+"\nshort\n", 64*1024*1024)
	if len(got) != 2 {
		t.Fatalf("got %d lines, want 2", len(got))
	}
	if got[0] != long {
		t.Fatalf("long line corrupted: len=%d want=%d", len(got[0]), len(long))
	}
	if !strings.Contains(got[0], "needle") {
		t.Fatal("marker lost across chunk boundary")
	}
	if got[1] != "short" {
		t.Fatalf("second line %q", got[1])
	}
}

func TestMaxLineExceeded(t *testing.T) {
	in := strings.Repeat("x", 100) + "\n"
	err := Lines(context.Background(), strings.NewReader(in), 16, func(Line) error { return nil })
	if err == nil || !strings.Contains(err.Error(), "exceeds 16 bytes") {
		t.Fatalf("err = %v, want line-too-long error", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Lines(ctx, strings.NewReader("a\nb\n"), DefaultBufferSize, func(Line) error {
		t.Fatal("emit called after cancellation")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestEmitErrorAborts(t *testing.T) {
	sentinel := errors.New("stop")
	calls := 0
	err := Lines(context.Background(), strings.NewReader("a\nb\nc\n"), DefaultBufferSize, func(Line) error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Fatalf("err = %v, want sentinel", err)
	}
	if calls != 1 {
		t.Fatalf("emit called %d times, want 1", calls)
	}
}

type failReader struct{ err error }

func (f failReader) Read([]byte) (int, error) { return 0, f.err }

func TestReadErrorWrapped(t *testing.T) {
	boom := errors.New("descriptor gone")
	err := Lines(context.Background(), failReader{boom}, DefaultBufferSize, func(Line) error { return nil })
	if !errors.Is(err, boom) {
		t.Fatalf("err = %v, want wrapped read error", err)
	}
}

func TestBytesNotRetainedRequirement(t *testing.T) {
	// The callback contract allows the scanner to reuse its buffer; a
	// caller that copies must see stable data.
	var copies [][]byte
	err := Lines(context.Background(), strings.NewReader("one\ntwo\n"), DefaultBufferSize, func(l Line) error {
		copies = append(copies, append([]byte(nil), l.Text...))
		return nil
	})
	if err != nil {
		t.Fatalf("Lines: %v", err)
	}
	if !bytes.Equal(copies[0], []byte("one")) || !bytes.Equal(copies[1], []byte("two")) {
		t.Fatalf("copies corrupted: %q", copies)
	}
}
