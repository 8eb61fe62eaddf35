// internal/app/app.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	flag "github.com/spf13/pflag"

	"sift-core/match"
	"sift-core/scan"
	"sift/internal/cli"
	"sift/internal/output"
	"sift/internal/runutil"
	"sift/internal/version"
	"sift/internal/writers"
)

// Exit codes. A broken output pipe maps to ExitOK: the downstream
// consumer finishing early is normal in a shell pipeline.
const (
	ExitOK     = 0
	ExitUsage  = 2
	ExitIO     = 3
	ExitCancel = 130
)

const name = "sift"

// RunContext parses argv, filters stdin to stdout, and returns the
// process exit code. All streams are injected so tests can drive it with
// in-memory buffers.
func RunContext(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			cli.InstallUsage(fs, name, stdout)
			fs.Usage()
			return ExitOK
		}
		fmt.Fprintln(stderr, err)
		cli.InstallUsage(fs, name, stderr)
		fs.Usage()
		return ExitUsage
	}

	if opts.Version {
		fmt.Fprintf(stdout, "%s version %s\n", name, version.Version)
		return ExitOK
	}

	maxLine, warns := runutil.EffectiveMaxLineBytes(opts.MaxLineBytes)
	if !opts.Quiet {
		for _, w := range warns {
			fmt.Fprintln(stderr, w)
		}
	}

	if f, ok := stdin.(*os.File); ok && !opts.Quiet && isatty.IsTerminal(f.Fd()) {
		fmt.Fprintf(stderr, "%s: reading from terminal; pipe input or press Ctrl-D to end\n", name)
	}

	lit, err := match.NewLiteral([]byte(opts.Pattern))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	var m match.Matcher = lit
	if opts.Invert {
		m = match.Invert(m)
	}

	em := output.NewLineEmitter(stdout, output.Options{Count: opts.Count, LineNumber: opts.LineNumber})

	err = scan.Lines(ctx, stdin, maxLine, func(ln scan.Line) error {
		if !m.Match(ln.Text) {
			return nil
		}
		return em.Emit(ln)
	})
	if err != nil {
		if writers.IsBrokenPipe(err) {
			return ExitOK
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return ExitCancel
		}
		fmt.Fprintln(stderr, err)
		return ExitIO
	}

	if err := em.Close(); writers.IsBrokenPipe(err) {
		return ExitOK
	} else if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitIO
	}

	if em.Matches() == 0 {
		return opts.NoMatchExitCode
	}
	return ExitOK
}

// Run is RunContext with a background context.
func Run(argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdin, stdout, stderr)
}
