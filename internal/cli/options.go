// internal/cli/options.go
package cli

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"
)

// Options holds all CLI flags and the pattern argument.
type Options struct {
	Pattern string

	// Output
	Count      bool
	LineNumber bool
	Invert     bool

	// Limits
	MaxLineBytes    int
	NoMatchExitCode int

	// Misc
	Quiet   bool
	Version bool
}

// NewFlagSet returns a clean FlagSet with ContinueOnError.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SortFlags = false
	fs.Usage = func() {}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Flags may appear before or after the pattern argument.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	// Output
	fs.BoolVarP(&opt.Count, "count", "c", false, "print only the number of matching lines [false]")
	fs.BoolVarP(&opt.LineNumber, "line-number", "n", false, "prefix each line with its input line number [false]")
	fs.BoolVar(&opt.Invert, "invert-match", false, "select lines NOT containing the pattern [false]")
	fs.IntVar(&opt.NoMatchExitCode, "no-match-exit-code", 0, "exit code when no lines matched [0]")

	// Limits
	fs.IntVar(&opt.MaxLineBytes, "max-line-bytes", 0, "max length of one input line, 0 = 64 MiB default [0]")

	// Misc
	fs.BoolVarP(&opt.Quiet, "quiet", "q", false, "suppress non-essential warnings [false]")
	fs.BoolVarP(&opt.Version, "version", "v", false, "print version and exit [false]")
	fs.BoolVarP(&help, "help", "h", false, "show this help message [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	args := fs.Args()
	switch {
	case len(args) == 0:
		return opt, errors.New("missing required PATTERN argument")
	case len(args) > 1:
		return opt, fmt.Errorf("unexpected argument %q (file arguments are not supported; pipe input on stdin)", args[1])
	}
	opt.Pattern = args[0]

	// Validation
	if opt.Pattern == "" {
		return opt, errors.New("PATTERN must not be empty")
	}
	if opt.NoMatchExitCode < 0 || opt.NoMatchExitCode > 255 {
		return opt, errors.New("--no-match-exit-code must be between 0 and 255")
	}
	if opt.MaxLineBytes < 0 {
		return opt, errors.New("--max-line-bytes must be ≥ 0")
	}
	return opt, nil
}
