// internal/cli/usage.go
package cli

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"sift/internal/version"
)

// InstallUsage installs a hand-written Usage() on fs that writes to w.
func InstallUsage(fs *flag.FlagSet, name string, w io.Writer) {
	fs.Usage = func() {
		fmt.Fprintf(w, "%s - literal line filter for pipes\n\n", name)
		fmt.Fprintf(w, "Version: %s\n\n", version.Version)
		fmt.Fprintf(w, "Usage:\n  <command> | %s [options] PATTERN\n\n", name)
		fmt.Fprintln(w, "Reads standard input and writes every line containing PATTERN,")
		fmt.Fprintln(w, "byte for byte and in input order, to standard output. Matching is")
		fmt.Fprintln(w, "literal and case-sensitive; input is streamed in bounded memory.")
		fmt.Fprintln(w, "\nOptions:")
		fmt.Fprint(w, fs.FlagUsages())
	}
}
