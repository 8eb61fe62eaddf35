// internal/runutil/runutil.go
package runutil

import "fmt"

// DefaultMaxLineBytes allows very long single lines (64 MiB) while the
// per-read buffer stays small.
const DefaultMaxLineBytes = 64 * 1024 * 1024

// Below this, ordinary text lines start getting rejected.
const minSaneLineBytes = 4096

// EffectiveMaxLineBytes normalizes the --max-line-bytes value and returns
// (cap, warnings). Rules:
//   - 0 → DefaultMaxLineBytes
//   - 0 < v < 4096 → honored, but warned about
//
// Negative values are rejected earlier, at CLI validation.
func EffectiveMaxLineBytes(v int) (int, []string) {
	if v == 0 {
		return DefaultMaxLineBytes, nil
	}
	var warns []string
	if v < minSaneLineBytes {
		warns = append(warns, fmt.Sprintf("warning: --max-line-bytes %d is very small; ordinary lines may exceed it", v))
	}
	return v, warns
}
