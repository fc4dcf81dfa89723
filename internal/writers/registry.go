// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
)

// MatrixResult is one full distance matrix: the primary estimate
// (Replicate 0) or a bootstrap replicate (Replicate >= 1). Dist and
// Coverage are square and symmetric with zero/one diagonals.
type MatrixResult struct {
	Replicate int
	Names     []string
	Dist      [][]float64
	Coverage  [][]float64
}

// WriterFunc renders one matrix. header is only meaningful for row
// oriented formats and is honored on the first replicate.
type WriterFunc func(w io.Writer, res MatrixResult, header bool) error

// Writers maps an output format name onto its writer. Writer files
// register themselves in init().
var Writers = map[string]WriterFunc{}

// Register installs a writer for a format name (last one wins).
func Register(format string, fn WriterFunc) { Writers[format] = fn }

// Write dispatches to the registered writer.
func Write(format string, w io.Writer, res MatrixResult, header bool) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown output format %q (no writer registered)", format)
	}
	return fn(w, res, header)
}
