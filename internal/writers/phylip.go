// internal/writers/phylip.go
package writers

import (
	"bufio"
	"fmt"
	"io"
)

// WritePhylip emits a relaxed PHYLIP square distance matrix: the
// taxon count on its own line, then one row per taxon with its name
// and all pairwise distances. Undefined distances render as "nan".
func WritePhylip(w io.Writer, res MatrixResult, _ bool) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(res.Names)); err != nil {
		return err
	}

	// Relaxed format: names padded to a common width, minimum 10.
	width := 10
	for _, name := range res.Names {
		if len(name) > width {
			width = len(name)
		}
	}

	for i, name := range res.Names {
		if _, err := fmt.Fprintf(bw, "%-*s", width, name); err != nil {
			return err
		}
		for j := range res.Names {
			if _, err := fmt.Fprintf(bw, " %1.4e", res.Dist[i][j]); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(bw); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func init() { Register("phylip", WritePhylip) }
