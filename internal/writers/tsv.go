// internal/writers/tsv.go
package writers

import (
	"bufio"
	"fmt"
	"io"
)

// WriteTSV emits one row per unordered pair: replicate index, both
// sequence IDs, the distance and the pair's coverage. The header is
// printed once, before the first replicate.
func WriteTSV(w io.Writer, res MatrixResult, header bool) error {
	bw := bufio.NewWriter(w)
	if header && res.Replicate == 0 {
		if _, err := fmt.Fprintln(bw, "replicate\tseq_a\tseq_b\tdistance\tcoverage"); err != nil {
			return err
		}
	}
	for i := range res.Names {
		for j := i + 1; j < len(res.Names); j++ {
			_, err := fmt.Fprintf(bw, "%d\t%s\t%s\t%g\t%g\n",
				res.Replicate, res.Names[i], res.Names[j], res.Dist[i][j], res.Coverage[i][j])
			if err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func init() { Register("tsv", WriteTSV) }
