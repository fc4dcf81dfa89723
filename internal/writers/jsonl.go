// internal/writers/jsonl.go
package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"math"
)

// pairRow is the stable wire shape for one pair (v1). Distance is
// null when the estimate is undefined; encoding/json cannot represent
// NaN.
type pairRow struct {
	Replicate int      `json:"replicate"`
	SeqA      string   `json:"seq_a"`
	SeqB      string   `json:"seq_b"`
	Distance  *float64 `json:"distance"`
	Coverage  float64  `json:"coverage"`
}

// WriteJSONL emits one JSON object per unordered pair per replicate.
func WriteJSONL(w io.Writer, res MatrixResult, _ bool) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	for i := range res.Names {
		for j := i + 1; j < len(res.Names); j++ {
			row := pairRow{
				Replicate: res.Replicate,
				SeqA:      res.Names[i],
				SeqB:      res.Names[j],
				Coverage:  res.Coverage[i][j],
			}
			if d := res.Dist[i][j]; !math.IsNaN(d) {
				row.Distance = &d
			}
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
	}
	return bw.Flush()
}

func init() { Register("jsonl", WriteJSONL) }
