// core/model/bootstrap.go
package model

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/stat/distuv"
)

// Bootstrap draws a resampled matrix from the multinomial
// distribution with Total() trials and this matrix's empirical
// category proportions. Classical per-site bootstrapping of an
// alignment reduces to exactly this draw in the pairwise case
// (Klötzl & Haubold 2016), so no sequence positions need resampling.
//
// The multinomial is decomposed into conditional binomial draws, the
// same reduction GSL's gsl_ran_multinomial performs. The generator is
// passed in explicitly so replicates are reproducible under a fixed
// seed; callers drawing replicates concurrently must use one source
// per goroutine.
//
// The result keeps SeqLen and Total exactly. A zero-total matrix
// resamples to itself.
func (m Matrix) Bootstrap(src rand.Source) Matrix {
	datum := m

	nucl := m.Total()
	if nucl == 0 {
		return datum
	}

	// Index of the last populated bin: it absorbs whatever trials the
	// earlier binomials left over, so the total never drifts.
	last := 0
	for i, n := range m.Counts {
		if n > 0 {
			last = i
		}
	}

	var counts [NumCategories]int
	remaining := nucl
	rest := 1.0
	for i, n := range m.Counts {
		if n == 0 || remaining == 0 {
			continue
		}
		p := float64(n) / float64(nucl)
		if i == last || p >= rest {
			counts[i] = remaining
			remaining = 0
			continue
		}
		bin := distuv.Binomial{N: float64(remaining), P: p / rest, Src: src}
		k := int(bin.Rand())
		counts[i] = k
		remaining -= k
		rest -= p
	}

	datum.Counts = counts
	return datum
}
