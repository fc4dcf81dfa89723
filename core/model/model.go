// Package model holds the mutation-count matrix for a pairwise DNA
// alignment and the estimation of evolutionary distances from it.
package model

// Matrix accumulates substitution counts over one pairwise alignment.
// Counts has one bin per Category. SeqLen is the nominal length of the
// region the matrix describes, including positions excluded from
// counting (gaps, masked characters), so Total() <= SeqLen holds for
// every matrix the counting engine produces.
//
// The zero value is ready to use. A Matrix has no internal locking;
// mutation rights belong to whichever goroutine holds it.
type Matrix struct {
	Counts [NumCategories]int
	SeqLen int
}

// Sum adds up the counts of the given categories.
func (m *Matrix) Sum(cats ...Category) int {
	total := 0
	for _, c := range cats {
		total += m.Counts[c]
	}
	return total
}

// Total is the number of alignment positions where both characters
// were valid nucleotides, i.e. the effective aligned length that the
// estimators divide by.
func (m *Matrix) Total() int {
	total := 0
	for _, n := range m.Counts {
		total += n
	}
	return total
}

// Coverage is the fraction of the nominal region actually counted.
// SeqLen must be non-zero.
func (m *Matrix) Coverage() float64 {
	return float64(m.Total()) / float64(m.SeqLen)
}

// Average merges two matrices describing separate alignment segments
// into one global statistic: entrywise count sums and summed sequence
// lengths.
func (m Matrix) Average(n Matrix) Matrix {
	ret := m
	for i := range ret.Counts {
		ret.Counts[i] += n.Counts[i]
	}
	ret.SeqLen += n.SeqLen
	return ret
}
