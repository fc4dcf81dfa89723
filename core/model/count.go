// core/model/count.go
package model

import (
	"fmt"
	"strings"
)

// Strategy selects how CountEqual tallies a known-identical stretch.
type Strategy int

const (
	// ApproxEqual assumes a uniform nucleotide distribution and splits
	// the stretch evenly over the four identity bins. Only valid for
	// models that care about how many positions matched, not which
	// nucleotide they matched on.
	ApproxEqual Strategy = iota
	// ExactEqual decodes every character and counts per-nucleotide
	// identities exactly. Slower, but required by any model that
	// distinguishes the matched nucleotide.
	ExactEqual
)

// Model names a distance model. It selects the estimator and the
// anchor strategy the counting engine may use.
type Model int

const (
	Raw Model = iota
	JC
	Kimura
)

func (m Model) String() string {
	switch m {
	case Raw:
		return "raw"
	case JC:
		return "jc"
	case Kimura:
		return "kimura"
	}
	return "unknown"
}

// ParseModel maps a user-facing name onto a Model.
func ParseModel(s string) (Model, error) {
	switch strings.ToLower(s) {
	case "raw":
		return Raw, nil
	case "jc", "jukes-cantor":
		return JC, nil
	case "kimura", "k80":
		return Kimura, nil
	}
	return JC, fmt.Errorf("unknown distance model %q", s)
}

// AnchorStrategy returns the cheapest CountEqual strategy the model's
// estimator tolerates. Raw, JC and Kimura only consume match totals,
// so the approximate split is safe for all three.
func (m Model) AnchorStrategy() Strategy {
	switch m {
	case Raw, JC, Kimura:
		return ApproxEqual
	}
	return ExactEqual
}

// Count scans two aligned, equal-length buffers and tallies every
// comparable position. Positions where either byte is below 'A'
// (the gap and separator placeholders such as '-', ';', '!', '#')
// contribute nothing; the caller's SeqLen accounts for them. SeqLen
// is left untouched.
//
// The scan goes through a local tally that is merged once at the end,
// keeping the target matrix cold while the loop runs; the routine is
// invoked once per alignment window across many windows.
//
// Panics if the buffers differ in length.
func (m *Matrix) Count(s, q []byte) {
	if len(s) != len(q) {
		panic("model: aligned buffers differ in length")
	}
	var local [NumCategories]int
	for i := 0; i < len(s); i++ {
		a, b := s[i], q[i]
		if a < 'A' || b < 'A' {
			continue
		}
		local[PairIndex(Nucl2Bit(a), Nucl2Bit(b))]++
	}
	for i, n := range local {
		m.Counts[i] += n
	}
}

// CountEqual tallies a stretch already known to be identical between
// subject and query, so only the identity bins can change and a
// single buffer suffices.
//
// Under ApproxEqual each identity bin receives len/4 and the
// remainder goes to TtoT, keeping the total exact without touching a
// single byte. Under ExactEqual every character is decoded and the
// matching bin incremented; placeholders are skipped as in Count.
func (m *Matrix) CountEqual(s []byte, strat Strategy) {
	if strat == ApproxEqual {
		fourth := len(s) / 4
		m.Counts[AtoA] += fourth
		m.Counts[CtoC] += fourth
		m.Counts[GtoG] += fourth
		m.Counts[TtoT] += fourth + len(s)&3
		return
	}

	var local [4]int
	for _, c := range s {
		if c < 'A' {
			continue
		}
		local[Nucl2Bit(c)]++
	}
	m.Counts[AtoA] += local[0]
	m.Counts[CtoC] += local[1]
	m.Counts[GtoG] += local[2]
	m.Counts[TtoT] += local[3]
}

// anchorMinLen is the shortest identical run worth the batched
// CountEqual path; anything shorter goes through the generic counter.
const anchorMinLen = 16

func isNucl(c byte) bool {
	return c == 'A' || c == 'C' || c == 'G' || c == 'T'
}

// CountAligned consumes one whole aligned pair. Maximal runs where
// both buffers agree on a plain nucleotide are treated as anchors and
// tallied via CountEqual; everything else goes through Count. The
// alignment length is added to SeqLen, so Total() <= SeqLen holds on
// return.
//
// Panics if the buffers differ in length.
func (m *Matrix) CountAligned(s, q []byte, strat Strategy) {
	if len(s) != len(q) {
		panic("model: aligned buffers differ in length")
	}
	for i := 0; i < len(s); {
		j := i + 1
		if s[i] == q[i] && isNucl(s[i]) {
			for j < len(s) && s[j] == q[j] && isNucl(s[j]) {
				j++
			}
			if j-i >= anchorMinLen {
				m.CountEqual(s[i:j], strat)
			} else {
				m.Count(s[i:j], q[i:j])
			}
		} else {
			for j < len(s) && !(s[j] == q[j] && isNucl(s[j])) {
				j++
			}
			m.Count(s[i:j], q[i:j])
		}
		i = j
	}
	m.SeqLen += len(s)
}
