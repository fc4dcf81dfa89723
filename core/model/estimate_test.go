// core/model/estimate_test.go
package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func matrixOf(counts map[Category]int) Matrix {
	var m Matrix
	for cat, n := range counts {
		m.Counts[cat] = n
	}
	m.SeqLen = m.Total()
	return m
}

func TestRawInsufficientData(t *testing.T) {
	// total <= 3 is the cutoff: 3 counted positions are undefined,
	// 4 are not.
	m := matrixOf(map[Category]int{AtoA: 3})
	require.True(t, math.IsNaN(m.Raw()))

	m = matrixOf(map[Category]int{AtoA: 4})
	require.Equal(t, 0.0, m.Raw())

	var empty Matrix
	require.True(t, math.IsNaN(empty.Raw()))
}

func TestRawQuarter(t *testing.T) {
	var m Matrix
	m.Count([]byte("AAAT"), []byte("AAAA"))
	require.Equal(t, 0.25, m.Raw())
}

func TestJC(t *testing.T) {
	// raw = 0.25 corrects to -0.75*ln(1 - 1/3) = 0.75*ln(1.5)
	m := matrixOf(map[Category]int{AtoA: 3, AtoT: 1})
	require.InDelta(t, 0.304098831081123, m.JC(), 1e-12)

	// pure matches stay exactly zero, not negative zero or noise
	m = matrixOf(map[Category]int{AtoA: 10, CtoC: 10})
	require.Equal(t, 0.0, m.JC())

	// NaN propagates from Raw
	m = matrixOf(map[Category]int{AtoG: 2})
	require.True(t, math.IsNaN(m.JC()))
}

func TestKimura(t *testing.T) {
	// P = 0.1 (transitions), Q = 0.05 (transversions):
	// d = -0.25*ln((1-0.1)*(1-0.2-0.05)^2) = 0.170181165
	m := matrixOf(map[Category]int{
		AtoA: 85,
		AtoG: 6,
		CtoT: 4,
		AtoC: 2,
		AtoT: 1,
		CtoG: 1,
		GtoT: 1,
	})
	require.Equal(t, 100, m.Total())
	require.InDelta(t, 0.170181164, m.Kimura(), 1e-8)

	// zero mismatches: exactly zero
	m = matrixOf(map[Category]int{GtoG: 50})
	require.Equal(t, 0.0, m.Kimura())

	// explicit empty-matrix guard
	var empty Matrix
	require.True(t, math.IsNaN(empty.Kimura()))
}

func TestEstimateDispatch(t *testing.T) {
	m := matrixOf(map[Category]int{AtoA: 3, AtoT: 1})
	require.Equal(t, m.Raw(), m.Estimate(Raw))
	require.Equal(t, m.JC(), m.Estimate(JC))
	require.Equal(t, m.Kimura(), m.Estimate(Kimura))
}
