// core/model/model_test.go
package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSumAndTotal(t *testing.T) {
	var m Matrix
	m.Counts[AtoA] = 5
	m.Counts[AtoG] = 2
	m.Counts[CtoT] = 3

	require.Equal(t, 10, m.Total())
	require.Equal(t, 5, m.Sum(AtoG, CtoT))
	require.Equal(t, 0, m.Sum())
}

func TestCoverage(t *testing.T) {
	var m Matrix
	m.Counts[AtoA] = 30
	m.Counts[GtoT] = 10
	m.SeqLen = 80

	require.InDelta(t, 0.5, m.Coverage(), 1e-15)
}

func TestAverage(t *testing.T) {
	var m, n Matrix
	for i := range m.Counts {
		m.Counts[i] = i
		n.Counts[i] = 100
	}
	m.SeqLen = 50
	n.SeqLen = 70

	got := m.Average(n)
	for i := range got.Counts {
		require.Equal(t, i+100, got.Counts[i], "category %d", i)
	}
	require.Equal(t, 120, got.SeqLen)

	// inputs untouched
	require.Equal(t, 50, m.SeqLen)
	require.Equal(t, 100, n.Counts[0])
}
