// core/model/estimate.go
package model

import "math"

// Raw estimates the uncorrected substitution rate: mismatches over
// counted positions. With three or fewer counted positions the ratio
// is statistically meaningless, so NaN is returned; the NaN
// propagates through every correction built on top.
func (m *Matrix) Raw() float64 {
	nucl := m.Total()
	if nucl <= 3 {
		return math.NaN()
	}
	snps := m.Sum(AtoC, AtoG, AtoT, CtoG, CtoT, GtoT)
	return float64(snps) / float64(nucl)
}

// JC is the Jukes-Cantor corrected distance. Results at or below zero
// (negative zero, numerical noise near zero true distance) clamp to
// exactly 0; NaN from Raw passes through.
func (m *Matrix) JC() float64 {
	dist := m.Raw()
	dist = -0.75 * math.Log(1.0-(4.0/3.0)*dist)
	if dist <= 0.0 {
		return 0.0
	}
	return dist
}

// Kimura is the two-parameter K80 distance, computed from the
// transition and transversion fractions directly rather than from
// Raw. An empty matrix has no defined fractions and yields NaN. The
// same negative-zero clamp as JC applies.
func (m *Matrix) Kimura() float64 {
	nucl := m.Total()
	if nucl == 0 {
		return math.NaN()
	}
	transitions := m.Sum(AtoG, CtoT)
	transversions := m.Sum(AtoC, AtoT, CtoG, GtoT)

	p := float64(transitions) / float64(nucl)
	q := float64(transversions) / float64(nucl)

	tmp := 1.0 - 2.0*p - q
	dist := -0.25 * math.Log((1.0-2.0*q)*tmp*tmp)
	if dist <= 0.0 {
		return 0.0
	}
	return dist
}

// Estimate runs the estimator the model selects.
func (m *Matrix) Estimate(mod Model) float64 {
	switch mod {
	case Raw:
		return m.Raw()
	case Kimura:
		return m.Kimura()
	default:
		return m.JC()
	}
}
