// core/model/codec_test.go
package model

import "testing"

func TestNucl2Bit(t *testing.T) {
	tests := []struct {
		in   byte
		want byte
	}{
		{'A', 0},
		{'C', 1},
		{'G', 2},
		{'T', 3},
	}
	for _, tc := range tests {
		if got := Nucl2Bit(tc.in); got != tc.want {
			t.Errorf("Nucl2Bit(%q) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestPairIndexSymmetric(t *testing.T) {
	for a := byte(0); a < 4; a++ {
		for b := byte(0); b < 4; b++ {
			if PairIndex(a, b) != PairIndex(b, a) {
				t.Errorf("PairIndex(%d,%d) != PairIndex(%d,%d)", a, b, b, a)
			}
		}
	}
}

// The 4 diagonal classifications must be pairwise distinct and
// disjoint from the 6 off-diagonal ones; together they must cover all
// ten categories exactly.
func TestPairIndexBijection(t *testing.T) {
	seen := map[Category][2]byte{}
	for a := byte(0); a < 4; a++ {
		for b := a; b < 4; b++ {
			idx := PairIndex(a, b)
			if idx < 0 || idx >= NumCategories {
				t.Fatalf("PairIndex(%d,%d) = %d out of range", a, b, idx)
			}
			if prev, dup := seen[idx]; dup {
				t.Fatalf("PairIndex collision: (%d,%d) and (%d,%d) both map to %d",
					a, b, prev[0], prev[1], idx)
			}
			seen[idx] = [2]byte{a, b}
		}
	}
	if len(seen) != NumCategories {
		t.Fatalf("expected %d distinct categories, got %d", NumCategories, len(seen))
	}
}

func TestPairIndexNamedCategories(t *testing.T) {
	a, c, g, tt := Nucl2Bit('A'), Nucl2Bit('C'), Nucl2Bit('G'), Nucl2Bit('T')
	tests := []struct {
		x, y byte
		want Category
	}{
		{a, a, AtoA},
		{c, c, CtoC},
		{g, g, GtoG},
		{tt, tt, TtoT},
		{a, c, AtoC},
		{a, g, AtoG},
		{a, tt, AtoT},
		{c, g, CtoG},
		{c, tt, CtoT},
		{g, tt, GtoT},
	}
	for _, tc := range tests {
		if got := PairIndex(tc.x, tc.y); got != tc.want {
			t.Errorf("PairIndex(%d,%d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}
