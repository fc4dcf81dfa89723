// core/model/codec.go
package model

// Category indexes one of the ten symmetric mutation classes. XtoY is
// defined once for the unordered pair {X,Y}. The numbering follows the
// "to" nucleotide: for a 2-bit "to" code t, the categories Xto* with
// X >= t occupy a contiguous block starting at the offset packed into
// baseOffsets, which is what lets PairIndex stay arithmetic.
type Category int

const (
	AtoA Category = iota
	AtoC
	AtoG
	AtoT
	CtoC
	CtoG
	CtoT
	GtoG
	GtoT
	TtoT

	// NumCategories is the number of mutation classes: 4 identities
	// plus 6 substitutions.
	NumCategories = 10
)

// Nucl2Bit maps an uppercase nucleotide to its 2-bit code:
// A→0, C→1, G→2, T→3. The bits 0x6 are distinct across the four
// letters (A=00, C=01, T=10, G=11), so masking and one xor-shift turn
// the character into its code without a table or a branch. Callers
// must have filtered out anything that is not A, C, G or T.
func Nucl2Bit(c byte) byte {
	c &= 6
	c ^= c >> 1
	return c >> 1
}

// baseOffsets packs, one nibble per "to" code, the index of XtoX for
// X = A..T: AtoA=0, CtoC=4, GtoG=7, TtoT=9.
const baseOffsets = 0x9740

// PairIndex returns the matrix category for two 2-bit codes, in either
// order. The larger code acts as "from" and the smaller as "to",
// which enforces the symmetric convention; the category is then
// base(to) + (from - to). This replaces a 4x4 lookup table with two
// shifts and an add.
func PairIndex(a, b byte) Category {
	if b > a {
		a, b = b, a
	}
	base := (baseOffsets >> (4 * uint(b))) & 0xf
	return Category(base + int(a-b))
}
