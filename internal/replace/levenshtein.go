package replace

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// maxLevenshteinScalars bounds the cost of the Levenshtein computation.
// Inputs longer than this are rejected before the O(min(m,n)) table is
// ever built, to prevent quadratic blowup on pathological inputs.
const maxLevenshteinScalars = 10_000

// Distance returns the classical edit distance (insertion, deletion,
// substitution; unit cost) between a and b, measured in Unicode scalar
// values rather than bytes. It is total: every input, however large,
// returns a value, degrading to an upper-bound estimate rather than
// paying for the full computation once two guards trip.
func Distance(a, b string) int {
	m, n := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	l := maxInt(m, n)

	if m > maxLevenshteinScalars || n > maxLevenshteinScalars {
		return l
	}

	// Length-difference quick-reject: if the two inputs differ in length
	// by more than a third of the longer one, the distance can't be low
	// enough to matter and isn't worth computing exactly.
	if absInt(m-n) > l/3 {
		return l
	}

	return levenshtein.ComputeDistance(a, b)
}

// Similarity returns 1 - distance/maxLen, in [0, 1]. Two empty strings
// are defined as fully similar.
func Similarity(a, b string) float64 {
	m, n := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if m == 0 && n == 0 {
		return 1.0
	}
	d := Distance(a, b)
	l := maxInt(m, n)
	return 1.0 - float64(d)/float64(l)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}
