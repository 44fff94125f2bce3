package match

import (
	"strings"
	"unicode"
)

// Similarity scores two identifiers between 0 and 1 after normalization.
// 1 means the identifiers differ only in case or separators.
func Similarity(a, b string) float64 {
	na, nb := []rune(Normalize(a)), []rune(Normalize(b))
	if len(na) == 0 && len(nb) == 0 {
		return 1
	}

	return 1 - float64(Distance(na, nb))/float64(max(len(na), len(nb)))
}

// Normalize case folds s and drops '_', '-' and spaces.
func Normalize(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if r == '_' || r == '-' || r == ' ' {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// Distance is the Levenshtein edit distance between a and b.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Distance(a, b []rune) int {
	if len(a) > len(b) {
		a, b = b, a
	}

	// two rows of the edit matrix, sized by the shorter input
	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}
