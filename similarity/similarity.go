package similarity

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// DefaultThreshold is the minimum partial-match score for two strings to be
// considered almost similar
const DefaultThreshold = 60

// Oracle decides whether two strings refer to the same thing
type Oracle interface {
	AlmostSimilar(a, b string) bool
}

// Fuzzy is an Oracle backed by the fuzzy partial ratio
type Fuzzy struct {
	Threshold int
}

// NewFuzzy creates a fuzzy oracle. A negative threshold falls back to
// DefaultThreshold.
func NewFuzzy(threshold int) Fuzzy {
	if threshold < 0 {
		threshold = DefaultThreshold
	}
	return Fuzzy{Threshold: threshold}
}

// AlmostSimilar implements Oracle
func (f Fuzzy) AlmostSimilar(a, b string) bool {
	return AlmostSimilar(a, b, f.Threshold)
}

// AlmostSimilar reports whether the partial-match score of a and b reaches threshold
func AlmostSimilar(a, b string, threshold int) bool {
	return Score(a, b) >= threshold
}

// Score returns the 0-100 partial-match score of a and b: how well the shorter
// string aligns with its best-matching substring of the longer one. Both
// strings are lowercased and whitespace-collapsed first. Equal strings score
// 100, including two empty ones; otherwise empty input scores 0.
func Score(a, b string) int {
	a, b = clean(a), clean(b)
	if a == b {
		return 100
	}
	if a == "" || b == "" {
		return 0
	}
	return fuzzy.PartialRatio(a, b)
}

func clean(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
