package similarity

import (
	"strings"
)

const (
	// DefaultMinPhraseLength is the longest n-gram length the extractor
	// starts from when none is given.
	DefaultMinPhraseLength = 5

	shortestPhraseLength = 3
	maxPhrases           = 10
)

// CommonPhrases finds word sequences shared by both texts as human-readable
// evidence for a match. Lengths are tried from minLength down to 3 so longer,
// more specific phrases win; a shorter match already covered by a captured
// phrase is skipped. At most 10 phrases are returned. A minLength below 3
// falls back to the default of 5.
func CommonPhrases(textA, textB string, minLength int) []string {
	if minLength < shortestPhraseLength {
		minLength = DefaultMinPhraseLength
	}

	tokensA := Tokenize(textA)
	tokensB := Tokenize(textB)

	phrases := make([]string, 0, maxPhrases)

	for n := minLength; n >= shortestPhraseLength; n-- {
		if len(tokensA) < n || len(tokensB) < n {
			continue
		}

		gramsB := toSet(ngrams(tokensB, n))
		seen := make(map[string]bool)

		for _, gram := range ngrams(tokensA, n) {
			if !gramsB[gram] || seen[gram] {
				continue
			}
			seen[gram] = true

			if coveredByLonger(phrases, gram) {
				continue
			}

			phrases = append(phrases, gram)
			if len(phrases) >= maxPhrases {
				return phrases
			}
		}
	}

	return phrases
}

// coveredByLonger reports whether gram is a substring of a phrase captured
// at a greater length.
func coveredByLonger(phrases []string, gram string) bool {
	for _, p := range phrases {
		if strings.Contains(p, gram) {
			return true
		}
	}
	return false
}
