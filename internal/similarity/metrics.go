package similarity

import (
	"math"
	"strings"
)

// jaccardSimilarity is |A ∩ B| / |A ∪ B| over token sets, duplicates collapsed.
func jaccardSimilarity(tokensA, tokensB []string) float64 {
	if len(tokensA) == 0 || len(tokensB) == 0 {
		return 0.0
	}

	setA := toSet(tokensA)
	setB := toSet(tokensB)

	intersection := 0
	for t := range setA {
		if setB[t] {
			intersection++
		}
	}

	union := len(setA) + len(setB) - intersection
	if union == 0 {
		return 0.0
	}

	return float64(intersection) / float64(union)
}

// cosineSimilarity compares term-frequency vectors over the union vocabulary
// of both token lists, duplicates counted.
func cosineSimilarity(tokensA, tokensB []string) float64 {
	freqA := termFrequencies(tokensA)
	freqB := termFrequencies(tokensB)

	var dot, magA, magB float64
	for t, a := range freqA {
		if b, ok := freqB[t]; ok {
			dot += float64(a * b)
		}
		magA += float64(a * a)
	}
	for _, b := range freqB {
		magB += float64(b * b)
	}

	if magA == 0 || magB == 0 {
		return 0.0
	}

	return dot / (math.Sqrt(magA) * math.Sqrt(magB))
}

// ngramSimilarity applies Jaccard over contiguous n-token n-gram sets.
// Either side shorter than n tokens scores 0, so very short texts never
// produce a silently empty n-gram set.
func ngramSimilarity(tokensA, tokensB []string, n int) float64 {
	if len(tokensA) < n || len(tokensB) < n {
		return 0.0
	}
	return jaccardSimilarity(ngrams(tokensA, n), ngrams(tokensB, n))
}

// characterSimilarity is 1 − levenshtein(a,b) / max(len(a), len(b)) over
// normalized strings.
func characterSimilarity(normA, normB string) float64 {
	runesA := []rune(normA)
	runesB := []rune(normB)

	maxLen := max(len(runesA), len(runesB))
	if maxLen == 0 {
		return 0.0
	}

	return 1.0 - float64(levenshtein(runesA, runesB))/float64(maxLen)
}

// lcsSimilarity is lcsLength(a,b) / max(len(a), len(b)) over normalized strings.
func lcsSimilarity(normA, normB string) float64 {
	runesA := []rune(normA)
	runesB := []rune(normB)

	maxLen := max(len(runesA), len(runesB))
	if maxLen == 0 {
		return 0.0
	}

	return float64(lcsLength(runesA, runesB)) / float64(maxLen)
}

// levenshtein computes edit distance with two rolling rows instead of the
// full DP matrix, keeping memory linear in the shorter input.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// lcsLength computes the longest common subsequence length, rolling rows.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else {
				curr[j] = max(prev[j], curr[j-1])
			}
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}

// ngrams builds contiguous n-token sequences joined by single spaces.
func ngrams(tokens []string, n int) []string {
	if len(tokens) < n {
		return nil
	}
	grams := make([]string, 0, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		grams = append(grams, strings.Join(tokens[i:i+n], " "))
	}
	return grams
}

func toSet(tokens []string) map[string]bool {
	set := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		set[t] = true
	}
	return set
}

func termFrequencies(tokens []string) map[string]int {
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}
	return freq
}
