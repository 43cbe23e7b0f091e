// Package similarity implements the content similarity engine used for
// plagiarism detection over a team's prompt library. Every function is a
// pure, deterministic function of its inputs plus the engine's constant
// weights; nothing here performs I/O or holds state between calls.
package similarity

import (
	"math"

	"github.com/raohamdcreator-bit/verity/internal/models"
)

// ngramSize is the n-gram length used by the aggregated n-gram metric.
const ngramSize = 3

// Config holds the metric weights and the default match threshold. The
// weighting favors term-overlap signals (cosine and Jaccard, 55% combined)
// over character edit distance, so paraphrased copies still score high even
// with low character-level overlap.
type Config struct {
	JaccardWeight   float64
	CosineWeight    float64
	NgramWeight     float64
	CharacterWeight float64
	LCSWeight       float64
	Threshold       int
}

// DefaultConfig returns the engine's fixed production constants.
func DefaultConfig() Config {
	return Config{
		JaccardWeight:   0.25,
		CosineWeight:    0.30,
		NgramWeight:     0.20,
		CharacterWeight: 0.15,
		LCSWeight:       0.10,
		Threshold:       30,
	}
}

// Score compares two texts with the default weights and returns an integer
// similarity in [0,100].
func Score(textA, textB string) int {
	return DefaultConfig().Score(textA, textB)
}

// Score returns the weighted similarity of two texts as an integer in
// [0,100]. Either input empty scores 0; texts that are equal raw or after
// normalization score exactly 100, short-circuiting before any floating
// point weighting can drift.
func (c Config) Score(textA, textB string) int {
	if textA == "" || textB == "" {
		return 0
	}
	if textA == textB {
		return 100
	}

	normA := Normalize(textA)
	normB := Normalize(textB)
	if normA == normB {
		return 100
	}

	tokensA := tokensOf(normA)
	tokensB := tokensOf(normB)

	weighted := c.JaccardWeight*jaccardSimilarity(tokensA, tokensB) +
		c.CosineWeight*cosineSimilarity(tokensA, tokensB) +
		c.NgramWeight*ngramSimilarity(tokensA, tokensB, ngramSize) +
		c.CharacterWeight*characterSimilarity(normA, normB) +
		c.LCSWeight*lcsSimilarity(normA, normB)

	return int(math.Round(weighted * 100))
}

// ScoreCode strips comments for the given language from both inputs, then
// scores the remainder exactly like prose.
func (c Config) ScoreCode(codeA, codeB, language string) int {
	return c.Score(StripComments(codeA, language), StripComments(codeB, language))
}

// DetailedScore compares two texts with the default weights and exposes the
// unrounded-then-individually-rounded per-metric breakdown.
func DetailedScore(textA, textB string) models.DetailedSimilarity {
	return DefaultConfig().DetailedScore(textA, textB)
}

// DetailedScore returns the same overall score as Score alongside the five
// metrics rounded individually to [0,100], for diagnostic drill-down. For
// trivially identical texts the overall is the short-circuit 100 even where
// a component (such as the n-gram metric on very short input) reads lower.
func (c Config) DetailedScore(textA, textB string) models.DetailedSimilarity {
	normA := Normalize(textA)
	normB := Normalize(textB)
	tokensA := tokensOf(normA)
	tokensB := tokensOf(normB)

	return models.DetailedSimilarity{
		Overall: c.Score(textA, textB),
		Breakdown: models.SimilarityBreakdown{
			Jaccard:   roundPct(jaccardSimilarity(tokensA, tokensB)),
			Cosine:    roundPct(cosineSimilarity(tokensA, tokensB)),
			Ngram:     roundPct(ngramSimilarity(tokensA, tokensB, ngramSize)),
			Character: roundPct(characterSimilarity(normA, normB)),
			LCS:       roundPct(lcsSimilarity(normA, normB)),
		},
	}
}

func roundPct(v float64) int {
	return int(math.Round(v * 100))
}
