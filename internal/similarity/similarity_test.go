package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreIdenticalTexts(t *testing.T) {
	text := "Write a product description for wireless headphones."
	assert.Equal(t, 100, Score(text, text))
}

func TestScoreNormalizedEquality(t *testing.T) {
	// Differ only in case, punctuation and whitespace.
	a := "Write a SUMMARY of the document!"
	b := "write   a summary of the document"
	assert.Equal(t, 100, Score(a, b))
}

func TestScoreEmptyInput(t *testing.T) {
	assert.Zero(t, Score("", "anything at all"))
	assert.Zero(t, Score("anything at all", ""))
	assert.Zero(t, Score("", ""))
}

func TestScoreSymmetry(t *testing.T) {
	a := "Summarize the following article in three bullet points."
	b := "Summarize this article using exactly three bullets."
	assert.Equal(t, Score(a, b), Score(b, a))
}

func TestScoreBounds(t *testing.T) {
	pairs := [][2]string{
		{"one sentence here", "a totally different sentence"},
		{"hi there", "hi there now"},
		{"x", "y"},
		{"the same words the same words", "the same words"},
	}

	for _, p := range pairs {
		score := Score(p[0], p[1])
		assert.GreaterOrEqual(t, score, 0, "Score(%q, %q)", p[0], p[1])
		assert.LessOrEqual(t, score, 100, "Score(%q, %q)", p[0], p[1])
	}
}

func TestScoreRelatedVersusUnrelated(t *testing.T) {
	base := "The quick brown fox jumps over the lazy dog near the river."
	related := "A quick brown fox leaps over a lazy dog close to the river."
	unrelated := "Quantum entanglement links particle states across arbitrary distances."

	relatedScore := Score(base, related)
	unrelatedScore := Score(base, unrelated)

	assert.Greater(t, relatedScore, unrelatedScore)
	assert.GreaterOrEqual(t, relatedScore, 30)
	assert.Less(t, relatedScore, 100)
	assert.Less(t, unrelatedScore, 15)
}

func TestScoreShortTexts(t *testing.T) {
	// Fewer than three tokens on either side must not panic; the n-gram
	// metric simply contributes zero.
	score := Score("hi there", "hi there now")
	assert.GreaterOrEqual(t, score, 0)
	assert.LessOrEqual(t, score, 100)
}

func TestDefaultConfigWeightsSumToOne(t *testing.T) {
	c := DefaultConfig()
	sum := c.JaccardWeight + c.CosineWeight + c.NgramWeight + c.CharacterWeight + c.LCSWeight
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Equal(t, 30, c.Threshold)
}

func TestDetailedScoreIdenticalTexts(t *testing.T) {
	text := "Explain recursion to a five year old using an everyday analogy."
	detail := DetailedScore(text, text)

	assert.Equal(t, 100, detail.Overall)
	assert.Equal(t, 100, detail.Breakdown.Jaccard)
	assert.Equal(t, 100, detail.Breakdown.Cosine)
	assert.Equal(t, 100, detail.Breakdown.Character)
	assert.Equal(t, 100, detail.Breakdown.LCS)
}

func TestDetailedScoreBreakdownBounds(t *testing.T) {
	a := "Draft an onboarding email for new engineering hires."
	b := "Draft a welcome email for new marketing hires."
	detail := DetailedScore(a, b)

	for name, v := range map[string]int{
		"overall":   detail.Overall,
		"jaccard":   detail.Breakdown.Jaccard,
		"cosine":    detail.Breakdown.Cosine,
		"ngram":     detail.Breakdown.Ngram,
		"character": detail.Breakdown.Character,
		"lcs":       detail.Breakdown.LCS,
	} {
		assert.GreaterOrEqual(t, v, 0, name)
		assert.LessOrEqual(t, v, 100, name)
	}
}
