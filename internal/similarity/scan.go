package similarity

import (
	"context"
	"sort"

	"github.com/raohamdcreator-bit/verity/internal/models"
)

// FindAllSimilarPairs scans items with the default configuration.
func FindAllSimilarPairs(ctx context.Context, items []models.PromptItem, threshold int) ([]models.SimilarPair, error) {
	return DefaultConfig().FindAllSimilarPairs(ctx, items, threshold)
}

// FindAllSimilarPairs scores every unordered pair (i, j), i < j, exactly
// once and keeps pairs at or above threshold, sorted descending by score.
// Equal scores keep pair-generation order. The scan is O(n²) comparisons;
// the context is checked between outer iterations so a caller can abort a
// large collection early. A threshold <= 0 uses the configured default.
func (c Config) FindAllSimilarPairs(ctx context.Context, items []models.PromptItem, threshold int) ([]models.SimilarPair, error) {
	if threshold <= 0 {
		threshold = c.Threshold
	}

	pairs := make([]models.SimilarPair, 0)
	for i := 0; i < len(items); i++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		for j := i + 1; j < len(items); j++ {
			score := c.Score(items[i].Text, items[j].Text)
			if score >= threshold {
				pairs = append(pairs, models.SimilarPair{
					Item1:      items[i],
					Item2:      items[j],
					Similarity: score,
				})
			}
		}
	}

	sort.SliceStable(pairs, func(i, j int) bool {
		return pairs[i].Similarity > pairs[j].Similarity
	})

	return pairs, nil
}

// FindSimilarItems matches a target text against a corpus with the default
// configuration.
func FindSimilarItems(ctx context.Context, target string, corpus []models.PromptItem, threshold int) ([]models.ItemMatch, error) {
	return DefaultConfig().FindSimilarItems(ctx, target, corpus, threshold)
}

// FindSimilarItems compares target against every corpus item, keeps matches
// at or above threshold and sorts them descending by similarity. The caller
// is responsible for excluding the target item itself from corpus.
func (c Config) FindSimilarItems(ctx context.Context, target string, corpus []models.PromptItem, threshold int) ([]models.ItemMatch, error) {
	if threshold <= 0 {
		threshold = c.Threshold
	}

	matches := make([]models.ItemMatch, 0)
	for _, item := range corpus {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		score := c.Score(target, item.Text)
		if score >= threshold {
			matches = append(matches, models.ItemMatch{Item: item, Similarity: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Similarity > matches[j].Similarity
	})

	return matches, nil
}
