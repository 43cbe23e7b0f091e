package similarity

import (
	"time"

	"github.com/raohamdcreator-bit/verity/internal/models"
)

const (
	highRiskThreshold   = 70
	mediumRiskThreshold = 50
)

// GenerateReport partitions matches into risk tiers for one target item.
// Matches scoring >= 70 are high risk, 50–69 medium, everything below low.
// The report's risk level is the highest non-empty tier and the timestamp
// is capture time.
func GenerateReport(target models.PromptItem, matches []models.ItemMatch) models.PlagiarismReport {
	report := models.PlagiarismReport{
		TargetItem:        target,
		TotalMatches:      len(matches),
		HighRiskMatches:   []models.ItemMatch{},
		MediumRiskMatches: []models.ItemMatch{},
		LowRiskMatches:    []models.ItemMatch{},
		Timestamp:         time.Now().UTC(),
	}

	for _, m := range matches {
		switch {
		case m.Similarity >= highRiskThreshold:
			report.HighRiskMatches = append(report.HighRiskMatches, m)
		case m.Similarity >= mediumRiskThreshold:
			report.MediumRiskMatches = append(report.MediumRiskMatches, m)
		default:
			report.LowRiskMatches = append(report.LowRiskMatches, m)
		}
	}

	switch {
	case len(report.HighRiskMatches) > 0:
		report.RiskLevel = models.RiskHigh
	case len(report.MediumRiskMatches) > 0:
		report.RiskLevel = models.RiskMedium
	default:
		report.RiskLevel = models.RiskLow
	}

	return report
}
