package models

import (
	"time"
)

// RiskLevel buckets a match or a whole report by similarity score.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// SimilarityBreakdown holds the five per-metric scores, each in [0,100].
type SimilarityBreakdown struct {
	Jaccard   int `bson:"jaccard" json:"jaccard"`
	Cosine    int `bson:"cosine" json:"cosine"`
	Ngram     int `bson:"ngram" json:"ngram"`
	Character int `bson:"character" json:"character"`
	LCS       int `bson:"lcs" json:"lcs"`
}

// DetailedSimilarity is the per-metric drill-down for a single pair.
type DetailedSimilarity struct {
	Overall   int                 `bson:"overall" json:"overall"`
	Breakdown SimilarityBreakdown `bson:"breakdown" json:"breakdown"`
}

// SimilarPair is an unordered pair of items with their similarity score.
type SimilarPair struct {
	Item1      PromptItem `bson:"item1" json:"item1"`
	Item2      PromptItem `bson:"item2" json:"item2"`
	Similarity int        `bson:"similarity" json:"similarity"`
}

// ItemMatch is a corpus item paired with its similarity to a target text.
type ItemMatch struct {
	Item       PromptItem `bson:"item" json:"item"`
	Similarity int        `bson:"similarity" json:"similarity"`
}

// PlagiarismReport summarizes the matches found for one target item,
// bucketed into risk tiers.
type PlagiarismReport struct {
	TargetItem        PromptItem  `bson:"targetItem" json:"targetItem"`
	TotalMatches      int         `bson:"totalMatches" json:"totalMatches"`
	RiskLevel         RiskLevel   `bson:"riskLevel" json:"riskLevel"`
	HighRiskMatches   []ItemMatch `bson:"highRiskMatches" json:"highRiskMatches"`
	MediumRiskMatches []ItemMatch `bson:"mediumRiskMatches" json:"mediumRiskMatches"`
	LowRiskMatches    []ItemMatch `bson:"lowRiskMatches" json:"lowRiskMatches"`
	Timestamp         time.Time   `bson:"timestamp" json:"timestamp"`
}

// StoredReport wraps a PlagiarismReport with the scan it belongs to for persistence.
type StoredReport struct {
	ScanID    string           `bson:"scanId" json:"scanId"`
	TeamID    string           `bson:"teamId" json:"teamId"`
	Report    PlagiarismReport `bson:"report" json:"report"`
	CreatedAt time.Time        `bson:"createdAt" json:"createdAt"`
}

// ScanSummary is the per-scan roll-up stored alongside the item reports.
type ScanSummary struct {
	ScanID       string    `bson:"scanId" json:"scanId"`
	TeamID       string    `bson:"teamId" json:"teamId"`
	Status       string    `bson:"status" json:"status"` // pending, completed, failed
	Risk         RiskLevel `bson:"risk,omitempty" json:"risk,omitempty"`
	TotalItems   int       `bson:"totalItems" json:"totalItems"`
	FlaggedItems int       `bson:"flaggedItems" json:"flaggedItems"`
	TotalPairs   int       `bson:"totalPairs" json:"totalPairs"`
	CreatedAt    time.Time `bson:"createdAt" json:"createdAt"`
}
