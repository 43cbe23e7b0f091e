package models

import (
	"time"
)

type Step string

const (
	StepIdle      Step = "idle"
	StepQueued    Step = "queued"
	StepScanning  Step = "scanning"
	StepReporting Step = "reporting"
	StepCompleted Step = "completed"
	StepFailed    Step = "failed"
)

// ItemType distinguishes stored prompts from AI-generated results.
type ItemType string

const (
	ItemTypePrompt ItemType = "prompt"
	ItemTypeResult ItemType = "result"
)

// PromptItem is a single piece of team content as stored in MongoDB.
// The similarity engine treats items as read-only input and never writes them.
type PromptItem struct {
	ID        string    `bson:"_id" json:"id"`
	TeamID    string    `bson:"teamId" json:"teamId"`
	Title     string    `bson:"title" json:"title"`
	Text      string    `bson:"text" json:"text"`
	Type      ItemType  `bson:"type" json:"type"`
	Language  string    `bson:"language,omitempty" json:"language,omitempty"`
	Tags      []string  `bson:"tags" json:"tags"`
	CreatedBy string    `bson:"createdBy" json:"createdBy"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// ScanRequest represents a request to scan a team's library
type ScanRequest struct {
	TeamID      string `json:"teamId" binding:"required"`
	RequestedBy string `json:"requestedBy"`
}

// ScanResponse represents the response from the scan endpoint
type ScanResponse struct {
	Step   Step   `json:"step"`
	TeamID string `json:"teamId"`
	ScanID string `json:"scanId"`
}

// CompareRequest represents a direct two-text comparison request
type CompareRequest struct {
	TextA    string `json:"textA" binding:"required"`
	TextB    string `json:"textB" binding:"required"`
	Language string `json:"language,omitempty"`
}

// PhrasesRequest represents a shared-phrase extraction request
type PhrasesRequest struct {
	TextA     string `json:"textA" binding:"required"`
	TextB     string `json:"textB" binding:"required"`
	MinLength int    `json:"minLength,omitempty"`
}

// PhrasesResponse carries the shared phrases for a pair of texts
type PhrasesResponse struct {
	Phrases []string `json:"phrases"`
}

// ErrorResponse represents a standard error response
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
