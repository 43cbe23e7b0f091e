// Package scan runs team-wide similarity scans off the request path. The
// similarity engine stays pure; everything here that touches Mongo, Redis or
// goroutines is service plumbing around it.
package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/raohamdcreator-bit/verity/internal/metrics"
	"github.com/raohamdcreator-bit/verity/internal/models"
	"github.com/raohamdcreator-bit/verity/internal/similarity"
	"github.com/rs/zerolog/log"
)

// ItemsSource supplies a team's prompt library.
type ItemsSource interface {
	GetItemsByTeamID(ctx context.Context, teamID string) ([]models.PromptItem, error)
}

// ReportsSink persists finished scan output.
type ReportsSink interface {
	InsertReport(ctx context.Context, report *models.StoredReport) error
	InsertScanSummary(ctx context.Context, summary *models.ScanSummary) error
	UpdateScanSummary(ctx context.Context, scanID string, summary *models.ScanSummary) error
}

// Service orchestrates a full library scan: load items, score all pairs
// across the worker pool, bucket matches into per-item reports and persist
// the results.
type Service struct {
	items   ItemsSource
	reports ReportsSink
	status  StatusTracker
	pool    *WorkerPool
	engine  similarity.Config
	sem     chan struct{} // bounds concurrent scans
	timeout time.Duration
}

func NewService(items ItemsSource, reports ReportsSink, status StatusTracker, pool *WorkerPool, maxConcurrent int, timeout time.Duration) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 1
	}
	return &Service{
		items:   items,
		reports: reports,
		status:  status,
		pool:    pool,
		engine:  similarity.DefaultConfig(),
		sem:     make(chan struct{}, maxConcurrent),
		timeout: timeout,
	}
}

// RunScan executes one scan request end to end. Errors are also reflected in
// the stored summary and the team's scan status.
func (s *Service) RunScan(ctx context.Context, teamID, scanID string) error {
	select {
	case s.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-s.sem }()

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	started := time.Now()

	if err := s.status.Update(ctx, teamID, models.StepScanning); err != nil {
		log.Warn().Err(err).Str("teamId", teamID).Msg("Failed to update scanning status")
	}

	summary := &models.ScanSummary{
		ScanID: scanID,
		TeamID: teamID,
		Status: "pending",
	}
	if err := s.reports.InsertScanSummary(ctx, summary); err != nil {
		log.Error().Err(err).Str("teamId", teamID).Msg("Failed to create pending summary")
	}

	err := s.runScan(ctx, teamID, scanID, summary)
	if err != nil {
		summary.Status = "failed"
		if updateErr := s.reports.UpdateScanSummary(ctx, scanID, summary); updateErr != nil {
			log.Error().Err(updateErr).Str("scanId", scanID).Msg("Failed to mark summary failed")
		}
		if statusErr := s.status.Update(ctx, teamID, models.StepFailed); statusErr != nil {
			log.Warn().Err(statusErr).Str("teamId", teamID).Msg("Failed to update failed status")
		}
		metrics.ScansTotal.WithLabelValues("failed").Inc()
		return err
	}

	if statusErr := s.status.Update(ctx, teamID, models.StepCompleted); statusErr != nil {
		log.Warn().Err(statusErr).Str("teamId", teamID).Msg("Failed to update completed status")
	}
	metrics.ScansTotal.WithLabelValues("completed").Inc()
	metrics.ScanDuration.Observe(time.Since(started).Seconds())

	return nil
}

func (s *Service) runScan(ctx context.Context, teamID, scanID string, summary *models.ScanSummary) error {
	items, err := s.items.GetItemsByTeamID(ctx, teamID)
	if err != nil {
		log.Error().Err(err).Str("teamId", teamID).Msg("Failed to load items")
		return fmt.Errorf("failed to load items: %w", err)
	}

	if len(items) == 0 {
		return fmt.Errorf("no items found for teamId: %s", teamID)
	}

	summary.TotalItems = len(items)

	// Edge case: a single item has nothing to match against.
	if len(items) == 1 {
		return s.handleSingleItem(ctx, items[0], teamID, scanID, summary)
	}

	pairs, err := s.scorePairs(ctx, items)
	if err != nil {
		return err
	}

	if err := s.status.Update(ctx, teamID, models.StepReporting); err != nil {
		log.Warn().Err(err).Str("teamId", teamID).Msg("Failed to update reporting status")
	}

	// Distribute each qualifying pair to both of its items.
	matchesByItem := make(map[string][]models.ItemMatch)
	for _, pair := range pairs {
		matchesByItem[pair.Item1.ID] = append(matchesByItem[pair.Item1.ID], models.ItemMatch{
			Item:       pair.Item2,
			Similarity: pair.Similarity,
		})
		matchesByItem[pair.Item2.ID] = append(matchesByItem[pair.Item2.ID], models.ItemMatch{
			Item:       pair.Item1,
			Similarity: pair.Similarity,
		})
	}

	worstRisk := models.RiskLow
	flagged := 0
	for _, item := range items {
		matches := matchesByItem[item.ID]
		report := similarity.GenerateReport(item, matches)

		if len(matches) > 0 {
			flagged++
		}
		worstRisk = maxRisk(worstRisk, report.RiskLevel)

		stored := &models.StoredReport{
			ScanID: scanID,
			TeamID: teamID,
			Report: report,
		}
		if err := s.reports.InsertReport(ctx, stored); err != nil {
			return fmt.Errorf("failed to insert report: %w", err)
		}
	}

	summary.Status = "completed"
	summary.Risk = worstRisk
	summary.FlaggedItems = flagged
	summary.TotalPairs = len(pairs)
	if err := s.reports.UpdateScanSummary(ctx, scanID, summary); err != nil {
		return fmt.Errorf("failed to update scan summary: %w", err)
	}

	log.Info().
		Str("teamId", teamID).
		Str("scanId", scanID).
		Int("items", len(items)).
		Int("flagged", flagged).
		Int("pairs", len(pairs)).
		Str("risk", string(worstRisk)).
		Msg("Scan completed")

	return nil
}

func (s *Service) handleSingleItem(ctx context.Context, item models.PromptItem, teamID, scanID string, summary *models.ScanSummary) error {
	report := similarity.GenerateReport(item, nil)
	stored := &models.StoredReport{
		ScanID: scanID,
		TeamID: teamID,
		Report: report,
	}
	if err := s.reports.InsertReport(ctx, stored); err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	summary.Status = "completed"
	summary.Risk = models.RiskLow
	if err := s.reports.UpdateScanSummary(ctx, scanID, summary); err != nil {
		return fmt.Errorf("failed to update scan summary: %w", err)
	}

	log.Debug().Str("teamId", teamID).Msg("Handled single item case")

	return nil
}

// scorePairs fans all unordered pairs out across the worker pool and gathers
// the ones at or above the engine threshold.
func (s *Service) scorePairs(ctx context.Context, items []models.PromptItem) ([]models.SimilarPair, error) {
	total := len(items) * (len(items) - 1) / 2
	resultChan := make(chan models.SimilarPair, total)

	for i := 0; i < len(items); i++ {
		for j := i + 1; j < len(items); j++ {
			job := &comparisonJob{
				itemA:      items[i],
				itemB:      items[j],
				engine:     s.engine,
				resultChan: resultChan,
			}
			if err := s.pool.Submit(job); err != nil {
				return nil, fmt.Errorf("failed to submit comparison job: %w", err)
			}
		}
	}

	pairs := make([]models.SimilarPair, 0)
	for received := 0; received < total; received++ {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case pair := <-resultChan:
			if pair.Similarity >= s.engine.Threshold {
				pairs = append(pairs, pair)
			}
		}
	}

	return pairs, nil
}

type comparisonJob struct {
	itemA      models.PromptItem
	itemB      models.PromptItem
	engine     similarity.Config
	resultChan chan<- models.SimilarPair
}

func (j *comparisonJob) Execute(ctx context.Context) error {
	var score int
	if j.itemA.Language != "" && j.itemA.Language == j.itemB.Language {
		score = j.engine.ScoreCode(j.itemA.Text, j.itemB.Text, j.itemA.Language)
	} else {
		score = j.engine.Score(j.itemA.Text, j.itemB.Text)
	}
	metrics.PairsScored.Inc()

	pair := models.SimilarPair{
		Item1:      j.itemA,
		Item2:      j.itemB,
		Similarity: score,
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case j.resultChan <- pair:
		return nil
	}
}

func maxRisk(a, b models.RiskLevel) models.RiskLevel {
	rank := map[models.RiskLevel]int{
		models.RiskLow:    0,
		models.RiskMedium: 1,
		models.RiskHigh:   2,
	}
	if rank[b] > rank[a] {
		return b
	}
	return a
}
