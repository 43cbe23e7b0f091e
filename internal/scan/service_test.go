package scan

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raohamdcreator-bit/verity/internal/models"
)

type fakeItemsSource struct {
	items []models.PromptItem
	err   error
}

func (f *fakeItemsSource) GetItemsByTeamID(_ context.Context, _ string) ([]models.PromptItem, error) {
	return f.items, f.err
}

type fakeReportsSink struct {
	mu        sync.Mutex
	reports   []*models.StoredReport
	summaries []*models.ScanSummary
	updated   map[string]*models.ScanSummary
}

func newFakeReportsSink() *fakeReportsSink {
	return &fakeReportsSink{updated: make(map[string]*models.ScanSummary)}
}

func (f *fakeReportsSink) InsertReport(_ context.Context, report *models.StoredReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeReportsSink) InsertScanSummary(_ context.Context, summary *models.ScanSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.summaries = append(f.summaries, summary)
	return nil
}

func (f *fakeReportsSink) UpdateScanSummary(_ context.Context, scanID string, summary *models.ScanSummary) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	copied := *summary
	f.updated[scanID] = &copied
	return nil
}

type fakeStatusTracker struct {
	mu    sync.Mutex
	steps []models.Step
}

func (f *fakeStatusTracker) Update(_ context.Context, _ string, step models.Step) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.steps = append(f.steps, step)
	return nil
}

func (f *fakeStatusTracker) Get(_ context.Context, _ string) (models.Step, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.steps) == 0 {
		return models.StepIdle, nil
	}
	return f.steps[len(f.steps)-1], nil
}

func newTestService(t *testing.T, items []models.PromptItem, itemsErr error) (*Service, *fakeReportsSink, *fakeStatusTracker) {
	t.Helper()

	pool := NewWorkerPool(context.Background())
	t.Cleanup(pool.Close)

	sink := newFakeReportsSink()
	status := &fakeStatusTracker{}
	svc := NewService(&fakeItemsSource{items: items, err: itemsErr}, sink, status, pool, 2, 0)
	return svc, sink, status
}

func TestRunScanNoItems(t *testing.T) {
	svc, sink, status := newTestService(t, nil, nil)

	err := svc.RunScan(context.Background(), "team-1", "scan-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no items found")

	require.Contains(t, sink.updated, "scan-1")
	assert.Equal(t, "failed", sink.updated["scan-1"].Status)
	assert.Equal(t, models.StepFailed, status.steps[len(status.steps)-1])
}

func TestRunScanItemsSourceError(t *testing.T) {
	svc, _, _ := newTestService(t, nil, errors.New("mongo down"))

	err := svc.RunScan(context.Background(), "team-1", "scan-1")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load items")
}

func TestRunScanSingleItem(t *testing.T) {
	items := []models.PromptItem{
		{ID: "p1", TeamID: "team-1", Text: "Summarize the following customer feedback"},
	}
	svc, sink, status := newTestService(t, items, nil)

	err := svc.RunScan(context.Background(), "team-1", "scan-1")
	require.NoError(t, err)

	// One clean report, summary completed at low risk.
	require.Len(t, sink.reports, 1)
	assert.Equal(t, models.RiskLow, sink.reports[0].Report.RiskLevel)

	require.Contains(t, sink.updated, "scan-1")
	summary := sink.updated["scan-1"]
	assert.Equal(t, "completed", summary.Status)
	assert.Equal(t, models.RiskLow, summary.Risk)
	assert.Equal(t, 1, summary.TotalItems)

	assert.Equal(t, models.StepCompleted, status.steps[len(status.steps)-1])
}

func TestRunScanFlagsNearDuplicates(t *testing.T) {
	items := []models.PromptItem{
		{ID: "p1", TeamID: "team-1", Text: "Summarize the following customer feedback into key language models"},
		{ID: "p2", TeamID: "team-1", Text: "Summarize the following customer feedback into key language systems"},
		{ID: "p3", TeamID: "team-1", Text: "Suggest a vegetarian dinner recipe using seasonal ingredients"},
	}
	svc, sink, status := newTestService(t, items, nil)

	err := svc.RunScan(context.Background(), "team-1", "scan-1")
	require.NoError(t, err)

	// One report per item.
	require.Len(t, sink.reports, 3)
	reportsByID := make(map[string]models.PlagiarismReport, len(sink.reports))
	for _, r := range sink.reports {
		reportsByID[r.Report.TargetItem.ID] = r.Report
	}

	// The near-duplicate pair shows up on both sides at high risk; the
	// recipe prompt stays clean.
	assert.Equal(t, models.RiskHigh, reportsByID["p1"].RiskLevel)
	assert.Equal(t, models.RiskHigh, reportsByID["p2"].RiskLevel)
	assert.Zero(t, reportsByID["p3"].TotalMatches)

	summary := sink.updated["scan-1"]
	assert.Equal(t, "completed", summary.Status)
	assert.Equal(t, models.RiskHigh, summary.Risk)
	assert.Equal(t, 3, summary.TotalItems)
	assert.Equal(t, 2, summary.FlaggedItems)
	assert.Equal(t, 1, summary.TotalPairs)

	assert.Equal(t, models.StepCompleted, status.steps[len(status.steps)-1])
	assert.Contains(t, status.steps, models.StepScanning)
	assert.Contains(t, status.steps, models.StepReporting)
}

func TestMaxRisk(t *testing.T) {
	assert.Equal(t, models.RiskHigh, maxRisk(models.RiskLow, models.RiskHigh))
	assert.Equal(t, models.RiskHigh, maxRisk(models.RiskHigh, models.RiskMedium))
	assert.Equal(t, models.RiskMedium, maxRisk(models.RiskLow, models.RiskMedium))
	assert.Equal(t, models.RiskLow, maxRisk(models.RiskLow, models.RiskLow))
}
