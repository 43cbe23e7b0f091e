package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/raohamdcreator-bit/verity/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	reportsCollection   = "plagiarism_reports"
	summariesCollection = "scan_summaries"
)

// ReportsRepository persists the output of finished scans.
type ReportsRepository struct {
	mongoRepo *MongoRepository
}

func NewReportsRepository(mongoRepo *MongoRepository) *ReportsRepository {
	return &ReportsRepository{
		mongoRepo: mongoRepo,
	}
}

func (r *ReportsRepository) InsertReport(ctx context.Context, report *models.StoredReport) error {
	report.CreatedAt = time.Now()

	if err := r.mongoRepo.InsertOne(ctx, reportsCollection, report); err != nil {
		return fmt.Errorf("failed to insert report: %w", err)
	}

	return nil
}

func (r *ReportsRepository) InsertScanSummary(ctx context.Context, summary *models.ScanSummary) error {
	summary.CreatedAt = time.Now()

	if err := r.mongoRepo.InsertOne(ctx, summariesCollection, summary); err != nil {
		return fmt.Errorf("failed to insert scan summary: %w", err)
	}

	return nil
}

func (r *ReportsRepository) UpdateScanSummary(ctx context.Context, scanID string, summary *models.ScanSummary) error {
	filter := bson.M{"scanId": scanID}
	update := bson.M{"$set": bson.M{
		"status":       summary.Status,
		"risk":         summary.Risk,
		"totalItems":   summary.TotalItems,
		"flaggedItems": summary.FlaggedItems,
		"totalPairs":   summary.TotalPairs,
	}}

	if err := r.mongoRepo.UpdateOne(ctx, summariesCollection, filter, update); err != nil {
		return fmt.Errorf("failed to update scan summary: %w", err)
	}

	return nil
}

func (r *ReportsRepository) GetLatestSummaryByTeamID(ctx context.Context, teamID string) (*models.ScanSummary, error) {
	filter := bson.M{"teamId": teamID}
	opts := options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	var summary models.ScanSummary
	err := r.mongoRepo.FindOne(ctx, summariesCollection, filter, opts).Decode(&summary)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find scan summary: %w", err)
	}

	return &summary, nil
}

func (r *ReportsRepository) GetReportsByScanID(ctx context.Context, scanID string) ([]models.StoredReport, error) {
	filter := bson.M{"scanId": scanID}

	cursor, err := r.mongoRepo.FindMany(ctx, reportsCollection, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to find reports: %w", err)
	}
	defer cursor.Close(ctx)

	var reports []models.StoredReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, fmt.Errorf("failed to decode reports: %w", err)
	}

	return reports, nil
}
