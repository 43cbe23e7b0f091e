package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/raohamdcreator-bit/verity/internal/config"
	"github.com/raohamdcreator-bit/verity/internal/metrics"
	"github.com/raohamdcreator-bit/verity/internal/models"
	"github.com/raohamdcreator-bit/verity/internal/repository"
	"github.com/raohamdcreator-bit/verity/internal/scan"
	"github.com/raohamdcreator-bit/verity/internal/similarity"
	"github.com/raohamdcreator-bit/verity/internal/stream"
	"github.com/rs/zerolog/log"
)

// Handler holds dependencies for handlers
type Handler struct {
	cfg         *config.Config
	itemsRepo   *repository.ItemsRepository
	reportsRepo *repository.ReportsRepository
	status      scan.StatusTracker
	publisher   *stream.Publisher
	engine      similarity.Config
}

// NewHandler creates a new handler
func NewHandler(
	cfg *config.Config,
	itemsRepo *repository.ItemsRepository,
	reportsRepo *repository.ReportsRepository,
	status scan.StatusTracker,
	publisher *stream.Publisher,
) *Handler {
	return &Handler{
		cfg:         cfg,
		itemsRepo:   itemsRepo,
		reportsRepo: reportsRepo,
		status:      status,
		publisher:   publisher,
		engine:      similarity.DefaultConfig(),
	}
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
	})
}

// Compare scores two texts synchronously and returns the per-metric breakdown.
func (h *Handler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	textA := req.TextA
	textB := req.TextB
	if req.Language != "" {
		textA = similarity.StripComments(textA, req.Language)
		textB = similarity.StripComments(textB, req.Language)
	}

	metrics.ComparisonsTotal.Inc()
	c.JSON(http.StatusOK, h.engine.DetailedScore(textA, textB))
}

// Phrases returns the word sequences two texts share, as match evidence.
func (h *Handler) Phrases(c *gin.Context) {
	var req models.PhrasesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	phrases := similarity.CommonPhrases(req.TextA, req.TextB, req.MinLength)
	c.JSON(http.StatusOK, models.PhrasesResponse{Phrases: phrases})
}

// Scan enqueues a full library scan for a team and returns 202 immediately;
// the stream consumer picks the request up off the request path.
func (h *Handler) Scan(c *gin.Context) {
	var req models.ScanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	ctx := c.Request.Context()

	count, err := h.itemsRepo.CountItemsByTeamID(ctx, req.TeamID)
	if err != nil {
		log.Error().Err(err).Str("teamId", req.TeamID).Msg("Failed to count items")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to check team library",
			Code:  "INTERNAL_ERROR",
		})
		return
	}
	if count == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "No items found for teamId",
			Code:  "TEAM_NOT_FOUND",
		})
		return
	}

	step, err := h.status.Get(ctx, req.TeamID)
	if err != nil {
		log.Warn().Err(err).Str("teamId", req.TeamID).Msg("Failed to read scan status")
	}
	if step == models.StepQueued || step == models.StepScanning || step == models.StepReporting {
		c.JSON(http.StatusConflict, models.ErrorResponse{
			Error: "A scan is already in progress for this team",
			Code:  "SCAN_IN_PROGRESS",
		})
		return
	}

	scanID := uuid.New().String()
	event := &stream.ScanEvent{
		TeamID:      req.TeamID,
		ScanID:      scanID,
		RequestedBy: req.RequestedBy,
	}
	if err := h.publisher.PublishScanRequest(ctx, event); err != nil {
		log.Error().Err(err).Str("teamId", req.TeamID).Msg("Failed to publish scan request")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to enqueue scan",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	if err := h.status.Update(ctx, req.TeamID, models.StepQueued); err != nil {
		log.Warn().Err(err).Str("teamId", req.TeamID).Msg("Failed to update queued status")
	}

	c.JSON(http.StatusAccepted, models.ScanResponse{
		Step:   models.StepQueued,
		TeamID: req.TeamID,
		ScanID: scanID,
	})
}

// ScanStatus reports the current scan step for a team.
func (h *Handler) ScanStatus(c *gin.Context) {
	teamID := c.Param("teamId")
	if teamID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "teamId is required",
			Code:  "INVALID_TEAM_ID",
		})
		return
	}

	step, err := h.status.Get(c.Request.Context(), teamID)
	if err != nil {
		log.Error().Err(err).Str("teamId", teamID).Msg("Failed to read scan status")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to read scan status",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"teamId": teamID,
		"step":   step,
	})
}

// Reports returns the latest finished scan for a team with its per-item
// plagiarism reports.
func (h *Handler) Reports(c *gin.Context) {
	teamID := c.Param("teamId")
	if teamID == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "teamId is required",
			Code:  "INVALID_TEAM_ID",
		})
		return
	}

	ctx := c.Request.Context()

	summary, err := h.reportsRepo.GetLatestSummaryByTeamID(ctx, teamID)
	if err != nil {
		log.Error().Err(err).Str("teamId", teamID).Msg("Failed to load scan summary")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load scan summary",
			Code:  "INTERNAL_ERROR",
		})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: "No scans found for teamId",
			Code:  "SCAN_NOT_FOUND",
		})
		return
	}

	reports, err := h.reportsRepo.GetReportsByScanID(ctx, summary.ScanID)
	if err != nil {
		log.Error().Err(err).Str("scanId", summary.ScanID).Msg("Failed to load reports")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load reports",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"reports": reports,
	})
}

// Match compares an ad-hoc text against a team's whole library and returns
// a plagiarism report for it.
func (h *Handler) Match(c *gin.Context) {
	var req struct {
		TeamID string `json:"teamId" binding:"required"`
		Text   string `json:"text" binding:"required"`
		Title  string `json:"title"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: "Invalid request body",
			Code:  "INVALID_REQUEST",
		})
		return
	}

	ctx := c.Request.Context()

	corpus, err := h.itemsRepo.GetItemsByTeamID(ctx, req.TeamID)
	if err != nil {
		log.Error().Err(err).Str("teamId", req.TeamID).Msg("Failed to load items")
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "Failed to load team library",
			Code:  "INTERNAL_ERROR",
		})
		return
	}

	matches, err := h.engine.FindSimilarItems(ctx, req.Text, corpus, 0)
	if err != nil {
		c.JSON(http.StatusRequestTimeout, models.ErrorResponse{
			Error: "Request cancelled",
			Code:  "REQUEST_TIMEOUT",
		})
		return
	}

	target := models.PromptItem{
		TeamID: req.TeamID,
		Title:  req.Title,
		Text:   req.Text,
	}
	c.JSON(http.StatusOK, similarity.GenerateReport(target, matches))
}
