package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"gcs-tracker/internal/gcs"
	"gcs-tracker/internal/models"
	"gcs-tracker/internal/store"
	"gcs-tracker/internal/utils"
)

type CreateScoreRequest struct {
	EyeScore    *int       `json:"eye_score"`
	VerbalScore *int       `json:"verbal_score"`
	MotorScore  *int       `json:"motor_score"`
	Notes       *string    `json:"notes"`
	Timestamp   *time.Time `json:"timestamp"`
}

// ScoreResponse carries the created assessment together with its severity
// label so the UI never recomputes the interpretation.
type ScoreResponse struct {
	Assessment models.Assessment `json:"assessment"`
	TotalScore int               `json:"total_score"`
	Severity   gcs.Severity      `json:"severity"`
}

// CreateScore appends a GCS assessment to a patient's history. The total is
// always recomputed server-side.
func (h *Handler) CreateScore(c *gin.Context) {
	id, ok := patientIDParam(c)
	if !ok {
		return
	}

	var req CreateScoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// A missing component is an invalid score, not a silently accepted zero.
	if req.EyeScore == nil || req.VerbalScore == nil || req.MotorScore == nil {
		err := fmt.Errorf("%w: eye_score, verbal_score and motor_score are required", gcs.ErrInvalidComponentScore)
		h.respondError(c, err, "Failed to save GCS score")
		return
	}

	in := models.AssessmentInput{
		EyeScore:    *req.EyeScore,
		VerbalScore: *req.VerbalScore,
		MotorScore:  *req.MotorScore,
		Notes:       req.Notes,
	}
	if req.Timestamp != nil {
		in.Timestamp = *req.Timestamp
	}

	created, err := h.records.Append(c.Request.Context(), id, in)
	if err != nil {
		h.respondError(c, err, "Failed to save GCS score")
		return
	}

	c.JSON(http.StatusOK, ScoreResponse{
		Assessment: created,
		TotalScore: created.TotalScore,
		Severity:   gcs.ClassifySeverity(created.TotalScore),
	})
}

// ListScores returns a patient's assessments latest-first for tabular
// display.
func (h *Handler) ListScores(c *gin.Context) {
	id, ok := patientIDParam(c)
	if !ok {
		return
	}

	history, err := h.records.HistoryFor(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to load GCS scores")
		return
	}

	// The store keeps chronological order; the table wants newest on top.
	reversed := make([]models.Assessment, len(history))
	for i, a := range history {
		reversed[len(history)-1-i] = a
	}
	c.JSON(http.StatusOK, reversed)
}

// TrendSummary aggregates a patient's history for the chart header.
type TrendSummary struct {
	Count          int          `json:"count"`
	AverageTotal   float64      `json:"average_total"`
	StdDevTotal    float64      `json:"std_dev_total"`
	LatestSeverity gcs.Severity `json:"latest_severity,omitempty"`
}

// TrendsResponse carries the chronological history plus its summary.
type TrendsResponse struct {
	History []models.Assessment `json:"history"`
	Summary TrendSummary        `json:"summary"`
}

// GetTrends returns a patient's assessments oldest-first for the trend
// chart, together with aggregate stats over the totals.
func (h *Handler) GetTrends(c *gin.Context) {
	id, ok := patientIDParam(c)
	if !ok {
		return
	}

	history, err := h.records.HistoryFor(c.Request.Context(), id)
	if err != nil {
		h.respondError(c, err, "Failed to load GCS trends")
		return
	}

	totals := make([]int, len(history))
	for i, a := range history {
		totals[i] = a.TotalScore
	}

	summary := TrendSummary{Count: len(history)}
	summary.AverageTotal, summary.StdDevTotal = utils.CalculateStats(utils.TotalsOf(totals))
	if latest := store.Latest(history); latest != nil {
		summary.LatestSeverity = gcs.ClassifySeverity(latest.TotalScore)
	}

	c.JSON(http.StatusOK, TrendsResponse{History: history, Summary: summary})
}
