package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gcs-tracker/internal/gcs"
	"gcs-tracker/internal/utils"
)

// DashboardResponse summarizes the ward at a glance: patient and assessment
// counts, severity distribution over each patient's latest assessment and
// aggregate statistics over the latest totals.
type DashboardResponse struct {
	TotalPatients    int                  `json:"total_patients"`
	TotalAssessments int                  `json:"total_assessments"`
	SeverityCounts   map[gcs.Severity]int `json:"severity_counts"`
	AverageTotal     float64              `json:"average_total"`
	StdDevTotal      float64              `json:"std_dev_total"`
}

func (h *Handler) GetDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	patients, err := h.dir.List(ctx)
	if err != nil {
		h.respondError(c, err, "Failed to load dashboard")
		return
	}

	resp := DashboardResponse{
		TotalPatients: len(patients),
		SeverityCounts: map[gcs.Severity]int{
			gcs.SeverityMild:     0,
			gcs.SeverityModerate: 0,
			gcs.SeveritySevere:   0,
		},
	}

	var latestTotals []int
	for _, p := range patients {
		history, err := h.records.HistoryFor(ctx, p.ID)
		if err != nil {
			h.respondError(c, err, "Failed to load dashboard")
			return
		}
		resp.TotalAssessments += len(history)

		latest, err := h.records.LatestFor(ctx, p.ID)
		if err != nil {
			h.respondError(c, err, "Failed to load dashboard")
			return
		}
		if latest != nil {
			resp.SeverityCounts[gcs.ClassifySeverity(latest.TotalScore)]++
			latestTotals = append(latestTotals, latest.TotalScore)
		}
	}

	resp.AverageTotal, resp.StdDevTotal = utils.CalculateStats(utils.TotalsOf(latestTotals))
	c.JSON(http.StatusOK, resp)
}
