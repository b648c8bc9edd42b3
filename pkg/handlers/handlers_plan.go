package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/arnavshah/capacity-planner-api/pkg/capacity"
	"github.com/arnavshah/capacity-planner-api/pkg/database"
	"github.com/arnavshah/capacity-planner-api/pkg/models"
	"github.com/arnavshah/capacity-planner-api/pkg/obs"
	"github.com/gin-gonic/gin"
)

// Version is reported by the index route
const Version = "1.0.0"

// bindPlan reads a PlanRequest, applies the collector rules and calculates it.
// It writes the error response itself and returns ok=false on failure.
func (h *Handler) bindPlan(c *gin.Context) (models.PlanningInput, models.CalculationResult, bool) {
	var req models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return models.PlanningInput{}, models.CalculationResult{}, false
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date and end_date are required"})
		return models.PlanningInput{}, models.CalculationResult{}, false
	}

	in := capacity.Normalize(req.PlanningInput, req.Moved)

	days := capacity.CalendarDays(in.StartDate, in.EndDate)
	if h.Config.MaxRangeDays > 0 && days > h.Config.MaxRangeDays {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": fmt.Sprintf("date range of %d days exceeds the limit of %d", days, h.Config.MaxRangeDays),
		})
		return models.PlanningInput{}, models.CalculationResult{}, false
	}

	if !h.recordUsage(c, days, in.TargetVolume) {
		return models.PlanningInput{}, models.CalculationResult{}, false
	}
	return in, h.calculate(c, in), true
}

func (h *Handler) calculate(c *gin.Context, in models.PlanningInput) models.CalculationResult {
	if res, ok := h.results.Get(in); ok {
		return res
	}

	var err error
	done := obs.Time(c.Request.Context(), "plan.calculate")
	res := capacity.Calculate(in)
	done(&err)

	h.results.Put(in, res)
	return res
}

// recordUsage counts this request against the caller's daily limit.
// It writes a 429 and returns false once the limit is used up; storage failures are logged only.
func (h *Handler) recordUsage(c *gin.Context, days int, units float64) bool {
	apiKeyRaw, exists := c.Get(ctxAPIKey)
	if !exists {
		return true
	}
	apiKey := apiKeyRaw.(*database.APIKey)

	err := database.RecordUsage(c.Request.Context(), h.DB, apiKey.ID, apiKey.RateLimit, days, units)
	if errors.Is(err, database.ErrRateLimited) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "Daily rate limit exceeded"})
		return false
	}
	if err != nil {
		log.Printf("req_id=%s usage not recorded: %v", obs.RequestID(c.Request.Context()), err)
	}
	return true
}

// Plan calculates the workload metrics and timeline for a project
func (h *Handler) Plan(c *gin.Context) {
	in, res, ok := h.bindPlan(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, models.PlanResponse{
		Input:   in,
		Result:  res,
		Summary: capacity.Summarize(in, res),
	})
}

// PlanHeatmap returns the timeline laid out as a Monday-first week grid
func (h *Handler) PlanHeatmap(c *gin.Context) {
	_, res, ok := h.bindPlan(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, capacity.BuildHeatmap(res.DailyTimeline))
}

// PlanCSV exports the timeline as CSV; ?download=1 returns it as a file
func (h *Handler) PlanCSV(c *gin.Context) {
	in, res, ok := h.bindPlan(c)
	if !ok {
		return
	}

	var out strings.Builder
	if err := capacity.WriteTimelineCSV(&out, res.DailyTimeline); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not export timeline"})
		return
	}

	if c.Query("download") == "1" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="timeline_%s_%s.csv"`, in.StartDate, in.EndDate))
		c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(out.String()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"csv": out.String()})
}
