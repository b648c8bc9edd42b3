package handlers

import (
	"net/http"

	"github.com/arnavshah/capacity-planner-api/pkg/capacity"
	"github.com/arnavshah/capacity-planner-api/pkg/models"
	"github.com/gin-gonic/gin"
)

// ValidateInput reports semantic problems with a planning input without calculating it
func (h *Handler) ValidateInput(c *gin.Context) {
	var input models.PlanningInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"valid": false,
			"error": err.Error(),
		})
		return
	}

	issues := capacity.Validate(input, h.Config.MaxRangeDays)
	if issues == nil {
		issues = []models.Issue{}
	}

	calendarDays, workDays := 0, 0
	if !input.StartDate.IsZero() && !input.EndDate.IsZero() {
		calendarDays = capacity.CalendarDays(input.StartDate, input.EndDate)
		workDays = capacity.CountWorkDays(input.StartDate, input.EndDate)
	}

	c.JSON(http.StatusOK, gin.H{
		"valid":  len(issues) == 0,
		"issues": issues,
		"stats": gin.H{
			"calendar_days": calendarDays,
			"work_days":     workDays,
		},
	})
}
