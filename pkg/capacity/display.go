package capacity

import (
	"github.com/arnavshah/capacity-planner-api/pkg/models"
)

// Heatmap load levels
const (
	LevelOff      = "off"
	LevelIdle     = "idle"
	LevelLight    = "light"
	LevelOptimal  = "optimal"
	LevelOverload = "overload"
)

// Utilization gauge bands
const (
	StatusOptimal  = "optimal"
	StatusWarning  = "warning"
	StatusCritical = "critical"

	// WarningUtilization is the percentage above which the gauge turns amber
	WarningUtilization = 85.0
)

// LightLoadHours is the upper bound of the light heatmap band
const LightLoadHours = 4.0

// LoadLevel classifies a day for the heatmap
func LoadLevel(day models.DayWorkload) string {
	switch {
	case !day.IsWorkDay:
		return LevelOff
	case day.Hours == 0:
		return LevelIdle
	case day.Hours <= LightLoadHours:
		return LevelLight
	case day.Hours <= ShiftHours:
		return LevelOptimal
	default:
		return LevelOverload
	}
}

// UtilizationStatus classifies a capacity utilization percentage
func UtilizationStatus(pct float64) string {
	switch {
	case pct > 100:
		return StatusCritical
	case pct > WarningUtilization:
		return StatusWarning
	default:
		return StatusOptimal
	}
}

// Summarize builds the display-ready figures shown on the dashboard cards
func Summarize(in models.PlanningInput, res models.CalculationResult) models.Summary {
	loadStatus := "Optimal Load"
	if res.CapacityUtilization > 100 {
		loadStatus = "Critical Overload"
	}

	employees := in.EmployeeCount
	if employees < 1 {
		employees = 1
	}
	shortfall := res.RecommendedStaff - employees
	if shortfall < 0 {
		shortfall = 0
	}

	s := models.Summary{
		ProjectName:        in.ProjectName,
		TeamHoursPerDay:    round1(res.RequiredDailyTeamHours),
		PersonHoursPerDay:  round1(res.RequiredDailyPerPersonHours),
		UtilizationPercent: round1(res.CapacityUtilization),
		UtilizationStatus:  UtilizationStatus(res.CapacityUtilization),
		LoadStatus:         loadStatus,
		RecommendedStaff:   res.RecommendedStaff,
		StaffShortfall:     shortfall,
		NetWorkingDays:     res.NetWorkingDays,
		TotalCalendarDays:  len(res.DailyTimeline),
	}
	if !res.IsFeasible {
		s.OverloadHours = round1(res.OverloadAmount)
	}
	return s
}

// LeadingOffset is the number of blank cells before d in a Monday-first week row
func LeadingOffset(d models.Date) int {
	return (int(d.Weekday()) + 6) % 7
}

// BuildHeatmap lays the timeline out in Monday-first weeks.
// The first week is padded by LeadingOffset; cells are not duplicated or reordered.
func BuildHeatmap(timeline []models.DayWorkload) models.Heatmap {
	hm := models.Heatmap{Weeks: [][]models.HeatmapCell{}}
	if len(timeline) == 0 {
		return hm
	}

	hm.LeadingOffset = LeadingOffset(timeline[0].Date)
	week := make([]models.HeatmapCell, 0, 7)
	slot := hm.LeadingOffset
	for _, day := range timeline {
		week = append(week, models.HeatmapCell{
			Date:      day.Date,
			Day:       day.Date.Time().Day(),
			Hours:     day.Hours,
			IsWorkDay: day.IsWorkDay,
			Level:     LoadLevel(day),
		})
		slot++
		if slot == 7 {
			hm.Weeks = append(hm.Weeks, week)
			week = make([]models.HeatmapCell, 0, 7)
			slot = 0
		}
	}
	if len(week) > 0 {
		hm.Weeks = append(hm.Weeks, week)
	}
	return hm
}
