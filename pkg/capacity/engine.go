package capacity

import (
	"math"
	"time"

	"github.com/arnavshah/capacity-planner-api/pkg/models"
)

const (
	// ShiftHours is the per-person daily capacity ceiling
	ShiftHours = 8.0
	// DaysPerMonth is the average month length used for duration metrics
	DaysPerMonth = 30.44
)

// IsWorkDay reports whether d falls Monday through Friday
func IsWorkDay(d models.Date) bool {
	wd := d.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// CalendarDays returns the inclusive number of days from start to end, or 0 when end is before start
func CalendarDays(start, end models.Date) int {
	days := end.DaysSince(start) + 1
	if days < 0 {
		return 0
	}
	return days
}

// CountWorkDays counts the work days in the inclusive range without walking it
func CountWorkDays(start, end models.Date) int {
	total := CalendarDays(start, end)
	n := total / 7 * 5
	for i := 0; i < total%7; i++ {
		if IsWorkDay(start.AddDays(total/7*7 + i)) {
			n++
		}
	}
	return n
}

// Calculate derives workload metrics and the daily timeline for a plan.
// It never fails: every division is guarded and degenerate ranges yield an empty timeline.
func Calculate(in models.PlanningInput) models.CalculationResult {
	totalDays := CalendarDays(in.StartDate, in.EndDate)

	timeline := make([]models.DayWorkload, totalDays)
	netWorkingDays := 0
	for i := range timeline {
		d := in.StartDate.AddDays(i)
		work := IsWorkDay(d)
		if work {
			netWorkingDays++
		}
		timeline[i] = models.DayWorkload{Date: d, IsWorkDay: work}
	}

	effectiveDays := float64(netWorkingDays)
	if netWorkingDays == 0 {
		effectiveDays = 1
	}

	employees := in.EmployeeCount
	if employees < 1 {
		employees = 1
	}

	totalHours := in.TargetVolume * in.StandardTime
	teamDaily := totalHours / effectiveDays
	personDaily := teamDaily / float64(employees)

	res := models.CalculationResult{
		TotalRequiredHours:          totalHours,
		NetWorkingDays:              netWorkingDays,
		TotalWeeks:                  round1(float64(totalDays) / 7),
		TotalMonths:                 round1(float64(totalDays) / DaysPerMonth),
		RequiredDailyTeamHours:      teamDaily,
		RequiredDailyPerPersonHours: personDaily,
		IsFeasible:                  personDaily <= ShiftHours,
		OverloadAmount:              math.Max(0, personDaily-ShiftHours),
		RecommendedStaff:            recommendedStaff(totalHours, effectiveDays),
		CapacityUtilization:         personDaily / ShiftHours * 100,
		DailyTimeline:               timeline,
	}

	unitsPerDay := in.TargetVolume / effectiveDays
	completed := 0.0
	cumulative := 0.0
	seen := 0
	for i := range timeline {
		day := &timeline[i]
		if !day.IsWorkDay {
			day.CumulativeUnits = cumulative
			continue
		}
		seen++
		completed += unitsPerDay
		cumulative = math.Min(completed, in.TargetVolume)
		if seen == netWorkingDays {
			// absorb drift from repeated division
			cumulative = in.TargetVolume
		}
		day.Hours = personDaily
		day.CumulativeUnits = cumulative
	}

	return res
}

func recommendedStaff(totalHours, effectiveDays float64) int {
	staff := math.Ceil(totalHours / (effectiveDays * ShiftHours))
	if math.IsNaN(staff) || math.IsInf(staff, 0) {
		return 0
	}
	return int(staff)
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
