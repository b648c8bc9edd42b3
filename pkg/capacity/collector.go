package capacity

import (
	"fmt"

	"github.com/arnavshah/capacity-planner-api/pkg/models"
)

// Date fields a user can edit
const (
	FieldStartDate = "start_date"
	FieldEndDate   = "end_date"
)

// CollapseRange returns a range that is never inverted.
// If the start moved past the end, the end follows it; if the end moved before the
// start, the start follows it. With no moved field an inverted range collapses onto start.
func CollapseRange(start, end models.Date, moved string) (models.Date, models.Date) {
	if !end.Before(start) {
		return start, end
	}
	if moved == FieldEndDate {
		return end, end
	}
	return start, start
}

// Normalize applies the input collector rules before calculation
func Normalize(in models.PlanningInput, moved string) models.PlanningInput {
	in.StartDate, in.EndDate = CollapseRange(in.StartDate, in.EndDate, moved)
	return in
}

// Validate reports semantic problems the engine tolerates but a planner should fix.
// maxRangeDays <= 0 disables the range length check.
func Validate(in models.PlanningInput, maxRangeDays int) []models.Issue {
	var issues []models.Issue

	if in.StartDate.IsZero() {
		issues = append(issues, models.Issue{Field: FieldStartDate, Message: "start_date is required"})
	}
	if in.EndDate.IsZero() {
		issues = append(issues, models.Issue{Field: FieldEndDate, Message: "end_date is required"})
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() {
		if in.EndDate.Before(in.StartDate) {
			issues = append(issues, models.Issue{Field: FieldEndDate, Message: "end_date is before start_date"})
		} else if days := CalendarDays(in.StartDate, in.EndDate); maxRangeDays > 0 && days > maxRangeDays {
			issues = append(issues, models.Issue{
				Field:   FieldEndDate,
				Message: fmt.Sprintf("range of %d days exceeds the limit of %d", days, maxRangeDays),
			})
		}
	}
	if in.TargetVolume < 0 {
		issues = append(issues, models.Issue{Field: "target_volume", Message: "target_volume must not be negative"})
	}
	if in.StandardTime <= 0 {
		issues = append(issues, models.Issue{Field: "standard_time", Message: "standard_time must be positive"})
	}
	if in.EmployeeCount < 1 {
		issues = append(issues, models.Issue{Field: "employee_count", Message: "employee_count must be at least 1"})
	}

	return issues
}
