package models

// PlanningInput is the data a planner supplies for one project
type PlanningInput struct {
	ProjectName   string  `json:"project_name"`
	StartDate     Date    `json:"start_date"`
	EndDate       Date    `json:"end_date"`
	TargetVolume  float64 `json:"target_volume"`
	StandardTime  float64 `json:"standard_time"` // hours per unit
	EmployeeCount int     `json:"employee_count"`
}

// DayWorkload is the per-person load for a single calendar day
type DayWorkload struct {
	Date            Date    `json:"date"`
	IsWorkDay       bool    `json:"is_work_day"`
	Hours           float64 `json:"hours"`
	CumulativeUnits float64 `json:"cumulative_units"`
}

// CalculationResult holds every metric derived from a PlanningInput
type CalculationResult struct {
	TotalRequiredHours          float64       `json:"total_required_hours"`
	NetWorkingDays              int           `json:"net_working_days"`
	TotalWeeks                  float64       `json:"total_weeks"`
	TotalMonths                 float64       `json:"total_months"`
	RequiredDailyTeamHours      float64       `json:"required_daily_team_hours"`
	RequiredDailyPerPersonHours float64       `json:"required_daily_per_person_hours"`
	IsFeasible                  bool          `json:"is_feasible"`
	OverloadAmount              float64       `json:"overload_amount"`
	RecommendedStaff            int           `json:"recommended_staff"`
	CapacityUtilization         float64       `json:"capacity_utilization"`
	DailyTimeline               []DayWorkload `json:"daily_timeline"`
}

// Summary is the display-ready view of a CalculationResult
type Summary struct {
	TeamHoursPerDay    float64 `json:"team_hours_per_day"`
	PersonHoursPerDay  float64 `json:"person_hours_per_day"`
	UtilizationPercent float64 `json:"utilization_percent"`
	UtilizationStatus  string  `json:"utilization_status"`
	LoadStatus         string  `json:"load_status"`
	OverloadHours      float64 `json:"overload_hours,omitempty"`
	RecommendedStaff   int     `json:"recommended_staff"`
	StaffShortfall     int     `json:"staff_shortfall"`
	NetWorkingDays     int     `json:"net_working_days"`
	TotalCalendarDays  int     `json:"total_calendar_days"`
	ProjectName        string  `json:"project_name"`
}

// HeatmapCell is one day in the week grid
type HeatmapCell struct {
	Date      Date    `json:"date"`
	Day       int     `json:"day"`
	Hours     float64 `json:"hours"`
	IsWorkDay bool    `json:"is_work_day"`
	Level     string  `json:"level"`
}

// Heatmap lays a timeline out in Monday-first weeks
type Heatmap struct {
	LeadingOffset int             `json:"leading_offset"`
	Weeks         [][]HeatmapCell `json:"weeks"`
}

// Issue describes a semantic problem with a PlanningInput
type Issue struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// PlanRequest is the body accepted by the planning endpoints
type PlanRequest struct {
	PlanningInput
	// Moved names the date field the user last edited: "start_date" or "end_date".
	Moved string `json:"moved,omitempty"`
}

// PlanResponse is the data structure returned by the planning endpoint
type PlanResponse struct {
	Input   PlanningInput     `json:"input"`
	Result  CalculationResult `json:"result"`
	Summary Summary           `json:"summary"`
}
