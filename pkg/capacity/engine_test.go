package capacity

import (
	"math"
	"testing"
	"time"

	"github.com/arnavshah/capacity-planner-api/pkg/models"
)

// 2024-01-01 is a Monday; the first two weeks hold 10 work days.
func twoWeekInput(volume, stdTime float64, employees int) models.PlanningInput {
	return models.PlanningInput{
		ProjectName:   "Sample A",
		StartDate:     models.NewDate(2024, time.January, 1),
		EndDate:       models.NewDate(2024, time.January, 14),
		TargetVolume:  volume,
		StandardTime:  stdTime,
		EmployeeCount: employees,
	}
}

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestCalculate_FeasibleTeam(t *testing.T) {
	res := Calculate(twoWeekInput(200, 1.5, 4))

	if res.TotalRequiredHours != 300 {
		t.Errorf("Expected 300 total hours, got %f", res.TotalRequiredHours)
	}
	if res.NetWorkingDays != 10 {
		t.Errorf("Expected 10 working days, got %d", res.NetWorkingDays)
	}
	if res.RequiredDailyTeamHours != 30 {
		t.Errorf("Expected 30 team hours per day, got %f", res.RequiredDailyTeamHours)
	}
	if res.RequiredDailyPerPersonHours != 7.5 {
		t.Errorf("Expected 7.5 hours per person, got %f", res.RequiredDailyPerPersonHours)
	}
	if !res.IsFeasible {
		t.Error("Expected plan to be feasible")
	}
	if res.OverloadAmount != 0 {
		t.Errorf("Expected no overload, got %f", res.OverloadAmount)
	}
	if res.RecommendedStaff != 4 {
		t.Errorf("Expected 4 recommended staff, got %d", res.RecommendedStaff)
	}
	if !almostEqual(res.CapacityUtilization, 93.75) {
		t.Errorf("Expected 93.75%% utilization, got %f", res.CapacityUtilization)
	}
	if res.TotalWeeks != 2.0 {
		t.Errorf("Expected 2.0 weeks, got %f", res.TotalWeeks)
	}
	if res.TotalMonths != 0.5 {
		t.Errorf("Expected 0.5 months, got %f", res.TotalMonths)
	}
}

func TestCalculate_SinglePersonOverload(t *testing.T) {
	res := Calculate(twoWeekInput(200, 1.5, 1))

	if res.RequiredDailyPerPersonHours != 30 {
		t.Errorf("Expected 30 hours per person, got %f", res.RequiredDailyPerPersonHours)
	}
	if res.IsFeasible {
		t.Error("Expected plan to be infeasible")
	}
	if res.OverloadAmount != 22 {
		t.Errorf("Expected overload of 22, got %f", res.OverloadAmount)
	}
	if res.RecommendedStaff != 4 {
		t.Errorf("Expected 4 recommended staff, got %d", res.RecommendedStaff)
	}
	if res.CapacityUtilization != 375 {
		t.Errorf("Expected 375%% utilization, got %f", res.CapacityUtilization)
	}
}

func TestCalculate_SingleSunday(t *testing.T) {
	sunday := models.NewDate(2024, time.January, 7)
	res := Calculate(models.PlanningInput{
		StartDate:     sunday,
		EndDate:       sunday,
		TargetVolume:  50,
		StandardTime:  2,
		EmployeeCount: 2,
	})

	if res.NetWorkingDays != 0 {
		t.Errorf("Expected 0 working days, got %d", res.NetWorkingDays)
	}
	// effective working days floor to 1
	if res.RequiredDailyTeamHours != 100 {
		t.Errorf("Expected 100 team hours, got %f", res.RequiredDailyTeamHours)
	}
	if len(res.DailyTimeline) != 1 {
		t.Fatalf("Expected 1 timeline entry, got %d", len(res.DailyTimeline))
	}
	day := res.DailyTimeline[0]
	if day.IsWorkDay || day.Hours != 0 || day.CumulativeUnits != 0 {
		t.Errorf("Expected idle Sunday entry, got %+v", day)
	}
}

func TestCalculate_ZeroVolume(t *testing.T) {
	res := Calculate(twoWeekInput(0, 1.5, 4))

	if res.TotalRequiredHours != 0 {
		t.Errorf("Expected 0 total hours, got %f", res.TotalRequiredHours)
	}
	if res.RequiredDailyPerPersonHours != 0 {
		t.Errorf("Expected 0 hours per person, got %f", res.RequiredDailyPerPersonHours)
	}
	if !res.IsFeasible {
		t.Error("Expected zero volume to be feasible")
	}
	if res.RecommendedStaff != 0 {
		t.Errorf("Expected 0 recommended staff, got %d", res.RecommendedStaff)
	}
	for _, day := range res.DailyTimeline {
		if day.CumulativeUnits != 0 {
			t.Errorf("Expected 0 cumulative units on %s, got %f", day.Date, day.CumulativeUnits)
		}
	}
}

func TestCalculate_TimelineShape(t *testing.T) {
	cases := []struct {
		name  string
		start models.Date
		end   models.Date
	}{
		{"two weeks", models.NewDate(2024, time.January, 1), models.NewDate(2024, time.January, 14)},
		{"mid-week start", models.NewDate(2024, time.January, 3), models.NewDate(2024, time.February, 9)},
		{"leap february", models.NewDate(2024, time.February, 20), models.NewDate(2024, time.March, 5)},
		{"single weekday", models.NewDate(2024, time.January, 2), models.NewDate(2024, time.January, 2)},
		{"year boundary", models.NewDate(2023, time.December, 28), models.NewDate(2024, time.January, 8)},
		{"four centuries", models.NewDate(1800, time.January, 1), models.NewDate(2200, time.January, 1)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := models.PlanningInput{StartDate: tc.start, EndDate: tc.end, TargetVolume: 137, StandardTime: 0.7, EmployeeCount: 3}
			res := Calculate(in)

			wantDays := tc.end.DaysSince(tc.start) + 1
			if len(res.DailyTimeline) != wantDays {
				t.Fatalf("Expected %d entries, got %d", wantDays, len(res.DailyTimeline))
			}

			workDays := 0
			for i, day := range res.DailyTimeline {
				if day.Date != tc.start.AddDays(i) {
					t.Fatalf("Entry %d has date %s, want %s", i, day.Date, tc.start.AddDays(i))
				}
				wd := day.Date.Weekday()
				if (wd == time.Saturday || wd == time.Sunday) && day.IsWorkDay {
					t.Errorf("Weekend %s marked as work day", day.Date)
				}
				if day.IsWorkDay {
					workDays++
					if day.Hours != res.RequiredDailyPerPersonHours {
						t.Errorf("Work day %s has %f hours, want %f", day.Date, day.Hours, res.RequiredDailyPerPersonHours)
					}
				} else if day.Hours != 0 {
					t.Errorf("Non-work day %s has %f hours", day.Date, day.Hours)
				}
				if i > 0 && day.CumulativeUnits < res.DailyTimeline[i-1].CumulativeUnits {
					t.Errorf("Cumulative units decreased on %s", day.Date)
				}
				if day.CumulativeUnits > in.TargetVolume {
					t.Errorf("Cumulative units %f exceed target on %s", day.CumulativeUnits, day.Date)
				}
			}

			if last := res.DailyTimeline[len(res.DailyTimeline)-1]; last.Date != tc.end {
				t.Errorf("Expected timeline to end on %s, got %s", tc.end, last.Date)
			}
			if workDays != res.NetWorkingDays {
				t.Errorf("Expected %d work days in timeline, got %d", res.NetWorkingDays, workDays)
			}
			if n := CountWorkDays(tc.start, tc.end); n != res.NetWorkingDays {
				t.Errorf("CountWorkDays = %d, want %d", n, res.NetWorkingDays)
			}
			if last := res.DailyTimeline[len(res.DailyTimeline)-1]; last.CumulativeUnits != in.TargetVolume {
				t.Errorf("Expected last cumulative %f, got %f", in.TargetVolume, last.CumulativeUnits)
			}
		})
	}
}

func TestCalculate_WeekendHoldsCumulative(t *testing.T) {
	res := Calculate(twoWeekInput(200, 1.5, 4))

	friday := res.DailyTimeline[4]
	saturday := res.DailyTimeline[5]
	sunday := res.DailyTimeline[6]
	if friday.CumulativeUnits != 100 {
		t.Errorf("Expected 100 units by first Friday, got %f", friday.CumulativeUnits)
	}
	if saturday.CumulativeUnits != 100 || sunday.CumulativeUnits != 100 {
		t.Errorf("Expected weekend to hold 100 units, got %f and %f", saturday.CumulativeUnits, sunday.CumulativeUnits)
	}
}

func TestCalculate_DriftAbsorbedOnLastWorkDay(t *testing.T) {
	in := twoWeekInput(0.7, 1, 1)
	res := Calculate(in)

	last := res.DailyTimeline[len(res.DailyTimeline)-1]
	if last.CumulativeUnits != 0.7 {
		t.Errorf("Expected exactly 0.7 units at the end, got %v", last.CumulativeUnits)
	}
}

func TestCalculate_NoDivisionBlowups(t *testing.T) {
	saturday := models.NewDate(2024, time.January, 6)
	inputs := map[string]models.PlanningInput{
		"zero employees":     twoWeekInput(200, 1.5, 0),
		"negative employees": twoWeekInput(200, 1.5, -3),
		"weekend only": {
			StartDate: saturday, EndDate: saturday.AddDays(1),
			TargetVolume: 40, StandardTime: 3, EmployeeCount: 0,
		},
		"inverted range": {
			StartDate: saturday, EndDate: saturday.AddDays(-5),
			TargetVolume: 40, StandardTime: 3, EmployeeCount: 2,
		},
	}

	for name, in := range inputs {
		t.Run(name, func(t *testing.T) {
			res := Calculate(in)
			scalars := []float64{
				res.TotalRequiredHours, res.TotalWeeks, res.TotalMonths,
				res.RequiredDailyTeamHours, res.RequiredDailyPerPersonHours,
				res.OverloadAmount, res.CapacityUtilization,
			}
			for i, v := range scalars {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					t.Errorf("Scalar %d is not finite: %v", i, v)
				}
			}
		})
	}
}

func TestCalculate_ZeroEmployeesClampedToOne(t *testing.T) {
	clamped := Calculate(twoWeekInput(200, 1.5, 0))
	single := Calculate(twoWeekInput(200, 1.5, 1))

	if clamped.RequiredDailyPerPersonHours != single.RequiredDailyPerPersonHours {
		t.Errorf("Expected zero employees to behave like one, got %f vs %f",
			clamped.RequiredDailyPerPersonHours, single.RequiredDailyPerPersonHours)
	}
}

func TestCalculate_InvertedRangeIsEmpty(t *testing.T) {
	in := twoWeekInput(200, 1.5, 4)
	in.StartDate, in.EndDate = in.EndDate, in.StartDate
	res := Calculate(in)

	if len(res.DailyTimeline) != 0 {
		t.Errorf("Expected empty timeline, got %d entries", len(res.DailyTimeline))
	}
	if res.NetWorkingDays != 0 || res.TotalWeeks != 0 || res.TotalMonths != 0 {
		t.Errorf("Expected zero durations, got %+v", res)
	}
	if res.TotalRequiredHours != 300 {
		t.Errorf("Expected total hours independent of range, got %f", res.TotalRequiredHours)
	}
}

func TestCalculate_FeasibilityConsistency(t *testing.T) {
	for employees := 1; employees <= 8; employees++ {
		for _, stdTime := range []float64{0.25, 1, 1.5, 3.2, 8} {
			res := Calculate(twoWeekInput(173, stdTime, employees))
			if res.IsFeasible != (res.RequiredDailyPerPersonHours <= ShiftHours) {
				t.Errorf("employees=%d std=%f: feasibility flag disagrees with hours %f", employees, stdTime, res.RequiredDailyPerPersonHours)
			}
			want := math.Max(0, res.RequiredDailyPerPersonHours-ShiftHours)
			if res.OverloadAmount != want {
				t.Errorf("employees=%d std=%f: overload %f, want %f", employees, stdTime, res.OverloadAmount, want)
			}
		}
	}
}

func TestCalculate_NegativeVolumePropagates(t *testing.T) {
	res := Calculate(twoWeekInput(-100, 2, 2))

	if res.TotalRequiredHours != -200 {
		t.Errorf("Expected -200 total hours, got %f", res.TotalRequiredHours)
	}
	if !res.IsFeasible {
		t.Error("Expected negative load to count as feasible")
	}
	if res.OverloadAmount != 0 {
		t.Errorf("Expected no overload, got %f", res.OverloadAmount)
	}
}

func TestCalculate_DoesNotShareTimeline(t *testing.T) {
	in := twoWeekInput(200, 1.5, 4)
	a := Calculate(in)
	b := Calculate(in)

	a.DailyTimeline[0].Hours = 999
	if b.DailyTimeline[0].Hours == 999 {
		t.Error("Expected independent timelines per call")
	}
}

func TestCountWorkDays(t *testing.T) {
	if n := CountWorkDays(models.NewDate(2024, time.January, 1), models.NewDate(2024, time.January, 31)); n != 23 {
		t.Errorf("Expected 23 work days in January 2024, got %d", n)
	}
	if n := CountWorkDays(models.NewDate(2024, time.January, 31), models.NewDate(2024, time.January, 1)); n != 0 {
		t.Errorf("Expected 0 work days for inverted range, got %d", n)
	}
}

func TestCalculate_FourCenturyRange(t *testing.T) {
	// 400 Gregorian years are 146097 days, an exact number of weeks
	start := models.NewDate(1800, time.January, 1)
	end := models.NewDate(2200, time.January, 1)
	res := Calculate(models.PlanningInput{StartDate: start, EndDate: end, TargetVolume: 1000, StandardTime: 1, EmployeeCount: 1})

	if len(res.DailyTimeline) != 146098 {
		t.Fatalf("Expected 146098 entries, got %d", len(res.DailyTimeline))
	}
	if last := res.DailyTimeline[len(res.DailyTimeline)-1]; last.Date != end {
		t.Errorf("Expected timeline to end on %s, got %s", end, last.Date)
	}
	// 20871 full weeks plus one Wednesday
	if res.NetWorkingDays != 20871*5+1 {
		t.Errorf("Expected %d work days, got %d", 20871*5+1, res.NetWorkingDays)
	}
	if n := CountWorkDays(start, end); n != res.NetWorkingDays {
		t.Errorf("CountWorkDays = %d, want %d", n, res.NetWorkingDays)
	}
}
