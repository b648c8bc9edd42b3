package capacity

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/arnavshah/capacity-planner-api/pkg/models"
)

// TimelineCSVHeader is the header row written by WriteTimelineCSV
var TimelineCSVHeader = []string{"date", "weekday", "is_work_day", "hours", "cumulative_units", "load_level"}

// WriteTimelineCSV exports the daily timeline, one row per calendar day
func WriteTimelineCSV(w io.Writer, timeline []models.DayWorkload) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(TimelineCSVHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, day := range timeline {
		err := writer.Write([]string{
			day.Date.String(),
			day.Date.Weekday().String(),
			strconv.FormatBool(day.IsWorkDay),
			fmt.Sprintf("%.2f", day.Hours),
			fmt.Sprintf("%.2f", day.CumulativeUnits),
			LoadLevel(day),
		})
		if err != nil {
			return fmt.Errorf("write csv row %s: %w", day.Date, err)
		}
	}

	writer.Flush()
	return writer.Error()
}
