package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/arnavshah/capacity-planner-api/pkg/capacity"
	"github.com/arnavshah/capacity-planner-api/pkg/models"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, out, errOut io.Writer) error {
	fs := flag.NewFlagSet("plancalc", flag.ContinueOnError)
	fs.SetOutput(errOut)

	name := fs.String("name", "", "project name")
	start := fs.String("start", "", "start date (YYYY-MM-DD)")
	end := fs.String("end", "", "end date (YYYY-MM-DD)")
	volume := fs.Float64("volume", 0, "target production volume in units")
	stdTime := fs.Float64("std-time", 1, "standard time in hours per unit")
	employees := fs.Int("employees", 1, "team size")
	asCSV := fs.Bool("csv", false, "print the daily timeline as CSV")
	strict := fs.Bool("strict", false, "fail on input validation issues")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if *start == "" || *end == "" {
		return errors.New("-start and -end are required")
	}

	startDate, err := models.ParseDate(*start)
	if err != nil {
		return err
	}
	endDate, err := models.ParseDate(*end)
	if err != nil {
		return err
	}

	in := capacity.Normalize(models.PlanningInput{
		ProjectName:   *name,
		StartDate:     startDate,
		EndDate:       endDate,
		TargetVolume:  *volume,
		StandardTime:  *stdTime,
		EmployeeCount: *employees,
	}, "")

	if issues := capacity.Validate(in, 0); len(issues) > 0 {
		for _, is := range issues {
			fmt.Fprintf(errOut, "warning: %s: %s\n", is.Field, is.Message)
		}
		if *strict {
			return fmt.Errorf("%d validation issue(s)", len(issues))
		}
	}

	res := capacity.Calculate(in)
	if *asCSV {
		return capacity.WriteTimelineCSV(out, res.DailyTimeline)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(models.PlanResponse{
		Input:   in,
		Result:  res,
		Summary: capacity.Summarize(in, res),
	})
}
