package cmd

import (
	"github.com/sehyunchoi/timecheck/internal/analysis"
	"github.com/sehyunchoi/timecheck/internal/report"
	"github.com/sehyunchoi/timecheck/internal/schedule"
	"github.com/sehyunchoi/timecheck/internal/sheet"
)

// checkResult carries everything one pipeline pass produces.
type checkResult struct {
	Report   string
	Schedule *schedule.Schedule
	Findings map[string][]analysis.Finding
}

// runPipeline executes load-independent stages over an already loaded
// grid: resolve headers, build the schedule, detect, render. Any error
// aborts before findings exist, so a failing sheet never yields
// partial per-teacher output.
func runPipeline(g *sheet.Grid, merge bool, opts analysis.Options) (*checkResult, error) {
	blocks, err := schedule.ResolveDayBlocks(g)
	if err != nil {
		return nil, err
	}
	for _, b := range blocks {
		if span, ok := g.SpanAt(schedule.HeaderDayRow, b.StartCol); ok && span.Width() != schedule.PeriodsPerDay {
			debugf("note: day %q header merge spans %d columns, using %d per the period row\n",
				b.Day, span.Width(), schedule.PeriodsPerDay)
		}
	}

	sched, err := schedule.BuildSchedule(g, blocks, schedule.BuildOptions{MergeDuplicates: merge})
	if err != nil {
		return nil, err
	}

	findings := map[string][]analysis.Finding{}
	for _, t := range sched.Teachers {
		findings[t] = analysis.Detect(sched.ByTeacher[t], sched.Days, opts)
	}
	return &checkResult{
		Report:   report.Render(sched, findings),
		Schedule: sched,
		Findings: findings,
	}, nil
}
