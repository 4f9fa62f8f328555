package report

import (
	"github.com/google/uuid"

	"github.com/sehyunchoi/timecheck/internal/analysis"
	"github.com/sehyunchoi/timecheck/internal/schedule"
)

// Summary is the machine-readable companion to the text report. Each
// run gets a fresh id so downstream tooling can correlate saved
// outputs.
type Summary struct {
	RunID    string                    `json:"run_id"`
	File     string                    `json:"file"`
	Sheet    string                    `json:"sheet"`
	Teachers map[string]TeacherSummary `json:"teachers"`
}

// TeacherSummary mirrors the three rule families per teacher.
type TeacherSummary struct {
	Consecutive []RunSummary       `json:"patternA"`
	Imbalance   []SignatureSummary `json:"patternB"`
	Period7     *SignatureSummary  `json:"patternC,omitempty"`
}

// RunSummary is one consecutive same-class run.
type RunSummary struct {
	Day       string `json:"day"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	ClassCode string `json:"class_code"`
}

// SignatureSummary is one shared occupancy pattern across days.
type SignatureSummary struct {
	Periods []int    `json:"periods,omitempty"`
	Days    []string `json:"days"`
}

// BuildSummary folds per-teacher findings into the JSON payload.
func BuildSummary(file, sheet string, sched *schedule.Schedule, results map[string][]analysis.Finding) *Summary {
	s := &Summary{
		RunID:    uuid.NewString(),
		File:     file,
		Sheet:    sheet,
		Teachers: map[string]TeacherSummary{},
	}
	for _, t := range sched.Teachers {
		ts := TeacherSummary{
			Consecutive: []RunSummary{},
			Imbalance:   []SignatureSummary{},
		}
		for _, f := range results[t] {
			switch f.Kind {
			case analysis.KindConsecutiveSameClass:
				ts.Consecutive = append(ts.Consecutive, RunSummary{
					Day: f.Day, Start: f.StartPeriod, End: f.EndPeriod, ClassCode: f.Code,
				})
			case analysis.KindFrequencyImbalance:
				ts.Imbalance = append(ts.Imbalance, SignatureSummary{Periods: f.Periods, Days: f.Days})
			case analysis.KindPeriodSevenLoad:
				ts.Period7 = &SignatureSummary{Days: f.Days}
			}
		}
		s.Teachers[t] = ts
	}
	return s
}
