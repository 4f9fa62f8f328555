package analysis

import (
	"fmt"
	"sort"

	"github.com/sehyunchoi/timecheck/internal/schedule"
)

// Detect runs all rules over one teacher's week. days carries the
// resolved weekday labels in calendar order; detection never looks at
// another teacher. The result order is fixed: consecutive-run findings
// (by day, then start period), then frequency imbalances (by
// descending day count, then period set), then the period-7 rule.
func Detect(week schedule.Week, days []string, opts Options) []Finding {
	if opts.ConsecutiveLen < 2 {
		opts.ConsecutiveLen = 2
	}
	var out []Finding
	out = append(out, consecutiveRuns(week, days, opts)...)
	out = append(out, frequencyImbalances(week, days, opts)...)
	if opts.CheckPeriod7 {
		out = append(out, periodSevenLoad(week, days, opts)...)
	}
	return out
}

// consecutiveRuns finds maximal same-code runs of at least
// ConsecutiveLen periods. Runs are extended greedily and never
// re-trigger inside an already-reported range, so findings for one day
// cannot overlap.
func consecutiveRuns(week schedule.Week, days []string, opts Options) []Finding {
	var out []Finding
	for _, day := range days {
		periods := week[day]
		runStart, runCode := 0, ""
		flush := func(end int) {
			if runStart > 0 && end-runStart+1 >= opts.ConsecutiveLen {
				out = append(out, Finding{
					Kind:        KindConsecutiveSameClass,
					Day:         day,
					StartPeriod: runStart,
					EndPeriod:   end,
					Code:        runCode,
				})
			}
			runStart, runCode = 0, ""
		}
		for p := 1; p <= schedule.PeriodsPerDay; p++ {
			e := periods[p]
			switch {
			case e == nil:
				flush(p - 1)
			case runStart == 0:
				runStart, runCode = p, e.Code
			case e.Code != runCode:
				flush(p - 1)
				runStart, runCode = p, e.Code
			}
		}
		flush(schedule.PeriodsPerDay)
	}
	return out
}

// frequencyImbalances groups days by their occupancy signature (the
// set of occupied period numbers, codes irrelevant) and reports every
// non-empty signature shared by at least MinDays days.
func frequencyImbalances(week schedule.Week, days []string, opts Options) []Finding {
	type group struct {
		periods []int
		days    []string
	}
	groups := map[string]*group{}
	var order []string
	for _, day := range days {
		sig := signature(week[day])
		if len(sig) == 0 {
			continue
		}
		key := fmt.Sprint(sig)
		g, ok := groups[key]
		if !ok {
			g = &group{periods: sig}
			groups[key] = g
			order = append(order, key)
		}
		g.days = append(g.days, day)
	}

	var out []Finding
	for _, key := range order {
		g := groups[key]
		if len(g.days) < opts.MinDays {
			continue
		}
		out = append(out, Finding{Kind: KindFrequencyImbalance, Periods: g.periods, Days: g.days})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if len(out[i].Days) != len(out[j].Days) {
			return len(out[i].Days) > len(out[j].Days)
		}
		return lessPeriods(out[i].Periods, out[j].Periods)
	})
	return out
}

// periodSevenLoad reports the last period being occupied on MinDays or
// more days, regardless of which class sits there.
func periodSevenLoad(week schedule.Week, days []string, opts Options) []Finding {
	var matched []string
	for _, day := range days {
		if week[day][schedule.PeriodsPerDay] != nil {
			matched = append(matched, day)
		}
	}
	if len(matched) < opts.MinDays {
		return nil
	}
	return []Finding{{Kind: KindPeriodSevenLoad, Days: matched}}
}

// signature returns the sorted set of occupied periods for one day.
func signature(periods map[int]*schedule.ClassEntry) []int {
	var sig []int
	for p := 1; p <= schedule.PeriodsPerDay; p++ {
		if periods[p] != nil {
			sig = append(sig, p)
		}
	}
	return sig
}

func lessPeriods(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
