// Package report renders findings into the fixed Korean sentence
// templates and assembles the per-teacher report text. Rendering is
// pure: only field values vary, template text never does.
package report

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/sehyunchoi/timecheck/internal/analysis"
	"github.com/sehyunchoi/timecheck/internal/schedule"
)

// NoFindings is the section body for a teacher with a clean schedule.
const NoFindings = "문제 패턴이 발견되지 않았습니다."

// Render produces the whole report: one section per teacher, sorted by
// name, each a header line followed by one bullet per finding or the
// single fallback line.
func Render(sched *schedule.Schedule, results map[string][]analysis.Finding) string {
	teachers := append([]string(nil), sched.Teachers...)
	sort.Strings(teachers)

	total := len(sched.Days)
	var b strings.Builder
	for i, t := range teachers {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "=== %s 선생님 ===\n", t)
		findings := results[t]
		if len(findings) == 0 {
			b.WriteString(NoFindings + "\n")
			continue
		}
		for _, f := range findings {
			b.WriteString("- " + Sentence(t, f, total) + "\n")
		}
	}
	return b.String()
}

// Sentence renders one finding as its fixed template. totalDays is the
// number of day blocks the sheet resolved (normally 5).
func Sentence(teacher string, f analysis.Finding, totalDays int) string {
	switch f.Kind {
	case analysis.KindConsecutiveSameClass:
		return fmt.Sprintf("이 시간표는 %s 선생님이 %s요일에 %d~%d교시 연속 %s입니다.",
			teacher, f.Day, f.StartPeriod, f.EndPeriod, ClassLabel(f.Code))
	case analysis.KindFrequencyImbalance:
		return fmt.Sprintf("이 시간표는 %s 선생님이 %d일 중 %d일 이상 (%s)교시에 수업이 있는 시간표입니다. (해당 요일: %s)",
			teacher, totalDays, len(f.Days), joinPeriods(f.Periods), strings.Join(f.Days, ","))
	case analysis.KindPeriodSevenLoad:
		return fmt.Sprintf("이 시간표는 %s 선생님이 %d일 중 %d일 이상 7교시에 수업이 있는 시간표입니다. (해당 요일: %s)",
			teacher, totalDays, len(f.Days), strings.Join(f.Days, ","))
	}
	return ""
}

// ClassLabel renders a class code for display. A plain three-digit
// code is expanded to its grade/class reading ("101" -> "1학년 1반(101)");
// anything else keeps only the parenthesized code.
func ClassLabel(code string) string {
	if len(code) == 3 && isDigits(code) {
		n, _ := strconv.Atoi(code[1:])
		return fmt.Sprintf("%s학년 %d반(%s)", code[:1], n, code)
	}
	return "(" + code + ")"
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return len(s) > 0
}

func joinPeriods(periods []int) string {
	parts := make([]string, len(periods))
	for i, p := range periods {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, ",")
}
