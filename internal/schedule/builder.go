package schedule

import (
	"regexp"
	"strings"

	"github.com/sehyunchoi/timecheck/internal/sheet"
)

// BuildOptions controls grid assembly.
type BuildOptions struct {
	// MergeDuplicates folds repeated rows for one teacher name into a
	// single week, later rows filling only still-empty periods. When
	// false a repeated name is a DuplicateTeacherError.
	MergeDuplicates bool
}

// nameSuffix strips a trailing parenthesized annotation from a teacher
// name, e.g. "홍길동(1)" -> "홍길동".
var nameSuffix = regexp.MustCompile(`\s*\([^)]*\)\s*$`)

// NormalizeTeacherName trims a raw name cell and drops any trailing
// parenthesized suffix.
func NormalizeTeacherName(raw string) string {
	return strings.TrimSpace(nameSuffix.ReplaceAllString(strings.TrimSpace(raw), ""))
}

// BuildSchedule walks the data rows and assembles the normalized grid.
// Rows with an empty name column are blank separators and skipped.
// Every (day, period) pair defined by the blocks gets a key in each
// teacher's week, nil meaning a free period, so the grid shape is
// uniform across teachers.
func BuildSchedule(g *sheet.Grid, blocks []DayBlock, opts BuildOptions) (*Schedule, error) {
	s := &Schedule{ByTeacher: map[string]Week{}}
	for _, b := range blocks {
		s.Days = append(s.Days, b.Day)
	}
	firstRow := map[string]int{}

	for row := FirstDataRow; row <= g.MaxRow(); row++ {
		name := NormalizeTeacherName(g.Cell(row, TeacherNameCol))
		if name == "" {
			continue
		}
		if prev, ok := firstRow[name]; ok {
			if !opts.MergeDuplicates {
				return nil, &DuplicateTeacherError{Name: name, FirstRow: prev, Row: row}
			}
			mergeRow(s.ByTeacher[name], g, blocks, row)
			continue
		}
		firstRow[name] = row
		s.Teachers = append(s.Teachers, name)
		s.ByTeacher[name] = readRow(g, blocks, row)
	}
	return s, nil
}

func readRow(g *sheet.Grid, blocks []DayBlock, row int) Week {
	week := Week{}
	for _, b := range blocks {
		day := map[int]*ClassEntry{}
		for p := 1; p <= PeriodsPerDay; p++ {
			day[p] = ParseCell(g.Cell(row, b.StartCol+p-1))
		}
		week[b.Day] = day
	}
	return week
}

func mergeRow(week Week, g *sheet.Grid, blocks []DayBlock, row int) {
	for _, b := range blocks {
		for p := 1; p <= PeriodsPerDay; p++ {
			if week[b.Day][p] != nil {
				continue
			}
			week[b.Day][p] = ParseCell(g.Cell(row, b.StartCol+p-1))
		}
	}
}
