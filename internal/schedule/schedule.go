// Package schedule reconstructs the normalized teacher/day/period grid
// from a raw weekly timetable sheet: header resolution, cell parsing,
// and grid building. All transforms are pure over an immutable
// sheet.Grid and fail fast with structured errors before any analysis.
package schedule

// DaysOrder is the calendar order of the weekday labels the header may
// carry. A sheet may use a prefix of the week (e.g. Mon-Thu) but never
// a reordering.
var DaysOrder = []string{"월", "화", "수", "목", "금"}

// Sheet layout convention: row 1 title, row 2 weekday labels, row 3
// period numbers, data from row 4. Teacher names live in column 1.
const (
	HeaderDayRow    = 2
	HeaderPeriodRow = 3
	FirstDataRow    = 4
	TeacherNameCol  = 1

	// PeriodsPerDay fixes every day block at seven columns. The period
	// row underneath the label is the authoritative width; merge spans
	// are commonly corrupted by manual edits and are never trusted.
	PeriodsPerDay = 7
)

// DayBlock is one weekday's column range: PeriodsPerDay columns
// starting at StartCol, under the label Day.
type DayBlock struct {
	Day      string
	StartCol int
}

// ClassEntry is one occupied period: the digit-led class code kept
// verbatim from the cell's first line, and the subject text below it.
type ClassEntry struct {
	Code    string
	Subject string
}

// Week maps day label -> period (1..PeriodsPerDay) -> entry. A nil
// entry is a free period; every (day, period) key is always present.
type Week map[string]map[int]*ClassEntry

// Schedule is the normalized grid for one sheet. Teachers preserves
// sheet row order; the per-teacher weeks all share the same shape.
type Schedule struct {
	Teachers  []string
	ByTeacher map[string]Week
	Days      []string
}

// dayIndex returns the calendar position of a weekday label, or -1.
func dayIndex(day string) int {
	for i, d := range DaysOrder {
		if d == day {
			return i
		}
	}
	return -1
}
