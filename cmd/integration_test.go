package cmd

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sehyunchoi/timecheck/internal/analysis"
	"github.com/sehyunchoi/timecheck/internal/report"
	"github.com/sehyunchoi/timecheck/internal/schedule"
	"github.com/sehyunchoi/timecheck/internal/sheet"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a cell grid (plus merged day headers) as a real
// .xlsx file and returns its path.
func writeWorkbook(t *testing.T, cells [][]string, mergeDayHeaders bool) string {
	t.Helper()
	f := excelize.NewFile()
	const ws = "Sheet1"
	for r, row := range cells {
		for c, v := range row {
			if v == "" {
				continue
			}
			axis, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				t.Fatalf("cell name: %v", err)
			}
			if err := f.SetCellStr(ws, axis, v); err != nil {
				t.Fatalf("set cell: %v", err)
			}
		}
	}
	if mergeDayHeaders {
		for i := range schedule.DaysOrder {
			start := 2 + i*schedule.PeriodsPerDay
			from, _ := excelize.CoordinatesToCellName(start, 2)
			to, _ := excelize.CoordinatesToCellName(start+schedule.PeriodsPerDay-1, 2)
			if err := f.MergeCell(ws, from, to); err != nil {
				t.Fatalf("merge %s:%s: %v", from, to, err)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "timetable.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return path
}

// emptyTimetable builds title + header rows and the requested number of
// blank data rows, all full-week shaped.
func emptyTimetable(dataRows int) [][]string {
	width := 1 + len(schedule.DaysOrder)*schedule.PeriodsPerDay
	cells := make([][]string, 3+dataRows)
	for i := range cells {
		cells[i] = make([]string, width)
	}
	cells[0][0] = "주간시간표"
	for i, day := range schedule.DaysOrder {
		start := 1 + i*schedule.PeriodsPerDay
		cells[1][start] = day
		for p := 0; p < schedule.PeriodsPerDay; p++ {
			cells[2][start+p] = string(rune('1' + p))
		}
	}
	return cells
}

func setPeriod(cells [][]string, row, dayIdx, period int, text string) {
	cells[row-1][dayIdx*schedule.PeriodsPerDay+period] = text
}

func checkFile(t *testing.T, path string) *checkResult {
	t.Helper()
	g, err := sheet.Load(path, sheet.DefaultSheetName)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	res, err := runPipeline(g, false, analysis.DefaultOptions())
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	return res
}

func TestEndToEndConsecutiveRun(t *testing.T) {
	cells := emptyTimetable(1)
	cells[3][0] = "심가영"
	for p := 1; p <= 4; p++ {
		setPeriod(cells, 4, 2, p, "101\n국어")
	}
	path := writeWorkbook(t, cells, true)

	res := checkFile(t, path)
	want := "이 시간표는 심가영 선생님이 수요일에 1~4교시 연속 1학년 1반(101)입니다."
	if !strings.Contains(res.Report, want) {
		t.Fatalf("report missing %q:\n%s", want, res.Report)
	}
}

func TestEndToEndFrequencyImbalance(t *testing.T) {
	cells := emptyTimetable(1)
	cells[3][0] = "심가영"
	for _, day := range []int{0, 2, 4} { // 월, 수, 금
		for _, p := range []int{1, 4, 5, 7} {
			setPeriod(cells, 4, day, p, "203\n수학")
		}
	}
	setPeriod(cells, 4, 1, 2, "305\n영어") // 화: a different shape
	setPeriod(cells, 4, 3, 3, "305\n영어") // 목: a different shape
	path := writeWorkbook(t, cells, true)

	res := checkFile(t, path)
	want := "이 시간표는 심가영 선생님이 5일 중 3일 이상 (1,4,5,7)교시에 수업이 있는 시간표입니다. (해당 요일: 월,수,금)"
	if !strings.Contains(res.Report, want) {
		t.Fatalf("report missing %q:\n%s", want, res.Report)
	}
}

func TestEndToEndNoFindingsFallback(t *testing.T) {
	cells := emptyTimetable(1)
	cells[3][0] = "이도현"
	setPeriod(cells, 4, 0, 1, "102\n사회")
	path := writeWorkbook(t, cells, false)

	res := checkFile(t, path)
	want := "=== 이도현 선생님 ===\n" + report.NoFindings
	if !strings.Contains(res.Report, want) {
		t.Fatalf("report missing fallback section:\n%s", res.Report)
	}
}

func TestEndToEndDeterministic(t *testing.T) {
	cells := emptyTimetable(2)
	cells[3][0] = "심가영"
	for p := 1; p <= 5; p++ {
		setPeriod(cells, 4, 1, p, "210\n과학")
	}
	cells[4][0] = "박규리"
	for _, day := range []int{0, 1, 2} {
		setPeriod(cells, 5, day, 7, "305\n영어")
	}
	path := writeWorkbook(t, cells, true)

	first := checkFile(t, path)
	for i := 0; i < 5; i++ {
		if got := checkFile(t, path); got.Report != first.Report {
			t.Fatalf("output differs between runs:\n%s\n---\n%s", got.Report, first.Report)
		}
	}
}

func TestEndToEndInvalidHeader(t *testing.T) {
	cells := emptyTimetable(1)
	cells[1] = make([]string, len(cells[1])) // no weekday labels at all
	cells[3][0] = "심가영"
	setPeriod(cells, 4, 2, 1, "101\n국어")
	path := writeWorkbook(t, cells, false)

	g, err := sheet.Load(path, sheet.DefaultSheetName)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	res, err := runPipeline(g, false, analysis.DefaultOptions())
	if !errors.Is(err, schedule.ErrInvalidHeader) {
		t.Fatalf("expected ErrInvalidHeader, got %v", err)
	}
	if res != nil {
		t.Fatalf("no per-teacher output may exist on a fatal error, got %+v", res)
	}
}

func TestEndToEndDuplicateTeacher(t *testing.T) {
	cells := emptyTimetable(2)
	cells[3][0] = "심가영"
	cells[4][0] = "심가영"
	path := writeWorkbook(t, cells, false)

	g, err := sheet.Load(path, sheet.DefaultSheetName)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	_, err = runPipeline(g, false, analysis.DefaultOptions())
	var de *schedule.DuplicateTeacherError
	if !errors.As(err, &de) {
		t.Fatalf("expected DuplicateTeacherError, got %v", err)
	}

	if _, err := runPipeline(g, true, analysis.DefaultOptions()); err != nil {
		t.Fatalf("merge mode should accept duplicates: %v", err)
	}
}

func TestSelfTest(t *testing.T) {
	if err := runSelfTest(); err != nil {
		t.Fatalf("self-test: %v", err)
	}
}
