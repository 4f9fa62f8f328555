package sheet_test

import (
	"path/filepath"
	"testing"

	"github.com/sehyunchoi/timecheck/internal/sheet"
	"github.com/xuri/excelize/v2"
)

func saveWorkbook(t *testing.T, f *excelize.File) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "timetable.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close workbook: %v", err)
	}
	return path
}

func TestLoadPrefersNamedSheet(t *testing.T) {
	f := excelize.NewFile()
	if _, err := f.NewSheet(sheet.DefaultSheetName); err != nil {
		t.Fatalf("new sheet: %v", err)
	}
	if err := f.SetCellStr("Sheet1", "A1", "wrong"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if err := f.SetCellStr(sheet.DefaultSheetName, "A1", "right"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	path := saveWorkbook(t, f)

	g, err := sheet.Load(path, sheet.DefaultSheetName)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.Name != sheet.DefaultSheetName || g.Cell(1, 1) != "right" {
		t.Fatalf("wrong sheet selected: name=%q cell=%q", g.Name, g.Cell(1, 1))
	}
}

func TestLoadFallsBackToFirstSheet(t *testing.T) {
	f := excelize.NewFile()
	if err := f.SetCellStr("Sheet1", "A1", "first"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	path := saveWorkbook(t, f)

	g, err := sheet.Load(path, sheet.DefaultSheetName)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if g.Name != "Sheet1" || g.Cell(1, 1) != "first" {
		t.Fatalf("fallback failed: name=%q cell=%q", g.Name, g.Cell(1, 1))
	}
}

func TestLoadExposesMergedRanges(t *testing.T) {
	f := excelize.NewFile()
	if err := f.SetCellStr("Sheet1", "B2", "월"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	if err := f.MergeCell("Sheet1", "B2", "H2"); err != nil {
		t.Fatalf("merge: %v", err)
	}
	path := saveWorkbook(t, f)

	g, err := sheet.Load(path, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	span, ok := g.SpanAt(2, 2)
	if !ok {
		t.Fatalf("merged range not exposed: %+v", g.Merges)
	}
	if span.Width() != 7 || span.FirstRow != 2 || span.LastRow != 2 {
		t.Fatalf("unexpected span: %+v", span)
	}
	if _, ok := g.SpanAt(3, 2); ok {
		t.Fatalf("row 3 is not merged")
	}
}

func TestLoadNormalizesLineBreaks(t *testing.T) {
	f := excelize.NewFile()
	if err := f.SetCellStr("Sheet1", "B4", "101_x000D_\n국어"); err != nil {
		t.Fatalf("set cell: %v", err)
	}
	path := saveWorkbook(t, f)

	g, err := sheet.Load(path, "")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if got := g.Cell(4, 2); got != "101\n국어" {
		t.Fatalf("normalization failed: %q", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := sheet.Load(filepath.Join(t.TempDir(), "nope.xlsx"), ""); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestGridBounds(t *testing.T) {
	g := sheet.NewGrid("t", [][]string{{"a", "b"}, {"c"}})
	if g.MaxRow() != 2 || g.MaxCol() != 2 {
		t.Fatalf("unexpected dimensions: %d x %d", g.MaxRow(), g.MaxCol())
	}
	if g.Cell(1, 2) != "b" || g.Cell(2, 1) != "c" {
		t.Fatalf("unexpected cells")
	}
	for _, probe := range [][2]int{{0, 1}, {1, 0}, {3, 1}, {2, 2}, {1, 5}} {
		if got := g.Cell(probe[0], probe[1]); got != "" {
			t.Fatalf("out-of-range Cell(%d,%d) = %q, want empty", probe[0], probe[1], got)
		}
	}
}
