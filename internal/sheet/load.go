package sheet

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// DefaultSheetName is the sheet the loader prefers when present.
const DefaultSheetName = "주간시간표"

// Load opens an .xlsx workbook and returns the raw grid of the selected
// sheet. Selection policy: the sheet literally named preferredSheet if
// the workbook has one, otherwise the first sheet. Cell text is
// line-break normalized; merged ranges are carried along verbatim.
func Load(path, preferredSheet string) (*Grid, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	if preferredSheet == "" {
		preferredSheet = DefaultSheetName
	}
	name, err := selectSheet(f, preferredSheet)
	if err != nil {
		return nil, err
	}

	rows, err := f.GetRows(name)
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", name, err)
	}
	cells := make([][]string, len(rows))
	for i, row := range rows {
		out := make([]string, len(row))
		for j, v := range row {
			out[j] = normalizeText(v)
		}
		cells[i] = out
	}

	g := NewGrid(name, cells)
	merges, err := f.GetMergeCells(name)
	if err != nil {
		return nil, fmt.Errorf("read merged ranges of %q: %w", name, err)
	}
	for _, mc := range merges {
		span, err := spanFromRange(mc.GetStartAxis(), mc.GetEndAxis())
		if err != nil {
			return nil, fmt.Errorf("merged range %s:%s: %w", mc.GetStartAxis(), mc.GetEndAxis(), err)
		}
		g.Merges = append(g.Merges, span)
	}
	return g, nil
}

func selectSheet(f *excelize.File, preferred string) (string, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return "", fmt.Errorf("workbook has no sheets")
	}
	for _, s := range sheets {
		if s == preferred {
			return s, nil
		}
	}
	return sheets[0], nil
}

func spanFromRange(start, end string) (Span, error) {
	c1, r1, err := excelize.CellNameToCoordinates(start)
	if err != nil {
		return Span{}, err
	}
	c2, r2, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return Span{}, err
	}
	return Span{FirstRow: r1, FirstCol: c1, LastRow: r2, LastCol: c2}, nil
}
