package sheet

import "strings"

// Grid is the raw, read-only view of one worksheet: cell text plus the
// merged ranges the workbook reports. Rows and columns are 1-based to
// match spreadsheet coordinates.
type Grid struct {
	Name   string
	cells  [][]string
	Merges []Span
}

// Span is one merged cell range in 1-based sheet coordinates, inclusive.
type Span struct {
	FirstRow int
	FirstCol int
	LastRow  int
	LastCol  int
}

// Width reports how many columns the span covers.
func (s Span) Width() int { return s.LastCol - s.FirstCol + 1 }

// NewGrid builds an in-memory grid from row-major cell text. Used by
// tests and the self-test sample; Load produces the same shape from a
// workbook.
func NewGrid(name string, cells [][]string) *Grid {
	return &Grid{Name: name, cells: cells}
}

// Cell returns the text at (row, col), 1-based. Out-of-range lookups
// return the empty string: short rows are how the underlying xlsx reader
// reports trailing blanks.
func (g *Grid) Cell(row, col int) string {
	if row < 1 || row > len(g.cells) {
		return ""
	}
	r := g.cells[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// MaxRow returns the number of rows in the grid.
func (g *Grid) MaxRow() int { return len(g.cells) }

// MaxCol returns the widest row's column count.
func (g *Grid) MaxCol() int {
	max := 0
	for _, r := range g.cells {
		if len(r) > max {
			max = len(r)
		}
	}
	return max
}

// SpanAt returns the merged range covering (row, col), if any.
func (g *Grid) SpanAt(row, col int) (Span, bool) {
	for _, s := range g.Merges {
		if row >= s.FirstRow && row <= s.LastRow && col >= s.FirstCol && col <= s.LastCol {
			return s, true
		}
	}
	return Span{}, false
}

// normalizeText collapses the line-break spellings that survive round
// trips through spreadsheet editors into plain \n. The literal _x000D_
// marker is how some writers escape a carriage return inside cell text.
func normalizeText(s string) string {
	s = strings.ReplaceAll(s, "_x000D_\n", "\n")
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return s
}
