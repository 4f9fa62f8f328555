package schedule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/sehyunchoi/timecheck/internal/sheet"
)

// ResolveDayBlocks scans the weekday label row left to right and
// returns one DayBlock per label found, each fixed at PeriodsPerDay
// columns. The merge span a label sits in is deliberately ignored for
// widths; instead the period row under each block must read exactly
// 1..7, which is the invariant that survives manual sheet edits.
func ResolveDayBlocks(g *sheet.Grid) ([]DayBlock, error) {
	var blocks []DayBlock
	seen := map[string]bool{}
	for col := 1; col <= g.MaxCol(); col++ {
		label := strings.TrimSpace(g.Cell(HeaderDayRow, col))
		if label == "" || dayIndex(label) < 0 || seen[label] {
			continue
		}
		seen[label] = true
		blocks = append(blocks, DayBlock{Day: label, StartCol: col})
	}
	if len(blocks) == 0 {
		return nil, ErrInvalidHeader
	}

	for i, b := range blocks {
		if i+1 < len(blocks) {
			next := blocks[i+1]
			if dayIndex(next.Day) < dayIndex(b.Day) {
				return nil, &LayoutError{Day: next.Day, Reason: fmt.Sprintf("appears after %q, out of calendar order", b.Day)}
			}
			if b.StartCol+PeriodsPerDay > next.StartCol {
				return nil, &LayoutError{
					Day:    b.Day,
					Reason: fmt.Sprintf("only %d columns before %q starts, need %d", next.StartCol-b.StartCol, next.Day, PeriodsPerDay),
				}
			}
		}
		if err := checkPeriodRow(g, b); err != nil {
			return nil, err
		}
	}
	return blocks, nil
}

// checkPeriodRow verifies the authoritative period numbering 1..7 under
// one day block.
func checkPeriodRow(g *sheet.Grid, b DayBlock) error {
	for p := 1; p <= PeriodsPerDay; p++ {
		got := strings.TrimSpace(g.Cell(HeaderPeriodRow, b.StartCol+p-1))
		if got != strconv.Itoa(p) {
			return &LayoutError{
				Day:    b.Day,
				Reason: fmt.Sprintf("period row reads %q where %d was expected", got, p),
			}
		}
	}
	return nil
}
