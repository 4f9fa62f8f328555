package schedule

import (
	"errors"
	"fmt"
)

// ErrInvalidHeader reports that the weekday label row carried no
// recognizable label at all. Nothing in the file is analyzed.
var ErrInvalidHeader = errors.New("no weekday label found in header row")

// LayoutError reports a day block that does not carry the mandatory
// seven-period shape: the period row under it does not read 1..7, or
// the block collides with the next weekday label.
type LayoutError struct {
	Day    string
	Reason string
}

func (e *LayoutError) Error() string {
	return fmt.Sprintf("unsupported sheet layout at day block %q: %s", e.Day, e.Reason)
}

// DuplicateTeacherError reports the same teacher name appearing in two
// data rows. Aggregation would be ambiguous, so the caller must opt
// into merging explicitly.
type DuplicateTeacherError struct {
	Name     string
	FirstRow int
	Row      int
}

func (e *DuplicateTeacherError) Error() string {
	return fmt.Sprintf("duplicate teacher %q: rows %d and %d", e.Name, e.FirstRow, e.Row)
}
