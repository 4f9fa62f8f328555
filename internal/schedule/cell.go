package schedule

import "strings"

// ParseCell reads one timetable cell. The first line is the class code,
// the rest is the subject. A cell whose first line is empty or not
// digit-led is a free period and parses to nil; that is the normal case
// for unassigned slots, not an error. The code is kept verbatim
// (trimmed), trailing descriptive characters included.
func ParseCell(text string) *ClassEntry {
	text = strings.ReplaceAll(text, "_x000D_\n", "\n")
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")

	first, rest, _ := strings.Cut(text, "\n")
	code := strings.TrimSpace(first)
	if code == "" || code[0] < '0' || code[0] > '9' {
		return nil
	}
	return &ClassEntry{Code: code, Subject: strings.TrimSpace(rest)}
}
