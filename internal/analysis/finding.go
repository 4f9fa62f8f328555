// Package analysis scans one teacher's normalized week for suspicious
// structural regularities. Detection is total: it cannot fail on any
// well-formed schedule, and identical input always yields the same
// findings in the same order.
package analysis

// Kind tags the closed set of finding variants. The formatter handles
// every kind exhaustively; there is no open hierarchy to extend.
type Kind int

const (
	// KindConsecutiveSameClass: the same class code fills a long
	// uninterrupted run of periods within one day.
	KindConsecutiveSameClass Kind = iota
	// KindFrequencyImbalance: several days share the exact same set of
	// occupied periods.
	KindFrequencyImbalance
	// KindPeriodSevenLoad: the last period of the day is occupied on
	// too many days of the week.
	KindPeriodSevenLoad
)

// Finding is one detected pattern for one teacher. Which fields are
// meaningful depends on Kind; findings are derived data and never
// mutated after Detect returns.
type Finding struct {
	Kind Kind

	// ConsecutiveSameClass
	Day         string
	StartPeriod int
	EndPeriod   int
	Code        string

	// FrequencyImbalance; Days is also set for PeriodSevenLoad.
	Periods []int
	Days    []string
}

// Options tunes the detection thresholds.
type Options struct {
	// ConsecutiveLen is the minimum run length for a same-class run to
	// be reported. Shorter repetition (a double period) is ordinary.
	ConsecutiveLen int
	// MinDays is the minimum number of days sharing a pattern before
	// it is reported.
	MinDays int
	// CheckPeriod7 enables the last-period load rule.
	CheckPeriod7 bool
}

// DefaultOptions returns the thresholds the tool ships with.
func DefaultOptions() Options {
	return Options{ConsecutiveLen: 4, MinDays: 3, CheckPeriod7: true}
}
