package cmd

import (
	"fmt"
	"strings"

	"github.com/sehyunchoi/timecheck/internal/analysis"
	"github.com/sehyunchoi/timecheck/internal/report"
	"github.com/sehyunchoi/timecheck/internal/schedule"
	"github.com/sehyunchoi/timecheck/internal/sheet"
	"github.com/spf13/cobra"
)

var selfTestCmd = &cobra.Command{
	Use:   "self-test",
	Short: "Run the pipeline against an embedded sample grid and verify exact output",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := runSelfTest(); err != nil {
			return err
		}
		fmt.Println("✓ 자체 테스트가 통과했습니다.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(selfTestCmd)
}

// runSelfTest executes the whole pipeline over sampleGrid with default
// thresholds and checks the exact report sentences.
func runSelfTest() error {
	res, err := runPipeline(sampleGrid(), false, analysis.DefaultOptions())
	if err != nil {
		return fmt.Errorf("self-test pipeline: %w", err)
	}
	expected := []string{
		"이 시간표는 심가영 선생님이 수요일에 1~4교시 연속 1학년 1반(101)입니다.",
		"이 시간표는 박규리 선생님이 5일 중 3일 이상 (1,4,5,7)교시에 수업이 있는 시간표입니다. (해당 요일: 월,수,금)",
		"이 시간표는 박규리 선생님이 5일 중 3일 이상 7교시에 수업이 있는 시간표입니다. (해당 요일: 월,수,금)",
		"=== 이도현 선생님 ===\n" + report.NoFindings,
	}
	for _, want := range expected {
		if !strings.Contains(res.Report, want) {
			return fmt.Errorf("self-test failed: report is missing %q", want)
		}
	}
	return nil
}

// sampleGrid is the fixed workbook shape the tool expects, in memory:
// row 1 title, row 2 weekday labels, row 3 period numbers 1..7 per
// block, teachers from row 4. Three teachers cover the three rules and
// the no-findings fallback.
func sampleGrid() *sheet.Grid {
	cells := make([][]string, 6)
	for i := range cells {
		cells[i] = make([]string, 1+len(schedule.DaysOrder)*schedule.PeriodsPerDay)
	}
	set := func(row, col int, v string) { cells[row-1][col-1] = v }
	dayStart := func(i int) int { return 2 + i*schedule.PeriodsPerDay }

	set(1, 1, "주간시간표")
	for i, day := range schedule.DaysOrder {
		set(2, dayStart(i), day)
		for p := 1; p <= schedule.PeriodsPerDay; p++ {
			set(3, dayStart(i)+p-1, fmt.Sprint(p))
		}
	}

	// 심가영: four straight periods of class 101 on Wednesday.
	set(4, 1, "심가영")
	for p := 1; p <= 4; p++ {
		set(4, dayStart(2)+p-1, "101\n국어")
	}

	// 박규리: identical occupancy {1,4,5,7} on Mon/Wed/Fri, a different
	// shape on Tuesday, Thursday free.
	set(5, 1, "박규리")
	for _, i := range []int{0, 2, 4} {
		for _, p := range []int{1, 4, 5, 7} {
			set(5, dayStart(i)+p-1, "203\n수학")
		}
	}
	set(5, dayStart(1)+1, "305\n영어")
	set(5, dayStart(1)+2, "305\n영어")

	// 이도현: a single ordinary period, nothing to report.
	set(6, 1, "이도현")
	set(6, dayStart(0), "102\n사회")

	return sheet.NewGrid(sheet.DefaultSheetName, cells)
}
