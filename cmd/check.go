package cmd

import (
	"fmt"
	"os"

	"github.com/sehyunchoi/timecheck/internal/analysis"
	"github.com/sehyunchoi/timecheck/internal/report"
	"github.com/sehyunchoi/timecheck/internal/sheet"
	"github.com/sehyunchoi/timecheck/internal/utils"
	"github.com/spf13/cobra"
)

var (
	chkSheetName   string
	chkConsecutive int
	chkMinDays     int
	chkPeriod7     bool
	chkMerge       bool
	chkJSON        bool
	chkOutputPath  string
)

var checkCmd = &cobra.Command{
	Use:   "check <file.xlsx>",
	Short: "Check one timetable workbook and print per-teacher findings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		// Defaults come from config; changed flags win.
		sheetName := sheet.DefaultSheetName
		opts := analysis.DefaultOptions()
		merge := false
		wantJSON := false
		if cfg != nil {
			sheetName = cfg.SheetName
			opts.ConsecutiveLen = cfg.ConsecutiveLen
			opts.MinDays = cfg.MinDays
			opts.CheckPeriod7 = cfg.CheckPeriod7
			merge = cfg.MergeDuplicates
			wantJSON = cfg.OutputJSON
		}
		f := cmd.Flags()
		if f.Changed("sheet") {
			sheetName = chkSheetName
		}
		if f.Changed("consecutive") {
			if chkConsecutive < 2 {
				return fmt.Errorf("--consecutive must be at least 2, got %d", chkConsecutive)
			}
			opts.ConsecutiveLen = chkConsecutive
		}
		if f.Changed("min-days") {
			if chkMinDays < 1 {
				return fmt.Errorf("--min-days must be at least 1, got %d", chkMinDays)
			}
			opts.MinDays = chkMinDays
		}
		if f.Changed("check-period7") {
			opts.CheckPeriod7 = chkPeriod7
		}
		if f.Changed("merge-duplicates") {
			merge = chkMerge
		}
		if f.Changed("json") {
			wantJSON = chkJSON
		}

		g, err := sheet.Load(path, sheetName)
		if err != nil {
			return err
		}
		debugf("loaded sheet %q: %d rows, %d merged ranges\n", g.Name, g.MaxRow(), len(g.Merges))

		res, err := runPipeline(g, merge, opts)
		if err != nil {
			return err
		}

		out := res.Report
		if wantJSON {
			summary := report.BuildSummary(path, g.Name, res.Schedule, res.Findings)
			b, err := utils.PrettyJSON(summary)
			if err != nil {
				return err
			}
			out += "\n[JSON 요약]\n" + string(b) + "\n"
		}

		if chkOutputPath != "" {
			if err := utils.SafeWriteFile(chkOutputPath, []byte(out)); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			fmt.Printf("✓ Wrote report to %s\n", chkOutputPath)
			return nil
		}
		fmt.Fprint(os.Stdout, out)
		return nil
	},
}

func init() {
	checkCmd.Flags().StringVar(&chkSheetName, "sheet", sheet.DefaultSheetName, "preferred sheet name (falls back to the first sheet)")
	checkCmd.Flags().IntVar(&chkConsecutive, "consecutive", 4, "minimum same-class run length to report")
	checkCmd.Flags().IntVar(&chkMinDays, "min-days", 3, "minimum days sharing a pattern to report")
	checkCmd.Flags().BoolVar(&chkPeriod7, "check-period7", true, "report heavy 7th-period load")
	checkCmd.Flags().BoolVar(&chkMerge, "merge-duplicates", false, "merge repeated teacher rows instead of rejecting them")
	checkCmd.Flags().BoolVar(&chkJSON, "json", false, "append a JSON summary to the report")
	checkCmd.Flags().StringVar(&chkOutputPath, "output", "", "write the report to a file instead of stdout")
	rootCmd.AddCommand(checkCmd)
}
