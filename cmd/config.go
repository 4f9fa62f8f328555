package cmd

import (
	"fmt"
	"strconv"

	cfgpkg "github.com/sehyunchoi/timecheck/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set timecheck configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("sheet_name: %s\n", cfg.SheetName)
		fmt.Printf("consecutive_len: %d\n", cfg.ConsecutiveLen)
		fmt.Printf("min_days: %d\n", cfg.MinDays)
		fmt.Printf("check_period7: %t\n", cfg.CheckPeriod7)
		fmt.Printf("merge_duplicates: %t\n", cfg.MergeDuplicates)
		fmt.Printf("output_json: %t\n", cfg.OutputJSON)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "sheet_name":
			if val == "" {
				return fmt.Errorf("sheet_name must not be empty")
			}
			cfg.SheetName = val
		case "consecutive_len":
			n, err := strconv.Atoi(val)
			if err != nil || n < 2 {
				return fmt.Errorf("invalid consecutive_len: %s (need an integer >= 2)", val)
			}
			cfg.ConsecutiveLen = n
		case "min_days":
			n, err := strconv.Atoi(val)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid min_days: %s (need an integer >= 1)", val)
			}
			cfg.MinDays = n
		case "check_period7", "merge_duplicates", "output_json":
			b, err := strconv.ParseBool(val)
			if err != nil {
				return fmt.Errorf("invalid %s: %s (need true or false)", key, val)
			}
			switch key {
			case "check_period7":
				cfg.CheckPeriod7 = b
			case "merge_duplicates":
				cfg.MergeDuplicates = b
			case "output_json":
				cfg.OutputJSON = b
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
