package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// SheetName is the sheet the loader prefers; the first sheet is
	// used when the workbook has no sheet by this name.
	SheetName string `mapstructure:"sheet_name" yaml:"sheet_name"`
	// ConsecutiveLen is the minimum same-class run length reported.
	ConsecutiveLen int `mapstructure:"consecutive_len" yaml:"consecutive_len"`
	// MinDays is the minimum number of days sharing a pattern.
	MinDays int `mapstructure:"min_days" yaml:"min_days"`
	// CheckPeriod7 enables the last-period load rule.
	CheckPeriod7 bool `mapstructure:"check_period7" yaml:"check_period7"`
	// MergeDuplicates folds repeated teacher rows instead of rejecting.
	MergeDuplicates bool `mapstructure:"merge_duplicates" yaml:"merge_duplicates"`
	// OutputJSON appends the JSON summary to every check run.
	OutputJSON bool `mapstructure:"output_json" yaml:"output_json"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.timecheck/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".timecheck")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("TIMECHECK")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("sheet_name", "주간시간표")
	v.SetDefault("consecutive_len", 4)
	v.SetDefault("min_days", 3)
	v.SetDefault("check_period7", true)
	v.SetDefault("merge_duplicates", false)
	v.SetDefault("output_json", false)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".timecheck")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.ConsecutiveLen < 2 {
		return nil, fmt.Errorf("consecutive_len must be at least 2, got %d", c.ConsecutiveLen)
	}
	if c.MinDays < 1 {
		return nil, fmt.Errorf("min_days must be at least 1, got %d", c.MinDays)
	}
	return &c, nil
}
