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
	// CSV loading
	Delimiter string `mapstructure:"delimiter" yaml:"delimiter"`
	MaxRows   int    `mapstructure:"max_rows" yaml:"max_rows"`

	// Plot output
	PlotKind     string  `mapstructure:"plot_kind" yaml:"plot_kind"`
	PlotWidthCM  float64 `mapstructure:"plot_width_cm" yaml:"plot_width_cm"`
	PlotHeightCM float64 `mapstructure:"plot_height_cm" yaml:"plot_height_cm"`

	// Report bundles
	ReportsDir   string `mapstructure:"reports_dir" yaml:"reports_dir"`
	Correlations bool   `mapstructure:"correlations" yaml:"correlations"`
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.tablescope/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tablescope")
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
	v.SetEnvPrefix("TABLESCOPE")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("delimiter", "")
	v.SetDefault("max_rows", 100000)
	v.SetDefault("plot_kind", "hist")
	v.SetDefault("plot_width_cm", 0.0)
	v.SetDefault("plot_height_cm", 0.0)
	v.SetDefault("correlations", false)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".tablescope")
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
	// Resolve reports_dir default: ~/.tablescope/reports
	if c.ReportsDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		c.ReportsDir = filepath.Join(home, ".tablescope", "reports")
	}
	return &c, nil
}
