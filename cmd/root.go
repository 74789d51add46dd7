package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	cfgpkg "github.com/crgrady/tablescope/internal/config"
)

var (
	// Global flags (wired to config at startup)
	cfgFile     string
	flagDelim   string
	flagMaxRows int

	// Loaded configuration
	cfg *cfgpkg.Global
)

var rootCmd = &cobra.Command{
	Use:   "tablescope",
	Short: "tablescope: quick exploratory analysis for CSV tables",
	Long:  `tablescope loads a CSV file and reports its shape, column kinds, missing values and IQR outliers, and renders per-feature plot grids.`,
}

// Execute is the entry point called by main.main()
func Execute() {
	cobra.OnInitialize(loadConfig)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "✗ Error:", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent global flags available to all subcommands
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.tablescope/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagDelim, "delimiter", "", "CSV delimiter: ',', ';' or 'tab' (default: sniffed)")
	rootCmd.PersistentFlags().IntVar(&flagMaxRows, "max-rows", 0, "maximum data rows to load (overrides config)")
}

func loadConfig() {
	c, err := cfgpkg.Load(cfgFile)
	if err != nil {
		// Non-fatal: fall back to built-in defaults
		fmt.Fprintf(os.Stderr, "⚠ Warning: failed to load config: %v\n", err)
		c = &cfgpkg.Global{MaxRows: 100000, PlotKind: "hist"}
	}
	cfg = c

	// Apply CLI overrides if provided
	f := rootCmd.PersistentFlags()
	if f.Changed("delimiter") {
		cfg.Delimiter = flagDelim
	}
	if f.Changed("max-rows") && flagMaxRows > 0 {
		cfg.MaxRows = flagMaxRows
	}
}
