package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/crgrady/tablescope/internal/plotgrid"
	"github.com/crgrady/tablescope/internal/report"
)

var (
	repOut    string
	repTarget string
	repKind   string
	repCorr   bool
)

var reportCmd = &cobra.Command{
	Use:   "report <file>",
	Short: "Write a full EDA report bundle (summary, tables, plots)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		dir := repOut
		if dir == "" && cfg != nil {
			dir = cfg.ReportsDir
		}
		if dir == "" {
			dir = "reports"
		}

		opt := report.Options{
			Target:       repTarget,
			PlotKind:     plotgrid.Kind(repKind),
			Correlations: repCorr,
		}
		if !cmd.Flags().Changed("correlations") && cfg != nil {
			opt.Correlations = cfg.Correlations
		}
		if repKind == "" && cfg != nil {
			opt.PlotKind = plotgrid.Kind(cfg.PlotKind)
		}
		if cfg != nil {
			opt.PlotWidth = vg.Length(cfg.PlotWidthCM) * vg.Centimeter
			opt.PlotHeight = vg.Length(cfg.PlotHeightCM) * vg.Centimeter
		}

		run, err := report.Write(dir, args[0], ds, opt)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Report %s written to %s\n", run.ID, run.Dir)
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVarP(&repOut, "out", "o", "", "reports directory (default from config)")
	reportCmd.Flags().StringVar(&repTarget, "target", "", "target column; enables plot output")
	reportCmd.Flags().StringVar(&repKind, "kind", "", "plot kind: scatter, box or hist")
	reportCmd.Flags().BoolVar(&repCorr, "correlations", false, "include a Pearson correlation matrix")
	rootCmd.AddCommand(reportCmd)
}
