package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"github.com/crgrady/tablescope/internal/plotgrid"
)

var (
	plotTarget   string
	plotKind     string
	plotOut      string
	plotWidthCM  float64
	plotHeightCM float64
)

var plotCmd = &cobra.Command{
	Use:   "plot <file>",
	Short: "Render a grid of per-feature plots to a PNG",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		kind := plotKind
		if kind == "" && cfg != nil {
			kind = cfg.PlotKind
		}
		grid, err := plotgrid.Build(ds, plotTarget, plotgrid.Kind(kind))
		if err != nil {
			return err
		}
		if grid.Rows == 0 {
			return fmt.Errorf("no numeric feature columns to plot")
		}

		width, height := plotWidthCM, plotHeightCM
		if width <= 0 && cfg != nil {
			width = cfg.PlotWidthCM
		}
		if height <= 0 && cfg != nil {
			height = cfg.PlotHeightCM
		}
		if width <= 0 {
			width = float64(grid.Cols) * 10
		}
		if height <= 0 {
			height = float64(grid.Rows) * 8
		}

		f, err := os.Create(plotOut)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		if err := grid.WritePNG(f, vg.Length(width)*vg.Centimeter, vg.Length(height)*vg.Centimeter); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s (%dx%d grid)\n", plotOut, grid.Rows, grid.Cols)
		return nil
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotTarget, "target", "", "target column (required)")
	plotCmd.Flags().StringVar(&plotKind, "kind", "", "plot kind: scatter, box or hist (default from config)")
	plotCmd.Flags().StringVarP(&plotOut, "out", "o", "eda.png", "output PNG path")
	plotCmd.Flags().Float64Var(&plotWidthCM, "width-cm", 0, "canvas width in centimeters")
	plotCmd.Flags().Float64Var(&plotHeightCM, "height-cm", 0, "canvas height in centimeters")
	_ = plotCmd.MarkFlagRequired("target")
	rootCmd.AddCommand(plotCmd)
}
