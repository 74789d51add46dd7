package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crgrady/tablescope/internal/eda"
)

var outliersCmd = &cobra.Command{
	Use:   "outliers <file>",
	Short: "Report IQR outliers per numeric column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		rep, err := eda.OutlierReport(ds)
		if err != nil {
			return err
		}
		if rep.Nrow() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "✓ No outliers detected")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), rep)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(outliersCmd)
}
