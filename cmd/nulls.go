package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crgrady/tablescope/internal/eda"
)

var nullsCmd = &cobra.Command{
	Use:   "nulls <file>",
	Short: "Report missing-value counts and percentages per column",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		rep, err := eda.NullReport(ds)
		if err != nil {
			return err
		}
		if rep.Nrow() == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "✓ No missing values")
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), rep)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(nullsCmd)
}
