package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crgrady/tablescope/internal/eda"
)

var descSchema bool

var describeCmd = &cobra.Command{
	Use:   "describe <file>",
	Short: "Print dataset shape and feature counts",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset(args[0])
		if err != nil {
			return err
		}
		eda.Describe(cmd.OutOrStdout(), ds)
		if descSchema {
			fmt.Fprintln(cmd.OutOrStdout())
			for _, name := range ds.Names() {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s: %s\n", name, ds.Kind(name))
			}
		}
		return nil
	},
}

func init() {
	describeCmd.Flags().BoolVar(&descSchema, "schema", false, "also list every column with its kind")
	rootCmd.AddCommand(describeCmd)
}
