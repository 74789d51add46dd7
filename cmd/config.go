package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	cfgpkg "github.com/crgrady/tablescope/internal/config"
)

var configSave bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			return fmt.Errorf("configuration not loaded")
		}
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("marshal config: %w", err)
		}
		fmt.Fprint(cmd.OutOrStdout(), string(b))
		if configSave {
			if err := cfgpkg.Save(cfg, cfgFile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✓ Configuration saved")
		}
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configSave, "save", false, "persist the effective configuration to the config file")
	rootCmd.AddCommand(configCmd)
}
