package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/martinus/hexler/pkg/configuration"
	"github.com/spf13/cobra"
)

var configInit bool // Save the effective configuration to the config file

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the configuration file",
	Long: `Prints the effective configuration as JSON, after the config file and the
HEXLER_LOG_FILE / HEXLER_JSON_LOGS overrides are applied.

Examples:
  testpattern config
  testpattern config --init`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := configuration.Load()
		if err != nil {
			return err
		}

		if configInit {
			if err := cfg.Save(); err != nil {
				return err
			}
			path, err := configuration.GetConfigPath()
			if err != nil {
				return err
			}
			logger.Log("saved configuration to " + path)
			fmt.Fprintf(cmd.OutOrStdout(), "Saved configuration to %s\n", path)
			return nil
		}

		data, err := json.MarshalIndent(cfg, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal config: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	},
}

func init() {
	configCmd.Flags().BoolVar(&configInit, "init", false, "Write the effective configuration to ~/.hexler/config.json")
	rootCmd.AddCommand(configCmd)
}
