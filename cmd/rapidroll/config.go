package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-rapidroll/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the game would run with, as YAML.

The output can be saved to ~/.rapidroll/configs/rapidroll.yaml or passed
with --config after editing.

Examples:
  rapidroll config
  rapidroll config --difficulty easy
  rapidroll config --defaults > rapidroll.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in defaults instead")
}

func runConfig(cmd *cobra.Command, _ []string) {
	data := config.DefaultYAML()
	if !flagConfigDefaults {
		cfg, err := loadGameConfig()
		if err != nil {
			exitf("%v", err)
		}
		if data, err = config.Marshal(cfg); err != nil {
			exitf("%v", err)
		}
	}
	if _, err := cmd.OutOrStdout().Write(data); err != nil {
		exitf("%v", err)
	}
}
