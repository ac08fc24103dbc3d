package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-ladders/internal/config"
)

var flagConfigDump bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the board, computer and display settings in effect after applying
--config or the first file found in ~/.ladders/configs/ladders.yaml and
./configs/ladders.yaml.

With --dump, print the built-in defaults instead, as a starting point for a
custom file.

Examples:
  ladders config
  ladders config --dump > ~/.ladders/configs/ladders.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDump, "dump", false, "Print the built-in default configuration")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDump {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = os.Stdout.Write(out)
	return err
}
