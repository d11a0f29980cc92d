package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/torus-snake/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the built-in game constants",
	Long: `Print the game constants as YAML. They are compiled into the binary;
this command only shows them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		out, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("config: %w", err)
		}
		_, err = cmd.OutOrStdout().Write(out)
		return err
	},
}
