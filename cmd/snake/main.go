// snake is a toroidal grid snake game for the terminal.
//
// Usage:
//
//	snake                 - Play locally (same as "snake play")
//	snake play            - Play locally
//	snake serve           - Start SSH server for remote play
//	snake config          - Print the built-in game constants
//
// Global flags:
//
//	--fps <rate>          - Set host frame rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible food placement
//	--log-level <level>   - debug, info, warn or error (default: info)
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Snake on a torus, in your terminal",
	Long: `Steer a snake around a board whose edges wrap onto each other.
Eat food to grow; running into your own tail ends the round.

Available commands:
  play     - Play locally (default)
  serve    - Start SSH server for remote play
  config   - Print the built-in game constants

Examples:
  snake
  snake play --seed 42
  snake serve --ssh :2222
  snake config`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Host frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
