package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
	"github.com/vovakirdan/torus-snake/internal/platform/tui"
)

var flagScreenshots string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play locally",
	Long: `Start a game in this terminal.

Controls:
  Arrows/WASD  - Steer
  P/Space      - Pause
  R            - Restart (after game over)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Examples:
  snake play
  snake play --seed 42
  snake play --log-level debug --log-file snake.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshots, "screenshots", "", "Screenshot directory (default: ~/.torus-snake/screenshots)")
}

func runPlay(_ *cobra.Command, _ []string) (err error) {
	// The TUI owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger("snake", io.Discard)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closeLog())
	}()

	gameCfg, loadErr := config.Load()
	if loadErr != nil {
		logger.Warn("using default game constants", "error", loadErr)
	}

	cfg := playConfig()

	shotDir := flagScreenshots
	if shotDir == "" {
		if home, homeErr := os.UserHomeDir(); homeErr == nil {
			shotDir = filepath.Join(home, ".torus-snake", "screenshots")
		}
	}

	logger.Info("starting game", "seed", cfg.Seed, "fps", cfg.FPS, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	game := snake.New(gameCfg, cfg.Seed)

	if runErr := tui.Run(game, gameCfg, cfg, logger, shotDir); runErr != nil {
		return fmt.Errorf("running game: %w", runErr)
	}
	return nil
}

// playConfig builds the host settings from the terminal and global flags.
func playConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.FPS = flagFPS
	}
	cfg.Seed = flagSeed
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg
}
