package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/pkazakov/termgames/internal/config"
	"github.com/pkazakov/termgames/internal/core"
	"github.com/pkazakov/termgames/internal/games/flappy"
	"github.com/pkazakov/termgames/internal/games/g2048"
	"github.com/pkazakov/termgames/internal/games/racer"
	"github.com/pkazakov/termgames/internal/games/snake"
	"github.com/pkazakov/termgames/internal/games/tetris"
	"github.com/pkazakov/termgames/internal/platform/tui"
	"github.com/pkazakov/termgames/internal/registry"
	"github.com/pkazakov/termgames/internal/storage"
)

var flagConfig string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Move/steer
  Mouse drag   - Swipe (2048)
  Space        - Jump/Flap
  P/Esc        - Pause
  R            - Restart (after game over)
  Q/Ctrl+C     - Quit

Examples:
  termgames play 2048
  termgames play snake
  termgames play 2048 --config ./my-2048.yaml
  termgames play 2048 --seed 42`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

// applyGameOptions points a game at its config file before creation and
// wires per-game platform settings.
func applyGameOptions(gameID string) {
	switch gameID {
	case "2048":
		g2048.SetConfigPath(flagConfig)
		if cfg, err := config.LoadG2048(flagConfig); err == nil {
			tui.SetSwipeThreshold(cfg.Input.SwipeThreshold)
		}
	case "snake":
		snake.SetConfigPath(flagConfig)
	case "tetris":
		tetris.SetConfigPath(flagConfig)
	case "flappy":
		flappy.SetConfigPath(flagConfig)
	case "racer":
		racer.SetConfigPath(flagConfig)
	}
}

// terminalSize reports the current terminal dimensions, falling back to
// a standard 80x24 when stdout is not a terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return width, height
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'termgames list' to see available games.")
		os.Exit(1)
	}

	width, height := terminalSize()
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	applyGameOptions(gameID)

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
