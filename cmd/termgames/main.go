// termgames is a TUI portal for playing retro-style games in the terminal.
//
// Usage:
//
//	termgames list              - List available games
//	termgames play <game>       - Play a game
//	termgames menu              - Start menu to pick games interactively
//	termgames serve             - Start SSH server for remote play
//	termgames scores <game>     - Show high scores for a game
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.termgames/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/pkazakov/termgames/internal/games/flappy"
	_ "github.com/pkazakov/termgames/internal/games/g2048"
	_ "github.com/pkazakov/termgames/internal/games/racer"
	_ "github.com/pkazakov/termgames/internal/games/snake"
	_ "github.com/pkazakov/termgames/internal/games/tetris"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "termgames",
	Short: "Term Games - Play retro games in your terminal",
	Long: `Term Games is a terminal gaming portal for classic-style games.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive game picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  termgames list
  termgames play 2048
  termgames menu
  termgames serve --ssh :2222
  termgames scores 2048`,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.termgames/scores.db", "Path to scores database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
