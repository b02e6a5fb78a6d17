// pong is a TUI pong simulation played against a CPU paddle.
//
// Usage:
//
//	pong list              - List available variants
//	pong play <variant>    - Play a variant
//	pong menu              - Start menu to pick variants interactively
//	pong serve             - Start SSH server for remote play
//	pong scores <variant>  - Show best rallies for a variant
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 40)
//	--seed <value>  - Set RNG seed for reproducible rallies
//	--db <path>     - Set database path (default: ~/.pong/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game package to register variants
	_ "github.com/vovakirdan/tui-pong/internal/game"
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
	Use:   "pong",
	Short: "Pong - A terminal pong rally against the machine",
	Long: `Pong is a terminal-based pong simulation. Keep the rally going
against a CPU paddle, survive the speed ramp, and reach ten points
to win.

Available commands:
  list     - Show all available variants
  play     - Play a specific variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View best rallies

Examples:
  pong list
  pong play duel
  pong menu
  pong serve --ssh :2222
  pong scores duel`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 40, "Tick rate (ticks per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.pong/scores.db", "Path to rallies database")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
