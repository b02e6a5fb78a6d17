package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/registry"
	"github.com/vovakirdan/tui-pong/internal/storage"
)

var flagBoard bool

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show best rallies for a variant",
	Long: `Display the ten fastest wins for the specified variant.

Examples:
  pong scores duel
  pong scores duel --board`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagBoard, "board", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) {
	variantID := args[0]

	if !registry.Exists(variantID) {
		fmt.Fprintf(os.Stderr, "Error: unknown variant %q\n", variantID)
		fmt.Fprintln(os.Stderr, "Run 'pong list' to see available variants.")
		os.Exit(1)
	}

	// Get variant title
	g, err := registry.Create(variantID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating variant: %v\n", err)
		os.Exit(1)
	}
	title := g.Title()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening rallies database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagBoard {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if _, sbErr := tui.RunScoreboard(store, width, height); sbErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			os.Exit(1)
		}
		return
	}

	rallies, err := store.BestRallies(variantID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving rallies: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Rallies - %s\n", title)
	fmt.Println()

	if len(rallies) == 0 {
		fmt.Println("No wins recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'pong play %s' to set the first best time!\n", variantID)
		return
	}

	fmt.Printf("  %-4s  %-10s  %-7s  %-7s  %s\n", "Rank", "Win Time", "Score", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-7s  %-7s  %s\n", "----", "--------", "-----", "-----", "----")

	for i, entry := range rallies {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10s  %-7d  %-7d  %s\n",
			i+1, fmt.Sprintf("%.2fs", entry.WinTimeSecs), entry.Score, entry.Level, dateStr)
	}

	fmt.Println()
	best, err := store.BestTime(variantID)
	if err == nil && best > 0 {
		fmt.Printf("Best: %.2fs\n", best)
	}
}
