package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkorolik/tui2048/internal/engine"
	"github.com/mkorolik/tui2048/internal/platform/tui"
	"github.com/mkorolik/tui2048/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores [size]",
	Short: "Show high scores",
	Long: `Display the top 10 high scores for the given board size (default 4).

Examples:
  tui2048 scores
  tui2048 scores 5
  tui2048 scores --interactive`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in a full-screen table")
}

func runScores(cmd *cobra.Command, args []string) {
	boardSize := engine.DefaultBoardSize
	if len(args) == 1 {
		size, err := strconv.Atoi(args[0])
		if err != nil || size < engine.MinBoardSize {
			fmt.Fprintf(os.Stderr, "Error: invalid board size %q\n", args[0])
			os.Exit(1)
		}
		boardSize = size
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error showing scoreboard: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(boardSize, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("High Scores - %dx%d\n", boardSize, boardSize)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'tui2048 play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-10s  %-4s  %s\n", "Rank", "Score", "Max Tile", "Won", "Date")
	fmt.Printf("  %-4s  %-10s  %-10s  %-4s  %s\n", "----", "-----", "--------", "---", "----")

	for i, entry := range scores {
		won := ""
		if entry.Won {
			won = "yes"
		}
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-10d  %-4s  %s\n", i+1, entry.Score, entry.MaxTile, won, dateStr)
	}

	fmt.Println()
	stats, err := store.Stats(boardSize)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Games: %d  Wins: %d  Best tile: %d  Avg score: %.0f\n",
			stats.GamesCount, stats.Wins, stats.BestTile, stats.AvgScore)
	}
}
