package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mkorolik/tui2048/internal/core"
	"github.com/mkorolik/tui2048/internal/games/t2048"
	"github.com/mkorolik/tui2048/internal/platform/tui"
	"github.com/mkorolik/tui2048/internal/registry"
	"github.com/mkorolik/tui2048/internal/storage"
)

var (
	flagConfig string
	flagGoal   int
)

var playCmd = &cobra.Command{
	Use:   "play [size]",
	Short: "Play 2048",
	Long: `Start a game on an NxN board. The optional size argument overrides
the configured board dimension (minimum 2, default 4).

Controls:
  Arrows/WASD/HJKL - Slide tiles
  P                - Pause
  R                - Restart (after game over)
  Q/Ctrl+C         - Quit

Examples:
  tui2048 play
  tui2048 play 5
  tui2048 play --goal 2048
  tui2048 play --config ./my-game.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagGoal, "goal", -1, "Win target tile (0 disables, -1 keeps config value)")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	t2048.SetConfigPath(flagConfig)
	t2048.SetGoalTile(flagGoal)

	if len(args) == 1 {
		size, err := strconv.Atoi(args[0])
		if err != nil || size < 2 {
			fmt.Fprintf(os.Stderr, "Warning: invalid board size %q, using default\n", args[0])
		} else {
			t2048.SetBoardSize(size)
		}
	}

	game, err := registry.Create("2048")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
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
