package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var (
	flagMoves    string
	flagSet      string
	flagSolution bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or the first available one.

Controls:
  Arrows/WASD/HJKL - Move
  U/Z/Backspace    - Undo          Y/Ctrl+R - Redo
  [ / ]            - Previous / next push
  Home / End       - Start / end of history
  Space            - Auto-play through the redo history
  R                - Restart (drops history)
  ?                - Toggle full help
  Esc/Q            - Quit

Recorded moves use u, d, l, r with upper case for pushes. They are
replayed into history when the level starts; use Home and Space to watch
them.

Examples:
  sokoban play
  sokoban play classic-3
  sokoban play pair --moves rruulDLulDrdR
  sokoban play pair --solution
  sokoban play set-4 --set dir --levels ./my-levels`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMoves, "moves", "", "Moves to replay before play starts")
	playCmd.Flags().StringVar(&flagSet, "set", "", "Collection to pick the level from")
	playCmd.Flags().BoolVar(&flagSolution, "solution", false, "Replay the latest recorded solution")
}

func runPlay(cmd *cobra.Command, args []string) {
	settings := loadSettings()

	lvl, err := pickLevel(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "Run 'sokoban list' to see available levels.")
		os.Exit(1)
	}

	store := openStore()

	switch {
	case flagMoves != "":
		lvl.Moves = flagMoves
	case flagSolution:
		if store == nil {
			fmt.Fprintln(os.Stderr, "Error: --solution needs the solutions database")
			os.Exit(1)
		}
		sol, solErr := store.LatestSolution(lvl.ID)
		if solErr != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", solErr)
			os.Exit(1)
		}
		if sol == nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: no recorded solution for %q\n", lvl.ID)
			os.Exit(1)
		}
		lvl.Moves = sol.Moves
	}

	cfg := runtimeConfig()
	game, err := tui.StartGame(lvl, settings, cfg, logger)
	if err != nil {
		if store != nil {
			store.Close()
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(game, store, cfg, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// pickLevel finds the requested level, or the first one of the set.
func pickLevel(args []string) (levels.Level, error) {
	lvls := loadLevels(flagSet)
	if len(lvls) == 0 {
		return levels.Level{}, errors.New("no levels available")
	}
	if len(args) == 0 {
		return lvls[0], nil
	}

	for _, l := range lvls {
		if l.ID == args[0] {
			return l, nil
		}
	}
	if flagSet != "" {
		return levels.Level{}, fmt.Errorf("%w: %q in collection %q", levels.ErrNotFound, args[0], flagSet)
	}
	return registry.FindLevel(args[0])
}
