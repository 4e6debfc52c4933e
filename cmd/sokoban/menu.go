package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick levels from an interactive list",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate and Enter to play a level. Esc in a
level returns to the list. The list shows the best recorded solution of
each level.

Examples:
  sokoban menu
  sokoban menu --levels ./my-levels
  sokoban menu --set builtin`,
	Run: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagSet, "set", "", "Only list levels of this collection")
}

func runMenu(_ *cobra.Command, _ []string) {
	settings := loadSettings()
	lvls := loadLevels(flagSet)

	store := openStore()

	runErr := tui.RunApp(lvls, store, runtimeConfig(), settings, logger)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
