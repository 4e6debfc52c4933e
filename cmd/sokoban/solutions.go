package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var (
	flagLimit int
	flagClear bool
)

var solutionsCmd = &cobra.Command{
	Use:   "solutions [level]",
	Short: "Show recorded solutions",
	Long: `Display recorded solutions for a level, newest first.

Without a level, lists every level that has been solved with its
solution count and best move count.

Examples:
  sokoban solutions
  sokoban solutions classic-2
  sokoban solutions classic-2 --limit 3
  sokoban solutions classic-2 --clear`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSolutions,
}

func init() {
	solutionsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of solutions to show")
	solutionsCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the recorded solutions of the level")
}

func runSolutions(_ *cobra.Command, args []string) {
	loadSettings()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening solutions database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 0 {
		printSolvedLevels(store)
		return
	}

	levelID := args[0]
	title := levelID
	if lvl, findErr := registry.FindLevel(levelID); findErr == nil {
		title = fmt.Sprintf("%s (%s)", lvl.Name, levelID)
	}

	if flagClear {
		solved, err := store.IsSolved(levelID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if !solved {
			fmt.Printf("No solutions recorded for %s\n", title)
			return
		}
		if err := store.ClearSolutions(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error clearing solutions: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared solutions for %s\n", title)
		return
	}

	solutions, err := store.Solutions(levelID, flagLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solutions: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Solutions - %s\n", title)
	fmt.Println()

	if len(solutions) == 0 {
		fmt.Println("No solutions recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'sokoban play %s' to record one.\n", levelID)
		return
	}

	fmt.Printf("  %-16s  %-6s  %-6s  %s\n", "Date", "Moves", "Pushes", "Solution")
	fmt.Printf("  %-16s  %-6s  %-6s  %s\n", "----", "-----", "------", "--------")
	for _, sol := range solutions {
		fmt.Printf("  %-16s  %-6d  %-6d  %s\n",
			sol.CreatedAt.Format("2006-01-02 15:04"), sol.MoveCount, sol.PushCount, sol.Moves)
	}

	fmt.Println()
	fmt.Printf("Replay the latest with 'sokoban play %s --solution'\n", levelID)
}

func printSolvedLevels(store *storage.Store) {
	summaries, err := store.SolvedLevels()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving solutions: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Solved levels")
	fmt.Println()

	if len(summaries) == 0 {
		fmt.Println("Nothing solved yet.")
		return
	}

	fmt.Printf("  %-20s  %-9s  %-5s  %s\n", "Level", "Solutions", "Best", "Last")
	fmt.Printf("  %-20s  %-9s  %-5s  %s\n", "-----", "---------", "----", "----")
	for _, s := range summaries {
		fmt.Printf("  %-20s  %-9d  %-5d  %s\n",
			s.LevelID, s.Solutions, s.BestMoves, s.LastAt.Format("2006-01-02 15:04"))
	}
}
