package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows every level of every registered collection.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	loadSettings()

	collections := registry.List()
	if len(collections) == 0 {
		fmt.Println("No level collections available.")
		return
	}

	for _, info := range collections {
		lvls := loadLevels(info.ID)

		fmt.Printf("%s (%s)\n", info.Title, info.ID)
		fmt.Println()

		if len(lvls) == 0 {
			fmt.Println("  No levels.")
			fmt.Println()
			continue
		}

		maxIDLen := 2 // "ID" header
		for _, l := range lvls {
			if len(l.ID) > maxIDLen {
				maxIDLen = len(l.ID)
			}
		}

		fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Name")
		fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "----")
		for _, l := range lvls {
			fmt.Printf("  %-*s  %s\n", maxIDLen, l.ID, l.Name)
		}
		fmt.Println()
	}

	fmt.Println("Run 'sokoban play <id>' to play a level.")
}
