// sokoban is a terminal Sokoban player with undo/redo history, move
// replays and a solution log.
//
// Usage:
//
//	sokoban list                  - List available levels
//	sokoban play [level]          - Play a level
//	sokoban menu                  - Pick levels interactively
//	sokoban check <file>          - Validate a level file and its recorded moves
//	sokoban solutions [level]     - Show recorded solutions
//	sokoban serve                 - Start SSH server for remote play
//	sokoban config                - Print or install the default config
//
// Global flags:
//
//	--fps <rate>      - Set tick rate (default: 60)
//	--db <path>       - Set database path (default: ~/.sokoban/solutions.db)
//	--config <path>   - Use a specific config file
//	--levels <dir>    - Add a directory of level files
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	_ "github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/builtin" // Register builtin levels
	"github.com/vovakirdan/tui-sokoban/internal/registry"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// dirCollectionID is the registry ID of the --levels directory.
const dirCollectionID = "dir"

var (
	// Global flags
	flagFPS       int
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagVerbose   bool

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "sokoban",
	})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "sokoban",
	Short: "Sokoban - push boxes in your terminal",
	Long: `Sokoban is a terminal box-pushing puzzle player.

Every move is kept in a history you can step through: walking back onto
the previous square is an undo, repeating an undone move is a redo, and
any other move starts a new branch. Solutions are recorded so they can be
listed and replayed.

Available commands:
  list       - Show all available levels
  play       - Play a level directly
  menu       - Interactive level picker
  check      - Validate level files
  solutions  - View recorded solutions
  serve      - Start SSH server for remote play
  config     - Print or install the default config

Examples:
  sokoban list
  sokoban play classic-2
  sokoban play pair --moves rruulDL
  sokoban menu --levels ./my-levels
  sokoban check ./my-levels/set.txt
  sokoban serve --ssh :2222`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if flagVerbose {
			logger.SetLevel(log.DebugLevel)
		}
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.sokoban/solutions.db", "Path to solutions database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(solutionsCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}

// loadSettings loads the config file and registers the extra level
// directory from --levels or the config.
func loadSettings() config.SokobanConfig {
	settings, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir := flagLevelsDir
	if dir == "" {
		dir = settings.Levels.Dir
	}
	if dir != "" && !registry.Exists(dirCollectionID) {
		registry.Register(registry.Collection{
			ID:    dirCollectionID,
			Title: dir,
			Load:  dirLoader(dir),
		})
	}
	return settings
}

// dirLoader loads a level directory, logging files that were skipped.
func dirLoader(dir string) func() ([]levels.Level, error) {
	return func() ([]levels.Level, error) {
		loader := levels.NewDirLoader(dir)
		lvls, err := loader.LoadAll()
		for _, skipped := range loader.Skipped {
			logger.Warn("skipping level", "error", skipped)
		}
		return lvls, err
	}
}

// loadLevels returns the levels of one collection, or of all collections
// when set is empty.
func loadLevels(set string) []levels.Level {
	var (
		lvls []levels.Level
		err  error
	)
	if set == "" {
		lvls, err = registry.LoadAll()
	} else {
		var c registry.Collection
		c, err = registry.Get(set)
		if err == nil {
			lvls, err = c.Load()
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading levels: %v\n", err)
		os.Exit(1)
	}
	return lvls
}

// runtimeConfig builds the runtime config from the terminal size.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	return cfg
}

// openStore opens the solution log. Playing works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open solutions database", "path", flagDBPath, "error", err)
		return nil
	}
	return store
}
