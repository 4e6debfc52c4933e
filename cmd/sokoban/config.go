package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-sokoban/internal/config"
)

var flagInit bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration",
	Long: `Print the built-in default configuration as YAML.

With --init the defaults are written to ~/.sokoban/configs/sokoban.yaml,
where they are picked up on the next start. An existing file is kept.

Examples:
  sokoban config > my-sokoban.yaml
  sokoban config --init`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagInit, "init", false, "Write the defaults to the user config file")
}

func runConfig(_ *cobra.Command, _ []string) {
	if !flagInit {
		//nolint:errcheck // Nothing to do if stdout is gone
		os.Stdout.Write(config.DefaultYAML())
		return
	}

	path := config.UserPath()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot locate home directory")
		os.Exit(1)
	}
	if err := config.WriteDefault(path); err != nil {
		if errors.Is(err, os.ErrExist) {
			fmt.Printf("Config already exists at %s\n", path)
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}
