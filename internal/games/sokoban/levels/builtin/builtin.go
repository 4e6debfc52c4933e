// Package builtin embeds the levels shipped with the binary and registers
// them as the "builtin" collection.
package builtin

import (
	"embed"
	"io/fs"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/registry"
)

// CollectionID is the registry ID of the embedded collection.
const CollectionID = "builtin"

//go:embed *.txt *.yaml
var files embed.FS

// FS returns the embedded level files.
func FS() fs.FS {
	return files
}

// Load loads all embedded levels.
func Load() ([]levels.Level, error) {
	return levels.NewLoader(files, CollectionID).LoadAll()
}

func init() {
	registry.Register(registry.Collection{
		ID:    CollectionID,
		Title: "Built-in levels",
		Load:  Load,
	})
}
