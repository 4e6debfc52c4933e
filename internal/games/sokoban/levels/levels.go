// Package levels provides level loading functionality for Sokoban.
// This package depends on core but core does not depend on levels.
package levels

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"sort"
	"strings"

	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels/formats"
)

// ErrNotFound is returned by LoadByID when no level has the requested ID.
var ErrNotFound = errors.New("level not found")

// Level represents a complete level definition.
type Level struct {
	ID       string
	Name     string
	Map      string
	Moves    string // Recorded moves applied when a session starts
	Metadata map[string]string
	FilePath string
	Index    int // Position within FilePath, starting at 0
}

// Parse parses the level map into a playable grid.
func (l *Level) Parse() (*core.Level, error) {
	grid, err := core.Parse(l.Map)
	if err != nil {
		return nil, fmt.Errorf("level %s: %w", l.ID, err)
	}
	return grid, nil
}

// NewSession parses the map and replays the recorded moves, if any.
// The replay report is returned so the caller can surface truncation.
func (l *Level) NewSession(timing core.AutoPlayTiming) (*core.Session, core.ReplayResult, error) {
	grid, err := l.Parse()
	if err != nil {
		return nil, core.ReplayResult{}, err
	}
	s, res := core.NewSessionFromReplay(grid, l.Moves, timing)
	return s, res, nil
}

// Loader handles loading levels from a file system.
type Loader struct {
	FS   fs.FS
	Root string // Display name of the source, used in errors

	// Skipped holds one error per file or level that could not be
	// loaded during the last LoadAll.
	Skipped []error
}

// NewLoader creates a loader over fsys.
func NewLoader(fsys fs.FS, root string) *Loader {
	return &Loader{FS: fsys, Root: root}
}

// NewDirLoader creates a loader over a directory on disk.
func NewDirLoader(dir string) *Loader {
	return NewLoader(os.DirFS(dir), dir)
}

// LoadAll recursively scans and loads all level files.
// Files and levels that fail to read or parse are skipped and recorded
// in Skipped. Returns levels sorted by file path, then position.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level
	l.Skipped = nil

	err := fs.WalkDir(l.FS, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() {
			return nil
		}

		ext := strings.ToLower(path.Ext(p))
		if !isSupportedExtension(ext) {
			return nil
		}

		fileLevels, err := l.LoadFile(p)
		if err != nil {
			l.Skipped = append(l.Skipped, err)
			return nil
		}

		for _, lvl := range fileLevels {
			if _, err := lvl.Parse(); err != nil {
				l.Skipped = append(l.Skipped, fmt.Errorf("%s: %w", p, err))
				continue
			}
			levels = append(levels, lvl)
		}
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", l.Root, err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		if levels[i].FilePath != levels[j].FilePath {
			return levels[i].FilePath < levels[j].FilePath
		}
		return levels[i].Index < levels[j].Index
	})

	return levels, nil
}

// LoadFile loads every level defined in a single file.
// The levels are not parsed.
func (l *Loader) LoadFile(p string) ([]Level, error) {
	data, err := fs.ReadFile(l.FS, p)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", p, err)
	}

	ext := strings.ToLower(path.Ext(p))
	stem := strings.TrimSuffix(path.Base(p), path.Ext(p))
	parsed, err := formats.Parse(data, ext, stem)
	if err != nil {
		return nil, fmt.Errorf("parsing file %s: %w", p, err)
	}

	result := make([]Level, len(parsed))
	for i, f := range parsed {
		result[i] = Level{
			ID:       f.ID,
			Name:     f.Name,
			Map:      f.Map,
			Moves:    f.Moves,
			Metadata: f.Metadata,
			FilePath: p,
			Index:    i,
		}
	}
	return result, nil
}

// LoadByID loads a specific level by ID.
func (l *Loader) LoadByID(id string) (Level, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return Level{}, err
	}

	for _, lvl := range levels {
		if lvl.ID == id {
			return lvl, nil
		}
	}

	return Level{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all level IDs in load order.
func (l *Loader) ListIDs() ([]string, error) {
	levels, err := l.LoadAll()
	if err != nil {
		return nil, err
	}

	ids := make([]string, len(levels))
	for i, lvl := range levels {
		ids[i] = lvl.ID
	}
	return ids, nil
}

func isSupportedExtension(ext string) bool {
	for _, supported := range formats.FormatExtensions() {
		if ext == supported {
			return true
		}
	}
	return false
}
