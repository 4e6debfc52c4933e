// Package formats provides pluggable level file format parsers.
package formats

import (
	"fmt"
	"regexp"
	"strings"
)

// Level is a level definition as read from a file, before its map is
// parsed into a playable grid.
type Level struct {
	ID       string
	Name     string
	Map      string
	Moves    string // Recorded moves to resume from, may be empty
	Metadata map[string]string
}

var (
	commentLine = regexp.MustCompile(`(?m)^;.*$`)
	blankRun    = regexp.MustCompile(`\n{2,}`)
)

// SplitCollection splits a level collection into individual level texts.
// Lines starting with ';' are comments; levels are separated by one or
// more blank lines.
func SplitCollection(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = commentLine.ReplaceAllString(text, "")
	text = strings.Trim(text, "\n")
	if text == "" {
		return nil
	}
	return blankRun.Split(text, -1)
}

// ParseText parses a plain-text collection. Levels get the IDs
// "<stem>-1", "<stem>-2", ... in file order.
func ParseText(data []byte, stem string) ([]Level, error) {
	blocks := SplitCollection(string(data))
	if len(blocks) == 0 {
		return nil, fmt.Errorf("text collection %s: no levels", stem)
	}

	levels := make([]Level, 0, len(blocks))
	for i, block := range blocks {
		levels = append(levels, Level{
			ID:   fmt.Sprintf("%s-%d", stem, i+1),
			Name: fmt.Sprintf("Level %d", i+1),
			Map:  block,
		})
	}
	return levels, nil
}
