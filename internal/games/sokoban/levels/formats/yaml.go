package formats

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID       string            `yaml:"id"`
	Name     string            `yaml:"name"`
	Map      string            `yaml:"map"`
	Moves    string            `yaml:"moves,omitempty"`
	Metadata map[string]string `yaml:"metadata,omitempty"`
}

// ParseYAML parses a single-level YAML file. The ID defaults to stem
// and the name to the ID.
func ParseYAML(data []byte, stem string) ([]Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return nil, fmt.Errorf("yaml unmarshal: %w", err)
	}
	if strings.TrimSpace(yl.Map) == "" {
		return nil, fmt.Errorf("yaml level %s: missing map", stem)
	}

	id := yl.ID
	if id == "" {
		id = stem
	}
	name := yl.Name
	if name == "" {
		name = id
	}

	return []Level{{
		ID:       id,
		Name:     name,
		Map:      yl.Map,
		Moves:    strings.TrimSpace(yl.Moves),
		Metadata: yl.Metadata,
	}}, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".txt", ".sok", ".yaml", ".yml"}
}

// Parse routes data to the parser for ext.
func Parse(data []byte, ext, stem string) ([]Level, error) {
	switch ext {
	case ".txt", ".sok":
		return ParseText(data, stem)
	case ".yaml", ".yml":
		return ParseYAML(data, stem)
	default:
		return nil, fmt.Errorf("unsupported extension: %s", ext)
	}
}
