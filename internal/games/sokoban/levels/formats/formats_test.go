package formats

import (
	"strings"
	"testing"
)

func TestSplitCollection(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"only comments", "; a\n; b\n", nil},
		{"single", "\n\n#@$.#\n\n", []string{"#@$.#"}},
		{
			"comment between levels",
			"; head\n\n#@$.#\n\n; next\n#@.$#\n",
			[]string{"#@$.#", "#@.$#"},
		},
		{
			"crlf",
			"#@$.#\r\n#####\r\n\r\n\r\n#@.$#\r\n",
			[]string{"#@$.#\n#####", "#@.$#"},
		},
		{"keeps leading spaces", "  ###\n###@#", []string{"  ###\n###@#"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitCollection(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("block %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestParseText(t *testing.T) {
	lvls, err := ParseText([]byte("#@$.#\n\n#.$@#"), "set")
	if err != nil {
		t.Fatalf("ParseText() error = %v", err)
	}
	if len(lvls) != 2 {
		t.Fatalf("expected 2 levels, got %d", len(lvls))
	}
	if lvls[1].ID != "set-2" || lvls[1].Name != "Level 2" {
		t.Errorf("second level = %+v", lvls[1])
	}

	if _, err := ParseText([]byte("; none"), "set"); err == nil {
		t.Error("expected error for empty collection")
	}
}

func TestParseYAML(t *testing.T) {
	data := []byte(`id: x1
name: First
map: |
  #####
  #@$.#
  #####
moves: " R "
metadata:
  author: me
`)
	lvls, err := ParseYAML(data, "file")
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	l := lvls[0]
	if l.ID != "x1" || l.Name != "First" || l.Moves != "R" {
		t.Errorf("unexpected level %+v", l)
	}
	if !strings.HasPrefix(l.Map, "#####\n#@$.#") {
		t.Errorf("Map = %q", l.Map)
	}
	if l.Metadata["author"] != "me" {
		t.Errorf("Metadata = %v", l.Metadata)
	}
}

func TestParseYAMLDefaults(t *testing.T) {
	lvls, err := ParseYAML([]byte("map: \"#@$.#\"\n"), "stem")
	if err != nil {
		t.Fatal(err)
	}
	if lvls[0].ID != "stem" || lvls[0].Name != "stem" {
		t.Errorf("defaults not applied: %+v", lvls[0])
	}

	if _, err := ParseYAML([]byte("id: nomap\n"), "stem"); err == nil {
		t.Error("expected error for missing map")
	}
}

func TestParseUnsupported(t *testing.T) {
	if _, err := Parse(nil, ".json", "x"); err == nil {
		t.Error("expected unsupported extension error")
	}
}
