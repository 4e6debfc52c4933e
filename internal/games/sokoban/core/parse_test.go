package core

import (
	"errors"
	"reflect"
	"testing"
)

const corridorLevel = "#####\n#@$.#\n#####"

func TestParseCorridor(t *testing.T) {
	l, err := Parse(corridorLevel)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if l.Height != 3 || l.Width != 5 {
		t.Fatalf("expected 3x5, got %dx%d", l.Height, l.Width)
	}
	if l.PlayerRow != 1 || l.PlayerCol != 1 {
		t.Errorf("expected player at (1,1), got (%d,%d)", l.PlayerRow, l.PlayerCol)
	}
	if !l.Box(1, 2) {
		t.Error("expected box at (1,2)")
	}
	if !l.Goal(1, 3) {
		t.Error("expected goal at (1,3)")
	}
	for c := 0; c < 5; c++ {
		if !l.Wall(0, c) || !l.Wall(2, c) {
			t.Errorf("expected wall border at column %d", c)
		}
	}
	if l.Wall(1, 1) || l.Wall(1, 2) || l.Wall(1, 3) {
		t.Error("interior cells should not be walls")
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want error
	}{
		{name: "empty string", text: "", want: ErrEmptyLevel},
		{name: "only filler", text: "   \n -- x\n", want: ErrEmptyLevel},
		{name: "two players", text: "#@ @#", want: ErrMultiplePlayers},
		{name: "two players on separate rows", text: "@\n@", want: ErrMultiplePlayers},
		{name: "no player", text: "#.$#", want: ErrNoPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := Parse(tt.text)
			if err == nil {
				t.Fatalf("expected error, got level %+v", l)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Parse(%q) error = %v, want %v", tt.text, err, tt.want)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Errorf("expected *ParseError, got %T", err)
			}
		})
	}
}

func TestParseMultiplePlayersPosition(t *testing.T) {
	_, err := Parse("####\n#@ @#")
	var pe *ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Row != 1 || pe.Col != 3 {
		t.Errorf("expected error at (1,3), got (%d,%d)", pe.Row, pe.Col)
	}
}

func TestParseTrimsToBoundingBox(t *testing.T) {
	text := "\n\n   #####\n   #@ .#   \n   #####\n\n"

	l, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if l.Height != 3 || l.Width != 5 {
		t.Errorf("expected 3x5, got %dx%d", l.Height, l.Width)
	}
	if l.PlayerRow != 1 || l.PlayerCol != 1 {
		t.Errorf("expected player at (1,1), got (%d,%d)", l.PlayerRow, l.PlayerCol)
	}
	if !l.Goal(1, 3) {
		t.Error("expected goal at (1,3)")
	}
}

func TestParseShortRows(t *testing.T) {
	l, err := Parse("#####\n#@\n#####")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if l.Width != 5 {
		t.Fatalf("expected width 5, got %d", l.Width)
	}
	for c := 2; c < 5; c++ {
		if l.Wall(1, c) || l.Box(1, c) || l.Goal(1, c) {
			t.Errorf("cell (1,%d) past end of row should be floor", c)
		}
	}
}

func TestParseBoxOnGoal(t *testing.T) {
	l, err := Parse("#*@#")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !l.Box(0, 1) || !l.Goal(0, 1) {
		t.Error("'*' should set both box and goal")
	}
	if !l.Solved() {
		t.Error("level with every goal covered should be solved")
	}
}

func TestParseCRLF(t *testing.T) {
	l, err := Parse("###\r\n#@#\r\n###\r\n")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if l.Height != 3 || l.Width != 3 {
		t.Errorf("expected 3x3, got %dx%d", l.Height, l.Width)
	}
}

func TestParseDeterministic(t *testing.T) {
	a, err := Parse(corridorLevel)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, err := Parse(corridorLevel)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Error("parsing the same text twice should give equal levels")
	}
}

func TestRenderASCIIRoundTrip(t *testing.T) {
	text := "  #####\n###   #\n#.@$  #\n### $.#\n#.##$ #\n# # . ##\n#$ *$$.#\n#   .  #\n########"

	l, err := Parse(text)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	out := RenderASCII(l)
	if out != text {
		t.Errorf("RenderASCII mismatch:\ngot\n%s\nwant\n%s", out, text)
	}

	again, err := Parse(out)
	if err != nil {
		t.Fatalf("Parse of rendered level failed: %v", err)
	}
	if !reflect.DeepEqual(l, again) {
		t.Error("re-parsed level differs from original")
	}
}

func TestRenderASCIIPlayerOnGoal(t *testing.T) {
	l, err := Parse("#@.#")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	next, _, err := ApplyDir(l, DirRight)
	if err != nil {
		t.Fatalf("ApplyDir failed: %v", err)
	}
	if got := RenderASCII(next); got != "# +#" {
		t.Errorf("RenderASCII = %q, want %q", got, "# +#")
	}
}
