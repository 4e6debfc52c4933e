package tui

import (
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

var roomLevel = levels.Level{
	ID:   "room",
	Name: "Room",
	Map:  "#######\n#@    #\n#  $ .#\n#######",
}

var testConfig = core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "solutions.db"))
	if err != nil {
		t.Fatalf("storage.Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func newTestModel(t *testing.T, lvl levels.Level, store *storage.Store) Model {
	t.Helper()
	game, err := StartGame(lvl, config.DefaultConfig(), testConfig, nil)
	if err != nil {
		t.Fatalf("StartGame() error = %v", err)
	}
	return NewModel(game, store, testConfig, nil)
}

func send(t *testing.T, m Model, msgs ...tea.Msg) Model {
	t.Helper()
	for _, msg := range msgs {
		next, _ := m.Update(msg)
		var ok bool
		m, ok = next.(Model)
		if !ok {
			t.Fatalf("Update() returned %T", next)
		}
	}
	return m
}

func TestKeyMapAction(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runes("w"), core.ActionUp},
		{"s", runes("s"), core.ActionDown},
		{"h", runes("h"), core.ActionLeft},
		{"d", runes("d"), core.ActionRight},
		{"undo", runes("u"), core.ActionUndo},
		{"backspace", tea.KeyMsg{Type: tea.KeyBackspace}, core.ActionUndo},
		{"redo", runes("y"), core.ActionRedo},
		{"prev push", runes("["), core.ActionBackToPush},
		{"next push", runes("]"), core.ActionForwardPush},
		{"home", tea.KeyMsg{Type: tea.KeyHome}, core.ActionBackToStart},
		{"end", tea.KeyMsg{Type: tea.KeyEnd}, core.ActionToEnd},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionAutoPlay},
		{"restart", runes("r"), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"quit", runes("q"), core.ActionQuit},
		{"unbound", runes("x"), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	m := newTestModel(t, roomLevel, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, tea.KeyMsg{Type: tea.KeyDown})
	if m.State().Moves != 0 {
		t.Fatalf("moves before tick = %d, want 0", m.State().Moves)
	}

	m = send(t, m, TickMsg{})
	if m.State().Moves != 2 {
		t.Errorf("moves after tick = %d, want 2", m.State().Moves)
	}
}

func TestModelIgnoresStaleTicks(t *testing.T) {
	m := newTestModel(t, roomLevel, nil)
	m.loop = 2

	m = send(t, m, tea.KeyMsg{Type: tea.KeyRight}, TickMsg{Loop: 1})
	if m.State().Moves != 0 {
		t.Errorf("stale tick stepped the game: moves = %d", m.State().Moves)
	}
	m = send(t, m, TickMsg{Loop: 2})
	if m.State().Moves != 1 {
		t.Errorf("moves = %d, want 1", m.State().Moves)
	}
}

func TestModelSavesSolutionOnce(t *testing.T) {
	store := openTestStore(t)
	m := newTestModel(t, roomLevel, store)

	m = send(t, m,
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyRight},
		tea.KeyMsg{Type: tea.KeyRight},
		TickMsg{},
	)
	if !m.State().Solved {
		t.Fatal("level should be solved")
	}

	// Undo and redo re-enter the solved state with the same moves.
	m = send(t, m, runes("u"), TickMsg{}, runes("y"), TickMsg{})

	sols, err := store.Solutions("room", 10)
	if err != nil {
		t.Fatalf("Solutions() error = %v", err)
	}
	if len(sols) != 1 {
		t.Fatalf("got %d solutions, want 1", len(sols))
	}
	if sols[0].Moves != "rdRR" || sols[0].MoveCount != 4 || sols[0].PushCount != 2 {
		t.Errorf("solution = %+v", sols[0])
	}
}

func TestModelBackAndQuit(t *testing.T) {
	m := newTestModel(t, roomLevel, nil)
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() || m.IsQuitting() {
		t.Errorf("after esc: back=%v quitting=%v", m.BackToMenu(), m.IsQuitting())
	}

	m = newTestModel(t, roomLevel, nil)
	m.standalone = true
	m = send(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.IsQuitting() {
		t.Error("esc in standalone mode should quit")
	}
}

func TestPickerSelect(t *testing.T) {
	lvls := []levels.Level{
		{ID: "a", Name: "A", Map: "#@#"},
		roomLevel,
	}
	p := NewPickerModel(lvls, nil, 100, 30, nil)

	next, _ := p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p = next.(PickerModel)
	next, _ = p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	p = next.(PickerModel)

	sel := p.Selected()
	if sel == nil || sel.ID != "room" {
		t.Fatalf("Selected() = %+v, want room", sel)
	}
}

func TestAppModelStartsAndLeavesGame(t *testing.T) {
	app := NewAppModel([]levels.Level{roomLevel}, nil, testConfig, config.DefaultConfig(), nil)

	next, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	app = next.(AppModel)
	if !app.InGame() {
		t.Fatal("Enter should start the selected level")
	}
	if cmd == nil {
		t.Error("starting a game should schedule a tick")
	}

	next, _ = app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	app = next.(AppModel)
	if app.InGame() {
		t.Error("Esc should return to the picker")
	}
}

func TestEnsureHostKeyDir(t *testing.T) {
	want := filepath.Join(t.TempDir(), "keys", "host_key")

	got, err := ensureHostKeyDir(want)
	if err != nil {
		t.Fatalf("ensureHostKeyDir() error = %v", err)
	}
	if got != want {
		t.Errorf("path = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Dir(want)); err != nil {
		t.Errorf("key directory not created: %v", err)
	}
}
