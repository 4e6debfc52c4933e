// Package sokoban adapts a Sokoban play session to the platform's Game
// interface: it maps actions onto session operations and draws the board.
package sokoban

import (
	"errors"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
)

// Game plays a single level.
type Game struct {
	level   levels.Level
	initial *core.Level
	cfg     config.SokobanConfig

	session *core.Session
	replay  core.ReplayResult
	timing  core.AutoPlayTiming

	// Screen dimensions
	screenW int
	screenH int

	tick     uint64
	tooSmall bool
	status   string // Feedback for the last rejected or folded move
}

// NewGame creates a game for level. The level map is parsed immediately
// so an unplayable level is reported before the UI starts.
func NewGame(level levels.Level, cfg config.SokobanConfig) (*Game, error) {
	initial, err := level.Parse()
	if err != nil {
		return nil, err
	}
	return &Game{
		level:   level,
		initial: initial,
		cfg:     cfg,
	}, nil
}

// ID returns the level identifier.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level name.
func (g *Game) Title() string {
	return g.level.Name
}

// Reset starts the level over. Recorded moves on the level are replayed
// into history; ReplayResult reports how far that got.
func (g *Game) Reset(cfg platformcore.RuntimeConfig) {
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.timing = g.cfg.Timing(cfg.TickRate)
	g.tick = 0
	g.status = ""
	g.session, g.replay = core.NewSessionFromReplay(g.initial, g.level.Moves, g.timing)
	g.checkScreenSize()
}

// Resize updates the screen dimensions without touching the session.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	g.checkScreenSize()
}

// ReplayResult returns the outcome of replaying the level's recorded moves.
func (g *Game) ReplayResult() core.ReplayResult {
	return g.replay
}

// Session returns the underlying play session.
func (g *Game) Session() *core.Session {
	return g.session
}

// Solution returns the move letters from the start to the current position.
func (g *Game) Solution() string {
	return g.session.History().MovesToCurrent()
}

// restart drops all history, including recorded moves.
func (g *Game) restart() {
	g.session = core.NewSession(g.initial, g.timing)
	g.replay = core.ReplayResult{History: g.session.History(), StoppedAt: -1}
	g.status = ""
}

func (g *Game) checkScreenSize() {
	minW, minH := g.minSize()
	g.tooSmall = g.screenW < minW || g.screenH < minH
}

// minSize is the smallest screen that fits the board with HUD and footer.
func (g *Game) minSize() (w, h int) {
	return g.initial.Width*g.cellWidth() + 2, g.initial.Height + hudHeight + footerHeight
}

func (g *Game) cellWidth() int {
	return platformcore.Clamp(g.cfg.Display.CellWidth, 1, 2)
}

// Step advances the game by one tick. Actions are applied in the order
// they arrived, then any due auto-play step runs.
func (g *Game) Step(in platformcore.InputFrame) platformcore.StepResult {
	g.tick++
	wasSolved := g.session.Solved()

	for _, a := range in.Actions {
		g.apply(a)
	}
	g.session.Tick(g.tick)

	return platformcore.StepResult{
		State:  g.State(),
		Solved: !wasSolved && g.session.Solved(),
	}
}

func (g *Game) apply(a platformcore.Action) {
	if dir, ok := actionDir(a); ok {
		g.move(dir)
		return
	}

	g.status = ""
	switch a {
	case platformcore.ActionUndo:
		g.session.Seek(-1, true, true)
	case platformcore.ActionRedo:
		g.session.Seek(1, true, true)
	case platformcore.ActionBackToPush:
		g.session.Seek(-1, false, true)
	case platformcore.ActionForwardPush:
		g.session.Seek(1, false, true)
	case platformcore.ActionBackToStart:
		g.session.Seek(-1, false, false)
	case platformcore.ActionToEnd:
		g.session.Seek(1, false, false)
	case platformcore.ActionAutoPlay:
		g.session.ToggleAutoPlay(g.tick)
	case platformcore.ActionRestart:
		g.restart()
	}
}

func (g *Game) move(dir core.Dir) {
	fold, err := g.session.Move(dir)
	switch {
	case errors.Is(err, core.ErrPushBlocked):
		g.status = "Box can't move"
	case errors.Is(err, core.ErrBlocked):
		g.status = "Blocked"
	case err != nil:
		g.status = err.Error()
	case fold == core.FoldUndo:
		g.status = "Undo"
	case fold == core.FoldRedo:
		g.status = "Redo"
	default:
		g.status = ""
	}
}

func actionDir(a platformcore.Action) (core.Dir, bool) {
	switch a {
	case platformcore.ActionUp:
		return core.DirUp, true
	case platformcore.ActionDown:
		return core.DirDown, true
	case platformcore.ActionLeft:
		return core.DirLeft, true
	case platformcore.ActionRight:
		return core.DirRight, true
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() platformcore.GameState {
	moves, pushes := g.session.Counts()
	return platformcore.GameState{
		Moves:    moves,
		Pushes:   pushes,
		Solved:   g.session.Solved(),
		AutoPlay: g.session.AutoPlaying(),
		AtEnd:    !g.session.History().CanRedo(),
	}
}
