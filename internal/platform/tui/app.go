package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-sokoban/internal/config"
	"github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/levels"
	"github.com/vovakirdan/tui-sokoban/internal/storage"
)

// StartGame creates a game for lvl and resets it to fit cfg, logging
// any problem with the level's recorded moves.
func StartGame(lvl levels.Level, scfg config.SokobanConfig, cfg core.RuntimeConfig, logger *log.Logger) (*sokoban.Game, error) {
	if logger == nil {
		logger = log.Default()
	}
	game, err := sokoban.NewGame(lvl, scfg)
	if err != nil {
		return nil, err
	}
	game.Reset(core.RuntimeConfig{ScreenW: cfg.ScreenW, ScreenH: cfg.ScreenH - helpHeight, TickRate: cfg.TickRate})

	res := game.ReplayResult()
	if res.Skipped > 0 {
		logger.Warn("skipped unknown move codes", "level", lvl.ID, "skipped", res.Skipped)
	}
	if !res.Complete() {
		logger.Warn("recorded moves stopped early",
			"level", lvl.ID,
			"applied", res.Applied,
			"stopped_at", res.StoppedAt,
			"error", res.Err,
		)
	}
	return game, nil
}

// AppModel manages the full flow: level picker -> game -> level picker.
// It is the top-level model for the menu command and SSH sessions.
type AppModel struct {
	levels   []levels.Level
	store    *storage.Store
	config   core.RuntimeConfig
	settings config.SokobanConfig
	logger   *log.Logger
	picker   PickerModel
	game     *Model
	games    int // Games started so far, used as the tick loop ID
	quitting bool
}

// NewAppModel creates a new app model.
func NewAppModel(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig, settings config.SokobanConfig, logger *log.Logger) AppModel {
	if logger == nil {
		logger = log.Default()
	}
	return AppModel{
		levels:   lvls,
		store:    store,
		config:   cfg,
		settings: settings,
		logger:   logger,
		picker:   NewPickerModel(lvls, store, cfg.ScreenW, cfg.ScreenH, logger),
	}
}

// Init initializes the app.
func (m AppModel) Init() tea.Cmd {
	return m.picker.Init()
}

// Update handles messages for the app.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	if m.InGame() {
		return m.updateGame(msg)
	}
	return m.updatePicker(msg)
}

// updatePicker handles updates while the picker is shown.
func (m AppModel) updatePicker(msg tea.Msg) (tea.Model, tea.Cmd) {
	newPicker, cmd := m.picker.Update(msg)
	if p, ok := newPicker.(PickerModel); ok {
		m.picker = p
	}

	if m.picker.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if lvl := m.picker.Selected(); lvl != nil {
		game, err := StartGame(*lvl, m.settings, m.config, m.logger)
		if err != nil {
			m.logger.Warn("cannot start level", "level", lvl.ID, "error", err)
			m.picker = NewPickerModel(m.levels, m.store, m.config.ScreenW, m.config.ScreenH, m.logger)
			return m, nil
		}
		m.games++
		gm := NewModel(game, m.store, m.config, m.logger)
		gm.loop = m.games
		m.game = &gm
		return m, m.game.Init()
	}

	return m, cmd
}

// updateGame handles updates while a level is played.
func (m AppModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gm, ok := newModel.(Model); ok {
		m.game = &gm
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.game.BackToMenu() {
		m.game = nil
		m.picker = NewPickerModel(m.levels, m.store, m.config.ScreenW, m.config.ScreenH, m.logger)
		return m, m.picker.Init()
	}

	return m, cmd
}

// View renders the current screen.
func (m AppModel) View() string {
	if m.quitting {
		return ""
	}
	if m.game != nil {
		return m.game.View()
	}
	return m.picker.View()
}

// InGame reports whether a level is being played.
func (m AppModel) InGame() bool {
	return m.game != nil
}

// RunApp runs the picker and game flow in the local terminal.
func RunApp(lvls []levels.Level, store *storage.Store, cfg core.RuntimeConfig, settings config.SokobanConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewAppModel(lvls, store, cfg, settings, logger),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
