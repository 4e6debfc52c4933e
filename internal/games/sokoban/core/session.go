package core

// Session is one play-through of a single level: the history of
// snapshots plus the auto-play handle stepping through it.
// A Session is not safe for concurrent use.
type Session struct {
	history *History
	auto    *AutoPlay
}

// NewSession starts a session at the initial state of l.
func NewSession(l *Level, timing AutoPlayTiming) *Session {
	return &Session{
		history: NewHistory(l),
		auto:    NewAutoPlay(timing),
	}
}

// NewSessionFromReplay starts a session whose history is rebuilt from a
// move string. The session is usable even if the replay stopped early.
func NewSessionFromReplay(l *Level, codes string, timing AutoPlayTiming) (*Session, ReplayResult) {
	res := Replay(l, codes)
	return &Session{
		history: res.History,
		auto:    NewAutoPlay(timing),
	}, res
}

// History returns the session's history.
func (s *Session) History() *History {
	return s.history
}

// Current returns a copy of the level at the current history index.
func (s *Session) Current() *Level {
	return s.history.Current()
}

// Trail returns the move trail with the current-position marker.
func (s *Session) Trail() string {
	return s.history.Trail()
}

// Counts returns moves and pushes up to the current position.
func (s *Session) Counts() (moves, pushes int) {
	return s.history.Counts()
}

// Solved returns true if the current state has every goal covered.
func (s *Session) Solved() bool {
	return s.history.current().Solved()
}

// Move applies a player step and records it.
// A rejected step returns the engine error and changes nothing.
func (s *Session) Move(dir Dir) (Fold, error) {
	s.auto.Stop()
	next, m, err := ApplyDir(s.history.current(), dir)
	if err != nil {
		return FoldAppend, err
	}
	return s.history.Record(next, m), nil
}

// Seek moves through history; see History.Seek.
func (s *Session) Seek(direction int, stopAtMove, stopAtPush bool) bool {
	s.auto.Stop()
	return s.history.Seek(direction, stopAtMove, stopAtPush)
}

// JumpTo selects a history entry directly.
func (s *Session) JumpTo(i int) error {
	s.auto.Stop()
	return s.history.JumpTo(i)
}

// AutoPlaying returns true while auto-play is running.
func (s *Session) AutoPlaying() bool {
	return s.auto.Active()
}

// ToggleAutoPlay starts auto-play if it is stopped and there is history
// ahead, or stops it if it is running. Returns whether it is now running.
func (s *Session) ToggleAutoPlay(now uint64) bool {
	if s.auto.Active() {
		s.auto.Stop()
		return false
	}
	if !s.history.CanRedo() {
		return false
	}
	s.auto.Start(now)
	return true
}

// StopAutoPlay cancels auto-play. Safe to call when not running.
func (s *Session) StopAutoPlay() {
	s.auto.Stop()
}

// Tick runs a pending auto-play step. Returns true if the index moved.
func (s *Session) Tick(now uint64) bool {
	if !s.auto.Due(now) {
		return false
	}
	if !s.history.Redo() {
		s.auto.Stop()
		return false
	}
	if !s.history.CanRedo() {
		s.auto.Stop()
	} else {
		s.auto.Schedule(now, s.history.NextIsPush())
	}
	return true
}
