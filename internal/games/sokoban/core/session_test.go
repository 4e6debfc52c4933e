package core

import (
	"errors"
	"testing"
	"time"
)

var testTiming = AutoPlayTiming{Start: 2, Move: 1, Push: 3}

func TestSessionMove(t *testing.T) {
	s := NewSession(mustParse(t, corridorLevel), testTiming)

	if _, err := s.Move(DirLeft); !errors.Is(err, ErrBlocked) {
		t.Errorf("Move(Left) error = %v, want ErrBlocked", err)
	}
	if s.History().Len() != 1 {
		t.Error("rejected move should not touch history")
	}

	fold, err := s.Move(DirRight)
	if err != nil {
		t.Fatalf("Move(Right) failed: %v", err)
	}
	if fold != FoldAppend {
		t.Errorf("fold = %v, want Append", fold)
	}
	if !s.Solved() {
		t.Error("expected solved level")
	}
	if s.Trail() != "R:" {
		t.Errorf("Trail() = %q, want %q", s.Trail(), "R:")
	}
}

func TestSessionSeekBackToPushWithoutPush(t *testing.T) {
	s := NewSession(mustParse(t, "#####\n#@ $.#\n#####"), testTiming)
	if _, err := s.Move(DirRight); err != nil {
		t.Fatalf("Move(Right) failed: %v", err)
	}

	if !s.Seek(-1, false, true) {
		t.Fatal("Seek(-1, false, true) should reach the start")
	}
	if s.History().Index() != 0 || s.Trail() != ":r" {
		t.Errorf("index=%d trail=%q, want 0 and %q", s.History().Index(), s.Trail(), ":r")
	}
}

func TestSessionAutoPlay(t *testing.T) {
	s, res := NewSessionFromReplay(mustParse(t, roomLevel), "rdRu", testTiming)
	if !res.Complete() {
		t.Fatalf("replay stopped early: %v", res.Err)
	}
	if err := s.JumpTo(0); err != nil {
		t.Fatalf("JumpTo failed: %v", err)
	}

	if !s.ToggleAutoPlay(0) {
		t.Fatal("auto-play should start with history ahead")
	}

	// tick -> expected index after the tick
	steps := []struct {
		tick  uint64
		index int
	}{
		{1, 0}, // start delay
		{2, 1},
		{3, 2}, // move delay
		{4, 2}, // push delay pending
		{5, 2},
		{6, 3},
		{7, 4}, // end of history
		{8, 4},
	}
	for _, st := range steps {
		s.Tick(st.tick)
		if got := s.History().Index(); got != st.index {
			t.Errorf("tick %d: index = %d, want %d", st.tick, got, st.index)
		}
	}

	if s.AutoPlaying() {
		t.Error("auto-play should stop at the end of history")
	}
	s.StopAutoPlay()
	s.StopAutoPlay()
	if s.AutoPlaying() {
		t.Error("Stop should be idempotent")
	}
}

func TestSessionAutoPlayCancelledByInput(t *testing.T) {
	s, _ := NewSessionFromReplay(mustParse(t, roomLevel), "rdRu", testTiming)
	s.JumpTo(0)
	s.ToggleAutoPlay(0)

	if _, err := s.Move(DirRight); err != nil {
		t.Fatalf("Move failed: %v", err)
	}
	if s.AutoPlaying() {
		t.Error("manual move should cancel auto-play")
	}
	if s.Tick(10) {
		t.Error("cancelled auto-play should not step")
	}
	if s.History().Index() != 1 {
		t.Errorf("index = %d, want 1", s.History().Index())
	}
}

func TestSessionAutoPlayAtEnd(t *testing.T) {
	s, _ := NewSessionFromReplay(mustParse(t, roomLevel), "rd", testTiming)

	if s.ToggleAutoPlay(0) {
		t.Error("auto-play should not start at the end of history")
	}

	s.Seek(-1, false, false)
	if !s.ToggleAutoPlay(0) {
		t.Fatal("auto-play should start from the beginning")
	}
	if s.ToggleAutoPlay(1) {
		t.Error("second toggle should stop auto-play")
	}
}

func TestTicksFor(t *testing.T) {
	tests := []struct {
		d    time.Duration
		rate int
		want uint64
	}{
		{100 * time.Millisecond, 60, 6},
		{time.Millisecond, 60, 1},
		{0, 60, 1},
		{time.Second, 10, 10},
		{100 * time.Millisecond, 0, 6},
	}

	for _, tt := range tests {
		if got := TicksFor(tt.d, tt.rate); got != tt.want {
			t.Errorf("TicksFor(%v, %d) = %d, want %d", tt.d, tt.rate, got, tt.want)
		}
	}
}
