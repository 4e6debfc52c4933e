package core

import (
	"errors"
	"testing"
)

func TestReplayStopsAtRejectedMove(t *testing.T) {
	res := Replay(mustParse(t, corridorLevel), "rrr")

	if res.Applied != 1 || res.Total != 3 {
		t.Errorf("Applied/Total = %d/%d, want 1/3", res.Applied, res.Total)
	}
	if res.StoppedAt != 1 || res.Complete() {
		t.Errorf("StoppedAt = %d, want 1", res.StoppedAt)
	}
	if !errors.Is(res.Err, ErrPushBlocked) {
		t.Errorf("Err = %v, want ErrPushBlocked", res.Err)
	}
	if res.History.Len() != 2 || res.History.Index() != 1 {
		t.Errorf("history len=%d index=%d, want 2/1", res.History.Len(), res.History.Index())
	}
	if res.History.Trail() != "R:" {
		t.Errorf("Trail() = %q, want %q", res.History.Trail(), "R:")
	}
}

func TestReplaySkipsUnknownCodes(t *testing.T) {
	res := Replay(mustParse(t, roomLevel), "r d\nx R u")

	if res.Skipped != 5 {
		t.Errorf("Skipped = %d, want 5", res.Skipped)
	}
	if res.Applied != 4 || !res.Complete() || res.Err != nil {
		t.Errorf("Applied = %d, Complete = %v, Err = %v", res.Applied, res.Complete(), res.Err)
	}
	if res.History.Moves() != "rdRu" {
		t.Errorf("Moves() = %q, want %q", res.History.Moves(), "rdRu")
	}
}

func TestReplayIgnoresLetterCase(t *testing.T) {
	lower := Replay(mustParse(t, roomLevel), "rdru")
	upper := Replay(mustParse(t, roomLevel), "RDRU")

	if lower.History.Moves() != upper.History.Moves() {
		t.Errorf("case changed the replay: %q vs %q", lower.History.Moves(), upper.History.Moves())
	}
	if !lower.History.Current().SameState(upper.History.Current()) {
		t.Error("case changed the final state")
	}
}

func TestReplayNeverFolds(t *testing.T) {
	res := Replay(mustParse(t, roomLevel), "rlrl")

	if res.History.Len() != 5 || res.History.Index() != 4 {
		t.Errorf("history len=%d index=%d, want 5/4", res.History.Len(), res.History.Index())
	}
}

func TestReplayEmpty(t *testing.T) {
	res := Replay(mustParse(t, roomLevel), "")

	if res.Total != 0 || res.Applied != 0 || !res.Complete() {
		t.Errorf("unexpected result for empty replay: %+v", res)
	}
	if res.History.Len() != 1 {
		t.Errorf("expected single-entry history, got %d", res.History.Len())
	}
}
