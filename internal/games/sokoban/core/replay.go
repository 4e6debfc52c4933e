package core

import "fmt"

// ReplayResult describes how far a move string got.
type ReplayResult struct {
	History   *History
	Applied   int   // Codes applied as moves
	Skipped   int   // Unrecognized codes ignored
	Total     int   // Runes in the input
	StoppedAt int   // Rune index of the rejected code, -1 if none
	Err       error // Wraps ErrBlocked or ErrPushBlocked when stopped early
}

// Complete returns true if every recognized code was applied.
func (r ReplayResult) Complete() bool {
	return r.StoppedAt < 0
}

// Replay builds a history by applying move codes to initial in order.
//
// Unrecognized codes are skipped. Replay stops at the first code the
// move rules reject and keeps everything applied before it. Moves are
// always appended, never folded into undo or redo.
func Replay(initial *Level, codes string) ReplayResult {
	runes := []rune(codes)
	res := ReplayResult{
		History:   NewHistory(initial),
		Total:     len(runes),
		StoppedAt: -1,
	}

	for i, ch := range runes {
		dir, err := ParseMoveCode(ch)
		if err != nil {
			res.Skipped++
			continue
		}
		next, m, err := ApplyDir(res.History.current(), dir)
		if err != nil {
			res.StoppedAt = i
			res.Err = fmt.Errorf("move %d (%q): %w", i, ch, err)
			break
		}
		res.History.Append(next, m)
		res.Applied++
	}
	return res
}
