package core

import "strings"

// Entry is one point in the move history.
// LastMove is nil only for the first entry, which holds the parsed level.
type Entry struct {
	LastMove *Move
	Level    *Level
}

// IsPush reports whether the entry was reached by a push. The first
// entry was reached by no move at all.
func (e Entry) IsPush() bool {
	return e.LastMove != nil && e.LastMove.Push
}

// Fold reports how Record merged a move into the history.
type Fold int

const (
	FoldAppend Fold = iota // New entry appended; any redo tail was discarded
	FoldRedo               // Matched the next entry; index advanced
	FoldUndo               // Matched the previous entry; index moved back
)

// String returns a human-readable name for the fold.
func (f Fold) String() string {
	switch f {
	case FoldAppend:
		return "Append"
	case FoldRedo:
		return "Redo"
	case FoldUndo:
		return "Undo"
	default:
		return "Unknown"
	}
}

// History is a linear sequence of full level snapshots with a cursor.
// Entries are never empty and 0 <= index < len(entries) always holds.
// Snapshots are owned by the history and handed out only as copies.
type History struct {
	index   int
	entries []Entry
}

// NewHistory creates a single-entry history seeded with a copy of initial.
func NewHistory(initial *Level) *History {
	return &History{
		entries: []Entry{{Level: initial.Clone()}},
	}
}

// Index returns the current position in the history.
func (h *History) Index() int {
	return h.index
}

// Len returns the number of entries, including the initial one.
func (h *History) Len() int {
	return len(h.entries)
}

// Current returns a copy of the level at the current index.
func (h *History) Current() *Level {
	return h.entries[h.index].Level.Clone()
}

// current returns the stored snapshot without copying. Callers must not
// modify it.
func (h *History) current() *Level {
	return h.entries[h.index].Level
}

// Entry returns a copy of the entry at i.
func (h *History) Entry(i int) (Entry, bool) {
	if i < 0 || i >= len(h.entries) {
		return Entry{}, false
	}
	e := h.entries[i]
	out := Entry{Level: e.Level.Clone()}
	if e.LastMove != nil {
		m := *e.LastMove
		out.LastMove = &m
	}
	return out, true
}

// CanUndo returns true if there is an earlier entry.
func (h *History) CanUndo() bool {
	return h.index > 0
}

// CanRedo returns true if there is a later entry.
func (h *History) CanRedo() bool {
	return h.index+1 < len(h.entries)
}

// Record folds an already validated move into the history.
//
// If next equals the following entry the move is an implicit redo, and if
// it equals the preceding entry it is an implicit undo; in both cases only
// the index changes. Otherwise the redo tail is dropped and next is
// appended as the new last entry.
func (h *History) Record(next *Level, m Move) Fold {
	if h.CanRedo() && next.SameState(h.entries[h.index+1].Level) {
		h.index++
		return FoldRedo
	}
	if h.CanUndo() && next.SameState(h.entries[h.index-1].Level) {
		h.index--
		return FoldUndo
	}
	h.Append(next, m)
	return FoldAppend
}

// Append drops every entry after the current index and appends next.
// Unlike Record it never folds into undo or redo.
func (h *History) Append(next *Level, m Move) {
	h.entries = h.entries[:h.index+1]
	h.entries = append(h.entries, Entry{LastMove: &m, Level: next.Clone()})
	h.index = len(h.entries) - 1
}

// Seek walks the index one entry at a time in direction (-1 or +1).
// It stops after one step when stopAtMove is set, or on the first entry
// reached by a push when stopAtPush is set; otherwise it runs to the end.
// Returns false if the index did not change.
func (h *History) Seek(direction int, stopAtMove, stopAtPush bool) bool {
	if direction != -1 && direction != 1 {
		return false
	}
	i := h.index
	for i+direction >= 0 && i+direction < len(h.entries) {
		i += direction
		if stopAtMove || (stopAtPush && h.entries[i].IsPush()) {
			break
		}
	}
	if i == h.index {
		return false
	}
	h.index = i
	return true
}

// Undo steps back one entry.
func (h *History) Undo() bool {
	return h.Seek(-1, true, true)
}

// Redo steps forward one entry.
func (h *History) Redo() bool {
	return h.Seek(1, true, true)
}

// JumpTo moves the index directly to i.
func (h *History) JumpTo(i int) error {
	if i < 0 || i >= len(h.entries) {
		return ErrOutOfRange
	}
	h.index = i
	return nil
}

// Trail returns every entry's move letter in order with ':' placed right
// after the letter of the current entry (at the start when index is 0).
func (h *History) Trail() string {
	var sb strings.Builder
	sb.Grow(len(h.entries) + 1)
	for i, e := range h.entries {
		if e.LastMove != nil {
			sb.WriteRune(e.LastMove.Char())
		}
		if i == h.index {
			sb.WriteByte(':')
		}
	}
	return sb.String()
}

// Moves returns the move letters of all entries, including any redo tail.
func (h *History) Moves() string {
	return h.movesUntil(len(h.entries) - 1)
}

// MovesToCurrent returns the move letters from the start up to the
// current index.
func (h *History) MovesToCurrent() string {
	return h.movesUntil(h.index)
}

func (h *History) movesUntil(last int) string {
	var sb strings.Builder
	for _, e := range h.entries[1 : last+1] {
		sb.WriteRune(e.LastMove.Char())
	}
	return sb.String()
}

// Counts returns the number of moves and pushes up to the current index.
func (h *History) Counts() (moves, pushes int) {
	for _, e := range h.entries[1 : h.index+1] {
		moves++
		if e.IsPush() {
			pushes++
		}
	}
	return moves, pushes
}

// NextIsPush reports whether the entry after the current one was
// reached by a push.
func (h *History) NextIsPush() bool {
	if !h.CanRedo() {
		return false
	}
	return h.entries[h.index+1].IsPush()
}
