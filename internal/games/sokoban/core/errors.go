package core

import (
	"errors"
	"fmt"
)

// Parse failures. These are terminal for the parse attempt.
var (
	ErrEmptyLevel      = errors.New("level has no walls, goals, boxes or player")
	ErrMultiplePlayers = errors.New("level has more than one player")
	ErrNoPlayer        = errors.New("level has no player")
)

// Move and history outcomes. These are expected, recoverable results:
// the state they refer to is left untouched.
var (
	ErrBlocked           = errors.New("move blocked by wall")
	ErrPushBlocked       = errors.New("push blocked by wall or box")
	ErrInvalidDirection  = errors.New("move must be a single axis-aligned step")
	ErrOutOfRange        = errors.New("history index out of range")
	ErrInvalidReplayCode = errors.New("unrecognized move code")
)

// ParseError reports where in the level text parsing failed.
// Row and Col index the source text and are -1 when the failure
// is not tied to a single cell.
type ParseError struct {
	Row int
	Col int
	Err error
}

func (e *ParseError) Error() string {
	if e.Row < 0 {
		return fmt.Sprintf("parse level: %v", e.Err)
	}
	return fmt.Sprintf("parse level: line %d, column %d: %v", e.Row+1, e.Col+1, e.Err)
}

// Unwrap returns the underlying sentinel so errors.Is works.
func (e *ParseError) Unwrap() error {
	return e.Err
}
