package core

import "strings"

// Level text symbols.
const (
	SymbolWall      = '#'
	SymbolGoal      = '.'
	SymbolBox       = '$'
	SymbolBoxOnGoal = '*'
	SymbolPlayer    = '@'
)

// isStructural reports whether r is one of the five symbols that define
// the level's bounding box.
func isStructural(r rune) bool {
	switch r {
	case SymbolWall, SymbolGoal, SymbolBox, SymbolBoxOnGoal, SymbolPlayer:
		return true
	}
	return false
}

// Parse converts level text into a Level.
//
// The grid is cropped to the smallest rectangle containing every
// structural symbol; everything else on a line (spaces, '-', '\r', ...)
// is empty floor. Rows shorter than the rectangle read as empty floor
// past their end.
func Parse(text string) (*Level, error) {
	lines := strings.Split(text, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(line)
	}

	minR, maxR, minC, maxC := -1, -1, -1, -1
	for r, row := range rows {
		for c, ch := range row {
			if !isStructural(ch) {
				continue
			}
			if minR < 0 || r < minR {
				minR = r
			}
			if r > maxR {
				maxR = r
			}
			if minC < 0 || c < minC {
				minC = c
			}
			if c > maxC {
				maxC = c
			}
		}
	}
	if minR < 0 {
		return nil, &ParseError{Row: -1, Col: -1, Err: ErrEmptyLevel}
	}

	h := maxR - minR + 1
	w := maxC - minC + 1
	l := &Level{
		Height:    h,
		Width:     w,
		PlayerRow: -1,
		PlayerCol: -1,
		Walls:     newGrid(h, w),
		Goals:     newGrid(h, w),
		Boxes:     newGrid(h, w),
	}

	for r := minR; r <= maxR; r++ {
		row := rows[r]
		for c := minC; c <= maxC && c < len(row); c++ {
			lr, lc := r-minR, c-minC
			switch row[c] {
			case SymbolWall:
				l.Walls[lr][lc] = true
			case SymbolGoal:
				l.Goals[lr][lc] = true
			case SymbolBox:
				l.Boxes[lr][lc] = true
			case SymbolBoxOnGoal:
				l.Goals[lr][lc] = true
				l.Boxes[lr][lc] = true
			case SymbolPlayer:
				if l.PlayerRow >= 0 {
					return nil, &ParseError{Row: r, Col: c, Err: ErrMultiplePlayers}
				}
				l.PlayerRow = lr
				l.PlayerCol = lc
			}
		}
	}

	if l.PlayerRow < 0 {
		return nil, &ParseError{Row: -1, Col: -1, Err: ErrNoPlayer}
	}
	return l, nil
}
