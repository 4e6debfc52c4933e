package sokoban

import (
	"fmt"
	"strings"
	"unicode/utf8"

	platformcore "github.com/vovakirdan/tui-sokoban/internal/core"
	"github.com/vovakirdan/tui-sokoban/internal/games/sokoban/core"
)

const (
	hudHeight    = 3 // Title, counters, blank
	footerHeight = 3 // Blank, status, trail
)

// glyph is how one grid cell is drawn.
type glyph struct {
	r     rune
	color platformcore.Color
}

var (
	glyphWall       = glyph{'█', platformcore.ColorBlue}
	glyphFloor      = glyph{' ', platformcore.ColorDefault}
	glyphGoal       = glyph{'·', platformcore.ColorYellow}
	glyphBox        = glyph{'▒', platformcore.ColorOrange}
	glyphBoxOnGoal  = glyph{'▓', platformcore.ColorBrightGreen}
	glyphPlayer     = glyph{'@', platformcore.ColorBrightYellow}
	glyphPlayerGoal = glyph{'@', platformcore.ColorBrightGreen}
)

// cellGlyph picks the glyph for grid cell (r, c).
func cellGlyph(l *core.Level, r, c int) glyph {
	switch {
	case l.IsPlayer(r, c) && l.Goal(r, c):
		return glyphPlayerGoal
	case l.IsPlayer(r, c):
		return glyphPlayer
	case l.Box(r, c) && l.Goal(r, c):
		return glyphBoxOnGoal
	case l.Box(r, c):
		return glyphBox
	case l.Goal(r, c):
		return glyphGoal
	case l.Wall(r, c):
		return glyphWall
	default:
		return glyphFloor
	}
}

// Render draws the HUD, the board and the status lines.
func (g *Game) Render(dst *platformcore.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	lvl := g.session.Current()
	cw := g.cellWidth()
	boardW := lvl.Width * cw
	screen := dst.Bounds()
	boardArea := platformcore.NewRect(screen.X, hudHeight, screen.W, screen.H-hudHeight-footerHeight)
	board := boardArea.Centered(boardW, lvl.Height)

	g.renderHUD(dst, lvl)
	if frame := platformcore.NewRect(board.X-1, board.Y-1, board.W+2, board.H+2); fits(boardArea, frame) {
		dst.DrawBox(frame, platformcore.ColorGray)
	}
	g.renderBoard(dst, lvl, board.X, board.Y)
	g.renderFooter(dst, board.Bottom()+1)
}

// fits reports whether inner lies entirely within outer.
func fits(outer, inner platformcore.Rect) bool {
	return outer.Contains(inner.X, inner.Y) && outer.Contains(inner.Right()-1, inner.Bottom()-1)
}

func (g *Game) renderTooSmall(dst *platformcore.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", platformcore.ColorRed)
	dst.DrawTextCentered(y+1, "Please resize terminal", platformcore.ColorGray)

	minW, minH := g.minSize()
	dst.DrawText(0, 0, fmt.Sprintf("%dx%d < %dx%d", g.screenW, g.screenH, minW, minH))
}

func (g *Game) renderHUD(dst *platformcore.Screen, lvl *core.Level) {
	dst.DrawTextCentered(0, fmt.Sprintf("Sokoban - %s", g.level.Name), platformcore.ColorBrightWhite)

	moves, pushes := g.session.Counts()
	counters := fmt.Sprintf("Moves: %d  Pushes: %d  Boxes: %d/%d",
		moves, pushes, lvl.BoxesOnGoals(), lvl.GoalCount())
	dst.DrawTextCentered(1, counters, platformcore.ColorDefault)
}

func (g *Game) renderBoard(dst *platformcore.Screen, lvl *core.Level, x0, y0 int) {
	cw := g.cellWidth()
	for r := 0; r < lvl.Height; r++ {
		for c := 0; c < lvl.Width; c++ {
			gl := cellGlyph(lvl, r, c)
			x := x0 + c*cw
			dst.SetColored(x, y0+r, gl.r, gl.color)
			if cw == 2 {
				// Walls fill both columns so the board stays solid
				second := ' '
				if gl == glyphWall {
					second = gl.r
				}
				dst.SetColored(x+1, y0+r, second, gl.color)
			}
		}
	}
}

func (g *Game) renderFooter(dst *platformcore.Screen, y int) {
	switch {
	case g.session.Solved():
		dst.DrawTextCentered(y, "SOLVED!", platformcore.ColorBrightGreen)
	case g.session.AutoPlaying():
		dst.DrawTextCentered(y, "Auto-play", platformcore.ColorCyan)
	case g.status != "":
		dst.DrawTextCentered(y, g.status, platformcore.ColorGray)
	}

	if g.cfg.Display.ShowTrail {
		trail := TrailWindow(g.session.Trail(), g.screenW-2)
		dst.DrawTextCentered(y+1, trail, platformcore.ColorGray)
	}
}

// TrailWindow shortens a move trail to at most width runes, keeping the
// ':' marker visible. Cut ends are replaced by '…'.
func TrailWindow(trail string, width int) string {
	n := utf8.RuneCountInString(trail)
	if width <= 0 {
		return ""
	}
	if n <= width {
		return trail
	}
	if width < 3 {
		return strings.Repeat("…", width)
	}

	runes := []rune(trail)
	marker := strings.IndexRune(trail, ':') // trail is ASCII, byte index == rune index
	if marker < 0 {
		marker = n - 1
	}

	// Center the marker, then slide the window back inside the trail.
	start := marker - width/2
	start = platformcore.Clamp(start, 0, n-width)
	end := start + width

	out := make([]rune, width)
	copy(out, runes[start:end])
	if start > 0 {
		out[0] = '…'
	}
	if end < n {
		out[width-1] = '…'
	}
	return string(out)
}
