package juan

import (
	"fmt"
	"math"

	"github.com/vovakirdan/juan-jump/internal/core"
)

// Visual characters for rendering
const (
	BallChar      = '●'
	NormalChar    = '='
	BreakableChar = '%'
	MovingChar    = '≈'
	PowerUpChar   = '♦'
	FadingChar    = '·'
	FloorChar     = '▀'
	WallChar      = '│'
)

// viewport maps world points (Y up) onto terminal cells (Y down).
// Cells are assumed to be twice as tall as they are wide.
type viewport struct {
	left, top     int
	cols, rows    int
	colPts, rowPt float64
	worldH        float64
}

// newViewport fits the world into w×h cells, leaving the top row for the HUD.
func newViewport(worldW, worldH float64, w, h int) viewport {
	rows := max(h-1, 1)
	rowPt := worldH / float64(rows)
	colPts := rowPt / 2
	cols := int(worldW / colPts)
	if cols > w-2 && w > 2 {
		cols = w - 2
		colPts = worldW / float64(cols)
		rowPt = colPts * 2
		rows = max(int(worldH/rowPt), 1)
	}
	cols = max(cols, 1)
	return viewport{
		left:   (w - cols) / 2,
		top:    1,
		cols:   cols,
		rows:   rows,
		colPts: colPts,
		rowPt:  rowPt,
		worldH: worldH,
	}
}

// cell converts a world point to a screen cell.
func (v viewport) cell(p core.Vec2) (int, int) {
	x := v.left + int(math.Floor(p.X/v.colPts))
	y := v.top + int(math.Floor((v.worldH-p.Y)/v.rowPt))
	return x, y
}

// inside reports whether a screen cell lies in the play field.
func (v viewport) inside(x, y int) bool {
	return x >= v.left && x < v.left+v.cols && y >= v.top && y < v.top+v.rows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 {
		return
	}
	f := g.Snapshot()
	v := newViewport(f.World.Width, f.World.Height, dst.Width(), dst.Height())

	// Side walls
	for y := v.top; y < v.top+v.rows; y++ {
		dst.SetColored(v.left-1, y, WallChar, core.ColorGray)
		dst.SetColored(v.left+v.cols, y, WallChar, core.ColorGray)
	}

	// The floor spans the whole play field until it scrolls away
	if _, fy := v.cell(f.Floor.Pos); f.Floor.Visible && fy >= v.top && fy < v.top+v.rows {
		dst.DrawHLine(v.left, fy, v.cols, FloorChar, core.ColorDarkGreen)
	}
	for i, s := range f.Platforms {
		if !s.Visible {
			continue
		}
		ch, color := platformGlyph(g.platforms[i].Category)
		if s.Alpha < 0.5 {
			ch, color = FadingChar, core.ColorGray
		}
		g.drawSprite(dst, v, s, ch, color)
	}

	bx, by := v.cell(f.Ball.Pos)
	if v.inside(bx, by) {
		dst.SetColored(bx, by, BallChar, core.ColorOrange)
	}

	g.drawHUD(dst, f)

	switch {
	case f.Paused:
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	case f.GameOver:
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Best: %d  |  Press R to restart", g.session.Score.Best()))
	case !f.Started:
		drawCenteredMessage(dst, "JUAN JUMP", "Space to jump, ←/→ to tilt")
	}
}

// drawSprite fills the cells covered by a sprite, at least one cell wide.
func (g *Game) drawSprite(dst *core.Screen, v viewport, s Sprite, ch rune, color core.Color) {
	x0, y := v.cell(core.Vec2{X: s.Pos.X - s.Size.W/2, Y: s.Pos.Y})
	x1, _ := v.cell(core.Vec2{X: s.Pos.X + s.Size.W/2, Y: s.Pos.Y})
	if x1 <= x0 {
		x1 = x0 + 1
	}
	for x := x0; x < x1; x++ {
		if v.inside(x, y) {
			dst.SetColored(x, y, ch, color)
		}
	}
}

// platformGlyph returns the character and color for a category.
func platformGlyph(c Category) (rune, core.Color) {
	switch c {
	case CategoryBreakable:
		return BreakableChar, core.ColorYellow
	case CategoryMoving:
		return MovingChar, core.ColorBrightGreen
	case CategoryPowerUp:
		return PowerUpChar, core.ColorBrightCyan
	default:
		return NormalChar, core.ColorGreen
	}
}

// drawHUD draws the score line.
func (g *Game) drawHUD(dst *core.Screen, f Frame) {
	color := core.ColorRed
	if f.ScoreRising {
		color = core.ColorDarkGreen
	}
	dst.DrawTextColored(1, 0, f.Score, color)

	best := fmt.Sprintf("Best: %d", g.session.Score.Best())
	dst.DrawText(dst.Width()-len(best)-1, 0, best)

	if f.SuperJump {
		dst.DrawTextCentered(0, "SUPER JUMP")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen, subLen := len([]rune(title)), len([]rune(subtitle))
	boxW := core.Max(titleLen, subLen) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-subLen)/2, boxY+3, subtitle)
}
