package tui

import (
	"fmt"
	"iter"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
	"github.com/vovakirdan/torus-snake/internal/games/snake"
)

const (
	// Terminal cells are roughly twice as tall as they are wide, so each
	// grid cell takes two columns and one row.
	colsPerCell = 2
	rowsPerCell = 1

	hudHeight = 2 // title line + spacer
)

var (
	frameColor = core.RGB(0x80, 0x80, 0x80)
	hudColor   = core.RGB(0xd0, 0xd0, 0xd0)
)

// Layout maps the projector's pixel space onto terminal cells.
type Layout struct {
	OriginX     int // screen column of the board's first cell
	OriginY     int // screen row of the board's first cell
	ColsPerCell int
	RowsPerCell int
	CellSize    int // projector pixels per grid cell
	Grid        snake.Grid
}

// NewLayout centers the board horizontally below the HUD on a screen of
// the given width.
func NewLayout(g snake.Grid, cellSize, screenW int) Layout {
	l := Layout{
		ColsPerCell: colsPerCell,
		RowsPerCell: rowsPerCell,
		CellSize:    cellSize,
		Grid:        g,
	}
	l.OriginX = core.Max((screenW-l.FrameWidth())/2, 0) + 1
	l.OriginY = hudHeight + 1
	return l
}

// BoardWidth is the board interior width in terminal columns.
func (l Layout) BoardWidth() int { return l.Grid.W * l.ColsPerCell }

// BoardHeight is the board interior height in terminal rows.
func (l Layout) BoardHeight() int { return l.Grid.H * l.RowsPerCell }

// FrameWidth is the board width including its border.
func (l Layout) FrameWidth() int { return l.BoardWidth() + 2 }

// Frame returns the border rectangle in screen coordinates.
func (l Layout) Frame() core.Rect {
	return core.NewRect(l.OriginX-1, l.OriginY-1, l.FrameWidth(), l.BoardHeight()+2)
}

// MinSize is the smallest screen that fits the HUD and the framed board.
func (l Layout) MinSize() (w, h int) {
	return l.FrameWidth(), hudHeight + l.BoardHeight() + 2
}

// Bounds is the board in projector pixels.
func (l Layout) Bounds() core.Rect {
	return core.NewRect(0, 0, l.Grid.W*l.CellSize, l.Grid.H*l.CellSize)
}

// sample returns the projector pixel under the center of a board column/row.
func (l Layout) sample(col, row int) (float64, float64) {
	px := (float64(col) + 0.5) * float64(l.CellSize) / float64(l.ColsPerCell)
	py := (float64(row) + 0.5) * float64(l.CellSize) / float64(l.RowsPerCell)
	return px, py
}

func glyphFor(k snake.RectKind) rune {
	switch k {
	case snake.KindHead:
		return '█'
	case snake.KindFood:
		return '●'
	default:
		return '▓'
	}
}

// Rasterize paints rects onto the board area of dst. A terminal cell is
// painted when the pixel at its center falls inside the rect.
func Rasterize(dst *core.Screen, l Layout, rects iter.Seq[snake.DrawRect]) {
	if l.CellSize <= 0 {
		return
	}
	bounds := l.Bounds()
	for dr := range rects {
		r := dr.Rect
		if r.Empty() || !r.Intersects(bounds) {
			continue
		}
		c0 := core.Clamp(r.X*l.ColsPerCell/l.CellSize, 0, l.BoardWidth())
		c1 := core.Clamp(ceilDiv(r.Right()*l.ColsPerCell, l.CellSize), 0, l.BoardWidth())
		r0 := core.Clamp(r.Y*l.RowsPerCell/l.CellSize, 0, l.BoardHeight())
		r1 := core.Clamp(ceilDiv(r.Bottom()*l.RowsPerCell, l.CellSize), 0, l.BoardHeight())
		glyph := glyphFor(dr.Kind)
		for row := r0; row < r1; row++ {
			for col := c0; col < c1; col++ {
				if r.ContainsF(l.sample(col, row)) {
					dst.Paint(l.OriginX+col, l.OriginY+row, glyph, dr.Color)
				}
			}
		}
	}
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}

// drawBoard paints the frame and the empty-cell background.
func drawBoard(dst *core.Screen, l Layout, p config.Palette) {
	dst.DrawBox(l.Frame())
	f := l.Frame()
	for y := f.Y; y < f.Bottom(); y++ {
		for _, x := range []int{f.X, f.Right() - 1} {
			dst.SetCell(x, y, core.Cell{Rune: dst.Get(x, y), Color: frameColor})
		}
	}
	for x := f.X + 1; x < f.Right()-1; x++ {
		for _, y := range []int{f.Y, f.Bottom() - 1} {
			dst.SetCell(x, y, core.Cell{Rune: dst.Get(x, y), Color: frameColor})
		}
	}
	for row := range l.BoardHeight() {
		for col := range l.BoardWidth() {
			r := ' '
			if col%l.ColsPerCell == 0 {
				r = '·'
			}
			dst.Paint(l.OriginX+col, l.OriginY+row, r, p.Background)
		}
	}
}

// drawHUD writes the status line above the board.
func drawHUD(dst *core.Screen, l Layout, g *snake.Game) {
	st := g.State()
	left := fmt.Sprintf(" %s  Length: %d  Ticks: %d", g.Title(), st.Score+1, g.Ticks())
	right := fmt.Sprintf("[%s] ", g.RunState())
	f := l.Frame()
	dst.DrawTextColor(f.X, 0, left, hudColor)
	dst.DrawTextColor(f.Right()-len([]rune(right)), 0, right, hudColor)
}

// drawOverlay centers a boxed message over the board.
func drawOverlay(dst *core.Screen, l Layout, lines ...string) {
	width := 0
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}
	box := core.NewRect(0, 0, width+4, len(lines)+2)
	box.X = l.OriginX + (l.BoardWidth()-box.W)/2
	box.Y = l.OriginY + (l.BoardHeight()-box.H)/2
	dst.DrawRect(box, ' ', core.Color{})
	dst.DrawBox(box)
	for i, line := range lines {
		x := box.X + (box.W-len([]rune(line)))/2
		dst.DrawTextColor(x, box.Y+1+i, line, hudColor)
	}
}

// drawTooSmall replaces the frame with a resize notice.
func drawTooSmall(dst *core.Screen, needW, needH int) {
	dst.Clear()
	msg := fmt.Sprintf("Window too small: need %dx%d", needW, needH)
	y := dst.Height() / 2
	dst.DrawTextCentered(y, msg)
	dst.DrawTextCentered(y+1, "Resize the terminal or press q to quit")
}

// DrawFrame renders one complete frame of g onto dst.
func DrawFrame(dst *core.Screen, l Layout, g *snake.Game, p config.Palette) {
	needW, needH := l.MinSize()
	if dst.Width() < needW || dst.Height() < needH {
		drawTooSmall(dst, needW, needH)
		return
	}
	dst.Clear()
	drawHUD(dst, l, g)
	drawBoard(dst, l, p)
	Rasterize(dst, l, g.OnRender())

	switch g.RunState() {
	case snake.StatePaused:
		drawOverlay(dst, l, "PAUSED", "Press P to resume")
	case snake.StateGameOver:
		drawOverlay(dst, l, "GAME OVER", fmt.Sprintf("Length: %d", g.Growth()+1), "Press R to restart")
	}
}
