package snake

import (
	"iter"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
)

// RectKind tells a host what a projected rectangle depicts.
type RectKind int

const (
	KindHead RectKind = iota
	KindBody
	KindConnector
	KindFood
)

func (k RectKind) String() string {
	switch k {
	case KindHead:
		return "head"
	case KindBody:
		return "body"
	case KindConnector:
		return "connector"
	case KindFood:
		return "food"
	default:
		return "unknown"
	}
}

// DrawRect is one filled rectangle in pixel space.
type DrawRect struct {
	Rect  core.Rect
	Color core.Color
	Kind  RectKind
}

// Projector maps grid state to pixel rectangles. It holds only constants.
type Projector struct {
	cellSize int
	edge     int
	snake    core.Color
	food     core.Color
}

// NewProjector builds a projector from render geometry and palette.
func NewProjector(r config.RenderConfig, p config.Palette) Projector {
	return Projector{
		cellSize: r.CellSize,
		edge:     r.EdgeBuffer,
		snake:    p.Snake,
		food:     p.Food,
	}
}

// CellRect returns the inset rectangle drawn for cell c.
func (p Projector) CellRect(c Point) core.Rect {
	return core.NewRect(c.X*p.cellSize, c.Y*p.cellSize, p.cellSize, p.cellSize).Inset(p.edge)
}

// Connector returns the rectangle bridging the edge gap between a and b.
// It reports false unless the cells differ by exactly one step on exactly
// one axis; wrapped neighbours and repeated cells get no connector.
func (p Projector) Connector(a, b Point) (core.Rect, bool) {
	dx, dy := b.X-a.X, b.Y-a.Y
	inner := p.cellSize - 2*p.edge

	var r core.Rect
	switch {
	case core.Abs(dx) == 1 && dy == 0:
		left := min(a.X, b.X)
		r = core.NewRect((left+1)*p.cellSize-p.edge, a.Y*p.cellSize+p.edge, 2*p.edge, inner)
	case dx == 0 && core.Abs(dy) == 1:
		top := min(a.Y, b.Y)
		r = core.NewRect(a.X*p.cellSize+p.edge, (top+1)*p.cellSize-p.edge, inner, 2*p.edge)
	default:
		return core.Rect{}, false
	}
	return r, !r.Empty()
}

// Project yields the head, every tail segment, the connectors between
// consecutive segments, and finally the food. It reads g and never
// mutates it.
func (p Projector) Project(g *Game) iter.Seq[DrawRect] {
	return func(yield func(DrawRect) bool) {
		if !yield(DrawRect{Rect: p.CellRect(g.Head()), Color: p.snake, Kind: KindHead}) {
			return
		}
		for seg := range g.Tail() {
			if !yield(DrawRect{Rect: p.CellRect(seg), Color: p.snake, Kind: KindBody}) {
				return
			}
		}

		prev := g.Head()
		for seg := range g.Tail() {
			if r, ok := p.Connector(prev, seg); ok {
				if !yield(DrawRect{Rect: r, Color: p.snake, Kind: KindConnector}) {
					return
				}
			}
			prev = seg
		}

		yield(DrawRect{Rect: p.CellRect(g.Food()), Color: p.food, Kind: KindFood})
	}
}
