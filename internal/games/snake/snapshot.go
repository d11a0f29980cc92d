package snake

import (
	"fmt"
	"slices"
	"strings"
)

// Snapshot captures the observable game state for determinism testing
// and debugging.
type Snapshot struct {
	Tick        uint64
	Head        Point
	PrevHead    Point
	Dir         Direction
	Pending     Direction
	Growth      int
	Tail        []Point
	Food        Point
	State       RunState
	Accumulated float64
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.ticks,
		Head:        g.head,
		PrevHead:    g.prevHead,
		Dir:         g.dir,
		Pending:     g.pending,
		Growth:      g.growth,
		Tail:        g.body.Slice(),
		Food:        g.food,
		State:       g.state,
		Accumulated: g.clock.Accumulated(),
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Head != o.Head || s.PrevHead != o.PrevHead ||
		s.Dir != o.Dir || s.Pending != o.Pending || s.Growth != o.Growth ||
		s.Food != o.Food || s.State != o.State || s.Accumulated != o.Accumulated {
		return false
	}
	return slices.Equal(s.Tail, o.Tail)
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Tick: %d, State: %s, Growth: %d\n", g.ticks, g.state, g.growth))
	b.WriteString(fmt.Sprintf("Head: (%d, %d), Dir: %s, Pending: %s\n", g.head.X, g.head.Y, g.dir, g.pending))
	b.WriteString(fmt.Sprintf("Food: (%d, %d), Tail: %v\n", g.food.X, g.food.Y, g.body.Slice()))
	return b.String()
}
