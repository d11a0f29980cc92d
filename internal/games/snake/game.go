package snake

import (
	"iter"
	"math/rand"

	"github.com/vovakirdan/torus-snake/internal/config"
	"github.com/vovakirdan/torus-snake/internal/core"
)

// RunState is the game's top-level mode.
type RunState int

const (
	StateRunning RunState = iota
	StatePaused
	StateGameOver
)

func (s RunState) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Game is the snake state machine. It has a single owner and is driven
// through OnInput, OnTick and OnRender; none of them block.
type Game struct {
	cfg       config.SnakeConfig
	grid      Grid
	rng       *rand.Rand
	clock     *Clock
	projector Projector
	ticks     uint64

	head     Point
	prevHead Point
	dir      Direction
	pending  Direction // applied on the next tick unless it reverses dir
	body     *Body
	growth   int // number of tail segments; always body.Len()
	food     Point
	state    RunState
}

// New creates a game in its initial configuration. cfg must have passed
// config validation; seed drives food placement.
func New(cfg config.SnakeConfig, seed int64) *Game {
	grid := Grid{W: cfg.Grid.Width, H: cfg.Grid.Height}
	g := &Game{
		cfg:       cfg,
		grid:      grid,
		rng:       rand.New(rand.NewSource(seed)),
		clock:     NewClock(cfg.Timing.TickInterval),
		projector: NewProjector(cfg.Render, cfg.Palette),
		// One spare slot for the fallback where food cannot move off a full board.
		body: NewBody(grid.Cells() + 1),
	}
	g.Reset()
	return g
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset restores the initial configuration: start head and food, no
// direction, empty tail, zero growth, empty clock, running.
func (g *Game) Reset() {
	start := g.cfg.Start
	g.head = g.grid.Wrap(Point{X: start.Head.X, Y: start.Head.Y})
	g.prevHead = g.head
	g.food = g.grid.Wrap(Point{X: start.Food.X, Y: start.Food.Y})
	g.dir = DirNone
	g.pending = DirNone
	g.body.Clear()
	g.growth = 0
	g.clock.Reset()
	g.ticks = 0
	g.state = StateRunning
}

// OnInput applies one key event.
func (g *Game) OnInput(ev core.KeyEvent) {
	cmd, ok := MapInput(ev, g.state)
	if !ok {
		return
	}

	switch cmd.Kind {
	case CmdDirection:
		g.pending = cmd.Dir
	case CmdTogglePause:
		if g.state == StateRunning {
			g.state = StatePaused
		} else if g.state == StatePaused {
			g.state = StateRunning
		}
	case CmdReset:
		g.Reset()
	}
}

// OnTick feeds dt seconds of real time to the clock and runs one
// simulation step if a tick fires. Time does not bank while paused or
// after game over.
func (g *Game) OnTick(dt float64) {
	if g.state != StateRunning {
		return
	}
	if g.clock.Advance(dt) {
		g.step()
	}
}

// OnRender projects the current state to draw rectangles.
func (g *Game) OnRender() iter.Seq[DrawRect] {
	return g.projector.Project(g)
}

// step advances the snake exactly one cell. The order matters: the body
// trails the old head, direction is settled before moving, and growth
// lands on the vacated cell.
func (g *Game) step() {
	g.ticks++

	if g.growth > 0 {
		g.body.Shift(g.head)
	}

	if g.pending.Reverses(g.dir) {
		g.pending = g.dir
	} else {
		g.dir = g.pending
	}

	g.prevHead = g.head
	g.head = g.grid.Step(g.head, g.dir)

	if g.head == g.food {
		g.relocateFood()
		g.growth++
		g.body.Prepend(g.prevHead)
	}

	if g.body.Contains(g.head) {
		g.state = StateGameOver
	}
}

// relocateFood moves the food to a random cell not covered by the tail,
// the previous head or the head. On a full board the food stays put.
func (g *Game) relocateFood() {
	occupied := make([]bool, g.grid.Cells())
	mark := func(p Point) {
		occupied[p.Y*g.grid.W+p.X] = true
	}
	for seg := range g.body.All() {
		mark(seg)
	}
	mark(g.prevHead)
	mark(g.head)

	free := make([]Point, 0, len(occupied))
	for y := range g.grid.H {
		for x := range g.grid.W {
			if !occupied[y*g.grid.W+x] {
				free = append(free, Point{X: x, Y: y})
			}
		}
	}

	if len(free) == 0 {
		return
	}
	g.food = free[g.rng.Intn(len(free))]
}

// Grid returns the playfield dimensions.
func (g *Game) Grid() Grid { return g.grid }

// Head returns the head position.
func (g *Game) Head() Point { return g.head }

// PrevHead returns the head position before the last step.
func (g *Game) PrevHead() Point { return g.prevHead }

// Direction returns the current heading.
func (g *Game) Direction() Direction { return g.dir }

// Pending returns the heading queued for the next tick.
func (g *Game) Pending() Direction { return g.pending }

// Growth returns the growth counter.
func (g *Game) Growth() int { return g.growth }

// Food returns the food position.
func (g *Game) Food() Point { return g.food }

// RunState returns the current run state.
func (g *Game) RunState() RunState { return g.state }

// Ticks returns the number of simulation steps since the last reset.
func (g *Game) Ticks() uint64 { return g.ticks }

// Tail yields tail segments from the head end.
func (g *Game) Tail() iter.Seq[Point] { return g.body.All() }

// State returns the coarse status for hosts.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.growth,
		GameOver: g.state == StateGameOver,
		Paused:   g.state == StatePaused,
	}
}
