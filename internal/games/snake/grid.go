package snake

// Point is a grid coordinate.
type Point struct {
	X, Y int
}

// Direction is the snake's heading. The zero value is DirNone.
type Direction int

const (
	DirNone Direction = iota
	DirNorth
	DirSouth
	DirEast
	DirWest
)

// Delta returns the unit displacement for the direction.
// North is toward y = 0. Unknown values move nowhere.
func (d Direction) Delta() Point {
	switch d {
	case DirNorth:
		return Point{X: 0, Y: -1}
	case DirSouth:
		return Point{X: 0, Y: 1}
	case DirEast:
		return Point{X: 1, Y: 0}
	case DirWest:
		return Point{X: -1, Y: 0}
	default:
		require(d == DirNone, "unknown direction value")
		return Point{}
	}
}

// Opposite returns the reverse heading. DirNone is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case DirNorth:
		return DirSouth
	case DirSouth:
		return DirNorth
	case DirEast:
		return DirWest
	case DirWest:
		return DirEast
	default:
		return DirNone
	}
}

// Reverses reports whether d points straight back along cur.
func (d Direction) Reverses(cur Direction) bool {
	return d != DirNone && d == cur.Opposite()
}

func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirNorth:
		return "north"
	case DirSouth:
		return "south"
	case DirEast:
		return "east"
	case DirWest:
		return "west"
	default:
		return "unknown"
	}
}

// Grid is the toroidal playfield.
type Grid struct {
	W, H int
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.W * g.H
}

// Contains reports whether p lies on the grid without wrapping.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Wrap folds p back onto the grid, each axis independently.
func (g Grid) Wrap(p Point) Point {
	return Point{X: wrap(p.X, g.W), Y: wrap(p.Y, g.H)}
}

// Step moves p one cell in direction d and wraps the result.
func (g Grid) Step(p Point, d Direction) Point {
	delta := d.Delta()
	return g.Wrap(Point{X: p.X + delta.X, Y: p.Y + delta.Y})
}

func wrap(v, n int) int {
	return ((v % n) + n) % n
}
