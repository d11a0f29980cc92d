package snake

import "iter"

// Body holds the tail segments in head-to-tail order.
// It is a ring buffer sized to the grid so no step ever allocates.
type Body struct {
	buf   []Point
	start int // index of the segment nearest the head
	n     int
}

// NewBody creates an empty body able to hold capacity segments.
func NewBody(capacity int) *Body {
	return &Body{buf: make([]Point, max(capacity, 1))}
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return b.n
}

// At returns the i-th segment, 0 being nearest the head.
func (b *Body) At(i int) Point {
	return b.buf[(b.start+i)%len(b.buf)]
}

// Prepend adds p as the segment nearest the head. When the buffer is full
// the segment farthest from the head is dropped.
func (b *Body) Prepend(p Point) {
	b.start = (b.start - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.start] = p
	if b.n < len(b.buf) {
		b.n++
	}
}

// Shift pushes p at the head end and drops the farthest segment, so the
// whole body trails one step behind. An empty body stays empty.
func (b *Body) Shift(p Point) {
	if b.n == 0 {
		return
	}
	b.start = (b.start - 1 + len(b.buf)) % len(b.buf)
	b.buf[b.start] = p
}

// Contains reports whether any segment sits on p.
func (b *Body) Contains(p Point) bool {
	for i := range b.n {
		if b.At(i) == p {
			return true
		}
	}
	return false
}

// Clear removes every segment.
func (b *Body) Clear() {
	b.start = 0
	b.n = 0
}

// All yields segments from the head end to the tail end.
func (b *Body) All() iter.Seq[Point] {
	return func(yield func(Point) bool) {
		for i := range b.n {
			if !yield(b.At(i)) {
				return
			}
		}
	}
}

// Slice returns a copy of the segments in head-to-tail order.
func (b *Body) Slice() []Point {
	out := make([]Point, 0, b.n)
	for p := range b.All() {
		out = append(out, p)
	}
	return out
}
