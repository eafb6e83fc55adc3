package diagram

import "math"

const (
	// MaxExtent bounds a figure's width and height.
	MaxExtent = 10000
	// MaxCoordinate bounds every stored coordinate in both directions.
	MaxCoordinate = 1 << 20
)

// Point is a cell coordinate on the canvas.
type Point struct {
	X, Y int
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// InRange reports whether both coordinates are within MaxCoordinate.
func (p Point) InRange() bool {
	return p.X >= -MaxCoordinate && p.X <= MaxCoordinate && p.Y >= -MaxCoordinate && p.Y <= MaxCoordinate
}

// Rect covers the cells X..X+W-1 and Y..Y+H-1.
type Rect struct {
	X, Y, W, H int
}

// RectFromPoints returns the rect spanning both corners, inclusive, whatever
// their order.
func RectFromPoints(a, b Point) Rect {
	minX, maxX := a.X, b.X
	if maxX < minX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if maxY < minY {
		minY, maxY = maxY, minY
	}
	return Rect{X: minX, Y: minY, W: maxX - minX + 1, H: maxY - minY + 1}
}

func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Valid reports whether r is non-empty, at most MaxExtent on each side and
// has all of its cells within MaxCoordinate.
func (r Rect) Valid() bool {
	if r.Empty() || r.W > MaxExtent || r.H > MaxExtent {
		return false
	}
	return Point{r.X, r.Y}.InRange() && Point{r.Right(), r.Bottom()}.InRange()
}

// Right saturates at math.MaxInt instead of overflowing.
func (r Rect) Right() int {
	return lastCell(r.X, r.W)
}

func (r Rect) Bottom() int {
	return lastCell(r.Y, r.H)
}

func lastCell(start, size int) int {
	if size > 0 && start > math.MaxInt-(size-1) {
		return math.MaxInt
	}
	return start + size - 1
}

func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Center rounds toward the top-left cell for even sizes.
func (r Rect) Center() Point {
	return Point{r.X + (r.W-1)/2, r.Y + (r.H-1)/2}
}

func (r Rect) Translate(d Point) Rect {
	r.X += d.X
	r.Y += d.Y
	return r
}

// Union returns the smallest rect covering r and s. An empty operand is ignored.
func (r Rect) Union(s Rect) Rect {
	if r.Empty() {
		return s
	}
	if s.Empty() {
		return r
	}
	return RectFromPoints(
		Point{min(r.X, s.X), min(r.Y, s.Y)},
		Point{max(r.Right(), s.Right()), max(r.Bottom(), s.Bottom())},
	)
}

// GrowTo enlarges r to at least w by h cells, keeping the corner anchored at
// anchor fixed so a drag in any direction grows away from where it started.
func (r Rect) GrowTo(w, h int, anchor Point) Rect {
	if r.W < w {
		if anchor.X > r.X {
			r.X = anchor.X - w + 1
		}
		r.W = w
	}
	if r.H < h {
		if anchor.Y > r.Y {
			r.Y = anchor.Y - h + 1
		}
		r.H = h
	}
	return r
}
