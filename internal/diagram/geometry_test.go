package diagram

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRectFromPoints(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Rect
	}{
		{"down-right drag", Point{2, 3}, Point{6, 5}, Rect{2, 3, 5, 3}},
		{"up-left drag", Point{6, 5}, Point{2, 3}, Rect{2, 3, 5, 3}},
		{"single cell", Point{4, 4}, Point{4, 4}, Rect{4, 4, 1, 1}},
		{"mixed", Point{6, 1}, Point{2, 9}, Rect{2, 1, 5, 9}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, RectFromPoints(tt.a, tt.b))
		})
	}
}

func TestRectContainsIsInclusive(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 5, H: 3}
	assert.True(t, r.Contains(Point{10, 10}))
	assert.True(t, r.Contains(Point{14, 12}))
	assert.False(t, r.Contains(Point{15, 12}))
	assert.False(t, r.Contains(Point{14, 13}))
	assert.False(t, r.Contains(Point{9, 10}))
	assert.False(t, Rect{X: 1, Y: 1}.Contains(Point{1, 1}))
}

func TestRectCenter(t *testing.T) {
	assert.Equal(t, Point{12, 11}, Rect{X: 10, Y: 10, W: 5, H: 3}.Center())
	// even sizes round toward the top-left
	assert.Equal(t, Point{11, 10}, Rect{X: 10, Y: 10, W: 4, H: 2}.Center())
	assert.Equal(t, Point{0, 0}, Rect{X: 0, Y: 0, W: 1, H: 1}.Center())
}

func TestRectGrowTo(t *testing.T) {
	// dragged right/down from the anchor
	r := RectFromPoints(Point{5, 5}, Point{6, 5})
	assert.Equal(t, Rect{5, 5, 8, 3}, r.GrowTo(8, 3, Point{5, 5}))

	// dragged left/up from the anchor
	r = RectFromPoints(Point{10, 10}, Point{9, 9})
	assert.Equal(t, Rect{3, 8, 8, 3}, r.GrowTo(8, 3, Point{10, 10}))

	// already big enough
	r = Rect{0, 0, 20, 10}
	assert.Equal(t, r, r.GrowTo(8, 3, Point{0, 0}))
}

func TestRectUnion(t *testing.T) {
	a := Rect{0, 0, 2, 2}
	b := Rect{5, 5, 2, 2}
	assert.Equal(t, Rect{0, 0, 7, 7}, a.Union(b))
	assert.Equal(t, a, Rect{}.Union(a))
	assert.Equal(t, a, a.Union(Rect{}))
}

func TestRectEdgesSaturate(t *testing.T) {
	r := Rect{X: math.MaxInt - 1, Y: math.MaxInt, W: 10, H: 2}
	assert.Equal(t, math.MaxInt, r.Right())
	assert.Equal(t, math.MaxInt, r.Bottom())
	assert.False(t, r.Valid())
	assert.Equal(t, 4, Rect{X: 0, Y: 0, W: 5, H: 3}.Right())
}

func TestRectValid(t *testing.T) {
	assert.True(t, Rect{X: -MaxCoordinate, Y: 0, W: MaxExtent, H: 1}.Valid())
	assert.False(t, Rect{X: 0, Y: 0, W: 0, H: 3}.Valid())
	assert.False(t, Rect{X: 0, Y: 0, W: MaxExtent + 1, H: 3}.Valid())
	assert.False(t, Rect{X: MaxCoordinate, Y: 0, W: 2, H: 2}.Valid())
}

func TestShapeNames(t *testing.T) {
	for _, s := range []Shape{Rectangle, Triangle, Ellipse} {
		assert.True(t, s.IsDrawable())
		assert.Equal(t, s, ParseShape(s.String()))
	}
	assert.Equal(t, "Unknown", None.String())
	assert.Equal(t, None, ParseShape("Hexagon"))
	assert.False(t, None.IsDrawable())
}
