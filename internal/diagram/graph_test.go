package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildGraph(t *testing.T) {
	figures := []Figure{
		{Shape: Rectangle, Rect: Rect{0, 0, 5, 3}},
		{Shape: Triangle, Rect: Rect{10, 0, 5, 3}},
		{Shape: Ellipse, Rect: Rect{20, 0, 5, 3}},
		{Shape: Rectangle, Rect: Rect{30, 0, 5, 3}},
	}
	g := BuildGraph(figures, []Connection{
		{From: Point{2, 1}, To: Point{12, 1}},
		{From: Point{22, 1}, To: Point{12, 1}},
		// duplicate edges collapse
		{From: Point{12, 1}, To: Point{2, 1}},
		{From: Point{2, 1}, To: Point{99, 99}},
	})

	assert.Equal(t, []int{0, 2}, g.Neighbors(1))
	assert.Equal(t, 2, g.Degree(1))
	assert.Equal(t, 1, g.Degree(0))
	assert.Zero(t, g.Degree(3))
	assert.Nil(t, g.Neighbors(3))
	assert.True(t, g.Connected(2, 1))
	assert.False(t, g.Connected(0, 2))
	assert.Equal(t, 3, g.Len())
	assert.Equal(t, []int{0, 1, 2}, g.Nodes())
}

func TestBuildGraphEmpty(t *testing.T) {
	g := BuildGraph(nil, nil)
	assert.Zero(t, g.Len())
	assert.Empty(t, g.Nodes())
}
