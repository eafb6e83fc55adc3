package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"diagrammer/internal/diagram"
)

func outlineRows(shape diagram.Shape, w, h int) []string {
	c := NewCanvas(w, h, diagram.Point{}, newShapeCache(8))
	c.DrawFigure(diagram.Figure{Shape: shape, Rect: diagram.Rect{W: w, H: h}}, false)
	return c.Lines()
}

func TestRectangleOutline(t *testing.T) {
	assert.Equal(t, []string{
		"+---+",
		"|   |",
		"+---+",
	}, outlineRows(diagram.Rectangle, 5, 3))
}

func TestTriangleOutline(t *testing.T) {
	assert.Equal(t, []string{
		"  ^  ",
		" / \\ ",
		"-----",
	}, outlineRows(diagram.Triangle, 5, 3))

	rows := outlineRows(diagram.Triangle, 12, 5)
	assert.Equal(t, strings.Repeat("-", 12), rows[4])
	assert.Equal(t, 1, strings.Count(rows[0], "^"))
	for _, row := range rows[1:4] {
		assert.Contains(t, row, "/")
		assert.Contains(t, row, "\\")
	}
}

func TestEllipseOutline(t *testing.T) {
	assert.Equal(t, []string{
		" --- ",
		"(   )",
		" --- ",
	}, outlineRows(diagram.Ellipse, 5, 3))
}

func TestDegenerateOutlines(t *testing.T) {
	assert.Equal(t, []string{"+"}, outlineRows(diagram.Rectangle, 1, 1))
	assert.Equal(t, []string{"---"}, outlineRows(diagram.Triangle, 3, 1))
	assert.Empty(t, rasterize(diagram.Rectangle, 0, 3))
	assert.Empty(t, rasterize(diagram.None, 3, 3))
}

func TestLargeFigureIsClippedToCanvas(t *testing.T) {
	c := NewCanvas(6, 3, diagram.Point{X: 9995}, newShapeCache(8))
	c.DrawFigure(diagram.Figure{Shape: diagram.Rectangle, Rect: diagram.Rect{W: diagram.MaxExtent, H: 3}}, false)
	assert.Equal(t, []string{
		"----+ ",
		"    | ",
		"----+ ",
	}, c.Lines())

	c = NewCanvas(4, 2, diagram.Point{X: -2, Y: -1}, newShapeCache(8))
	c.DrawFigure(diagram.Figure{Shape: diagram.Ellipse, Rect: diagram.Rect{W: diagram.MaxExtent, H: diagram.MaxExtent}}, true)
	assert.Len(t, c.Lines(), 2)

	spans := rasterize(diagram.Ellipse, diagram.MaxExtent, diagram.MaxExtent)
	assert.Less(t, len(spans), 8*diagram.MaxExtent)
	assert.Empty(t, rasterize(diagram.Rectangle, diagram.MaxExtent+1, 3))
}

func TestShapeCacheReusesOutlines(t *testing.T) {
	cache := newShapeCache(2)
	first := cache.outline(diagram.Rectangle, 5, 3)
	again := cache.outline(diagram.Rectangle, 5, 3)
	assert.Equal(t, first, again)
	assert.Equal(t, 1, cache.Len())

	cache.outline(diagram.Triangle, 5, 3)
	cache.outline(diagram.Ellipse, 5, 3)
	assert.Equal(t, 2, cache.Len())
}

func TestDrawConnectionGlyphs(t *testing.T) {
	c := NewCanvas(6, 4, diagram.Point{}, newShapeCache(8))
	c.DrawConnection(diagram.Connection{From: diagram.Point{X: 0, Y: 0}, To: diagram.Point{X: 3, Y: 3}})
	assert.Equal(t, []string{
		"*     ",
		" \\    ",
		"  \\   ",
		"   *  ",
	}, c.Lines())

	c = NewCanvas(3, 4, diagram.Point{}, newShapeCache(8))
	c.DrawConnection(diagram.Connection{From: diagram.Point{X: 1, Y: 3}, To: diagram.Point{X: 1, Y: 0}})
	assert.Equal(t, []string{" * ", " | ", " | ", " * "}, c.Lines())
}

func TestCanvasClipsAndPans(t *testing.T) {
	c := NewCanvas(4, 2, diagram.Point{X: 2, Y: 1}, newShapeCache(8))
	c.DrawFigure(diagram.Figure{Shape: diagram.Rectangle, Rect: diagram.Rect{X: 0, Y: 0, W: 5, H: 3}}, false)
	assert.Equal(t, []string{"  | ", "--+ "}, c.Lines())
}

func TestSelectedFigureIsHighlighted(t *testing.T) {
	d := diagram.New()
	_, err := d.AddFigure(diagram.Figure{Shape: diagram.Rectangle, Rect: diagram.Rect{W: 3, H: 3}})
	require.NoError(t, err)
	c := NewCanvas(3, 3, diagram.Point{}, newShapeCache(8))
	c.DrawDiagram(d, 0)
	assert.Equal(t, []string{"###", "# #", "###"}, c.Lines())
}

func TestFormatGraph(t *testing.T) {
	d := diagram.New()
	for _, x := range []int{0, 10, 20} {
		_, err := d.AddFigure(diagram.Figure{Shape: diagram.Triangle, Rect: diagram.Rect{X: x, W: 5, H: 3}})
		require.NoError(t, err)
	}
	_, err := d.Connect(diagram.Point{X: 2, Y: 1}, diagram.Point{X: 22, Y: 1})
	require.NoError(t, err)

	assert.Equal(t, []string{
		"Graph: 3 figures, 1 connections",
		"0 Triangle -> [2]",
		"1 Triangle -> []",
		"2 Triangle -> [0]",
	}, formatGraph(d))
}

func TestToolbarItemAt(t *testing.T) {
	item, ok := toolbarItemAt(0)
	require.True(t, ok)
	assert.Equal(t, ToolNone, item.tool)

	item, ok = toolbarItemAt(6)
	require.True(t, ok)
	assert.Equal(t, ToolRectangle, item.tool)

	item, ok = toolbarItemAt(59)
	require.True(t, ok)
	assert.True(t, item.clear)

	_, ok = toolbarItemAt(60)
	assert.False(t, ok)
}
