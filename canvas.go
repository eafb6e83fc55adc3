package main

import (
	"strings"

	"diagrammer/internal/diagram"
)

// Canvas is a screen-sized grid of glyphs. Drawing calls take world
// coordinates and are clipped to the visible area after panning.
type Canvas struct {
	cells  [][]rune
	width  int
	height int
	pan    diagram.Point
	shapes *shapeCache
}

func NewCanvas(width, height int, pan diagram.Point, shapes *shapeCache) *Canvas {
	if height < 1 {
		height = 1
	}
	if width < 1 {
		width = 1
	}
	cells := make([][]rune, height)
	for i := range cells {
		cells[i] = []rune(strings.Repeat(" ", width))
	}
	return &Canvas{cells: cells, width: width, height: height, pan: pan, shapes: shapes}
}

func (c *Canvas) set(p diagram.Point, r rune) {
	c.setScreen(p.X-c.pan.X, p.Y-c.pan.Y, r)
}

func (c *Canvas) setScreen(x, y int, r rune) {
	if y < 0 || y >= c.height || x < 0 || x >= c.width {
		return
	}
	c.cells[y][x] = r
}

// DrawDiagram draws connections first so figure outlines sit on top of them.
func (c *Canvas) DrawDiagram(d *diagram.Diagram, selected int) {
	for _, conn := range d.Connections {
		c.DrawConnection(conn)
	}
	for i, fig := range d.Figures {
		c.DrawFigure(fig, i == selected)
	}
}

// DrawFigure clips each outline span to the visible area, so the work done
// per figure does not depend on how much of it is off screen.
func (c *Canvas) DrawFigure(fig diagram.Figure, selected bool) {
	if !fig.Rect.Valid() {
		return
	}
	left := fig.Rect.X - c.pan.X
	top := fig.Rect.Y - c.pan.Y
	if left >= c.width || top >= c.height || left+fig.Rect.W <= 0 || top+fig.Rect.H <= 0 {
		return
	}
	for _, s := range c.shapes.outline(fig.Shape, fig.Rect.W, fig.Rect.H) {
		y := top + s.dy
		if y < 0 || y >= c.height {
			continue
		}
		r := s.r
		if selected {
			r = '#'
		}
		for x := max(left+s.x0, 0); x <= min(left+s.x1, c.width-1); x++ {
			c.cells[y][x] = r
		}
	}
}

// DrawConnection walks a Bresenham line, picking a glyph from the direction
// of each step.
func (c *Canvas) DrawConnection(conn diagram.Connection) {
	x0, y0 := conn.From.X, conn.From.Y
	x1, y1 := conn.To.X, conn.To.Y
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx, sy := 1, 1
	if x0 > x1 {
		sx = -1
	}
	if y0 > y1 {
		sy = -1
	}
	glyph := lineGlyph(sx, sy, dx, -dy)
	err := dx + dy
	for {
		c.set(diagram.Point{X: x0, Y: y0}, glyph)
		if x0 == x1 && y0 == y1 {
			break
		}
		stepX, stepY := false, false
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
			stepX = true
		}
		if e2 <= dx {
			err += dx
			y0 += sy
			stepY = true
		}
		switch {
		case stepX && stepY:
			if sx == sy {
				glyph = '\\'
			} else {
				glyph = '/'
			}
		case stepX:
			glyph = '-'
		default:
			glyph = '|'
		}
	}
	c.set(conn.From, '*')
	c.set(conn.To, '*')
}

func lineGlyph(sx, sy, dx, dy int) rune {
	switch {
	case dy == 0:
		return '-'
	case dx == 0:
		return '|'
	case sx == sy:
		return '\\'
	default:
		return '/'
	}
}

func (c *Canvas) Lines() []string {
	lines := make([]string, c.height)
	for i, row := range c.cells {
		lines[i] = string(row)
	}
	return lines
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Overlay writes text in screen coordinates on top of the drawing.
func (c *Canvas) Overlay(x, y int, text string) {
	for i, r := range []rune(text) {
		c.setScreen(x+i, y, r)
	}
}
