// Package diagram holds the editable document: figures, the connections drawn
// between their centers, and the adjacency graph derived from both.
//
// Every mutating method leaves Graph equal to BuildGraph(Figures, Connections).
package diagram

import (
	"errors"
	"slices"
)

var (
	ErrInvalidFigure   = errors.New("figure needs a drawable shape and a rect within range")
	ErrNoSourceFigure  = errors.New("no figure at connection start")
	ErrNoTargetFigure  = errors.New("no other figure at connection end")
	ErrFigureNotExists = errors.New("figure index out of range")
)

type Figure struct {
	Shape Shape
	Rect  Rect
}

// Connection joins two points that are expected to be figure centers.
type Connection struct {
	From Point
	To   Point
}

// Touches reports whether either endpoint is p.
func (c Connection) Touches(p Point) bool {
	return c.From == p || c.To == p
}

type Diagram struct {
	Figures     []Figure
	Connections []Connection

	graph Graph
}

func New() *Diagram {
	return &Diagram{graph: make(Graph)}
}

func (d *Diagram) rebuild() {
	d.graph = BuildGraph(d.Figures, d.Connections)
}

// Graph returns the current adjacency. Callers must not modify it.
func (d *Diagram) Graph() Graph {
	if d.graph == nil {
		d.rebuild()
	}
	return d.graph
}

func (d *Diagram) Neighbors(idx int) []int {
	return d.Graph().Neighbors(idx)
}

func (d *Diagram) IsEmpty() bool {
	return len(d.Figures) == 0 && len(d.Connections) == 0
}

func (d *Diagram) AddFigure(f Figure) (int, error) {
	if !f.Shape.IsDrawable() || !f.Rect.Valid() {
		return -1, ErrInvalidFigure
	}
	d.Figures = append(d.Figures, f)
	d.rebuild()
	return len(d.Figures) - 1, nil
}

// FigureAt returns the first figure in list order containing p, or -1.
func (d *Diagram) FigureAt(p Point) int {
	for i, fig := range d.Figures {
		if fig.Rect.Contains(p) {
			return i
		}
	}
	return -1
}

// DeleteFigureAt removes the first figure containing p along with every
// connection ending at its center.
func (d *Diagram) DeleteFigureAt(p Point) (Figure, []Connection, bool) {
	idx := d.FigureAt(p)
	if idx == -1 {
		return Figure{}, nil, false
	}
	fig, removed, err := d.DeleteFigure(idx)
	if err != nil {
		return Figure{}, nil, false
	}
	return fig, removed, true
}

func (d *Diagram) DeleteFigure(idx int) (Figure, []Connection, error) {
	if idx < 0 || idx >= len(d.Figures) {
		return Figure{}, nil, ErrFigureNotExists
	}
	fig := d.Figures[idx]
	center := fig.Rect.Center()

	var removed []Connection
	d.Connections = slices.DeleteFunc(d.Connections, func(c Connection) bool {
		if c.Touches(center) {
			removed = append(removed, c)
			return true
		}
		return false
	})
	d.Figures = slices.Delete(d.Figures, idx, idx+1)
	d.rebuild()
	return fig, removed, nil
}

// InsertFigure puts a previously deleted figure back at idx and restores its
// connections.
func (d *Diagram) InsertFigure(idx int, f Figure, conns []Connection) {
	idx = max(0, min(idx, len(d.Figures)))
	d.Figures = slices.Insert(d.Figures, idx, f)
	d.Connections = append(d.Connections, conns...)
	d.rebuild()
}

// MoveFigure shifts figure idx by delta and drags attached connection ends
// with its center.
func (d *Diagram) MoveFigure(idx int, delta Point) error {
	if idx < 0 || idx >= len(d.Figures) {
		return ErrFigureNotExists
	}
	return d.SetFigureRect(idx, d.Figures[idx].Rect.Translate(delta))
}

func (d *Diagram) SetFigureRect(idx int, r Rect) error {
	if idx < 0 || idx >= len(d.Figures) {
		return ErrFigureNotExists
	}
	if !r.Valid() {
		return ErrInvalidFigure
	}
	oldCenter := d.Figures[idx].Rect.Center()
	newCenter := r.Center()
	d.Figures[idx].Rect = r
	if oldCenter != newCenter {
		for i := range d.Connections {
			if d.Connections[i].From == oldCenter {
				d.Connections[i].From = newCenter
			}
			if d.Connections[i].To == oldCenter {
				d.Connections[i].To = newCenter
			}
		}
	}
	d.rebuild()
	return nil
}

// Connect links the figure containing from to the first figure containing to
// whose center differs from the source center.
func (d *Diagram) Connect(from, to Point) (Connection, error) {
	src := d.FigureAt(from)
	if src == -1 {
		return Connection{}, ErrNoSourceFigure
	}
	start := d.Figures[src].Rect.Center()
	dst := d.TargetAt(to, start)
	if dst == -1 {
		return Connection{}, ErrNoTargetFigure
	}
	conn := Connection{From: start, To: d.Figures[dst].Rect.Center()}
	d.AddConnection(conn)
	return conn, nil
}

// TargetAt returns the first figure containing p whose center is not start, or -1.
func (d *Diagram) TargetAt(p, start Point) int {
	for i, fig := range d.Figures {
		if fig.Rect.Contains(p) && fig.Rect.Center() != start {
			return i
		}
	}
	return -1
}

func (d *Diagram) AddConnection(c Connection) {
	d.Connections = append(d.Connections, c)
	d.rebuild()
}

// RemoveConnection drops the most recently added connection equal to c.
func (d *Diagram) RemoveConnection(c Connection) bool {
	for i := len(d.Connections) - 1; i >= 0; i-- {
		if d.Connections[i] == c {
			d.Connections = slices.Delete(d.Connections, i, i+1)
			d.rebuild()
			return true
		}
	}
	return false
}

func (d *Diagram) Clear() {
	d.Figures = nil
	d.Connections = nil
	d.graph = make(Graph)
}

// Replace swaps in the content of other, keeping d's identity.
func (d *Diagram) Replace(other *Diagram) {
	d.Figures = slices.Clone(other.Figures)
	d.Connections = slices.Clone(other.Connections)
	d.rebuild()
}

func (d *Diagram) Clone() *Diagram {
	c := &Diagram{
		Figures:     slices.Clone(d.Figures),
		Connections: slices.Clone(d.Connections),
	}
	c.rebuild()
	return c
}

// Bounds covers every figure and connection endpoint. ok is false for an empty
// diagram.
func (d *Diagram) Bounds() (r Rect, ok bool) {
	for _, fig := range d.Figures {
		r = r.Union(fig.Rect)
	}
	for _, conn := range d.Connections {
		r = r.Union(RectFromPoints(conn.From, conn.To))
	}
	return r, !r.Empty()
}
