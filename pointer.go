package main

import (
	"go.uber.org/zap"

	"diagrammer/internal/diagram"
)

// pointerPress starts a gesture at p for the active tool.
func (m *model) pointerPress(p diagram.Point) {
	m.pressed = true
	m.startPoint = p
	m.endPoint = p

	switch m.tool {
	case ToolMove:
		m.pickUp(p, false)
	case ToolConnect:
		m.connecting = false
		m.beginConnection(p)
	case ToolDelete:
		m.deleteAt(p)
	}
}

func (m *model) pointerMotion(p diagram.Point) {
	switch {
	case m.tool == ToolMove && m.movingFigure != -1:
		m.dragTo(p)
	default:
		m.endPoint = p
	}

	if m.tool == ToolConnect && m.pressed && !m.connecting {
		m.beginConnection(p)
	}
}

func (m *model) pointerRelease(p diagram.Point) {
	m.endPoint = p
	switch {
	case m.tool.shape().IsDrawable():
		m.addFigure(m.startPoint, p)
	case m.tool == ToolConnect && m.connecting:
		m.finishConnection(p)
	case m.tool == ToolMove && m.movingFigure != -1:
		m.dragTo(p)
		m.drop()
	}
	m.pressed = false
	m.movingFigure = -1
}

// activate is the keyboard click at the cursor. Two-step gestures take the
// first press as the pointer going down and the second as it coming up.
// place additionally creates a default-size figure when no anchor is set.
func (m *model) activate(place bool) {
	p := m.worldCoords()
	switch m.tool {
	case ToolRectangle, ToolTriangle, ToolEllipse:
		switch {
		case m.anchorSet:
			m.addFigure(m.startPoint, p)
			m.anchorSet = false
		case place:
			m.addFigure(p, p)
		default:
			m.anchorSet = true
			m.startPoint = p
			m.endPoint = p
		}
	case ToolMove:
		if m.movingFigure == -1 {
			m.pickUp(p, true)
		} else {
			m.drop()
			m.movingFigure = -1
			m.keyboardMove = false
		}
	case ToolDelete:
		m.deleteAt(p)
	case ToolConnect:
		if !m.connecting {
			m.beginConnection(p)
			if !m.connecting {
				m.errorMessage = "No figure under cursor"
			}
		} else {
			m.finishConnection(p)
		}
	}
}

// cancelGesture abandons whatever the pointer or keyboard had started. A
// keyboard move is rolled back; a mouse drag is kept as one undo step.
func (m *model) cancelGesture() {
	if m.movingFigure != -1 {
		if m.keyboardMove {
			_ = m.doc.SetFigureRect(m.movingFigure, m.moveOrigin)
		} else {
			m.drop()
		}
	}
	m.pressed = false
	m.anchorSet = false
	m.connecting = false
	m.movingFigure = -1
	m.keyboardMove = false
}

func (m *model) figureRect(start, end diagram.Point) diagram.Rect {
	r := diagram.RectFromPoints(start, end)
	if r.W == 1 && r.H == 1 {
		return diagram.Rect{X: start.X, Y: start.Y, W: m.config.DefaultFigure.Width, H: m.config.DefaultFigure.Height}
	}
	return r.GrowTo(m.config.MinFigure.Width, m.config.MinFigure.Height, start)
}

func (m *model) addFigure(start, end diagram.Point) {
	fig := diagram.Figure{Shape: m.tool.shape(), Rect: m.figureRect(start, end)}
	idx, err := m.doc.AddFigure(fig)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	data := FigureData{Index: idx, Figure: fig}
	m.recordAction(ActionAddFigure, data, data)
	m.markChanged()
	m.logger.Debug("figure added", zap.Int("index", idx), zap.Stringer("shape", fig.Shape))
}

func (m *model) deleteAt(p diagram.Point) {
	idx := m.doc.FigureAt(p)
	if idx == -1 {
		return
	}
	fig, removed, err := m.doc.DeleteFigure(idx)
	if err != nil {
		m.errorMessage = err.Error()
		return
	}
	data := FigureData{Index: idx, Figure: fig, Connections: removed}
	m.recordAction(ActionDeleteFigure, data, data)
	m.markChanged()
	m.logger.Debug("figure deleted", zap.Int("index", idx), zap.Int("connections", len(removed)))
}

// pickUp starts moving the figure at p. A move already in progress is
// dropped where it is first.
func (m *model) pickUp(p diagram.Point, keyboard bool) {
	if m.movingFigure != -1 {
		m.drop()
	}
	m.keyboardMove = false
	m.movingFigure = m.doc.FigureAt(p)
	if m.movingFigure == -1 {
		return
	}
	m.moveOrigin = m.doc.Figures[m.movingFigure].Rect
	m.lastPointer = p
	m.keyboardMove = keyboard
}

func (m *model) dragTo(p diagram.Point) {
	delta := p.Sub(m.lastPointer)
	if delta == (diagram.Point{}) {
		return
	}
	if err := m.doc.MoveFigure(m.movingFigure, delta); err != nil {
		m.errorMessage = err.Error()
		return
	}
	m.lastPointer = p
}

// drop records the finished move as one undo step.
func (m *model) drop() {
	idx := m.movingFigure
	if idx < 0 || idx >= len(m.doc.Figures) {
		return
	}
	to := m.doc.Figures[idx].Rect
	if to == m.moveOrigin {
		return
	}
	m.recordAction(ActionMoveFigure, FigureRectData{Index: idx, Rect: to}, FigureRectData{Index: idx, Rect: m.moveOrigin})
	m.markChanged()
}

// moveInProgress reports whether a move has shifted its figure without an undo
// step for it yet.
func (m *model) moveInProgress() bool {
	idx := m.movingFigure
	return idx >= 0 && idx < len(m.doc.Figures) && m.doc.Figures[idx].Rect != m.moveOrigin
}

func (m *model) beginConnection(p diagram.Point) {
	idx := m.doc.FigureAt(p)
	if idx == -1 {
		return
	}
	m.connecting = true
	m.connectionStart = m.doc.Figures[idx].Rect.Center()
	m.endPoint = p
}

func (m *model) finishConnection(p diagram.Point) {
	m.connecting = false
	target := m.doc.TargetAt(p, m.connectionStart)
	if target == -1 {
		return
	}
	conn := diagram.Connection{From: m.connectionStart, To: m.doc.Figures[target].Rect.Center()}
	m.doc.AddConnection(conn)
	m.recordAction(ActionAddConnection, ConnectionData{conn}, ConnectionData{conn})
	m.markChanged()
	m.logger.Debug("connection added",
		zap.Int("from_x", conn.From.X), zap.Int("from_y", conn.From.Y),
		zap.Int("to_x", conn.To.X), zap.Int("to_y", conn.To.Y))
}

// previewEnd is where an in-progress gesture currently ends.
func (m *model) previewEnd() diagram.Point {
	if m.pressed {
		return m.endPoint
	}
	return m.worldCoords()
}
