package main

func (m *model) undo() {
	if len(m.undoStack) == 0 {
		return
	}

	lastIndex := len(m.undoStack) - 1
	action := m.undoStack[lastIndex]
	m.undoStack = m.undoStack[:lastIndex]

	switch action.Type {
	case ActionAddFigure:
		data := action.Inverse.(FigureData)
		// connections ending on a figure sharing this center stay
		_, removed, _ := m.doc.DeleteFigure(data.Index)
		for _, conn := range removed {
			m.doc.AddConnection(conn)
		}
	case ActionDeleteFigure:
		data := action.Inverse.(FigureData)
		m.doc.InsertFigure(data.Index, data.Figure, data.Connections)
	case ActionMoveFigure:
		data := action.Inverse.(FigureRectData)
		_ = m.doc.SetFigureRect(data.Index, data.Rect)
	case ActionAddConnection:
		data := action.Inverse.(ConnectionData)
		m.doc.RemoveConnection(data.Connection)
	case ActionReplace:
		data := action.Inverse.(SnapshotData)
		m.doc.Replace(data.Diagram)
	}

	m.redoStack = append(m.redoStack, action)
	m.markChanged()
}

func (m *model) redo() {
	if len(m.redoStack) == 0 {
		return
	}

	lastIndex := len(m.redoStack) - 1
	action := m.redoStack[lastIndex]
	m.redoStack = m.redoStack[:lastIndex]

	switch action.Type {
	case ActionAddFigure:
		data := action.Data.(FigureData)
		m.doc.InsertFigure(data.Index, data.Figure, nil)
	case ActionDeleteFigure:
		data := action.Data.(FigureData)
		_, _, _ = m.doc.DeleteFigure(data.Index)
	case ActionMoveFigure:
		data := action.Data.(FigureRectData)
		_ = m.doc.SetFigureRect(data.Index, data.Rect)
	case ActionAddConnection:
		data := action.Data.(ConnectionData)
		m.doc.AddConnection(data.Connection)
	case ActionReplace:
		data := action.Data.(SnapshotData)
		m.doc.Replace(data.Diagram)
	}

	m.undoStack = append(m.undoStack, action)
	m.markChanged()
}
