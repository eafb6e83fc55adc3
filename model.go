package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"diagrammer/internal/diagram"
)

func newModel(cfg *Config, logger *zap.Logger) model {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	input := textinput.New()
	input.Prompt = "Filename: "
	input.CharLimit = 255

	mode := ModeNormal
	if cfg.StartMenu {
		mode = ModeStartup
	}
	return model{
		mode:              mode,
		doc:               diagram.New(),
		movingFigure:      -1,
		selectedFileIndex: -1,
		input:             input,
		config:            cfg,
		logger:            logger,
		keys:              defaultKeyMap(),
		helpModel:         help.New(),
		shapes:            newShapeCache(256),
		clipboard:         systemClipboard{},
	}
}

func (m model) Init() tea.Cmd {
	return m.watchCmd()
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpModel.Width = msg.Width
		m.ensureCursorInBounds()
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case fileChangedMsg:
		return m, m.handleFileChanged(msg)
	}
	return m, nil
}

func (m *model) canvasHeight() int {
	h := m.height - toolbarRows - statusRows
	if h < 1 {
		h = 1
	}
	return h
}

func (m *model) canvasWidth() int {
	if m.width < 1 {
		return 1
	}
	return m.width
}

func (m *model) pan() diagram.Point {
	return diagram.Point{X: m.panX, Y: m.panY}
}

// worldCoords is the canvas point under the keyboard cursor.
func (m *model) worldCoords() diagram.Point {
	return diagram.Point{X: m.cursorX + m.panX, Y: m.cursorY + m.panY}
}

// worldAt converts a terminal cell (including the toolbar row) to a canvas point.
func (m *model) worldAt(x, y int) diagram.Point {
	return diagram.Point{X: x + m.panX, Y: y - toolbarRows + m.panY}
}

func (m *model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.mode != ModeNormal || m.help {
		return nil
	}
	switch msg.Type {
	case tea.MouseWheelUp:
		m.panY--
	case tea.MouseWheelDown:
		m.panY++
	case tea.MouseLeft:
		if msg.Y < toolbarRows {
			m.clickToolbar(msg.X)
			return nil
		}
		if msg.Y >= toolbarRows+m.canvasHeight() {
			return nil
		}
		m.cursorX, m.cursorY = msg.X, msg.Y-toolbarRows
		m.ensureCursorInBounds()
		m.errorMessage = ""
		m.pointerPress(m.worldAt(msg.X, msg.Y))
	case tea.MouseMotion:
		if !m.pressed {
			return nil
		}
		m.cursorX, m.cursorY = msg.X, msg.Y-toolbarRows
		m.ensureCursorInBounds()
		m.pointerMotion(m.worldAt(msg.X, msg.Y))
	case tea.MouseRelease:
		if !m.pressed {
			return nil
		}
		m.pointerRelease(m.worldAt(msg.X, msg.Y))
	}
	return nil
}

func (m *model) clickToolbar(x int) {
	item, ok := toolbarItemAt(x)
	if !ok {
		return
	}
	if item.clear {
		m.requestClearAll()
		return
	}
	m.setTool(item.tool)
}

func (m *model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.help && m.mode != ModeStartup {
		if key.Matches(msg, m.keys.Cancel, m.keys.Quit, m.keys.Help) {
			m.help = false
		}
		return nil
	}

	switch m.mode {
	case ModeStartup:
		return m.handleStartupKey(msg)
	case ModeFileInput:
		return m.handleFileInputKey(msg)
	case ModeConfirm:
		return m.handleConfirmKey(msg)
	}
	return m.handleNormalKey(msg)
}

func (m *model) handleStartupKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "n":
		m.mode = ModeNormal
		m.errorMessage = ""
	case "o":
		m.fromStartup = true
		m.startFileInput(FileOpOpen)
	case "q", "ctrl+c":
		return tea.Quit
	}
	return nil
}

func (m *model) handleNormalKey(msg tea.KeyMsg) tea.Cmd {
	m.errorMessage = ""
	if key.Matches(msg, m.keys.Cancel) {
		m.cancelGesture()
		m.tool = ToolNone
		m.zPanMode = false
		m.showGraph = false
		m.successMessage = ""
		return nil
	}

	if tool, ok := m.keys.toolFor(msg.String()); ok {
		m.setTool(tool)
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.Left, m.keys.Right, m.keys.Up, m.keys.Down):
		m.handleNavigation(msg.String(), m.getMoveSpeed(msg.String()))
	case key.Matches(msg, m.keys.Activate):
		m.activate(false)
	case key.Matches(msg, m.keys.Place):
		m.activate(true)
	case key.Matches(msg, m.keys.Pan):
		m.zPanMode = !m.zPanMode
	case key.Matches(msg, m.keys.ClearAll):
		m.requestClearAll()
	case key.Matches(msg, m.keys.Undo):
		m.cancelGesture()
		m.undo()
		m.successMessage = ""
	case key.Matches(msg, m.keys.Redo):
		m.cancelGesture()
		m.redo()
		m.successMessage = ""
	case key.Matches(msg, m.keys.New):
		if m.dirty && m.config.Confirmations {
			m.askConfirm(ConfirmNewDiagram)
		} else {
			return m.newDiagram()
		}
	case key.Matches(msg, m.keys.Save):
		m.startFileInput(FileOpSave)
	case key.Matches(msg, m.keys.QuickSave):
		if m.filename == "" {
			m.startFileInput(FileOpSave)
		} else {
			return m.saveTo(m.filename)
		}
	case key.Matches(msg, m.keys.Open):
		m.fromStartup = false
		m.startFileInput(FileOpOpen)
	case key.Matches(msg, m.keys.ExportPNG):
		m.startFileInput(FileOpSavePNG)
	case key.Matches(msg, m.keys.ExportTXT):
		m.startFileInput(FileOpSaveVisualTXT)
	case key.Matches(msg, m.keys.Copy):
		m.copyToClipboard()
	case key.Matches(msg, m.keys.Paste):
		m.pasteFromClipboard()
	case key.Matches(msg, m.keys.Graph):
		m.showGraph = !m.showGraph
	case key.Matches(msg, m.keys.Help):
		m.help = true
	case key.Matches(msg, m.keys.Quit):
		if m.config.Confirmations {
			m.askConfirm(ConfirmQuit)
			return nil
		}
		return tea.Quit
	}
	return nil
}

func (m *model) handleConfirmKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Cancel) {
		m.mode = ModeNormal
		m.pendingPath = ""
		return nil
	}
	switch msg.String() {
	case "y", "Y":
		m.mode = ModeNormal
		switch m.confirmAction {
		case ConfirmQuit:
			return tea.Quit
		case ConfirmClearAll:
			m.clearAll()
		case ConfirmNewDiagram:
			return m.newDiagram()
		case ConfirmOverwriteFile:
			path := m.pendingPath
			m.pendingPath = ""
			return m.completeFileOp(path)
		case ConfirmReloadFile:
			return m.reload(m.filename)
		}
	case "n", "N":
		m.mode = ModeNormal
		m.pendingPath = ""
	}
	return nil
}

func (m *model) askConfirm(action ConfirmAction) {
	m.mode = ModeConfirm
	m.confirmAction = action
}

func (m *model) setTool(t Tool) {
	m.cancelGesture()
	m.tool = t
	m.successMessage = ""
	m.logger.Debug("tool selected", zap.String("tool", t.String()))
}

func (m *model) requestClearAll() {
	m.cancelGesture()
	if m.doc.IsEmpty() {
		return
	}
	if m.config.Confirmations {
		m.askConfirm(ConfirmClearAll)
		return
	}
	m.clearAll()
}

func (m *model) clearAll() {
	before := m.doc.Clone()
	m.doc.Clear()
	m.recordAction(ActionReplace, SnapshotData{m.doc.Clone()}, SnapshotData{before})
	m.markChanged()
	m.successMessage = "Cleared"
}

func (m *model) newDiagram() tea.Cmd {
	m.cancelGesture()
	m.doc = diagram.New()
	m.filename = ""
	m.dirty = false
	m.undoStack = nil
	m.redoStack = nil
	m.panX, m.panY = 0, 0
	m.cursorX, m.cursorY = 0, 0
	m.stopWatching()
	return nil
}

func (m *model) recordAction(actionType ActionType, data, inverse interface{}) {
	m.undoStack = append(m.undoStack, Action{
		Type:    actionType,
		Data:    data,
		Inverse: inverse,
	})
	m.redoStack = m.redoStack[:0]
}

func (m *model) markChanged() {
	m.dirty = true
}

// shutdown releases resources held outside the bubbletea loop.
func (m *model) shutdown() {
	m.stopWatching()
}

func (t Tool) String() string {
	switch t {
	case ToolRectangle:
		return "RECTANGLE"
	case ToolTriangle:
		return "TRIANGLE"
	case ToolEllipse:
		return "ELLIPSE"
	case ToolMove:
		return "MOVE"
	case ToolDelete:
		return "DELETE"
	case ToolConnect:
		return "CONNECT"
	default:
		return "NONE"
	}
}

func (t Tool) shape() diagram.Shape {
	switch t {
	case ToolRectangle:
		return diagram.Rectangle
	case ToolTriangle:
		return diagram.Triangle
	case ToolEllipse:
		return diagram.Ellipse
	default:
		return diagram.None
	}
}
