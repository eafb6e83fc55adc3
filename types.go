package main

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"go.uber.org/zap"

	"diagrammer/internal/diagram"
)

type model struct {
	width     int
	height    int
	cursorX   int
	cursorY   int
	panX      int
	panY      int
	zPanMode  bool
	mode      Mode
	tool      Tool
	help      bool
	showGraph bool

	doc       *diagram.Diagram
	filename  string
	dirty     bool
	undoStack []Action
	redoStack []Action

	// pointer gesture state, in world coordinates
	pressed         bool
	startPoint      diagram.Point
	endPoint        diagram.Point
	lastPointer     diagram.Point
	anchorSet       bool
	movingFigure    int
	moveOrigin      diagram.Rect
	keyboardMove    bool
	connecting      bool
	connectionStart diagram.Point

	fileOp            FileOperation
	input             textinput.Model
	fileList          []string
	selectedFileIndex int
	fromStartup       bool
	confirmAction     ConfirmAction
	pendingPath       string

	errorMessage   string
	successMessage string

	config    *Config
	logger    *zap.Logger
	keys      keyMap
	helpModel help.Model
	shapes    *shapeCache
	watcher   *fileWatcher
	clipboard clipboardIO
}

type Action struct {
	Type    ActionType
	Data    interface{}
	Inverse interface{}
}

type FigureData struct {
	Index       int
	Figure      diagram.Figure
	Connections []diagram.Connection
}

type FigureRectData struct {
	Index int
	Rect  diagram.Rect
}

type ConnectionData struct {
	Connection diagram.Connection
}

type SnapshotData struct {
	Diagram *diagram.Diagram
}
