package main

type Mode int

const (
	ModeStartup Mode = iota
	ModeNormal
	ModeFileInput
	ModeConfirm
)

// Tool is the active shape mode. The three drawing tools map onto
// diagram.Shape; the rest act on existing figures.
type Tool int

const (
	ToolNone Tool = iota
	ToolRectangle
	ToolTriangle
	ToolEllipse
	ToolMove
	ToolDelete
	ToolConnect
)

type FileOperation int

const (
	FileOpSave FileOperation = iota
	FileOpSavePNG
	FileOpSaveVisualTXT
	FileOpOpen
)

type ConfirmAction int

const (
	ConfirmQuit ConfirmAction = iota
	ConfirmClearAll
	ConfirmNewDiagram
	ConfirmOverwriteFile
	ConfirmReloadFile
)

type ActionType int

const (
	ActionAddFigure ActionType = iota
	ActionDeleteFigure
	ActionMoveFigure
	ActionAddConnection
	ActionReplace
)

const (
	toolbarRows = 1
	statusRows  = 1
	diagramExt  = ".txt"
	pngExt      = ".png"
)
