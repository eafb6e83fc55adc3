package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Rectangle key.Binding
	Triangle  key.Binding
	Ellipse   key.Binding
	Move      key.Binding
	Delete    key.Binding
	Connect   key.Binding
	ClearAll  key.Binding
	Cancel    key.Binding

	Left     key.Binding
	Right    key.Binding
	Up       key.Binding
	Down     key.Binding
	Activate key.Binding
	Place    key.Binding
	Pan      key.Binding

	Undo      key.Binding
	Redo      key.Binding
	New       key.Binding
	Save      key.Binding
	QuickSave key.Binding
	Open      key.Binding
	ExportPNG key.Binding
	ExportTXT key.Binding
	Copy      key.Binding
	Paste     key.Binding
	Graph     key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Rectangle: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "rectangle tool")),
		Triangle:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "triangle tool")),
		Ellipse:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "ellipse tool")),
		Move:      key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "move tool")),
		Delete:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete tool")),
		Connect:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "connect tool")),
		ClearAll:  key.NewBinding(key.WithKeys("X"), key.WithHelp("X", "clear all")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "no tool / cancel")),

		Left:     key.NewBinding(key.WithKeys("h", "left", "H", "shift+left"), key.WithHelp("h/←", "left (shift 2x)")),
		Right:    key.NewBinding(key.WithKeys("l", "right", "L", "shift+right"), key.WithHelp("l/→", "right (shift 2x)")),
		Up:       key.NewBinding(key.WithKeys("k", "up", "K", "shift+up"), key.WithHelp("k/↑", "up (shift 2x)")),
		Down:     key.NewBinding(key.WithKeys("j", "down", "J", "shift+down"), key.WithHelp("j/↓", "down (shift 2x)")),
		Activate: key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "click at cursor")),
		Place:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "click / default-size figure")),
		Pan:      key.NewBinding(key.WithKeys("z"), key.WithHelp("z", "toggle pan mode")),

		Undo:      key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo")),
		Redo:      key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "redo")),
		New:       key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new diagram")),
		Save:      key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save as")),
		QuickSave: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Open:      key.NewBinding(key.WithKeys("o"), key.WithHelp("o", "open")),
		ExportPNG: key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "export PNG")),
		ExportTXT: key.NewBinding(key.WithKeys("T"), key.WithHelp("T", "export visual TXT")),
		Copy:      key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy diagram to clipboard")),
		Paste:     key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "paste diagram from clipboard")),
		Graph:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "connection graph")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rectangle, k.Triangle, k.Ellipse, k.Move, k.Delete, k.Connect, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Rectangle, k.Triangle, k.Ellipse, k.Move, k.Delete, k.Connect, k.ClearAll, k.Cancel},
		{k.Left, k.Right, k.Up, k.Down, k.Activate, k.Place, k.Pan},
		{k.Undo, k.Redo, k.New, k.Save, k.QuickSave, k.Open, k.ExportPNG, k.ExportTXT},
		{k.Copy, k.Paste, k.Graph, k.Help, k.Quit},
	}
}

// toolFor maps the tool-selection bindings.
func (k keyMap) toolFor(s string) (Tool, bool) {
	switch {
	case matchesString(k.Rectangle, s):
		return ToolRectangle, true
	case matchesString(k.Triangle, s):
		return ToolTriangle, true
	case matchesString(k.Ellipse, s):
		return ToolEllipse, true
	case matchesString(k.Move, s):
		return ToolMove, true
	case matchesString(k.Delete, s):
		return ToolDelete, true
	case matchesString(k.Connect, s):
		return ToolConnect, true
	}
	return ToolNone, false
}

func matchesString(b key.Binding, s string) bool {
	for _, k := range b.Keys() {
		if k == s {
			return true
		}
	}
	return false
}
