package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"diagrammer/internal/diagram"
)

type toolbarItem struct {
	label string
	tool  Tool
	clear bool
}

var toolbarItems = []toolbarItem{
	{label: "None", tool: ToolNone},
	{label: "Rect", tool: ToolRectangle},
	{label: "Tri", tool: ToolTriangle},
	{label: "Ellipse", tool: ToolEllipse},
	{label: "Move", tool: ToolMove},
	{label: "Delete", tool: ToolDelete},
	{label: "Connect", tool: ToolConnect},
	{label: "Clear all", clear: true},
}

// toolbarItemAt maps a column of the toolbar row to its item. Every item is
// rendered as its label with one space of padding on each side.
func toolbarItemAt(x int) (toolbarItem, bool) {
	left := 0
	for _, item := range toolbarItems {
		right := left + len(item.label) + 2
		if x >= left && x < right {
			return item, true
		}
		left = right
	}
	return toolbarItem{}, false
}

func (m model) View() string {
	if m.help && m.mode != ModeStartup {
		return m.helpView()
	}
	if m.mode == ModeStartup {
		return m.startupView()
	}

	var result strings.Builder
	result.WriteString(m.toolbarView())
	result.WriteString("\n")

	if m.mode == ModeFileInput && m.fileOp == FileOpOpen {
		result.WriteString(m.fileListView())
	} else {
		result.WriteString(strings.Join(m.canvasView(), "\n"))
	}

	result.WriteString("\n")
	result.WriteString(m.statusView())
	return result.String()
}

func (m model) toolbarView() string {
	var bar strings.Builder
	for _, item := range toolbarItems {
		style := toolbarStyle
		if !item.clear && item.tool == m.tool {
			style = activeToolStyle
		}
		bar.WriteString(style.Render(" " + item.label + " "))
	}
	used := lipgloss.Width(bar.String())
	if rest := m.width - used; rest > 0 {
		bar.WriteString(toolbarStyle.Render(strings.Repeat(" ", rest)))
	}
	return bar.String()
}

func (m model) canvasView() []string {
	canvas := NewCanvas(m.canvasWidth(), m.canvasHeight(), m.pan(), m.shapes)

	selected := -1
	if m.tool == ToolMove {
		selected = m.movingFigure
	}
	canvas.DrawDiagram(m.doc, selected)

	end := m.previewEnd()
	if m.tool.shape().IsDrawable() && (m.pressed || m.anchorSet) {
		canvas.DrawFigure(diagram.Figure{Shape: m.tool.shape(), Rect: m.figureRect(m.startPoint, end)}, false)
	}
	if m.tool == ToolConnect && m.connecting {
		canvas.DrawConnection(diagram.Connection{From: m.connectionStart, To: end})
	}

	if m.showGraph {
		panel := formatGraph(m.doc)
		panelWidth := 0
		for _, line := range panel {
			panelWidth = max(panelWidth, len(line)+2)
		}
		x := canvas.width - panelWidth
		for i, line := range panel {
			canvas.Overlay(x, i, "| "+line+strings.Repeat(" ", panelWidth-len(line)-2))
		}
	}

	if m.mode == ModeNormal {
		canvas.setScreen(m.cursorX, m.cursorY, '█')
	}
	return canvas.Lines()
}

// formatGraph lists every figure with its neighbors in index order.
func formatGraph(d *diagram.Diagram) []string {
	lines := []string{fmt.Sprintf("Graph: %d figures, %d connections", len(d.Figures), len(d.Connections))}
	for i, fig := range d.Figures {
		neighbors := d.Neighbors(i)
		if neighbors == nil {
			neighbors = []int{}
		}
		lines = append(lines, fmt.Sprintf("%d %s -> %v", i, fig.Shape, neighbors))
	}
	return lines
}

func (m model) fileListView() string {
	var result strings.Builder
	width := m.canvasWidth()
	rows := m.canvasHeight()

	result.WriteString(titleStyle.Render("Select a saved diagram:"))
	result.WriteString("\n")
	result.WriteString(strings.Repeat("─", width))
	result.WriteString("\n")
	written := 2

	if len(m.fileList) == 0 {
		result.WriteString(fmt.Sprintf("(No %s files in %s)\n", diagramExt, m.config.listDirectory()))
		written++
	} else {
		maxFiles := max(rows-4, 1)
		startIdx := 0
		if m.selectedFileIndex >= maxFiles {
			startIdx = m.selectedFileIndex - maxFiles + 1
		}
		endIdx := min(startIdx+maxFiles, len(m.fileList))
		for i := startIdx; i < endIdx; i++ {
			displayName := strings.TrimSuffix(m.fileList[i], diagramExt)
			if i == m.selectedFileIndex {
				result.WriteString(activeToolStyle.Render("> " + displayName + " <"))
			} else {
				result.WriteString("  " + displayName)
			}
			result.WriteString("\n")
			written++
		}
	}

	result.WriteString(strings.Repeat("─", width))
	result.WriteString("\n")
	result.WriteString(m.input.View())
	written += 2
	for ; written < rows; written++ {
		result.WriteString("\n")
	}
	return result.String()
}

func (m model) statusView() string {
	var status string
	switch m.mode {
	case ModeFileInput:
		status = fmt.Sprintf("Mode: FILE | %s", m.fileOpString())
		if m.fileOp != FileOpOpen {
			status += " | " + m.input.View()
		}
		if m.fileOp == FileOpOpen {
			status += " | ↑/↓=navigate list, Enter=confirm, Esc=cancel"
		} else {
			status += " | Enter=confirm, Esc=cancel"
		}
	case ModeConfirm:
		status = "Mode: CONFIRM | " + m.confirmMessage()
	default:
		modeStr := "NORMAL"
		if m.zPanMode {
			modeStr = "PAN"
		}
		status = fmt.Sprintf("Mode: %s | Tool: %s | Cursor: (%d,%d)", modeStr, m.tool, m.cursorX+m.panX, m.cursorY+m.panY)
		if m.filename != "" {
			name := filepath.Base(m.filename)
			if m.dirty {
				name += "*"
			}
			status += " | " + name
		}
		switch {
		case m.connecting:
			status += " | Connecting (select target)"
		case m.anchorSet:
			status += " | Corner set (select opposite corner)"
		case m.movingFigure != -1:
			status += fmt.Sprintf(" | Moving figure %d", m.movingFigure)
		}
	}

	line := statusStyle.Render(status)
	if m.successMessage != "" && m.mode != ModeConfirm {
		line += " | " + successStyle.Render(m.successMessage)
	}
	if m.errorMessage != "" {
		line += " | " + errorStyle.Render("ERROR: "+m.errorMessage)
	} else if m.successMessage == "" && m.mode == ModeNormal {
		line += statusStyle.Render(" | ? for help | q to quit")
	}
	return line
}

func (m model) fileOpString() string {
	switch m.fileOp {
	case FileOpSave:
		return "Save"
	case FileOpSavePNG:
		return "Export PNG"
	case FileOpSaveVisualTXT:
		return "Export visual TXT"
	default:
		return "Open"
	}
}

func (m model) confirmMessage() string {
	switch m.confirmAction {
	case ConfirmQuit:
		return "Quit? (y/n)"
	case ConfirmClearAll:
		return "Remove all figures and connections? (y/n)"
	case ConfirmNewDiagram:
		return "Start a new diagram? Unsaved changes will be lost. (y/n)"
	case ConfirmOverwriteFile:
		return fmt.Sprintf("File %s already exists. Overwrite? (y/n)", filepath.Base(m.pendingPath))
	case ConfirmReloadFile:
		return fmt.Sprintf("%s changed on disk. Reload and lose unsaved changes? (y/n)", filepath.Base(m.filename))
	default:
		return "(y/n)"
	}
}

func (m model) startupView() string {
	lines := []string{
		titleStyle.Render("diagrammer"),
		"",
		"  n  new diagram",
		"  o  open a saved diagram",
		"  q  quit",
	}
	if m.errorMessage != "" {
		lines = append(lines, "", errorStyle.Render("ERROR: "+m.errorMessage))
	}
	return strings.Join(lines, "\n")
}

func (m model) helpView() string {
	h := m.helpModel
	h.ShowAll = true
	return titleStyle.Render("diagrammer help") + "\n\n" + h.View(m.keys) + "\n\n" +
		statusStyle.Render("esc, q or ? to close")
}
