package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"diagrammer/internal/diagram"
)

func (m *model) startFileInput(op FileOperation) {
	m.cancelGesture()
	m.mode = ModeFileInput
	m.fileOp = op
	m.errorMessage = ""
	m.successMessage = ""
	m.fileList = nil
	m.selectedFileIndex = -1

	name := ""
	switch op {
	case FileOpSave:
		name = "diagram"
		if m.filename != "" {
			name = strings.TrimSuffix(filepath.Base(m.filename), diagramExt)
		}
	case FileOpSavePNG:
		name = "diagram"
	case FileOpSaveVisualTXT:
		name = "diagram-visual"
	case FileOpOpen:
		m.scanTxtFiles()
		if m.selectedFileIndex >= 0 {
			name = strings.TrimSuffix(m.fileList[m.selectedFileIndex], diagramExt)
		}
	}
	m.input.SetValue(name)
	m.input.CursorEnd()
	m.input.Focus()
}

func (m *model) handleFileInputKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, m.keys.Cancel) {
		m.input.Blur()
		m.errorMessage = ""
		if m.fromStartup && m.fileOp == FileOpOpen {
			m.mode = ModeStartup
		} else {
			m.mode = ModeNormal
		}
		return nil
	}

	switch msg.Type {
	case tea.KeyUp, tea.KeyDown:
		if m.fileOp == FileOpOpen && len(m.fileList) > 0 {
			if msg.Type == tea.KeyUp && m.selectedFileIndex > 0 {
				m.selectedFileIndex--
			}
			if msg.Type == tea.KeyDown && m.selectedFileIndex < len(m.fileList)-1 {
				m.selectedFileIndex++
			}
			m.input.SetValue(strings.TrimSuffix(m.fileList[m.selectedFileIndex], diagramExt))
			m.input.CursorEnd()
		}
		return nil
	case tea.KeyEnter:
		name := strings.TrimSpace(m.input.Value())
		if name == "" {
			m.errorMessage = "Filename cannot be empty"
			return nil
		}
		path := m.pathFor(name)
		if m.fileOp != FileOpOpen && path != m.filename && m.config.Confirmations && fileExists(path) {
			m.pendingPath = path
			m.askConfirm(ConfirmOverwriteFile)
			return nil
		}
		return m.completeFileOp(path)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *model) pathFor(name string) string {
	ext := diagramExt
	if m.fileOp == FileOpSavePNG {
		ext = pngExt
	}
	if !strings.HasSuffix(strings.ToLower(name), ext) {
		name += ext
	}
	return m.config.GetSavePath(name)
}

func (m *model) completeFileOp(path string) tea.Cmd {
	m.input.Blur()
	var err error
	switch m.fileOp {
	case FileOpSave:
		return m.saveTo(path)
	case FileOpOpen:
		return m.openFile(path)
	case FileOpSavePNG:
		err = exportPNGFile(m.doc, path)
	case FileOpSaveVisualTXT:
		err = exportVisualTXTFile(m.doc, m.shapes, path, m.canvasWidth(), m.canvasHeight(), m.pan())
	}
	if err != nil {
		m.fileError("Export failed", path, err)
		return nil
	}
	m.mode = ModeNormal
	m.successMessage = "Exported " + filepath.Base(path)
	m.logger.Info("diagram exported", zap.String("path", path))
	return nil
}

// fileError keeps the filename prompt open so the user can retry.
func (m *model) fileError(what, path string, err error) {
	m.mode = ModeFileInput
	m.input.Focus()
	m.errorMessage = fmt.Sprintf("%s: %v", what, err)
	m.logger.Error(strings.ToLower(what), zap.String("path", path), zap.Error(err))
}

func (m *model) saveTo(path string) tea.Cmd {
	if err := m.doc.SaveFile(path); err != nil {
		if m.mode == ModeFileInput {
			m.fileError("Save failed", path, err)
		} else {
			m.errorMessage = fmt.Sprintf("Save failed: %v", err)
			m.logger.Error("save failed", zap.String("path", path), zap.Error(err))
		}
		return nil
	}
	previous := m.filename
	m.filename = path
	m.dirty = false
	m.mode = ModeNormal
	m.successMessage = "Saved " + filepath.Base(path)
	m.logger.Info("diagram saved", zap.String("path", path),
		zap.Int("figures", len(m.doc.Figures)), zap.Int("connections", len(m.doc.Connections)))
	if previous != path || m.watcher == nil {
		return m.watchFile(path)
	}
	return nil
}

func (m *model) openFile(path string) tea.Cmd {
	if err := m.loadInto(path); err != nil {
		m.fileError("Open failed", path, err)
		return nil
	}
	m.mode = ModeNormal
	m.fromStartup = false
	m.panX, m.panY = 0, 0
	m.successMessage = "Opened " + filepath.Base(path)
	return m.watchFile(path)
}

// openInitial handles the file named on the command line. A file that does
// not exist yet starts an empty diagram bound to that name.
func (m *model) openInitial(path string) error {
	m.mode = ModeNormal
	if !fileExists(path) {
		m.filename = path
		m.successMessage = "New file " + filepath.Base(path)
		return nil
	}
	if err := m.loadInto(path); err != nil {
		return err
	}
	m.watchFile(path)
	return nil
}

func (m *model) reload(path string) tea.Cmd {
	if err := m.loadInto(path); err != nil {
		m.errorMessage = fmt.Sprintf("Reload failed: %v", err)
		m.logger.Error("reload failed", zap.String("path", path), zap.Error(err))
		return nil
	}
	m.successMessage = "Reloaded " + filepath.Base(path)
	return nil
}

// loadInto replaces the document with the file content as one undo step.
func (m *model) loadInto(path string) error {
	loaded := diagram.New()
	if err := loaded.LoadFile(path, m.skipLogger(path)); err != nil {
		return err
	}
	m.cancelGesture()
	before := m.doc.Clone()
	m.doc.Replace(loaded)
	m.recordAction(ActionReplace, SnapshotData{loaded}, SnapshotData{before})
	m.filename = path
	m.dirty = false
	m.logger.Info("diagram loaded", zap.String("path", path),
		zap.Int("figures", len(loaded.Figures)), zap.Int("connections", len(loaded.Connections)))
	return nil
}

func (m *model) skipLogger(source string) diagram.SkipFunc {
	logger := m.logger
	return func(line int, reason string) {
		logger.Warn("skipped diagram line",
			zap.String("source", source), zap.Int("line", line), zap.String("reason", reason))
	}
}

func (m *model) scanTxtFiles() {
	m.fileList = []string{}
	m.selectedFileIndex = -1

	entries, err := os.ReadDir(m.config.listDirectory())
	if err != nil {
		m.logger.Warn("list diagrams", zap.Error(err))
		return
	}
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(strings.ToLower(entry.Name()), diagramExt) {
			m.fileList = append(m.fileList, entry.Name())
		}
	}
	sort.Strings(m.fileList)
	if len(m.fileList) > 0 {
		m.selectedFileIndex = 0
	}
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}
