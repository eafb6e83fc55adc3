package main

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"go.uber.org/zap"

	"diagrammer/internal/diagram"
)

type clipboardIO interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemClipboard struct{}

func (systemClipboard) ReadAll() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}

// cleanClipboardText drops control characters and normalizes line endings.
func cleanClipboardText(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' || r >= 32 {
			result.WriteRune(r)
		}
	}
	normalized := strings.ReplaceAll(result.String(), "\r\n", "\n")
	return strings.ReplaceAll(normalized, "\r", "\n")
}

func (m *model) copyToClipboard() {
	if m.doc.IsEmpty() {
		m.errorMessage = "Nothing to copy"
		return
	}
	if err := m.clipboard.WriteAll(diagram.Marshal(m.doc)); err != nil {
		m.errorMessage = fmt.Sprintf("Copy failed: %v", err)
		m.logger.Error("clipboard write", zap.Error(err))
		return
	}
	m.successMessage = fmt.Sprintf("Copied %d figures", len(m.doc.Figures))
}

func (m *model) pasteFromClipboard() {
	m.cancelGesture()
	text, err := m.clipboard.ReadAll()
	if err != nil {
		m.errorMessage = fmt.Sprintf("Paste failed: %v", err)
		m.logger.Error("clipboard read", zap.Error(err))
		return
	}
	pasted, err := diagram.Unmarshal(cleanClipboardText(text), m.skipLogger("clipboard"))
	if err != nil || pasted.IsEmpty() {
		m.errorMessage = "Clipboard does not hold a diagram"
		return
	}
	before := m.doc.Clone()
	m.doc.Replace(pasted)
	m.recordAction(ActionReplace, SnapshotData{pasted}, SnapshotData{before})
	m.markChanged()
	m.successMessage = fmt.Sprintf("Pasted %d figures", len(pasted.Figures))
}
