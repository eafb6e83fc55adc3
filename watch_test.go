package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
)

func waitMsg(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()
	select {
	case msg := <-done:
		return msg
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for file change")
		return nil
	}
}

func TestFileWatcherReportsSettledChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "watched.txt")
	require.NoError(t, os.WriteFile(path, []byte("Figures: 0\nConnections: 0\n"), 0644))

	fw, err := newFileWatcher(path, 20*time.Millisecond, zap.NewNop())
	require.NoError(t, err)

	// a sibling file is not reported
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(path, []byte("Figures: 1\nConnections: 0\nRectangle: 0 0 3 3\n"), 0644))

	msg := waitMsg(t, fw.wait())
	changed, ok := msg.(fileChangedMsg)
	require.True(t, ok)
	assert.Same(t, fw, changed.watcher)
	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	assert.Equal(t, abs, changed.path)

	require.NoError(t, fw.Close())
	for range fw.events {
	}
	assert.Nil(t, waitMsg(t, fw.wait()))
	assert.NoError(t, fw.Close())
}

func TestModelWatchLifecycle(t *testing.T) {
	defer goleak.VerifyNone(t)

	m := newTestModel(t)
	m.config.WatchFiles = true
	path := filepath.Join(t.TempDir(), "live.txt")
	require.NoError(t, m.openInitial(path))
	assert.Nil(t, m.watcher)

	m = press(m, "ctrl+s")
	require.NotNil(t, m.watcher)
	assert.NotNil(t, m.Init())

	// a new diagram is no longer bound to the file
	m = press(m, "n")
	assert.Nil(t, m.watcher)
	assert.Nil(t, m.Init())
	m.shutdown()
}
