package main

import (
	"os"
	"path/filepath"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"diagrammer/internal/diagram"
)

const watchDebounce = 200 * time.Millisecond

type fileChangedMsg struct {
	path    string
	watcher *fileWatcher
}

// fileWatcher reports settled changes to a single file. The parent directory
// is watched so editors that replace the file by rename are still seen.
type fileWatcher struct {
	path     string
	watcher  *fsnotify.Watcher
	logger   *zap.Logger
	debounce time.Duration
	events   chan string
	stopCh   chan struct{}
	doneCh   chan struct{}
	once     sync.Once
}

func newFileWatcher(path string, debounce time.Duration, logger *zap.Logger) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, err
	}
	fw := &fileWatcher{
		path:     abs,
		watcher:  watcher,
		logger:   logger,
		debounce: debounce,
		events:   make(chan string, 1),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
	go fw.run()
	logger.Debug("watching file", zap.String("path", abs))
	return fw, nil
}

func (fw *fileWatcher) run() {
	defer close(fw.doneCh)
	defer close(fw.events)

	ticker := time.NewTicker(fw.debounce / 4)
	defer ticker.Stop()

	var lastEvent time.Time
	for {
		select {
		case <-fw.stopCh:
			return
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != fw.path {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Rename) == 0 {
				continue
			}
			lastEvent = time.Now()
		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			fw.logger.Warn("file watcher error", zap.Error(err))
		case <-ticker.C:
			if lastEvent.IsZero() || time.Since(lastEvent) < fw.debounce {
				continue
			}
			lastEvent = time.Time{}
			select {
			case fw.events <- fw.path:
			default:
			}
		}
	}
}

// wait blocks until the next settled change. It yields nil once the watcher
// is closed.
func (fw *fileWatcher) wait() tea.Cmd {
	return func() tea.Msg {
		path, ok := <-fw.events
		if !ok {
			return nil
		}
		return fileChangedMsg{path: path, watcher: fw}
	}
}

func (fw *fileWatcher) Close() error {
	var err error
	fw.once.Do(func() {
		close(fw.stopCh)
		<-fw.doneCh
		err = fw.watcher.Close()
	})
	return err
}

func (m *model) watchCmd() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.wait()
}

func (m *model) watchFile(path string) tea.Cmd {
	if !m.config.WatchFiles {
		return nil
	}
	m.stopWatching()
	w, err := newFileWatcher(path, watchDebounce, m.logger)
	if err != nil {
		m.logger.Warn("watch file", zap.String("path", path), zap.Error(err))
		return nil
	}
	m.watcher = w
	return w.wait()
}

func (m *model) stopWatching() {
	if m.watcher == nil {
		return
	}
	if err := m.watcher.Close(); err != nil {
		m.logger.Warn("close file watcher", zap.Error(err))
	}
	m.watcher = nil
}

// handleFileChanged reloads the document when its file changes on disk.
// Writes of our own content are ignored.
func (m *model) handleFileChanged(msg fileChangedMsg) tea.Cmd {
	if msg.watcher == nil || msg.watcher != m.watcher {
		return nil
	}
	next := m.watcher.wait()

	data, err := os.ReadFile(m.filename)
	if err != nil {
		m.logger.Debug("changed file unreadable", zap.String("path", m.filename), zap.Error(err))
		return next
	}
	if string(data) == diagram.Marshal(m.doc) {
		return next
	}
	m.logger.Info("file changed on disk", zap.String("path", m.filename))
	if !m.dirty && !m.moveInProgress() {
		return tea.Batch(m.reload(m.filename), next)
	}
	if m.mode == ModeNormal && m.config.Confirmations {
		m.askConfirm(ConfirmReloadFile)
	} else {
		m.errorMessage = "File changed on disk"
	}
	return next
}
