// Package watch tracks whether the files in the navigation list still exist.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/sirupsen/logrus"

	fsutil "github.com/kk-code-lab/qlnav/internal/fs"
)

// Availability reports whether a listed file can still be previewed.
type Availability interface {
	Available(path string) bool
}

// StatChecker answers with a stat call every time.
type StatChecker struct{}

func (StatChecker) Available(path string) bool {
	return fsutil.Exists(path)
}

// Tracker follows removals and renames of listed files through fsnotify
// watches on their parent directories.
type Tracker struct {
	watcher *fsnotify.Watcher
	logger  logrus.FieldLogger
	tracked map[string]struct{}

	mu   sync.RWMutex
	gone map[string]struct{}

	done chan struct{}
}

// NewTracker starts watching the directories that contain paths.
func NewTracker(paths []string, logger logrus.FieldLogger) (*Tracker, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create fsnotify watcher: %w", err)
	}

	t := &Tracker{
		watcher: w,
		logger:  logger,
		tracked: make(map[string]struct{}, len(paths)),
		gone:    make(map[string]struct{}),
		done:    make(chan struct{}),
	}

	dirs := make(map[string]struct{})
	for _, p := range paths {
		p = filepath.Clean(p)
		t.tracked[p] = struct{}{}
		dirs[filepath.Dir(p)] = struct{}{}
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			_ = w.Close()
			return nil, fmt.Errorf("failed to watch directory %s: %w", dir, err)
		}
	}

	go t.loop()
	return t, nil
}

func (t *Tracker) loop() {
	defer close(t.done)
	for {
		select {
		case ev, ok := <-t.watcher.Events:
			if !ok {
				return
			}
			t.handle(ev)
		case err, ok := <-t.watcher.Errors:
			if !ok {
				return
			}
			if t.logger != nil {
				t.logger.WithField("error", err).Warn("file watcher error")
			}
		}
	}
}

func (t *Tracker) handle(ev fsnotify.Event) {
	name := filepath.Clean(ev.Name)
	if _, ok := t.tracked[name]; !ok {
		return
	}

	switch {
	case ev.Has(fsnotify.Create):
		t.mu.Lock()
		delete(t.gone, name)
		t.mu.Unlock()
		if t.logger != nil {
			t.logger.WithField("path", name).Debug("listed file reappeared")
		}
	case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
		t.mu.Lock()
		t.gone[name] = struct{}{}
		t.mu.Unlock()
		if t.logger != nil {
			t.logger.WithFields(logrus.Fields{"path": name, "op": ev.Op.String()}).Info("listed file removed")
		}
	}
}

// Available reports false for listed files seen removed or renamed away.
// Paths outside the list are checked with stat.
func (t *Tracker) Available(path string) bool {
	path = filepath.Clean(path)
	if _, ok := t.tracked[path]; !ok {
		return fsutil.Exists(path)
	}
	t.mu.RLock()
	_, gone := t.gone[path]
	t.mu.RUnlock()
	return !gone
}

// Close stops watching and waits for the event goroutine to finish.
func (t *Tracker) Close() error {
	err := t.watcher.Close()
	<-t.done
	return err
}
