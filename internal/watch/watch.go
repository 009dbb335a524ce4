// Package watch reports changes to a fixed set of files.
package watch

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/alexisbeaulieu97/accentgen/internal/logger"
)

// DefaultDebounce is how long the watcher waits for events to settle.
const DefaultDebounce = 250 * time.Millisecond

// Watcher observes the parent directories of its files, so editors that
// replace a file by renaming over it are still seen.
type Watcher struct {
	fw       *fsnotify.Watcher
	files    map[string]struct{}
	debounce time.Duration
	log      *logger.Logger
}

// New starts watching files. Files whose directory does not exist are ignored;
// it is an error if none can be watched.
func New(files []string, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if log == nil {
		log = logger.Nop()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	w := &Watcher{fw: fw, files: make(map[string]struct{}, len(files)), debounce: debounce, log: log}
	dirs := make(map[string]struct{})
	for _, f := range files {
		clean := filepath.Clean(f)
		w.files[clean] = struct{}{}
		dirs[filepath.Dir(clean)] = struct{}{}
	}

	watched := 0
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				log.Debug("directory absent, not watched", "dir", dir)
				continue
			}
			fw.Close()
			return nil, fmt.Errorf("watch %s: %w", dir, err)
		}
		watched++
	}
	if watched == 0 {
		fw.Close()
		return nil, errors.New("no watchable directories")
	}
	return w, nil
}

// Run delivers batches of changed files to onChange until ctx is done.
// onChange runs on the Run goroutine, so calls never overlap. Run closes the
// watcher before returning.
func (w *Watcher) Run(ctx context.Context, onChange func(ctx context.Context, changed []string)) error {
	defer w.fw.Close()

	var (
		timer   *time.Timer
		fire    <-chan time.Time
		pending = make(map[string]struct{})
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-w.fw.Events:
			if !ok {
				return nil
			}
			name := filepath.Clean(ev.Name)
			if _, tracked := w.files[name]; !tracked || ev.Op == fsnotify.Chmod {
				continue
			}
			w.log.Debug("change observed", "path", name, "op", ev.Op.String())
			pending[name] = struct{}{}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case err, ok := <-w.fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "error", err.Error())

		case <-fire:
			fire = nil
			changed := make([]string, 0, len(pending))
			for name := range pending {
				changed = append(changed, name)
			}
			sort.Strings(changed)
			pending = make(map[string]struct{})
			onChange(ctx, changed)
		}
	}
}

// Close stops the watcher without running it.
func (w *Watcher) Close() error {
	return w.fw.Close()
}
