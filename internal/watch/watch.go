// Package watch reports changes to files in a directory, coalescing bursts
// of filesystem events into a single pending notification.
package watch

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/Faultbox/orbitview/internal/logger"
)

// Watcher watches one directory.
type Watcher struct {
	fs      *fsnotify.Watcher
	exts    map[string]bool
	changes chan string
	done    chan struct{}
	log     *zap.Logger
}

// New starts watching dir. When exts is non-empty only files with one of
// those extensions are reported.
func New(dir string, exts ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(dir); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", dir, err)
	}

	w := &Watcher{
		fs:      fw,
		exts:    make(map[string]bool, len(exts)),
		changes: make(chan string, 1),
		done:    make(chan struct{}),
		log:     logger.Named("watch"),
	}
	for _, e := range exts {
		w.exts[e] = true
	}

	go w.run()
	w.log.Info("watching directory", zap.String("dir", dir), zap.Strings("exts", exts))
	return w, nil
}

// Changes delivers the name of a changed file. At most one notification is
// pending at a time; further changes before it is received are dropped.
// The channel is closed after Close.
func (w *Watcher) Changes() <-chan string {
	return w.changes
}

// Close stops watching.
func (w *Watcher) Close() error {
	err := w.fs.Close()
	<-w.done
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	defer close(w.changes)

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if len(w.exts) > 0 && !w.exts[filepath.Ext(event.Name)] {
				continue
			}
			select {
			case w.changes <- event.Name:
			default:
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", zap.Error(err))
		}
	}
}
