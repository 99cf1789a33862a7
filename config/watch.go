// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file whenever it changes and delivers
// every valid new config on [Watcher.Changes]. Invalid or unreadable
// files are logged and skipped. The receiver applies changes
// between frames.
type Watcher struct {

	// Changes receives each reloaded config. It holds at most one
	// pending config; an unread config is replaced by a newer one.
	Changes chan *Config

	filename string
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// reloadDelay is how long the file must be quiet before it is reloaded,
// since editors often write a file in several events.
const reloadDelay = 100 * time.Millisecond

// Watch starts watching the given config file. The directory is watched
// rather than the file, so that files replaced by rename are seen.
func Watch(filename string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(filename)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		Changes:  make(chan *Config, 1),
		filename: filepath.Clean(filename),
		watcher:  fw,
		done:     make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

func (w *Watcher) watch() {
	delay := time.NewTimer(reloadDelay)
	delay.Stop()
	defer delay.Stop()
	for {
		select {
		case <-w.done:
			return
		case <-delay.C:
			w.reload()
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {
				delay.Reset(reloadDelay)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			slog.Warn("config: watcher error", "file", w.filename, "err", err)
		}
	}
}

// reload opens and validates the file and sends it on Changes.
func (w *Watcher) reload() {
	c, err := Open(w.filename)
	if err == nil {
		err = c.Validate()
	}
	if err != nil {
		slog.Warn("config: not reloading", "file", w.filename, "err", err)
		return
	}
	select {
	case <-w.Changes:
	default:
	}
	w.Changes <- c
	slog.Info("config: reloaded", "file", w.filename)
}

// Close stops watching.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
