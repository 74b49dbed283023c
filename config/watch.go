// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the config file at path whenever it changes and calls
// fn with the new config. It watches the parent directory so that
// editors which replace the file on save are handled. fn is called on
// the watcher goroutine. Watch returns once the watcher is set up; it
// stops when ctx is done.
func Watch(ctx context.Context, path string, fn func(*Config)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: creating watcher: %w", err)
	}
	dir := filepath.Dir(path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return fmt.Errorf("config: watching %s: %w", dir, err)
	}
	name := filepath.Clean(path)
	go func() {
		defer w.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-w.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != name || !ev.Has(fsnotify.Write|fsnotify.Create) {
					continue
				}
				c, err := Load(path)
				if err != nil {
					slog.Error("config: reload failed", "path", path, "err", err)
					continue
				}
				fn(c)
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				slog.Error("config: watcher error", "err", err)
			}
		}
	}()
	return nil
}
