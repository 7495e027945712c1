// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// =============================================================================
// SETTINGS FILE WATCHER
// =============================================================================

// Watcher notifies when files in the data directory change, so a running
// TUI can pick up settings edited by another process (or a second instance)
// without restarting. Events are debounced because editors and atomic
// renames produce bursts.
type Watcher struct {
	watcher  *fsnotify.Watcher
	debounce time.Duration

	mu      sync.Mutex
	pending map[string]time.Time

	// Changed receives the base name of each file that changed.
	Changed chan string

	ctx    context.Context
	cancel context.CancelFunc
}

// NewWatcher creates a watcher for the given directory.
func NewWatcher(dir string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())

	w := &Watcher{
		watcher:  fsw,
		debounce: 200 * time.Millisecond,
		pending:  make(map[string]time.Time),
		Changed:  make(chan string, 8),
		ctx:      ctx,
		cancel:   cancel,
	}

	go w.processEvents()
	go w.processPending()

	return w, nil
}

// processEvents collects raw fsnotify events into the pending set.
func (w *Watcher) processEvents() {
	for {
		select {
		case <-w.ctx.Done():
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			// Atomic writes surface as Create (rename over the target).
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.mu.Lock()
				w.pending[filepath.Base(event.Name)] = time.Now()
				w.mu.Unlock()
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// processPending flushes debounced changes to the Changed channel.
func (w *Watcher) processPending() {
	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return

		case <-ticker.C:
			now := time.Now()

			w.mu.Lock()
			var ready []string
			for name, changed := range w.pending {
				if now.Sub(changed) >= w.debounce {
					ready = append(ready, name)
					delete(w.pending, name)
				}
			}
			w.mu.Unlock()

			for _, name := range ready {
				select {
				case w.Changed <- name:
				default:
					// Drop when the consumer is behind; the next change
					// will trigger another reload anyway.
				}
			}
		}
	}
}

// Close stops watching and releases resources.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}
