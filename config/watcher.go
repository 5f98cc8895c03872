// SPDX-License-Identifier: MIT

package config

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/katalvlaran/ganvalue/logging"
)

// DefaultDebounce coalesces the burst of events an editor emits on save.
const DefaultDebounce = 150 * time.Millisecond

// Watcher reloads a config file whenever it changes on disk and hands every
// valid result to a callback. Invalid files are logged and skipped.
//
// The parent directory is watched rather than the file itself so that
// editors that save via rename keep triggering reloads.
type Watcher struct {
	mu       sync.Mutex
	path     string
	onChange func(Config)
	logger   *zap.Logger
	debounce time.Duration

	fw      *fsnotify.Watcher
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewWatcher prepares a watcher for path. Start begins delivery.
func NewWatcher(path string, onChange func(Config), logger *zap.Logger) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		path:     abs,
		onChange: onChange,
		logger:   logging.OrNop(logger).Named("config"),
		debounce: DefaultDebounce,
		fw:       fw,
	}, nil
}

// SetDebounce changes the debounce interval. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	w.debounce = d
	w.mu.Unlock()
}

// Start begins watching in a background goroutine. It is a no-op when
// already running.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.fw.Add(filepath.Dir(w.path)); err != nil {
		return err
	}

	ctx, w.cancel = context.WithCancel(ctx)
	w.done = make(chan struct{})
	w.running = true
	go w.run(ctx, w.debounce)

	w.logger.Debug("watching", zap.String("path", w.path))

	return nil
}

// Stop ends watching and waits for the goroutine to exit. The Watcher
// cannot be restarted.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		_ = w.fw.Close()

		return
	}
	w.running = false
	w.cancel()
	done := w.done
	w.mu.Unlock()

	<-done
	_ = w.fw.Close()
}

func (w *Watcher) run(ctx context.Context, debounce time.Duration) {
	defer close(w.done)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || !ev.Has(fsnotify.Write|fsnotify.Create|fsnotify.Rename) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			fire = timer.C

		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.logger.Warn("watch error", zap.Error(err))

		case <-fire:
			fire = nil
			w.reload()
		}
	}
}

func (w *Watcher) reload() {
	cfg, err := Load(w.path)
	if err != nil {
		w.logger.Warn("reload skipped", zap.String("path", w.path), zap.Error(err))

		return
	}
	w.logger.Info("reloaded", zap.String("path", w.path), zap.Stringer("mode", cfg.Mode))
	if w.onChange != nil {
		w.onChange(cfg)
	}
}
