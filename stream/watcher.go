package stream

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/sgostarter/i/l"
)

const reloadDebounce = 100 * time.Millisecond

// Watcher reloads the config file when it changes on disk and hands every valid new
// config to the registered callbacks. Invalid configs are reported on Errors and
// otherwise ignored.
type Watcher struct {
	path   string
	logger l.Wrapper

	mu       sync.Mutex
	onChange []func(*Config)

	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc
	errs    chan error
}

// NewWatcher creates a Watcher for the config file at path.
func NewWatcher(path string, logger l.Wrapper) *Watcher {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &Watcher{
		path:   path,
		logger: logger.WithFields(l.StringField(l.ClsKey, "Watcher")),
		ctx:    ctx,
		cancel: cancel,
		errs:   make(chan error, 1),
	}
}

// OnChange registers a callback run with each reloaded config.
func (w *Watcher) OnChange(cb func(*Config)) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.onChange = append(w.onChange, cb)
}

// Errors receives reload failures. Failures are dropped while one is pending.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Watch starts watching. Editors often replace files rather than write them, so the
// directory is watched and events are filtered by name.
func (w *Watcher) Watch() error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(filepath.Dir(w.path)); err != nil {
		_ = watcher.Close()

		return fmt.Errorf("watch directory: %w", err)
	}

	w.watcher = watcher
	go w.loop()

	return nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	w.cancel()

	if w.watcher != nil {
		return w.watcher.Close()
	}

	return nil
}

func (w *Watcher) loop() {
	var debounce *time.Timer

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}

			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}

			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(reloadDebounce, w.reload)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.report(err)
		}
	}
}

func (w *Watcher) reload() {
	if w.ctx.Err() != nil {
		return
	}

	c, err := LoadConfig(w.path)
	if err != nil {
		w.report(fmt.Errorf("reload config: %w", err))

		return
	}

	w.logger.WithFields(l.StringField("path", w.path), l.IntField("animations", len(c.Animations))).
		Debug("config reloaded")

	w.mu.Lock()
	callbacks := append([]func(*Config){}, w.onChange...)
	w.mu.Unlock()

	for _, cb := range callbacks {
		cb(c)
	}
}

func (w *Watcher) report(err error) {
	w.logger.WithFields(l.ErrorField(err)).Error("watch config")

	select {
	case w.errs <- err:
	default:
	}
}
