// File: typeconf/watch.go
package typeconf

import (
	"context"
	"fmt"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

// WatchOptions configures file watching behavior.
type WatchOptions struct {
	// PollInterval for file stat checks. Values below MinPollInterval are
	// raised to it.
	PollInterval time.Duration

	// Debounce delays the reload after a change so rapid consecutive writes
	// produce a single update.
	Debounce time.Duration
}

// DefaultWatchOptions returns the standard watch timing.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		PollInterval: DefaultPollInterval,
		Debounce:     DefaultDebounce,
	}
}

// Update is one reload outcome delivered by a Watcher. Exactly one field is
// set: a change that loads cleanly carries the new file, and a change that
// no longer validates carries the aggregated issues, leaving the previous
// file in effect.
type Update struct {
	File *File
	Err  error
}

// Watcher polls a configuration file and reloads it when its modification
// time or size changes. Long-running checkers use it to pick up option
// changes between runs without restarting.
type Watcher struct {
	engine *Engine
	path   string
	opts   WatchOptions

	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	debounceTimer *time.Timer

	updates  chan Update
	watching atomic.Bool

	// Touched only by the poll loop goroutine.
	lastModTime time.Time
	lastSize    int64
	missing     bool
}

// Watch loads path and begins polling it for changes. The initial file is
// returned directly; subsequent reload outcomes arrive on Updates.
func (e *Engine) Watch(path string, opts WatchOptions) (*File, *Watcher, error) {
	file, err := e.LoadFile(path)
	if err != nil {
		return nil, nil, err
	}

	if opts.PollInterval < MinPollInterval {
		opts.PollInterval = MinPollInterval
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		engine:  e,
		path:    path,
		opts:    opts,
		ctx:     ctx,
		cancel:  cancel,
		updates: make(chan Update, 10),
	}
	if info, err := os.Stat(path); err == nil {
		w.lastModTime = info.ModTime()
		w.lastSize = info.Size()
	}

	go w.watchLoop()
	return file, w, nil
}

// Updates returns the channel reload outcomes are delivered on. After Stop
// no further updates arrive.
func (w *Watcher) Updates() <-chan Update {
	return w.updates
}

// IsWatching reports whether the poll loop is running.
func (w *Watcher) IsWatching() bool {
	return w.watching.Load()
}

// Stop terminates the watcher and waits briefly for the poll loop to exit.
func (w *Watcher) Stop() {
	w.cancel()

	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
		w.debounceTimer = nil
	}
	w.mu.Unlock()

	deadline := time.Now().Add(ShutdownTimeout)
	for w.watching.Load() && time.Now().Before(deadline) {
		time.Sleep(SpinWaitInterval)
	}
}

// watchLoop is the main polling loop.
func (w *Watcher) watchLoop() {
	if !w.watching.CompareAndSwap(false, true) {
		return
	}
	defer w.watching.Store(false)

	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-w.ctx.Done():
			return
		case <-ticker.C:
			w.check()
		}
	}
}

// check compares file metadata and schedules a debounced reload on change.
func (w *Watcher) check() {
	info, err := os.Stat(w.path)
	if err != nil {
		if os.IsNotExist(err) && !w.missing {
			w.missing = true
			w.deliver(Update{Err: fmt.Errorf("%w: %s", ErrNotFound, w.path)})
		}
		return
	}
	w.missing = false

	if info.ModTime().Equal(w.lastModTime) && info.Size() == w.lastSize {
		return
	}
	w.lastModTime = info.ModTime()
	w.lastSize = info.Size()

	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.debounceTimer = time.AfterFunc(w.opts.Debounce, w.reload)
	w.mu.Unlock()
}

// reload parses the file again and delivers the outcome.
func (w *Watcher) reload() {
	file, err := w.engine.LoadFile(w.path)
	if err != nil {
		w.deliver(Update{Err: err})
		return
	}
	w.deliver(Update{File: file})
}

// deliver sends without blocking; when the subscriber falls behind, the
// newest update is dropped rather than stalling the watcher.
func (w *Watcher) deliver(update Update) {
	select {
	case w.updates <- update:
	default:
	}
}
