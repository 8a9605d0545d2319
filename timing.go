// File: typeconf/timing.go
package typeconf

import "time"

// Timing constants governing configuration file watching.
const (
	// SpinWaitInterval is the quantum used while waiting for the watch loop
	// to acknowledge shutdown.
	SpinWaitInterval = 5 * time.Millisecond
	// MinPollInterval is the hard floor for file stat polling.
	MinPollInterval = 100 * time.Millisecond
	// ShutdownTimeout bounds the wait for watcher termination.
	ShutdownTimeout = 100 * time.Millisecond
	// DefaultDebounce coalesces rapid file changes into one reload.
	DefaultDebounce = 500 * time.Millisecond
	// DefaultPollInterval is the standard file monitoring frequency.
	DefaultPollInterval = time.Second
)
