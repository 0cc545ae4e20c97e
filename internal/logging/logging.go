// internal/logging/logging.go
package logging

import (
	"io"
	"log/slog"
	"sync"
)

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewTextHandler(io.Discard, nil))
)

// Setup installs the process logger. Quiet discards everything; debug lowers
// the level and adds source locations.
func Setup(w io.Writer, debug, quiet bool) {
	if quiet {
		w = io.Discard
	}
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level, AddSource: debug})

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()
}

// L returns the process logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
