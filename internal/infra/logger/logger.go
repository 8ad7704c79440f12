// Package logger owns the process-wide structured logger. Commands that run
// inside a workspace call Setup to send JSON lines to the workspace log file;
// everything else gets a logger that discards.
package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// Config selects where the log file lives and how verbose it is.
type Config struct {
	Root  string
	Debug bool
}

type sink struct {
	log  *slog.Logger
	file *os.File
	path string
}

var (
	mu  sync.RWMutex
	cur = discard()
)

func discard() sink { return sink{log: slog.New(slog.DiscardHandler)} }

// FilePath is the log file for a workspace root.
func FilePath(root string) string {
	if root == "" {
		root = "."
	}
	return filepath.Join(filepath.Clean(root), ".agegroup", "logs", "agegroup.log")
}

// Setup installs a JSON logger appending to FilePath(cfg.Root). Debug lowers
// the level and adds source positions. The returned cleanup closes the file
// and, if this logger is still installed, restores the discard logger.
func Setup(cfg Config) (func() error, error) {
	path := FilePath(cfg.Root)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		reset()
		return nil, err
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		reset()
		return nil, err
	}

	s := sink{log: slog.New(newHandler(f, cfg.Debug)), file: f, path: path}

	mu.Lock()
	cur = s
	mu.Unlock()

	s.log.Info("logger.ready", "path", path, "debug", cfg.Debug)

	return func() error {
		mu.Lock()
		if cur.file == f {
			cur = discard()
		}
		mu.Unlock()
		return f.Close()
	}, nil
}

func newHandler(f *os.File, debug bool) slog.Handler {
	opts := &slog.HandlerOptions{
		Level:       slog.LevelInfo,
		ReplaceAttr: utcTime,
	}
	if debug {
		opts.Level = slog.LevelDebug
		opts.AddSource = true
	}
	return slog.NewJSONHandler(f, opts)
}

func utcTime(_ []string, a slog.Attr) slog.Attr {
	if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
	}
	return a
}

func reset() {
	mu.Lock()
	cur = discard()
	mu.Unlock()
}

// L returns the installed logger.
func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return cur.log
}

// Path is the open log file, or "" when logging is discarded.
func Path() string {
	mu.RLock()
	defer mu.RUnlock()
	return cur.path
}
