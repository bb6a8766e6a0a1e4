package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// FileName is the diagnostic log written under the archive's logs directory.
const FileName = "soundarchive.log"

// Logger appends timestamped lines to <home>/logs/soundarchive.log so
// startup and bridge failures can be read after the alt screen closes.
// Loggers returned by Named share the parent's file.
type Logger struct {
	sink      *sink
	component string
}

type sink struct {
	mu    sync.Mutex
	file  *os.File
	clock func() time.Time
}

// New creates (or reuses) the log file inside logDir.
func New(logDir string) (*Logger, error) {
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("logging: ensure log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(logDir, FileName), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logging: open log file: %w", err)
	}
	return &Logger{sink: &sink{file: f, clock: time.Now}}, nil
}

// Named returns a logger that prefixes every line with "component: ".
func (l *Logger) Named(component string) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{sink: l.sink, component: component}
}

// Path returns the backing file name.
func (l *Logger) Path() string {
	if l == nil || l.sink == nil {
		return ""
	}
	return l.sink.file.Name()
}

// Close releases the file handle for every logger sharing it.
func (l *Logger) Close() error {
	if l == nil || l.sink == nil {
		return nil
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	return l.sink.file.Close()
}

// Printf writes one "[RFC3339] component: message" line.
func (l *Logger) Printf(format string, args ...any) {
	if l == nil || l.sink == nil {
		return
	}
	msg := strings.TrimRight(fmt.Sprintf(format, args...), "\n")
	if l.component != "" {
		msg = l.component + ": " + msg
	}
	l.sink.mu.Lock()
	defer l.sink.mu.Unlock()
	fmt.Fprintf(l.sink.file, "[%s] %s\n", l.sink.clock().Format(time.RFC3339), msg)
}
