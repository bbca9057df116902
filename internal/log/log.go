// Package log provides categorized file logging for spangrid.
// Logging is off until Init is called, which cmd does for --debug or
// SPANGRID_DEBUG. Entries are also published so the UI can surface warnings.
package log

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/zjrosen/spangrid/internal/pubsub"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// Category groups related log messages.
type Category string

const (
	CatSpan    Category = "span"    // region index swaps
	CatCursor  Category = "cursor"  // navigation actions
	CatGrid    Category = "grid"    // grid widget rendering and input
	CatSheet   Category = "sheet"   // sheet loading and validation
	CatConfig  Category = "config"  // configuration loading/saving
	CatWatcher Category = "watcher" // file watcher events
	CatCache   Category = "cache"   // cache operations
)

// Entry is a published log line.
type Entry struct {
	Level    Level
	Category Category
	Message  string
	Line     string
}

// Logger writes formatted entries and publishes them.
type Logger struct {
	mu       sync.Mutex
	writer   io.Writer
	enabled  bool
	minLevel Level
	broker   *pubsub.Broker[Entry]
}

var (
	mu            sync.RWMutex
	defaultLogger *Logger
)

// Init opens path for appending and installs it as the global logger.
// The returned function closes the file.
func Init(path string) (func(), error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G304: path is the user's debug log path
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	l := New(f)
	setDefault(l)
	return func() {
		setDefault(nil)
		_ = f.Close()
	}, nil
}

// New creates a logger writing to w. Used directly by tests.
func New(w io.Writer) *Logger {
	return &Logger{
		writer:   w,
		enabled:  true,
		minLevel: LevelDebug,
		broker:   pubsub.NewBroker[Entry](),
	}
}

// SetDefault installs l as the global logger. A nil l disables logging.
func SetDefault(l *Logger) {
	setDefault(l)
}

func setDefault(l *Logger) {
	mu.Lock()
	defaultLogger = l
	mu.Unlock()
}

func current() *Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// SetEnabled toggles logging on/off.
func SetEnabled(enabled bool) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.enabled = enabled
		l.mu.Unlock()
	}
}

// SetMinLevel sets the minimum log level.
func SetMinLevel(level Level) {
	if l := current(); l != nil {
		l.mu.Lock()
		l.minLevel = level
		l.mu.Unlock()
	}
}

// Subscribe returns a channel of entries logged after the call, or nil when
// logging is not initialized.
func Subscribe(ctx context.Context) <-chan pubsub.Event[Entry] {
	l := current()
	if l == nil {
		return nil
	}
	return l.broker.Subscribe(ctx)
}

// Debug logs at debug level.
func Debug(cat Category, msg string, fields ...any) {
	current().log(LevelDebug, cat, msg, fields...)
}

// Info logs at info level.
func Info(cat Category, msg string, fields ...any) {
	current().log(LevelInfo, cat, msg, fields...)
}

// Warn logs at warning level.
func Warn(cat Category, msg string, fields ...any) {
	current().log(LevelWarn, cat, msg, fields...)
}

// Error logs at error level.
func Error(cat Category, msg string, fields ...any) {
	current().log(LevelError, cat, msg, fields...)
}

// ErrorErr logs an error with the error value.
func ErrorErr(cat Category, msg string, err error, fields ...any) {
	if err != nil {
		fields = append(fields, "error", err.Error())
	} else {
		fields = append(fields, "error", "<nil>")
	}
	current().log(LevelError, cat, msg, fields...)
}

func (l *Logger) log(level Level, cat Category, msg string, fields ...any) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if !l.enabled || level < l.minLevel {
		return
	}

	// Format: 2026-01-06T10:45:00 [WARN] [sheet] message key=value key2=value2
	var b strings.Builder
	fmt.Fprintf(&b, "%s [%s] [%s] %s", time.Now().Format("2006-01-02T15:04:05"), level, cat, msg)
	for i := 0; i+1 < len(fields); i += 2 {
		fmt.Fprintf(&b, " %v=%v", fields[i], fields[i+1])
	}
	if len(fields)%2 != 0 {
		fmt.Fprintf(&b, " %v=<missing>", fields[len(fields)-1])
	}
	line := b.String()

	if l.writer != nil {
		_, _ = io.WriteString(l.writer, line+"\n")
	}
	l.broker.Publish(pubsub.CreatedEvent, Entry{Level: level, Category: cat, Message: msg, Line: line})
}
