// Package logging is the process-wide logger. CLI mode writes slog text
// records; TUI mode hands entries to the UI over a buffered channel so
// nothing is written underneath the alternate screen.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// LogLevel defines the severity of the log entry.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String makes LogLevel satisfy the fmt.Stringer interface.
func (l LogLevel) String() string {
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

func (l LogLevel) SlogLevel() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelInfo:
		return slog.LevelInfo
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo // Default to INFO for unknown
	}
}

// ParseLevel accepts debug, info, warn or error in any case.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

// LogEntry is the structured log entry passed to the TUI.
type LogEntry struct {
	Timestamp time.Time
	Level     LogLevel
	Subsystem string
	Message   string
	Err       error
}

var (
	mu            sync.RWMutex
	defaultLogger *slog.Logger
	tuiLogChannel chan LogEntry
	tuiLevel      LogLevel
	dropped       atomic.Int64
)

const tuiChannelBufferSize = 2048

// InitForTUI initializes the logging system for TUI mode.
// Entries below filterLevel are discarded; the rest are delivered on the
// returned channel until CloseTUIChannel is called.
func InitForTUI(filterLevel LogLevel) <-chan LogEntry {
	return initTUI(filterLevel, tuiChannelBufferSize)
}

func initTUI(filterLevel LogLevel, size int) <-chan LogEntry {
	mu.Lock()
	defer mu.Unlock()
	tuiLogChannel = make(chan LogEntry, size)
	tuiLevel = filterLevel
	defaultLogger = nil
	dropped.Store(0)
	return tuiLogChannel
}

// InitForCLI initializes the logging system for CLI mode.
// Records at or above filterLevel are written to output as slog text.
func InitForCLI(filterLevel LogLevel, output io.Writer) {
	handler := slog.NewTextHandler(output, &slog.HandlerOptions{Level: filterLevel.SlogLevel()})
	mu.Lock()
	defer mu.Unlock()
	tuiLogChannel = nil
	defaultLogger = slog.New(handler)
}

// Dropped returns how many TUI entries were discarded because the channel was full.
func Dropped() int64 {
	return dropped.Load()
}

func logInternal(level LogLevel, subsystem string, err error, messageFmt string, args ...any) {
	msg := messageFmt
	if len(args) > 0 {
		msg = fmt.Sprintf(messageFmt, args...)
	}

	mu.RLock()
	defer mu.RUnlock()

	if tuiLogChannel != nil {
		if level < tuiLevel {
			return
		}
		entry := LogEntry{
			Timestamp: time.Now(),
			Level:     level,
			Subsystem: subsystem,
			Message:   msg,
			Err:       err,
		}
		// Never block the caller on a UI that stopped draining.
		select {
		case tuiLogChannel <- entry:
		default:
			dropped.Add(1)
		}
		return
	}

	logger := defaultLogger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	}

	attrs := []slog.Attr{slog.String("subsystem", subsystem)}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}
	logger.LogAttrs(context.Background(), level.SlogLevel(), msg, attrs...)
}

// Debug logs a debug message.
func Debug(subsystem string, messageFmt string, args ...any) {
	logInternal(LevelDebug, subsystem, nil, messageFmt, args...)
}

// Info logs an informational message.
func Info(subsystem string, messageFmt string, args ...any) {
	logInternal(LevelInfo, subsystem, nil, messageFmt, args...)
}

// Warn logs a warning message.
func Warn(subsystem string, messageFmt string, args ...any) {
	logInternal(LevelWarn, subsystem, nil, messageFmt, args...)
}

// Error logs an error message.
func Error(subsystem string, err error, messageFmt string, args ...any) {
	logInternal(LevelError, subsystem, err, messageFmt, args...)
}

// CloseTUIChannel closes the TUI log channel. Should be called on application shutdown.
// Later log calls fall back to stderr.
func CloseTUIChannel() {
	mu.Lock()
	defer mu.Unlock()
	if tuiLogChannel != nil {
		close(tuiLogChannel)
		tuiLogChannel = nil
	}
}
