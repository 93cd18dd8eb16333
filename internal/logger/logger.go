package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level int

const (
	DEBUG Level = iota
	INFO
	WARN
	ERROR
)

var levelNames = [...]string{"DEBUG", "INFO", "WARN", "ERROR"}

func (l Level) String() string {
	if l < DEBUG || l > ERROR {
		return "UNKNOWN"
	}
	return levelNames[l]
}

// ParseLevel converts a string to a Level, defaulting to INFO
func ParseLevel(s string) Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return DEBUG
	case "WARN":
		return WARN
	case "ERROR":
		return ERROR
	default:
		return INFO
	}
}

// Field is a key-value pair attached to a log entry
type Field struct {
	Key   string
	Value interface{}
}

// F is a shorthand for creating a Field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Config holds logger configuration
type Config struct {
	Level      Level
	FilePath   string
	MaxSize    int64 // bytes before rotation
	MaxBackups int
	Console    bool // console output is off by default so it does not fight the TUI
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	home, _ := os.UserHomeDir()
	path := ""
	if home != "" {
		path = filepath.Join(home, ".pm", "logs", "pm.log")
	}
	return Config{
		Level:      INFO,
		FilePath:   path,
		MaxSize:    10 * 1024 * 1024,
		MaxBackups: 5,
		Console:    false,
	}
}

// Logger writes leveled, fielded entries to a file and optionally stderr
type Logger struct {
	mu     sync.Mutex
	cfg    Config
	file   *os.File
	fields []Field
}

var (
	global *Logger
	once   sync.Once
)

// Init initializes the global logger; repeated calls are no-ops
func Init(cfg Config) error {
	var err error
	once.Do(func() {
		global, err = New(cfg)
	})
	return err
}

// New creates a logger instance
func New(cfg Config) (*Logger, error) {
	l := &Logger{cfg: cfg}
	if cfg.FilePath != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.FilePath), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		if err := l.openFile(); err != nil {
			return nil, err
		}
	}
	return l, nil
}

func (l *Logger) openFile() error {
	f, err := os.OpenFile(l.cfg.FilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	l.file = f
	return nil
}

// rotate shifts numbered backups and starts a fresh file; caller holds mu
func (l *Logger) rotate() {
	l.file.Close()
	for i := l.cfg.MaxBackups - 1; i >= 1; i-- {
		os.Rename(fmt.Sprintf("%s.%d", l.cfg.FilePath, i), fmt.Sprintf("%s.%d", l.cfg.FilePath, i+1))
	}
	os.Rename(l.cfg.FilePath, l.cfg.FilePath+".1")
	_ = l.openFile()
}

func (l *Logger) log(level Level, msg string, fields []Field) {
	if l == nil || level < l.cfg.Level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	caller := "???"
	if _, file, line, ok := runtime.Caller(2); ok {
		caller = fmt.Sprintf("%s:%d", filepath.Base(file), line)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "[%s] %s %s: %s", time.Now().Format("2006-01-02 15:04:05.000"), level, caller, msg)
	all := append(l.fields, fields...)
	if len(all) > 0 {
		b.WriteString(" |")
		for _, f := range all {
			fmt.Fprintf(&b, " %s=%v", f.Key, f.Value)
		}
	}
	b.WriteByte('\n')
	entry := b.String()

	if l.file != nil {
		if info, err := l.file.Stat(); err == nil && info.Size()+int64(len(entry)) > l.cfg.MaxSize {
			l.rotate()
		}
		io.WriteString(l.file, entry)
	}
	if l.cfg.Console {
		io.WriteString(os.Stderr, entry)
	}
}

// WithFields returns a logger that attaches the given fields to every entry
func (l *Logger) WithFields(fields ...Field) *Logger {
	if l == nil {
		return nil
	}
	return &Logger{cfg: l.cfg, file: l.file, fields: append(append([]Field{}, l.fields...), fields...)}
}

// Debug logs a debug message
func (l *Logger) Debug(msg string, fields ...Field) { l.log(DEBUG, msg, fields) }

// Info logs an info message
func (l *Logger) Info(msg string, fields ...Field) { l.log(INFO, msg, fields) }

// Warn logs a warning message
func (l *Logger) Warn(msg string, fields ...Field) { l.log(WARN, msg, fields) }

// Error logs an error message
func (l *Logger) Error(msg string, fields ...Field) { l.log(ERROR, msg, fields) }

// Close flushes and closes the log file
func (l *Logger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.file.Close()
}

// Global logger functions

// Debug logs a debug message using the global logger
func Debug(msg string, fields ...Field) { global.log(DEBUG, msg, fields) }

// Info logs an info message using the global logger
func Info(msg string, fields ...Field) { global.log(INFO, msg, fields) }

// Warn logs a warning message using the global logger
func Warn(msg string, fields ...Field) { global.log(WARN, msg, fields) }

// Error logs an error message using the global logger
func Error(msg string, fields ...Field) { global.log(ERROR, msg, fields) }

// WithFields creates a derived global logger with preset fields
func WithFields(fields ...Field) *Logger { return global.WithFields(fields...) }

// Close closes the global logger
func Close() error { return global.Close() }
