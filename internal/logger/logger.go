package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// ErrAlreadyInitialized is returned when the process logger is initialized twice
var ErrAlreadyInitialized = errors.New("logger already initialized")

const timeFormat = "2006/01/02 15:04:05"

func init() {
	// file:line instead of the full path
	zerolog.CallerMarshalFunc = func(_ uintptr, file string, line int) string {
		return filepath.Base(file) + ":" + strconv.Itoa(line)
	}
}

// Logger handles logging functionalities
type Logger struct {
	mu        sync.RWMutex
	zl        zerolog.Logger
	out       io.Writer
	level     zerolog.Level
	file      *os.File
	useColors bool
}

// Options configures the process-wide logger
type Options struct {
	Level  string
	File   string
	Colors bool
}

// ParseLevel maps a level name to its zerolog level, defaulting to info
func ParseLevel(levelStr string) zerolog.Level {
	switch strings.ToLower(levelStr) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "fatal":
		return zerolog.FatalLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger creates a new console logger with the specified log level
func NewLogger(levelStr string) *Logger {
	l := &Logger{
		out:       os.Stdout,
		level:     ParseLevel(levelStr),
		useColors: isatty.IsTerminal(os.Stdout.Fd()),
	}
	l.rebuild()
	return l
}

// NewMultiLogger creates a logger that writes to both console and file
func NewMultiLogger(levelStr, filePath string) (*Logger, error) {
	file, err := openLogFile(filePath)
	if err != nil {
		return nil, err
	}

	l := NewLogger(levelStr)
	l.mu.Lock()
	l.out = io.MultiWriter(os.Stdout, file)
	l.file = file
	l.rebuild()
	l.mu.Unlock()

	return l, nil
}

func openLogFile(filePath string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// rebuild recreates the zerolog backend; callers hold mu
func (l *Logger) rebuild() {
	w := zerolog.ConsoleWriter{
		Out:        l.out,
		NoColor:    !l.useColors,
		TimeFormat: timeFormat,
	}
	l.zl = zerolog.New(w).Level(l.level).With().Timestamp().Logger()
}

func (l *Logger) backend() zerolog.Logger {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.zl
}

// emit writes one message; the caller frame skips emit and the exported wrapper
func (l *Logger) emit(level zerolog.Level, msg string) {
	zl := l.backend()
	zl.WithLevel(level).Caller(2).Msg(msg)
}

func (l *Logger) enabled(level zerolog.Level) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return level >= l.level && l.level != zerolog.Disabled
}

// Debugf logs a formatted debug message
func (l *Logger) Debugf(format string, v ...interface{}) {
	if l.enabled(zerolog.DebugLevel) {
		l.emit(zerolog.DebugLevel, fmt.Sprintf(format, v...))
	}
}

// Info logs an info message
func (l *Logger) Info(v ...interface{}) {
	if l.enabled(zerolog.InfoLevel) {
		l.emit(zerolog.InfoLevel, fmt.Sprint(v...))
	}
}

// Infof logs a formatted info message
func (l *Logger) Infof(format string, v ...interface{}) {
	if l.enabled(zerolog.InfoLevel) {
		l.emit(zerolog.InfoLevel, fmt.Sprintf(format, v...))
	}
}

// Error logs an error message
func (l *Logger) Error(v ...interface{}) {
	if l.enabled(zerolog.ErrorLevel) {
		l.emit(zerolog.ErrorLevel, fmt.Sprint(v...))
	}
}

// Errorf logs a formatted error message
func (l *Logger) Errorf(format string, v ...interface{}) {
	if l.enabled(zerolog.ErrorLevel) {
		l.emit(zerolog.ErrorLevel, fmt.Sprintf(format, v...))
	}
}

// SetOutput sets the output writer for the logger
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.rebuild()
}

// EnableColors enables or disables colored output
func (l *Logger) EnableColors(enable bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.useColors = enable
	l.rebuild()
}

// Close closes the logger's file if it exists
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		l.file.Close()
		l.file = nil
	}
}
