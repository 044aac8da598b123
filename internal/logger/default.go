package logger

import (
	"io"
	"sync"

	"github.com/rs/zerolog"
)

var (
	stdMu       sync.Mutex
	std         = newDiscard()
	initialized bool
)

func newDiscard() *Logger {
	l := &Logger{out: io.Discard, level: zerolog.Disabled}
	l.rebuild()
	return l
}

// Default returns the process-wide logger. It discards everything until
// Init (or InitConsole on the web) has been called.
func Default() *Logger {
	return std
}

// Init configures the process-wide logger. It may only succeed once per
// process; later calls return ErrAlreadyInitialized.
func Init(opts Options) error {
	var (
		l   *Logger
		err error
	)
	if opts.File != "" {
		if l, err = NewMultiLogger(opts.Level, opts.File); err != nil {
			return err
		}
	} else {
		l = NewLogger(opts.Level)
	}
	if !opts.Colors {
		l.EnableColors(false)
	}

	if err = adopt(l); err != nil {
		l.Close()
		return err
	}
	return nil
}

// adopt moves l's configuration into the process-wide logger so that
// loggers handed out by Default before Init see it too.
func adopt(l *Logger) error {
	stdMu.Lock()
	defer stdMu.Unlock()
	if initialized {
		return ErrAlreadyInitialized
	}

	l.mu.RLock()
	out, file, level, colors := l.out, l.file, l.level, l.useColors
	l.mu.RUnlock()

	std.mu.Lock()
	std.out = out
	std.file = file
	std.level = level
	std.useColors = colors
	std.rebuild()
	std.mu.Unlock()

	initialized = true
	return nil
}
