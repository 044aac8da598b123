package engine

import (
	"context"
	"fmt"

	"hearth/internal/logger"
)

// Engine adapts the host loop's callbacks to window creation and a small
// reaction policy. It owns at most one window and caches its last size.
type Engine struct {
	window   Window
	lastSize Size

	platform Platform
	startup  StartupTask
	ctx      context.Context
	logger   *logger.Logger

	err error
}

// Option configures an Engine
type Option func(*Engine)

// WithStartupTask replaces the empty one-time startup task
func WithStartupTask(task StartupTask) Option {
	return func(e *Engine) {
		e.startup = task
	}
}

// WithContext sets the context the startup task runs under
func WithContext(ctx context.Context) Option {
	return func(e *Engine) {
		e.ctx = ctx
	}
}

// WithLogger sets the logger, the process-wide default otherwise
func WithLogger(l *logger.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine creates an engine with no window and a zero size
func NewEngine(platform Platform, opts ...Option) *Engine {
	e := &Engine{
		platform: platform,
		startup:  emptyStartup,
		ctx:      context.Background(),
		logger:   logger.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Window returns the held window, nil before the first successful creation
func (e *Engine) Window() Window {
	return e.window
}

// LastSize returns the cached window size
func (e *Engine) LastSize() Size {
	return e.lastSize
}

// Err returns the first fatal startup error, if any
func (e *Engine) Err() error {
	return e.err
}

// Resumed creates the window if none exists yet and the loop is not
// shutting down.
func (e *Engine) Resumed(el ActiveEventLoop) {
	if e.window != nil || el.Exiting() {
		return
	}

	attrs, err := e.platform.WindowAttributes(DefaultWindowAttributes())
	if err != nil {
		e.fail(el, fmt.Errorf("failed to prepare window attributes: %w", err))
		return
	}

	window, err := el.CreateWindow(attrs)
	if err != nil {
		e.fail(el, fmt.Errorf("failed to create window: %w", err))
		return
	}
	e.window = window

	// A held window is never released, so this runs for the first window only.
	size, err := e.platform.OnFirstWindow(e.ctx, window, e.startup)
	e.lastSize = size
	if err != nil {
		e.fail(el, fmt.Errorf("startup failed: %w", err))
		return
	}
	e.logger.Debugf("Window %d created with inner size %s", window.ID(), size)
}

// WindowEvent reacts to Escape, resizes and close requests, then asks for a
// redraw. Events are ignored while no window is held.
func (e *Engine) WindowEvent(el ActiveEventLoop, id WindowID, event WindowEvent) {
	if e.window == nil {
		return
	}

	switch ev := event.(type) {
	case KeyboardInput:
		if ev.Event.PhysicalKey == KeyEscape {
			e.exit(el)
		}
	case Resized:
		size := ev.Size.Clamped()
		e.logger.Infof("Resizing renderer surface to: %s", size)
		e.lastSize = size
	case CloseRequested:
		e.logger.Info("Close requested. Exiting...")
		e.exit(el)
	default:
	}

	e.window.RequestRedraw()
}

func (e *Engine) fail(el ActiveEventLoop, err error) {
	if e.err == nil {
		e.err = err
	}
	e.logger.Error(err)
	e.exit(el)
}

// exit requests termination unless the loop is already exiting
func (e *Engine) exit(el ActiveEventLoop) {
	if !el.Exiting() {
		el.Exit()
	}
}
