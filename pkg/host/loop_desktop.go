//go:build !js

package host

import (
	"fmt"

	"github.com/go-gl/glfw/v3.3/glfw"

	"hearth/pkg/engine"
)

// EventLoop drives an application from the GLFW event queue. GLFW requires
// every call to come from the main OS thread, so the loop must be created
// and run there.
type EventLoop struct {
	flow    engine.ControlFlow
	handler engine.ApplicationHandler
	windows map[*glfw.Window]*window
	nextID  engine.WindowID
	exiting bool
}

// window is the GLFW-backed engine.Window
type window struct {
	id      engine.WindowID
	glw     *glfw.Window
	surface Surface
	pending bool
}

// NewEventLoop initializes GLFW
func NewEventLoop() (*EventLoop, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	return &EventLoop{
		flow:    engine.Poll,
		windows: make(map[*glfw.Window]*window),
	}, nil
}

// SetControlFlow selects polling or blocking between iterations
func (l *EventLoop) SetControlFlow(flow engine.ControlFlow) {
	l.flow = flow
}

// RunApp resumes the application and dispatches events until Exit is
// called. Windows are destroyed and GLFW terminated before it returns.
func (l *EventLoop) RunApp(h engine.ApplicationHandler) error {
	defer glfw.Terminate()

	l.handler = h
	h.Resumed(l)

	for !l.Exiting() {
		if l.flow == engine.Wait {
			glfw.WaitEvents()
		} else {
			glfw.PollEvents()
		}
		l.redraw()
	}

	for glw, w := range l.windows {
		w.surface.Close()
		glw.Destroy()
		delete(l.windows, glw)
	}
	return nil
}

// CreateWindow opens a GLFW window with a GL 4.1 core context
func (l *EventLoop) CreateWindow(attrs engine.WindowAttributes) (engine.Window, error) {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.Resizable, boolHint(attrs.Resizable))
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	glw, err := glfw.CreateWindow(attrs.Size.Width, attrs.Size.Height, attrs.Title, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	glw.MakeContextCurrent()
	if attrs.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	surface, err := newGLSurface(glw)
	if err != nil {
		glw.Destroy()
		return nil, err
	}

	l.nextID++
	// the first redraw pass presents the new window
	w := &window{id: l.nextID, glw: glw, surface: surface, pending: true}
	l.windows[glw] = w
	l.installCallbacks(w)

	return w, nil
}

// Exit stops the loop after the current iteration
func (l *EventLoop) Exit() {
	l.exiting = true
	glfw.PostEmptyEvent()
}

// Exiting reports whether Exit has been called
func (l *EventLoop) Exiting() bool {
	return l.exiting
}

func (l *EventLoop) installCallbacks(w *window) {
	w.glw.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, mods glfw.ModifierKey) {
		state := engine.Pressed
		if action == glfw.Release {
			state = engine.Released
		}
		l.dispatch(w, engine.KeyboardInput{Event: engine.KeyEvent{
			PhysicalKey: keyCode(key),
			State:       state,
			Repeat:      action == glfw.Repeat,
			Modifiers:   modifiers(mods),
		}})
	})

	// framebuffer size is in physical pixels, window size is not
	w.glw.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		size := engine.Size{Width: width, Height: height}
		w.surface.Resize(size.Clamped())
		l.dispatch(w, engine.Resized{Size: size})
	})

	w.glw.SetCloseCallback(func(glw *glfw.Window) {
		// only Exit ends the loop
		glw.SetShouldClose(false)
		l.dispatch(w, engine.CloseRequested{})
	})

	w.glw.SetFocusCallback(func(_ *glfw.Window, focused bool) {
		l.dispatch(w, engine.Focused{Focused: focused})
	})

	w.glw.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		l.dispatch(w, engine.CursorMoved{X: x, Y: y})
	})
}

func (l *EventLoop) dispatch(w *window, ev engine.WindowEvent) {
	if l.Exiting() {
		return
	}
	l.handler.WindowEvent(l, w.id, ev)
}

// redraw delivers at most one RedrawRequested per window per iteration
func (l *EventLoop) redraw() {
	for _, w := range l.windows {
		if !w.pending || l.Exiting() {
			continue
		}
		w.pending = false
		l.dispatch(w, engine.RedrawRequested{})
		w.surface.Present()
	}
}

func (w *window) ID() engine.WindowID {
	return w.id
}

func (w *window) InnerSize() engine.Size {
	width, height := w.glw.GetFramebufferSize()
	return engine.Size{Width: width, Height: height}
}

// RequestRedraw marks the window for the next redraw pass. Callers run on
// the loop's thread, so the pass follows without waking WaitEvents; in Wait
// mode a request made while handling RedrawRequested is served after the
// next event.
func (w *window) RequestRedraw() {
	w.pending = true
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}
