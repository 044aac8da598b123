//go:build js && wasm

package host

import (
	"errors"
	"math"
	"syscall/js"

	"hearth/internal/logger"
	"hearth/pkg/engine"
)

// EventLoop drives an application from DOM events. Redraws are delivered
// from requestAnimationFrame.
type EventLoop struct {
	flow    engine.ControlFlow
	handler engine.ApplicationHandler
	win     *window
	exiting bool
	done    chan struct{}

	listeners []listener
	frame     js.Func
	frameID   js.Value
	scheduled bool
}

type listener struct {
	target js.Value
	typ    string
	fn     js.Func
}

// window is the canvas-backed engine.Window
type window struct {
	loop    *EventLoop
	id      engine.WindowID
	canvas  js.Value
	surface Surface
	pending bool
}

// NewEventLoop checks that a document is available
func NewEventLoop() (*EventLoop, error) {
	if doc := js.Global().Get("document"); doc.IsUndefined() || doc.IsNull() {
		return nil, errors.New("no document: not running in a browser window")
	}

	l := &EventLoop{
		flow: engine.Poll,
		done: make(chan struct{}),
	}
	l.frame = js.FuncOf(func(js.Value, []js.Value) any {
		defer logger.RecoverToConsole()
		l.onFrame()
		return nil
	})
	return l, nil
}

// SetControlFlow selects continuous animation frames or frames on request
func (l *EventLoop) SetControlFlow(flow engine.ControlFlow) {
	l.flow = flow
}

// RunApp resumes the application and blocks until Exit is called
func (l *EventLoop) RunApp(h engine.ApplicationHandler) error {
	l.handler = h
	h.Resumed(l)
	if !l.Exiting() {
		l.schedule()
		<-l.done
	}
	l.release()
	return nil
}

// CreateWindow binds the canvas named by attrs.CanvasID
func (l *EventLoop) CreateWindow(attrs engine.WindowAttributes) (engine.Window, error) {
	if l.win != nil {
		return nil, errors.New("a canvas is already bound")
	}

	canvas, err := engine.LookupCanvas(attrs.CanvasID)
	if err != nil {
		return nil, err
	}

	// the first frame presents the bound canvas
	w := &window{loop: l, id: 1, canvas: canvas, surface: newCanvasSurface(canvas), pending: true}
	l.win = w
	l.installListeners(w)
	return w, nil
}

// Exit stops dispatching and unblocks RunApp
func (l *EventLoop) Exit() {
	if l.exiting {
		return
	}
	l.exiting = true
	close(l.done)
}

// Exiting reports whether Exit has been called
func (l *EventLoop) Exiting() bool {
	return l.exiting
}

func (l *EventLoop) installListeners(w *window) {
	global := js.Global()

	key := func(ev js.Value, state engine.ElementState) {
		l.dispatch(w, engine.KeyboardInput{Event: engine.KeyEvent{
			PhysicalKey: engine.ParseKeyCode(ev.Get("code").String()),
			State:       state,
			Repeat:      ev.Get("repeat").Bool(),
			Modifiers:   domModifiers(ev),
		}})
	}
	l.listen(global, "keydown", func(ev js.Value) { key(ev, engine.Pressed) })
	l.listen(global, "keyup", func(ev js.Value) { key(ev, engine.Released) })

	l.listen(global, "resize", func(js.Value) {
		size := w.clientSize()
		w.surface.Resize(size.Clamped())
		l.dispatch(w, engine.Resized{Size: size})
	})

	l.listen(global, "focus", func(js.Value) { l.dispatch(w, engine.Focused{Focused: true}) })
	l.listen(global, "blur", func(js.Value) { l.dispatch(w, engine.Focused{Focused: false}) })

	l.listen(w.canvas, "pointermove", func(ev js.Value) {
		ratio := devicePixelRatio()
		l.dispatch(w, engine.CursorMoved{
			X: ev.Get("offsetX").Float() * ratio,
			Y: ev.Get("offsetY").Float() * ratio,
		})
	})

	// the closest a page gets to a close button
	l.listen(global, "pagehide", func(js.Value) { l.dispatch(w, engine.CloseRequested{}) })
}

func (l *EventLoop) listen(target js.Value, typ string, fn func(ev js.Value)) {
	f := js.FuncOf(func(_ js.Value, args []js.Value) any {
		defer logger.RecoverToConsole()
		var ev js.Value
		if len(args) > 0 {
			ev = args[0]
		}
		fn(ev)
		return nil
	})
	target.Call("addEventListener", typ, f)
	l.listeners = append(l.listeners, listener{target: target, typ: typ, fn: f})
}

func (l *EventLoop) release() {
	for _, ln := range l.listeners {
		ln.target.Call("removeEventListener", ln.typ, ln.fn)
		ln.fn.Release()
	}
	l.listeners = nil
	if l.scheduled {
		js.Global().Call("cancelAnimationFrame", l.frameID)
		l.scheduled = false
	}
	l.frame.Release()
	if l.win != nil {
		l.win.surface.Close()
	}
}

func (l *EventLoop) dispatch(w *window, ev engine.WindowEvent) {
	if l.Exiting() {
		return
	}
	l.handler.WindowEvent(l, w.id, ev)
}

func (l *EventLoop) schedule() {
	if l.scheduled || l.Exiting() {
		return
	}
	l.scheduled = true
	l.frameID = js.Global().Call("requestAnimationFrame", l.frame)
}

// onFrame delivers a pending redraw. The frame counts as scheduled until
// the handler returns, so a redraw it requests waits for the next event in
// Wait mode and for the next frame in Poll mode.
func (l *EventLoop) onFrame() {
	if l.Exiting() {
		l.scheduled = false
		return
	}

	if w := l.win; w != nil && w.pending {
		w.pending = false
		l.dispatch(w, engine.RedrawRequested{})
		w.surface.Present()
	}

	l.scheduled = false
	if l.flow == engine.Poll {
		l.schedule()
	}
}

func (w *window) ID() engine.WindowID {
	return w.id
}

func (w *window) InnerSize() engine.Size {
	return engine.CanvasSize(w.canvas)
}

func (w *window) RequestRedraw() {
	w.pending = true
	w.loop.schedule()
}

// clientSize is the canvas's CSS box in physical pixels
func (w *window) clientSize() engine.Size {
	ratio := devicePixelRatio()
	return engine.Size{
		Width:  int(math.Ceil(w.canvas.Get("clientWidth").Float() * ratio)),
		Height: int(math.Ceil(w.canvas.Get("clientHeight").Float() * ratio)),
	}
}

func devicePixelRatio() float64 {
	if r := js.Global().Get("devicePixelRatio"); r.Truthy() {
		return r.Float()
	}
	return 1
}

func domModifiers(ev js.Value) engine.ModifiersState {
	var m engine.ModifiersState
	if ev.Get("shiftKey").Bool() {
		m |= engine.ModShift
	}
	if ev.Get("ctrlKey").Bool() {
		m |= engine.ModControl
	}
	if ev.Get("altKey").Bool() {
		m |= engine.ModAlt
	}
	if ev.Get("metaKey").Bool() {
		m |= engine.ModSuper
	}
	return m
}
