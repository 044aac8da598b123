//go:build js && wasm

package host

import (
	"syscall/js"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hearth/pkg/engine"
)

// fakePage stands in for the browser when tests run under node. Animation
// frames are queued in fakeFrames and never run on their own.
const fakePage = `(() => {
	class Element {
		constructor(tagName) { this.tagName = tagName; }
		addEventListener() {}
		removeEventListener() {}
	}
	class HTMLCanvasElement extends Element {
		constructor() { super("CANVAS"); this.width = 300; this.height = 150; this.clientWidth = 300; this.clientHeight = 150; }
	}
	const elements = { canvas: new HTMLCanvasElement() };
	globalThis.HTMLCanvasElement = HTMLCanvasElement;
	globalThis.document = { getElementById: (id) => elements[id] ?? null };
	globalThis.addEventListener = () => {};
	globalThis.removeEventListener = () => {};
	globalThis.fakeFrames = [];
	globalThis.cancelledFrames = [];
	globalThis.requestAnimationFrame = (fn) => fakeFrames.push(fn);
	globalThis.cancelAnimationFrame = (id) => { cancelledFrames.push(id); };
})()`

func newFakePageLoop(t *testing.T, flow engine.ControlFlow) *EventLoop {
	t.Helper()
	js.Global().Call("eval", fakePage)
	l, err := NewEventLoop()
	require.NoError(t, err)
	l.SetControlFlow(flow)
	return l
}

func queuedFrames() int {
	return js.Global().Get("fakeFrames").Length()
}

// redrawingHandler binds the canvas and asks for a redraw after every event,
// the way the engine does.
type redrawingHandler struct {
	window       engine.Window
	redraws      int
	exitOnResume bool
}

func (h *redrawingHandler) Resumed(el engine.ActiveEventLoop) {
	w, err := el.CreateWindow(engine.WindowAttributes{CanvasID: "canvas"})
	if err != nil {
		panic(err)
	}
	h.window = w
	w.RequestRedraw()
	if h.exitOnResume {
		el.Exit()
	}
}

func (h *redrawingHandler) WindowEvent(_ engine.ActiveEventLoop, _ engine.WindowID, ev engine.WindowEvent) {
	if _, ok := ev.(engine.RedrawRequested); ok {
		h.redraws++
	}
	h.window.RequestRedraw()
}

func TestReleaseCancelsPendingFrame(t *testing.T) {
	l := newFakePageLoop(t, engine.Poll)
	h := &redrawingHandler{exitOnResume: true}

	require.NoError(t, l.RunApp(h))

	cancelled := js.Global().Get("cancelledFrames")
	require.Equal(t, 1, cancelled.Length())
	assert.Equal(t, queuedFrames(), cancelled.Index(0).Int())
	assert.False(t, l.scheduled)
}

func TestWaitModeRedrawsOncePerEvent(t *testing.T) {
	l := newFakePageLoop(t, engine.Wait)
	h := &redrawingHandler{}
	l.handler = h
	h.Resumed(l)
	t.Cleanup(l.release)
	require.Equal(t, 1, queuedFrames())

	l.onFrame()
	assert.Equal(t, 1, h.redraws)
	assert.Equal(t, 1, queuedFrames(), "no frame without a new event")
	assert.True(t, l.win.pending)

	l.dispatch(l.win, engine.Focused{Focused: true})
	assert.Equal(t, 2, queuedFrames())

	l.onFrame()
	assert.Equal(t, 2, h.redraws)
	assert.Equal(t, 2, queuedFrames())
}

func TestPollModeKeepsFramesComing(t *testing.T) {
	l := newFakePageLoop(t, engine.Poll)
	h := &redrawingHandler{}
	l.handler = h
	h.Resumed(l)
	t.Cleanup(l.release)

	for i := 1; i <= 3; i++ {
		l.onFrame()
		assert.Equal(t, i, h.redraws)
		assert.Equal(t, i+1, queuedFrames())
	}
}

func TestCreateWindowRejectsMissingCanvas(t *testing.T) {
	l := newFakePageLoop(t, engine.Poll)

	_, err := l.CreateWindow(engine.WindowAttributes{CanvasID: "missing"})
	assert.ErrorIs(t, err, engine.ErrCanvasNotFound)
	assert.Nil(t, l.win)
}
