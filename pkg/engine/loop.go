package engine

// WindowID identifies a window created by the host loop.
type WindowID uint64

// Window is a platform window or canvas owned jointly by the host loop and
// the application.
type Window interface {
	ID() WindowID
	// InnerSize returns the drawable size in physical pixels.
	InnerSize() Size
	// RequestRedraw asks the host to deliver a RedrawRequested event.
	// Requests made before the event is delivered are coalesced.
	RequestRedraw()
}

// WindowAttributes are passed to ActiveEventLoop.CreateWindow.
type WindowAttributes struct {
	Title     string
	Size      Size
	Resizable bool
	VSync     bool
	// CanvasID binds the window to an existing <canvas> element. Only the
	// browser host reads it.
	CanvasID string
}

// DefaultWindowAttributes returns the attributes a window gets when nothing
// is overridden.
func DefaultWindowAttributes() WindowAttributes {
	return WindowAttributes{
		Title:     "window",
		Size:      Size{Width: 800, Height: 600},
		Resizable: true,
		VSync:     true,
	}
}

// ActiveEventLoop is the view of the running host loop handed to callbacks.
type ActiveEventLoop interface {
	CreateWindow(attrs WindowAttributes) (Window, error)
	// Exit asks the loop to stop dispatching events. It does not destroy
	// any window.
	Exit()
	// Exiting reports whether Exit has been called.
	Exiting() bool
}

// ApplicationHandler is implemented by the application and driven by the
// host loop.
type ApplicationHandler interface {
	// Resumed is called when the application may create windows. It can
	// be called more than once over the life of the process.
	Resumed(el ActiveEventLoop)
	WindowEvent(el ActiveEventLoop, id WindowID, event WindowEvent)
}

// ControlFlow selects how the host loop waits between iterations.
type ControlFlow int

const (
	// Poll runs the loop continuously, never blocking on the OS queue.
	Poll ControlFlow = iota
	// Wait blocks until the next event arrives. A redraw requested while
	// handling RedrawRequested is delivered after that event, so a handler
	// that asks for a redraw on every event draws once per event batch.
	Wait
)

func (c ControlFlow) String() string {
	if c == Wait {
		return "wait"
	}
	return "poll"
}
