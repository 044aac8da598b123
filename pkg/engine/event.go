package engine

// WindowEvent is an event delivered by the host loop for one window. The set
// of variants is closed: only types in this package implement it.
type WindowEvent interface {
	windowEvent()
}

// KeyEvent describes a single key transition.
type KeyEvent struct {
	PhysicalKey KeyCode
	State       ElementState
	Repeat      bool
	Modifiers   ModifiersState
}

// KeyboardInput is sent when a key is pressed, repeated or released.
type KeyboardInput struct {
	Event KeyEvent
	// Synthetic is set for events generated by the host rather than the
	// user, e.g. keys reported as released when focus is lost.
	Synthetic bool
}

// Resized is sent when the window's inner size in physical pixels changes.
type Resized struct {
	Size Size
}

// CloseRequested is sent when the user asks to close the window.
type CloseRequested struct{}

// RedrawRequested is sent once per pending Window.RequestRedraw.
type RedrawRequested struct{}

// Focused is sent when the window gains or loses keyboard focus.
type Focused struct {
	Focused bool
}

// CursorMoved is sent when the cursor moves over the window.
type CursorMoved struct {
	X, Y float64
}

func (KeyboardInput) windowEvent()   {}
func (Resized) windowEvent()         {}
func (CloseRequested) windowEvent()  {}
func (RedrawRequested) windowEvent() {}
func (Focused) windowEvent()         {}
func (CursorMoved) windowEvent()     {}
